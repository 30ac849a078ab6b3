package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"litcast/internal/ast"
	"litcast/internal/source"
	"litcast/internal/token"
)

// CheckCastInvariants runs a minimal set of span invariants on scanned casts:
// 1) every cast span is non-empty and within file content bounds
// 2) the literal span sits inside the cast span
// 3) a sign token, when present, sits between the type and the literal
func CheckCastInvariants(casts []ast.CastExpr, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	for i, cast := range casts {
		sp := cast.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("cast %d: empty span %v", i, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("cast %d: span points to different file id: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("cast %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sf.Content[sp.Start] != '(' {
			return fmt.Errorf("cast %d: span %v does not start at the opening paren", i, sp)
		}

		lit := cast.Operand.Lit.Span
		if lit.End <= lit.Start {
			return fmt.Errorf("cast %d: empty literal span %v", i, lit)
		}
		if lit.Start < sp.Start || lit.End > sp.End {
			return fmt.Errorf("cast %d: literal span %v outside cast span %v", i, lit, sp)
		}

		typeSp := cast.TypeTok.Span
		if typeSp.Start < sp.Start || typeSp.End > lit.Start {
			return fmt.Errorf("cast %d: type span %v not between cast start and literal", i, typeSp)
		}

		if cast.Operand.Kind == ast.OperandSigned {
			sign := cast.Operand.Sign
			if sign.Kind != token.Plus && sign.Kind != token.Minus {
				return fmt.Errorf("cast %d: signed operand carries %v instead of a sign", i, sign.Kind)
			}
			if sign.Span.Start < typeSp.End || sign.Span.End > lit.Start {
				return fmt.Errorf("cast %d: sign span %v not between type and literal", i, sign.Span)
			}
		}
	}
	return nil
}
