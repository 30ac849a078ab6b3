package parser

import (
	"litcast/internal/source"
	"litcast/internal/token"
)

// region is one checked/unchecked block or expression. delim records which
// closer ends it; depth is the paren or brace depth right after its opener.
type region struct {
	unchecked bool
	delim     token.Kind // token.LParen or token.LBrace
	depth     int
	open      source.Span
}

// regionStack tracks the overflow-checking context. The innermost region
// wins; outside all regions the context comes from the scan options.
type regionStack struct {
	regions    []region
	parenDepth int
	braceDepth int
	base       bool // context when the stack is empty
}

func (rs *regionStack) unchecked() bool {
	if n := len(rs.regions); n > 0 {
		return rs.regions[n-1].unchecked
	}
	return rs.base
}

// openParen bumps the paren depth; kw is the checked/unchecked keyword
// directly before the paren, or token.Invalid.
func (rs *regionStack) openParen(kw token.Kind, sp source.Span) {
	rs.parenDepth++
	rs.push(kw, token.LParen, rs.parenDepth, sp)
}

func (rs *regionStack) openBrace(kw token.Kind, sp source.Span) {
	rs.braceDepth++
	rs.push(kw, token.LBrace, rs.braceDepth, sp)
}

func (rs *regionStack) push(kw, delim token.Kind, depth int, sp source.Span) {
	if kw != token.KwChecked && kw != token.KwUnchecked {
		return
	}
	rs.regions = append(rs.regions, region{
		unchecked: kw == token.KwUnchecked,
		delim:     delim,
		depth:     depth,
		open:      sp,
	})
}

// closeParen pops the paren depth and any region it ends. It reports false
// on a closer with no matching opener.
func (rs *regionStack) closeParen() bool {
	if rs.parenDepth == 0 {
		return false
	}
	rs.pop(token.LParen, rs.parenDepth)
	rs.parenDepth--
	return true
}

func (rs *regionStack) closeBrace() bool {
	if rs.braceDepth == 0 {
		return false
	}
	rs.pop(token.LBrace, rs.braceDepth)
	rs.braceDepth--
	return true
}

func (rs *regionStack) pop(delim token.Kind, depth int) {
	n := len(rs.regions)
	if n == 0 {
		return
	}
	top := rs.regions[n-1]
	if top.delim == delim && top.depth == depth {
		rs.regions = rs.regions[:n-1]
	}
}

// unclosed returns the regions still open, innermost last.
func (rs *regionStack) unclosed() []region {
	return rs.regions
}
