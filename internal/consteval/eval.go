package consteval

import (
	"math"
	"strconv"

	"litcast/internal/literal"
)

// Result is the constant-evaluation answer for one cast.
type Result struct {
	// Valid reports that the conversion has a compile-time constant value.
	Valid bool
	// Wrapped reports that the value only exists under unchecked wraparound.
	// Only set together with Valid.
	Wrapped bool
	// Text is the decimal rendering of the wrapped value, sign included.
	// Empty unless Wrapped.
	Text string
}

func invalid() Result { return Result{} }

func valid() Result { return Result{Valid: true} }

func wrapped(text string) Result {
	return Result{Valid: true, Wrapped: true, Text: text}
}

// Decimal constants cover ±(2^96 - 1) scaled by a power of ten; an integral
// literal fits iff its magnitude stays at or below 2^96 - 1.
const maxDecimalMagnitude = 79228162514264337593543950335.0

// EvalCast evaluates `(target)lit` or `(target)-lit`. negative is the
// literal's unary minus, if any; unchecked is the overflow context at the
// cast site.
func EvalCast(lit literal.Literal, negative bool, target literal.NumericKind, unchecked bool) Result {
	if target.IsIntegral() {
		return evalIntegral(lit, negative, target, unchecked)
	}
	return evalReal(lit, negative, target)
}

func evalIntegral(lit literal.Literal, negative bool, target literal.NumericKind, unchecked bool) Result {
	if lit.Family != literal.FamilyInteger {
		return invalid()
	}
	// base 0 follows the 0x prefix kept in Digits
	mag, err := strconv.ParseUint(lit.Digits, 0, 64)
	if err != nil {
		// magnitude beyond 64 bits has no integral type at all
		return invalid()
	}
	if fitsIntegral(mag, negative, target) {
		return valid()
	}
	if !unchecked {
		return invalid()
	}
	return wrapped(truncate(mag, negative, target))
}

// fitsIntegral reports whether the mathematical value ±mag is inside the
// target's range.
func fitsIntegral(mag uint64, negative bool, target literal.NumericKind) bool {
	if negative {
		switch target {
		case literal.KindInt:
			return mag <= 1<<31
		case literal.KindLong:
			return mag <= 1<<63
		case literal.KindUInt, literal.KindULong:
			return mag == 0
		}
		return false
	}
	switch target {
	case literal.KindInt:
		return mag <= math.MaxInt32
	case literal.KindUInt:
		return mag <= math.MaxUint32
	case literal.KindLong:
		return mag <= math.MaxInt64
	case literal.KindULong:
		return true
	}
	return false
}

// truncate reinterprets ±mag in two's complement at the target's bit width
// and renders the resulting value. Unsigned targets render the masked bits
// as-is; signed targets render the signed reading, so a wrapped value can
// come out negative (its sign then belongs to the rendered text, not to the
// original operand).
func truncate(mag uint64, negative bool, target literal.NumericKind) string {
	raw := mag
	if negative {
		raw = ^mag + 1
	}
	switch target {
	case literal.KindInt:
		return strconv.FormatInt(int64(int32(raw&math.MaxUint32)), 10)
	case literal.KindUInt:
		return strconv.FormatUint(raw&math.MaxUint32, 10)
	case literal.KindLong:
		return strconv.FormatInt(int64(raw), 10)
	case literal.KindULong:
		return strconv.FormatUint(raw, 10)
	}
	panic("consteval: truncate on non-integral target " + target.String())
}

func evalReal(lit literal.Literal, negative bool, target literal.NumericKind) Result {
	if lit.Base != literal.BaseDecimal {
		return invalid()
	}
	// sign never changes magnitude checks for reals
	_ = negative
	v, err := strconv.ParseFloat(lit.Digits, 64)
	if err != nil || math.IsInf(v, 0) {
		return invalid()
	}
	switch target {
	case literal.KindFloat:
		if v > math.MaxFloat32 {
			return invalid()
		}
	case literal.KindDecimal:
		if v > maxDecimalMagnitude {
			return invalid()
		}
	case literal.KindDouble:
		// ParseFloat already enforced the double range
	default:
		return invalid()
	}
	return valid()
}
