package literal

import "strings"

// NumericKind is the closed set of built-in numeric kinds reachable through
// literal notation. Only equality is meaningful; there is no ordering.
type NumericKind uint8

const (
	// KindInt is the kind of an unsuffixed integer literal.
	KindInt NumericKind = iota
	// KindUInt is 'uint', suffix U.
	KindUInt
	// KindLong is 'long', suffix L.
	KindLong
	// KindULong is 'ulong', suffix UL.
	KindULong
	// KindFloat is 'float', suffix F.
	KindFloat
	// KindDouble is 'double', suffix D (or a bare real literal).
	KindDouble
	// KindDecimal is 'decimal', suffix M.
	KindDecimal
)

func (k NumericKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUInt:
		return "uint"
	case KindLong:
		return "long"
	case KindULong:
		return "ulong"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindDecimal:
		return "decimal"
	}
	return "unknown"
}

// IsIntegral reports whether the kind belongs to the integer family.
func (k NumericKind) IsIntegral() bool {
	switch k {
	case KindInt, KindUInt, KindLong, KindULong:
		return true
	default:
		return false
	}
}

// Family tags the two literal grammars.
type Family uint8

const (
	FamilyInteger Family = iota
	FamilyReal
)

func (f Family) String() string {
	if f == FamilyReal {
		return "real"
	}
	return "integer"
}

// Base tags the numeral base of an integer literal body.
type Base uint8

const (
	BaseDecimal Base = iota
	BaseHex
	// BaseBinary literals are lexed but never classified; the cast rule
	// filters them out before Classify runs.
	BaseBinary
)

func (b Base) String() string {
	switch b {
	case BaseHex:
		return "hex"
	case BaseBinary:
		return "binary"
	}
	return "decimal"
}

// suffixKind maps a normalized (lowercase) suffix within a family to its
// kind. The empty integer suffix is the unsuffixed-int case; the empty real
// suffix is a bare real literal, which C# types as double.
var integerSuffixes = map[string]NumericKind{
	"":   KindInt,
	"u":  KindUInt,
	"l":  KindLong,
	"ul": KindULong,
}

var realSuffixes = map[string]NumericKind{
	"":  KindDouble,
	"f": KindFloat,
	"d": KindDouble,
	"m": KindDecimal,
}

// canonicalSuffix is the reverse direction: the suffix the rewriter appends
// for each target kind.
var canonicalSuffix = map[NumericKind]string{
	KindInt:     "",
	KindUInt:    "U",
	KindLong:    "L",
	KindULong:   "UL",
	KindFloat:   "F",
	KindDouble:  "D",
	KindDecimal: "M",
}

// KindForSuffix resolves a literal suffix (any casing) within its family.
func KindForSuffix(family Family, suffix string) (NumericKind, bool) {
	normalized := strings.ToLower(suffix)
	var k NumericKind
	var ok bool
	if family == FamilyReal {
		k, ok = realSuffixes[normalized]
	} else {
		k, ok = integerSuffixes[normalized]
	}
	return k, ok
}

// Suffix returns the canonical suffix for the kind ("" for int).
func (k NumericKind) Suffix() string {
	return canonicalSuffix[k]
}
