package token

var keywords = map[string]Kind{
	"sbyte":     KwSbyte,
	"byte":      KwByte,
	"short":     KwShort,
	"ushort":    KwUshort,
	"int":       KwInt,
	"uint":      KwUint,
	"long":      KwLong,
	"ulong":     KwUlong,
	"float":     KwFloat,
	"double":    KwDouble,
	"decimal":   KwDecimal,
	"char":      KwChar,
	"bool":      KwBool,
	"string":    KwString,
	"object":    KwObject,
	"checked":   KwChecked,
	"unchecked": KwUnchecked,
	"true":      KwTrue,
	"false":     KwFalse,
}

// LookupKeyword returns the keyword kind for ident, if any.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsPredefinedNumericType reports whether k is one of the built-in numeric
// type keywords. Note this covers all numeric keywords, including the ones
// (int, short, byte, ...) that have no literal suffix notation.
func (k Kind) IsPredefinedNumericType() bool {
	switch k {
	case KwSbyte, KwByte, KwShort, KwUshort, KwInt, KwUint, KwLong, KwUlong,
		KwFloat, KwDouble, KwDecimal:
		return true
	default:
		return false
	}
}

// IsPredefinedType reports whether k is any built-in type keyword.
func (k Kind) IsPredefinedType() bool {
	switch k {
	case KwChar, KwBool, KwString, KwObject:
		return true
	default:
		return k.IsPredefinedNumericType()
	}
}
