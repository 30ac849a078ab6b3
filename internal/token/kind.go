package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous or unrecognized token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal (decimal, hex, or binary),
	// including any U/L suffix.
	IntLit
	// RealLit represents a real literal, including any F/D/M suffix.
	RealLit
	// StringLit represents a string literal (regular or verbatim).
	StringLit
	// CharLit represents a character literal.
	CharLit

	// KwSbyte represents the 'sbyte' keyword.
	KwSbyte // sbyte
	// KwByte represents the 'byte' keyword.
	KwByte // byte
	// KwShort represents the 'short' keyword.
	KwShort // short
	// KwUshort represents the 'ushort' keyword.
	KwUshort // ushort
	// KwInt represents the 'int' keyword.
	KwInt // int
	// KwUint represents the 'uint' keyword.
	KwUint // uint
	// KwLong represents the 'long' keyword.
	KwLong // long
	// KwUlong represents the 'ulong' keyword.
	KwUlong // ulong
	// KwFloat represents the 'float' keyword.
	KwFloat // float
	// KwDouble represents the 'double' keyword.
	KwDouble // double
	// KwDecimal represents the 'decimal' keyword.
	KwDecimal // decimal
	// KwChar represents the 'char' keyword.
	KwChar // char
	// KwBool represents the 'bool' keyword.
	KwBool // bool
	// KwString represents the 'string' keyword.
	KwString // string
	// KwObject represents the 'object' keyword.
	KwObject // object
	// KwChecked represents the 'checked' keyword.
	KwChecked // checked
	// KwUnchecked represents the 'unchecked' keyword.
	KwUnchecked // unchecked
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Amp represents the amp operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Caret represents the caret operator token.
	Caret // ^
	// Tilde represents the tilde operator token.
	Tilde // ~
	// Bang represents the bang operator token.
	Bang // !
	// Assign represents the assign operator token.
	Assign // =
	// Lt represents the lt operator token.
	Lt // <
	// Gt represents the gt operator token.
	Gt // >
	// Question represents the question operator token.
	Question // ?
	// Colon represents the colon operator token.
	Colon // :
	// Semicolon represents the semicolon operator token.
	Semicolon // ;
	// Comma represents the comma operator token.
	Comma // ,
	// Dot represents the dot operator token.
	Dot // .
	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// MinusMinus represents the decrement operator token.
	MinusMinus // --
	// FatArrow represents the lambda arrow operator token.
	FatArrow // =>
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// At represents the at token (verbatim identifiers).
	At // @
)

var kindNames = map[Kind]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	IntLit:    "IntLit",
	RealLit:   "RealLit",
	StringLit: "StringLit",
	CharLit:   "CharLit",

	KwSbyte:     "sbyte",
	KwByte:      "byte",
	KwShort:     "short",
	KwUshort:    "ushort",
	KwInt:       "int",
	KwUint:      "uint",
	KwLong:      "long",
	KwUlong:     "ulong",
	KwFloat:     "float",
	KwDouble:    "double",
	KwDecimal:   "decimal",
	KwChar:      "char",
	KwBool:      "bool",
	KwString:    "string",
	KwObject:    "object",
	KwChecked:   "checked",
	KwUnchecked: "unchecked",
	KwTrue:      "true",
	KwFalse:     "false",

	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	Amp:        "&",
	Pipe:       "|",
	Caret:      "^",
	Tilde:      "~",
	Bang:       "!",
	Assign:     "=",
	Lt:         "<",
	Gt:         ">",
	Question:   "?",
	Colon:      ":",
	Semicolon:  ";",
	Comma:      ",",
	Dot:        ".",
	PlusPlus:   "++",
	MinusMinus: "--",
	FatArrow:   "=>",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	LBracket:   "[",
	RBracket:   "]",
	At:         "@",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
