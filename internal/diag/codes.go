package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Ranges are grouped by producing phase:
// 1000s lexical, 2000s syntactic (cast scanning), 3000s cast rule, 4000s I/O.
type Code uint16

const (
	// UnknownCode is the zero value fallback.
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Сканер выражений
	SynInfo                  Code = 2000
	SynUnbalancedDelimiter   Code = 2001
	SynUnterminatedUnchecked Code = 2002

	// Правило приведения литералов
	CastInfo       Code = 3000
	CastUseLiteral Code = 3001

	// Ввод-вывод
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown diagnostic",
	LexInfo:                     "lexical information",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",
	SynInfo:                     "scanner information",
	SynUnbalancedDelimiter:      "unbalanced delimiter",
	SynUnterminatedUnchecked:    "unterminated checked/unchecked region",
	CastInfo:                    "cast rule information",
	CastUseLiteral:              "use literal notation instead of casting",
	IOInfo:                      "input/output information",
	IOLoadFileError:             "failed to load file",
}

// ID returns the short stable identifier used in CLI output and fix IDs.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CST%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable description for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
