// Package ast holds the tiny expression model the cast scanner produces.
//
// There is no full C# syntax tree here. The scanner recognizes exactly one
// shape, a cast of a numeric literal onto a predefined numeric type, and
// records it together with the checked/unchecked context it appeared in.
// Everything else in the source is token noise the rule never revisits.
package ast
