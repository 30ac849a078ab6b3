// Package parser scans a token stream for numeric-type cast expressions.
//
// It is a pattern scanner, not a grammar parser: one forward pass over the
// significant tokens finds every `(T)lit` and `(T)±lit` where T is a
// predefined numeric type keyword, while tracking checked/unchecked regions
// so the rule knows the overflow context of each cast. Casts come out in
// source order.
package parser
