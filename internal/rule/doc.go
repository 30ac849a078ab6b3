// Package rule decides whether a numeric-literal cast can become a suffixed
// literal.
//
// Evaluate runs an ordered chain of guards over one cast expression and
// returns a tagged verdict instead of a bare bool, so the distinct reasons
// for skipping (wrong shape, redundant cast, invalid constant) stay
// distinguishable in tests and in tooling output.
package rule
