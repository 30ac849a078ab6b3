// Package consteval answers whether casting a numeric literal to a target
// kind is a valid compile-time constant conversion, and computes the wrapped
// value when an unchecked region makes an out-of-range integer conversion
// well-defined.
//
// The wraparound is an explicit two's-complement reinterpretation at the
// target bit width. That computation is the point of this package: it must
// be spelled out, not delegated to whatever a host-language cast happens to
// do.
package consteval
