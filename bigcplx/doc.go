// Package bigcplx implements an arbitrary-precision complex value over
// math/big for deep-zoom arithmetic, where float64 mantissas are too short
// to separate neighboring points of the plane.
//
// It mirrors the cplx API: values are immutable, operations allocate their
// results, and division by the additive identity fails explicitly.
package bigcplx
