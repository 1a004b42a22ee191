// Package cplx implements an immutable complex-number value type for
// escape-time iteration (z <- z^2 + c).
//
// The package is intentionally self-contained and avoids external
// dependencies so it stays usable on constrained targets.
package cplx
