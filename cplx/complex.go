package cplx

import (
	"errors"
	"math"
)

var (
	ErrDivideByZero  = errors.New("division by zero")
	ErrNegativePower = errors.New("negative power")
)

// Complex is an immutable value re + im*i. Operations return new values and
// never mutate their operands, so values may be shared freely across
// goroutines. The zero Complex is the additive identity.
type Complex struct {
	re, im float64
}

// Additive identity, multiplicative identity, and the value whose square
// is -1. These are never mutated.
var (
	Zero = Complex{}
	One  = Complex{re: 1}
	I    = Complex{im: 1}
)

func New(re, im float64) Complex { return Complex{re: re, im: im} }

func FromReal(re float64) Complex { return Complex{re: re} }

// Rotation returns the unit-modulus value cos(radians) + i sin(radians).
// Multiplying by it rotates a value counterclockwise by the given angle.
func Rotation(radians float64) Complex {
	return Complex{re: math.Cos(radians), im: math.Sin(radians)}
}

func (c Complex) Real() float64 { return c.re }

func (c Complex) Imag() float64 { return c.im }

func (c Complex) Add(b Complex) Complex { return Complex{re: c.re + b.re, im: c.im + b.im} }

func (c Complex) Neg() Complex { return Complex{re: -c.re, im: -c.im} }

func (c Complex) Sub(b Complex) Complex { return Complex{re: c.re - b.re, im: c.im - b.im} }

// Conj returns the conjugate, so c.Mul(c.Conj()) equals FromReal(c.Abs2()).
func (c Complex) Conj() Complex { return Complex{re: c.re, im: -c.im} }

// Mul returns the complex product (ac-bd) + (bc+ad)i.
func (c Complex) Mul(b Complex) Complex {
	return Complex{
		re: c.re*b.re - c.im*b.im,
		im: c.re*b.im + c.im*b.re,
	}
}

// Scale multiplies both components by the real scalar lambda.
func (c Complex) Scale(lambda float64) Complex {
	return Complex{re: lambda * c.re, im: lambda * c.im}
}

// Abs2 returns the squared modulus re^2 + im^2. Escape tests compare this
// against a squared bailout radius to avoid the square root.
func (c Complex) Abs2() float64 { return c.re*c.re + c.im*c.im }

// Abs returns the modulus (distance to zero).
func (c Complex) Abs() float64 { return math.Sqrt(c.Abs2()) }

// Inv returns the multiplicative inverse, conj(c)/|c|^2. It fails with
// ErrDivideByZero when c is the additive identity.
func (c Complex) Inv() (Complex, error) {
	if c == Zero {
		return Complex{}, ErrDivideByZero
	}
	m := c.Abs2()
	return Complex{re: c.re / m, im: -c.im / m}, nil
}

// Div returns c/b. It fails with ErrDivideByZero when b is the additive
// identity.
func (c Complex) Div(b Complex) (Complex, error) {
	inv, err := b.Inv()
	if err != nil {
		return Complex{}, err
	}
	return c.Mul(inv), nil
}

// Pow raises c to a non-negative integer power by square-and-multiply,
// using O(log p) multiplications. Pow(0) is One for every value, including
// Zero. Negative exponents fail with ErrNegativePower.
func (c Complex) Pow(p int) (Complex, error) {
	if p < 0 {
		return Complex{}, ErrNegativePower
	}
	base := c
	out := One
	for p > 0 {
		if p&1 == 1 {
			out = out.Mul(base)
		}
		p >>= 1
		if p == 0 {
			break
		}
		base = base.Mul(base)
	}
	return out, nil
}

// Equal reports whether both components compare equal. Comparison is exact;
// callers needing tolerance should compare c.Sub(b).Abs() themselves.
func (c Complex) Equal(b Complex) bool { return c.re == b.re && c.im == b.im }

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// Hash folds both components' IEEE-754 bits FNV-style. Values equal under
// Equal hash identically; negative zero is normalized so -0 and 0 collide.
func (c Complex) Hash() uint64 {
	h := uint64(fnvOffset)
	h = (h ^ hashBits(c.re)) * fnvPrime
	h = (h ^ hashBits(c.im)) * fnvPrime
	return h
}

func hashBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}
