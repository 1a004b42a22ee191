package bigcplx

import (
	"math/big"

	"mandel/cplx"
)

// ErrDivideByZero is cplx.ErrDivideByZero, so errors.Is matches across both
// packages.
var ErrDivideByZero = cplx.ErrDivideByZero

// Complex is an immutable value re + im*i with big.Float components. The
// component precisions come from the constructors; binary operations produce
// results at the larger operand precision, following big.Float. Use the
// constructors — the zero Complex has nil components.
type Complex struct {
	re, im *big.Float
}

// New returns re + im*i. The arguments are copied, so later mutation of the
// caller's floats does not affect the value.
func New(re, im *big.Float) Complex {
	return Complex{re: copyFloat(re), im: copyFloat(im)}
}

func Zero(prec uint) Complex {
	return Complex{re: newFloat(prec), im: newFloat(prec)}
}

func One(prec uint) Complex {
	return Complex{re: newFloat(prec).SetInt64(1), im: newFloat(prec)}
}

func I(prec uint) Complex {
	return Complex{re: newFloat(prec), im: newFloat(prec).SetInt64(1)}
}

// FromCplx widens a float64 complex value to the given precision.
func FromCplx(c cplx.Complex, prec uint) Complex {
	return Complex{
		re: newFloat(prec).SetFloat64(c.Real()),
		im: newFloat(prec).SetFloat64(c.Imag()),
	}
}

// Real returns a copy of the real component.
func (c Complex) Real() *big.Float { return copyFloat(c.re) }

// Imag returns a copy of the imaginary component.
func (c Complex) Imag() *big.Float { return copyFloat(c.im) }

// Float64 rounds back to the float64 core type.
func (c Complex) Float64() cplx.Complex {
	re, _ := c.re.Float64()
	im, _ := c.im.Float64()
	return cplx.New(re, im)
}

func (c Complex) Add(b Complex) Complex {
	return Complex{
		re: new(big.Float).Add(c.re, b.re),
		im: new(big.Float).Add(c.im, b.im),
	}
}

func (c Complex) Sub(b Complex) Complex {
	return Complex{
		re: new(big.Float).Sub(c.re, b.re),
		im: new(big.Float).Sub(c.im, b.im),
	}
}

func (c Complex) Neg() Complex {
	return Complex{
		re: new(big.Float).Neg(c.re),
		im: new(big.Float).Neg(c.im),
	}
}

func (c Complex) Conj() Complex {
	return Complex{re: copyFloat(c.re), im: new(big.Float).Neg(c.im)}
}

// Mul returns the complex product (ac-bd) + (bc+ad)i.
func (c Complex) Mul(b Complex) Complex {
	ac := new(big.Float).Mul(c.re, b.re)
	ad := new(big.Float).Mul(c.re, b.im)
	bc := new(big.Float).Mul(c.im, b.re)
	bd := new(big.Float).Mul(c.im, b.im)
	return Complex{
		re: ac.Sub(ac, bd),
		im: bc.Add(bc, ad),
	}
}

// Abs2 returns the squared modulus re^2 + im^2.
func (c Complex) Abs2() *big.Float {
	rr := new(big.Float).Mul(c.re, c.re)
	ii := new(big.Float).Mul(c.im, c.im)
	return rr.Add(rr, ii)
}

// Div returns c/b. It fails with ErrDivideByZero when b is the additive
// identity.
func (c Complex) Div(b Complex) (Complex, error) {
	// (a+bi)/(c+di) = ((ac+bd) + (bc-ad)i) / (cc+dd)
	m := b.Abs2()
	if m.Sign() == 0 {
		return Complex{}, ErrDivideByZero
	}
	ac := new(big.Float).Mul(c.re, b.re)
	ad := new(big.Float).Mul(c.re, b.im)
	bc := new(big.Float).Mul(c.im, b.re)
	bd := new(big.Float).Mul(c.im, b.im)
	re := ac.Add(ac, bd)
	im := bc.Sub(bc, ad)
	return Complex{
		re: re.Quo(re, m),
		im: im.Quo(im, m),
	}, nil
}

// Equal reports whether both components compare equal, regardless of
// precision.
func (c Complex) Equal(b Complex) bool {
	return c.re.Cmp(b.re) == 0 && c.im.Cmp(b.im) == 0
}

func (c Complex) String() string {
	return cplxString(c.re, c.im)
}

func cplxString(re, im *big.Float) string {
	s := re.Text('g', 10)
	i := im.Text('g', 10)
	if i[0] != '-' && i[0] != '+' {
		s += "+"
	}
	return s + i + "i"
}

func newFloat(prec uint) *big.Float { return new(big.Float).SetPrec(prec) }

func copyFloat(f *big.Float) *big.Float { return new(big.Float).Copy(f) }
