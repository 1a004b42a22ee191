package cplx

import (
	"fmt"
	"strconv"
)

// Parse reads a complex literal in the shape String produces: "3", "4i",
// "3+4i", "3-4i", "i", "-i". Spaces around signs and at either end are
// ignored. At most one real and one imaginary term may appear.
func Parse(s string) (Complex, error) {
	var z Complex
	seenRe, seenIm := false, false
	i := skipSpace(s, 0)
	if i == len(s) {
		return Complex{}, fmt.Errorf("parse %q: empty input", s)
	}
	for i < len(s) {
		sign := 1.0
		switch s[i] {
		case '+':
			i++
		case '-':
			sign = -1
			i++
		default:
			if seenRe || seenIm {
				return Complex{}, fmt.Errorf("parse %q: missing sign before term", s)
			}
		}
		i = skipSpace(s, i)
		end := floatEnd(s, i)
		hasNum := end > i
		v := 0.0
		if hasNum {
			f, err := strconv.ParseFloat(s[i:end], 64)
			if err != nil {
				return Complex{}, fmt.Errorf("parse %q: %w", s, err)
			}
			v = f
			i = end
		}
		if i < len(s) && s[i] == 'i' {
			i++
			if !hasNum {
				v = 1
			}
			if seenIm {
				return Complex{}, fmt.Errorf("parse %q: duplicate imaginary term", s)
			}
			z.im = sign * v
			seenIm = true
		} else {
			if !hasNum {
				return Complex{}, fmt.Errorf("parse %q: expected number at offset %d", s, i)
			}
			if seenRe {
				return Complex{}, fmt.Errorf("parse %q: duplicate real term", s)
			}
			z.re = sign * v
			seenRe = true
		}
		i = skipSpace(s, i)
	}
	return z, nil
}

// MustParse is Parse for compile-time-known literals; it panics on error.
func MustParse(s string) Complex {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// floatEnd returns the end of the float token starting at i: digits and a
// dot, then an optional e/E exponent with optional sign.
func floatEnd(s string, i int) int {
	start := i
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	if i == start {
		return start
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}
