package cplx

import (
	"math"
	"strconv"
	"strings"
)

// String renders the value in the usual a+bi shape: "3+4i", "-1.5-0.25i",
// "i", "0". Non-finite components print as NaN or +-Inf.
func (c Complex) String() string {
	switch {
	case c.im == 0:
		return formatFloat(c.re)
	case c.re == 0:
		return imagString(c.im)
	}
	s := formatFloat(c.re)
	im := imagString(c.im)
	if !strings.HasPrefix(im, "-") && !strings.HasPrefix(im, "+") {
		s += "+"
	}
	return s + im
}

func imagString(im float64) string {
	switch im {
	case 1:
		return "i"
	case -1:
		return "-i"
	}
	return formatFloat(im) + "i"
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "+Inf"
	}
	if math.IsInf(f, -1) {
		return "-Inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
