package vmath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Transform is a 2D affine matrix in CSS order: matrix(a, b, c, d, e, f)
// None marks an element with no transform applied
type Transform struct {
	A, B, C, D, E, F float64
	None             bool
}

// NoTransform is the state of an element before its rotation starts
var NoTransform = Transform{None: true}

// Rotation returns the matrix a renderer reports for rotate(deg)
func Rotation(deg float64) Transform {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Transform{A: cos, B: sin, C: -sin, D: cos}
}

// BearingFromTransform recovers the compass bearing of a rotated element
// Uses the two leading matrix components, an absent transform yields 0
func BearingFromTransform(t Transform) int {
	if t.None {
		return 0
	}
	return bearingFromAtan(math.Atan2(t.A, t.B))
}

// ParseTransform reads a computed transform value
// Accepts "none", "matrix(...)" and "matrix3d(...)"; anything malformed becomes NoTransform
func ParseTransform(s string) Transform {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return NoTransform
	}

	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return NoTransform
	}

	var want int
	switch strings.TrimSpace(s[:open]) {
	case "matrix":
		want = 6
	case "matrix3d":
		want = 16
	default:
		return NoTransform
	}

	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != want {
		return NoTransform
	}
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return NoTransform
		}
		vals[i] = v
	}

	if want == 16 {
		// matrix3d is column-major: a, b sit at 0, 1 and c, d at 4, 5, translation at 12, 13
		return Transform{A: vals[0], B: vals[1], C: vals[4], D: vals[5], E: vals[12], F: vals[13]}
	}
	return Transform{A: vals[0], B: vals[1], C: vals[2], D: vals[3], E: vals[4], F: vals[5]}
}

// String renders the transform the way a computed style would
func (t Transform) String() string {
	if t.None {
		return "none"
	}
	return fmt.Sprintf("matrix(%s, %s, %s, %s, %s, %s)",
		fmtComponent(t.A), fmtComponent(t.B), fmtComponent(t.C),
		fmtComponent(t.D), fmtComponent(t.E), fmtComponent(t.F))
}

func fmtComponent(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
