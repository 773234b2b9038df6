package vmath

import "math"

// FullTurn is the number of degrees in one sweep rotation
const FullTurn = 360

// floorEpsilon absorbs float error so exact cardinal angles do not floor one degree low
const floorEpsilon = 1e-9

// BearingFromOffset converts an offset from the radar center into a compass bearing
// 0 is up, angles grow clockwise, result in [0, 360)
// Arguments to atan2 are swapped on purpose so zero lines up with the display's up direction
func BearingFromOffset(dx, dy float64) int {
	return bearingFromAtan(math.Atan2(dx, dy))
}

// bearingFromAtan applies floor(-deg(rad) + 180) and wraps into [0, 360)
func bearingFromAtan(rad float64) int {
	if math.IsNaN(rad) {
		return 0
	}
	deg := -rad*180/math.Pi + 180
	return NormalizeDegrees(int(math.Floor(deg + floorEpsilon)))
}

// NormalizeDegrees wraps an integer angle into [0, 360)
func NormalizeDegrees(deg int) int {
	deg %= FullTurn
	if deg < 0 {
		deg += FullTurn
	}
	return deg
}

// PointOnBearing returns the point at distance r from (cx, cy) along a compass bearing
// Screen coordinates: y grows downward
func PointOnBearing(cx, cy, r, bearing float64) (float64, float64) {
	rad := bearing * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}

// Between reports whether deg lies strictly inside (lo, hi)
// A window with lo > hi crosses 0 and matches nothing
func Between(deg, lo, hi int) bool {
	return deg > lo && deg < hi
}

// BetweenWrapped is Between with windows crossing 0 treated as (lo, 360) ∪ [0, hi)
func BetweenWrapped(deg, lo, hi int) bool {
	if lo <= hi {
		return Between(deg, lo, hi)
	}
	return deg > lo || deg < hi
}
