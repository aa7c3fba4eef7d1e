package pathcreator

import "math"

// NormalizeAngle maps th into the half-open interval (−π, π].
//
// Both −π and π map to π. NaN and infinities produce NaN.
func NormalizeAngle(th float64) float64 {
	return th - 2*math.Pi*math.Ceil((th-math.Pi)/(2*math.Pi))
}
