//go:build fastmath

package playback

import "github.com/meko-christian/algo-approx"

// mathSqrt computes sqrt(x) using fast approximation. The result only feeds
// the level meter.
func mathSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
