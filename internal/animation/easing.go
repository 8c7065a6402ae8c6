package animation

import (
	"time"

	"github.com/osse101/SlotReveal_Go/internal/utils"
)

// Easing maps linear progress in [0,1] to eased progress in [0,1]
type Easing func(t float64) float64

// EaseOutCubic decelerates towards the end: 1 - (1-t)^3
func EaseOutCubic(t float64) float64 {
	t = utils.Clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// Position interpolates from start towards zero using the eased progress
func Position(start float64, eased float64) float64 {
	return start - start*eased
}

// Progress returns elapsed/duration clamped to [0,1]. A non-positive duration is complete.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return utils.Clamp01(float64(elapsed) / float64(duration))
}
