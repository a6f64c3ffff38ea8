//go:build fastmath

package eq

import (
	"github.com/meko-christian/algo-approx"
)

// ln10Over20 converts dB to the natural-log exponent: 10^(x/20) = e^(x*ln10/20).
const ln10Over20 = 0.11512925464970228

// dbToGain converts a volume value in dB to linear amplitude using the
// fast exponential approximation. Values at or below the mute floor map
// to exactly zero so the volume control reaches true silence.
func dbToGain(db float64) float64 {
	if db <= muteFloorDB {
		return 0
	}

	return approx.FastExp(db * ln10Over20)
}
