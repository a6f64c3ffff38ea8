//go:build !fastmath

package eq

import "math"

// dbToGain converts a volume value in dB to linear amplitude. Values at
// or below the mute floor map to exactly zero so the volume control
// reaches true silence.
func dbToGain(db float64) float64 {
	if db <= muteFloorDB {
		return 0
	}

	return math.Pow(10, db/20)
}
