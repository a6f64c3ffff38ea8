package eq

// Engine construction defaults.
const (
	defaultSampleRate = 48000.0
	defaultNumBands   = 5
	defaultTauSeconds = 0.02 // 20 ms smoothing time constant

	muteFloorDB = VolumeMinDB // volume at or below this is hard silence
)

type engineConfig struct {
	sampleRate float64
	numBands   int
	tauSeconds float64
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		sampleRate: defaultSampleRate,
		numBands:   defaultNumBands,
		tauSeconds: defaultTauSeconds,
	}
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

// WithSampleRate sets the initial sample rate. Non-positive values are
// ignored; the rate can still change later via SetSampleRate.
func WithSampleRate(rate float64) Option {
	return func(cfg *engineConfig) {
		if rate > 0 {
			cfg.sampleRate = rate
		}
	}
}

// WithBandCount sets the number of parametric peak bands. The count is
// fixed for the engine's lifetime; it defines the parameter vector
// length. Values below 1 are ignored.
func WithBandCount(n int) Option {
	return func(cfg *engineConfig) {
		if n >= 1 {
			cfg.numBands = n
		}
	}
}

// WithSmoothingTime sets the smoother time constant in seconds for the
// volume and bypass crossfade controls. Non-positive values degenerate
// to instant parameter snaps.
func WithSmoothingTime(tauSeconds float64) Option {
	return func(cfg *engineConfig) {
		cfg.tauSeconds = tauSeconds
	}
}
