package eq

import "github.com/cwbudde/algo-eq/dsp/core"

// Processor is the host-facing contract of the DSP core, mirroring the
// callbacks a plugin host drives. SchemaFor is called once per index at
// setup. ParameterValue and SetParameterValue may be called at any time,
// including from the real-time thread. Activate and SetSampleRate are
// only called while processing is stopped. Process is the real-time
// audio callback.
type Processor interface {
	SchemaFor(index int) (Schema, bool)
	ParameterValue(index int) float64
	SetParameterValue(index int, value float64)
	Activate()
	SetSampleRate(rate float64)
	Process(inputs, outputs [][]float64, frames int)
}

// Engine owns the parameter vector, the filter bank, and the smoothers,
// and implements [Processor]. The core is single-channel: Process reads
// channel 0 of the inputs and writes channel 0 of the outputs; hosts
// wanting independent stereo run one engine per channel.
//
// Concurrency contract: parameter slots and smoother targets are plain
// float64 writes. A value written from a control thread becomes visible
// to the audio thread within one block, which is the consistency the
// host protocol requires; no locks or atomics sit on the hot path.
type Engine struct {
	sampleRate float64
	params     []float64
	bank       *Bank

	volume Smoother // linear output gain
	wet    Smoother // bypass crossfade: 1 = processed, 0 = dry
}

var _ Processor = (*Engine)(nil)

// New builds an engine with all parameters at their schema defaults and
// the smoothers pre-settled, so the first processed block is already in
// the default state.
func New(opts ...Option) *Engine {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	e := &Engine{
		sampleRate: cfg.sampleRate,
		params:     make([]float64, ParamCount(cfg.numBands)),
		bank:       NewBank(cfg.numBands, cfg.sampleRate),
		volume:     NewSmoother(cfg.tauSeconds, cfg.sampleRate),
		wet:        NewSmoother(cfg.tauSeconds, cfg.sampleRate),
	}

	for i := range e.params {
		schema, _ := SchemaFor(i, e.bank.NumBands())
		e.params[i] = schema.Default
		e.apply(i, schema.Default)
	}

	e.volume.ClearToTarget()
	e.wet.ClearToTarget()

	return e
}

// SchemaFor returns the static declaration for a parameter index;
// ok=false for indices outside the declared count.
func (e *Engine) SchemaFor(index int) (Schema, bool) {
	return SchemaFor(index, e.bank.NumBands())
}

// ParamCount returns the length of the parameter vector.
func (e *Engine) ParamCount() int {
	return len(e.params)
}

// NumBands returns the number of parametric peak bands.
func (e *Engine) NumBands() int {
	return e.bank.NumBands()
}

// Bank exposes the filter bank for inspection (response rendering,
// tests). Mutations go through SetParameterValue.
func (e *Engine) Bank() *Bank {
	return e.bank
}

// ParameterValue returns the stored value for index, or 0 for indices
// outside the declared count.
func (e *Engine) ParameterValue(index int) float64 {
	if index < 0 || index >= len(e.params) {
		return 0
	}

	return e.params[index]
}

// SetParameterValue stores value for index and updates the affected
// filter unit or smoother target. Out-of-range indices are ignored;
// values are clamped into the declared schema range before use, so a
// malformed write degrades to the nearest valid state instead of
// destabilizing a filter. Safe to call from the real-time thread.
func (e *Engine) SetParameterValue(index int, value float64) {
	schema, ok := e.SchemaFor(index)
	if !ok {
		return
	}

	value = core.Clamp(value, schema.Min, schema.Max)
	e.params[index] = value
	e.apply(index, value)
}

func (e *Engine) apply(index int, value float64) {
	target, ok := DecodeIndex(index, e.bank.NumBands())
	if !ok {
		return
	}

	if target.Scope == ScopeGlobal {
		e.applyGlobal(target.Kind, value)
		return
	}

	unit := e.unitFor(target)

	switch target.Kind {
	case ParamEnabled:
		unit.SetEnabled(value >= 0.5)
	case ParamGain:
		unit.SetPeakGain(value)
	case ParamFrequency:
		unit.SetFrequency(value)
	case ParamQ:
		unit.SetQ(value)
	case ParamVolume, ParamBypass, ParamReset:
		// Global kinds never reach unit scope.
	}
}

func (e *Engine) applyGlobal(kind ParamKind, value float64) {
	switch kind {
	case ParamVolume:
		e.volume.SetTarget(dbToGain(value))
	case ParamBypass:
		if value >= 0.5 {
			e.wet.SetTarget(0)
		} else {
			e.wet.SetTarget(1)
		}
	case ParamReset:
		if value >= 0.5 {
			// Cheap state write, no reallocation: safe from the
			// real-time thread.
			e.volume.ClearToTarget()
			e.wet.ClearToTarget()
		}
	case ParamEnabled, ParamGain, ParamFrequency, ParamQ:
		// Unit kinds never reach global scope.
	}
}

func (e *Engine) unitFor(target Target) *Unit {
	switch target.Scope {
	case ScopeHighpass:
		return e.bank.Highpass()
	case ScopeLowpass:
		return e.bank.Lowpass()
	default:
		return e.bank.Band(target.Band)
	}
}

// Activate snaps every smoother to its current target so a transport
// restart does not ramp in from stale values. The host guarantees no
// concurrent Process call.
func (e *Engine) Activate() {
	e.volume.ClearToTarget()
	e.wet.ClearToTarget()
}

// SetSampleRate re-derives every filter unit's coefficients from the
// stored raw-Hz parameter values and recomputes the smoother decay
// coefficients. The host guarantees no concurrent Process call.
func (e *Engine) SetSampleRate(rate float64) {
	if rate <= 0 {
		return
	}

	e.sampleRate = rate
	e.bank.SetSampleRate(rate)
	e.volume.SetSampleRate(rate)
	e.wet.SetSampleRate(rate)
}

// SampleRate returns the current sample rate.
func (e *Engine) SampleRate() float64 {
	return e.sampleRate
}

// Process is the real-time entry point. For each of the frames samples
// it pulls the next smoothed volume gain and bypass crossfade, runs the
// input through the filter bank, and writes
//
//	out = wet*filtered*gain + (1-wet)*dry
//
// to the output. Buffers are borrowed from the host and only valid for
// the duration of the call. No allocation, locks, or I/O occur here.
func (e *Engine) Process(inputs, outputs [][]float64, frames int) {
	if len(inputs) == 0 || len(outputs) == 0 {
		return
	}

	in := inputs[0]
	out := outputs[0]

	if frames > len(in) {
		frames = len(in)
	}

	if frames > len(out) {
		frames = len(out)
	}

	for i := 0; i < frames; i++ {
		dry := in[i]
		filtered := e.bank.ProcessSample(dry)
		gain := e.volume.Next()
		wet := e.wet.Next()

		out[i] = wet*(filtered*gain) + (1-wet)*dry
	}

	e.bank.FlushDenormals()
}
