package eq

import "fmt"

// ParamScope identifies which part of the engine a parameter addresses.
type ParamScope int

const (
	// ScopeGlobal addresses volume, bypass, and reset.
	ScopeGlobal ParamScope = iota
	// ScopeHighpass addresses the highpass unit.
	ScopeHighpass
	// ScopeLowpass addresses the lowpass unit.
	ScopeLowpass
	// ScopeBand addresses one peak band.
	ScopeBand
)

// ParamKind identifies the logical control within a scope.
type ParamKind int

const (
	// ParamVolume is the global output gain in dB.
	ParamVolume ParamKind = iota
	// ParamBypass toggles the dry/wet crossfade target.
	ParamBypass
	// ParamReset snaps all smoothers to their targets when raised.
	ParamReset
	// ParamEnabled toggles a unit in or out of the signal path.
	ParamEnabled
	// ParamGain is a peak band's gain in dB.
	ParamGain
	// ParamFrequency is a unit's cutoff/center frequency in Hz.
	ParamFrequency
	// ParamQ is a unit's quality factor.
	ParamQ
)

// Target is the decoded form of a flat parameter index: which scope it
// addresses, which control within that scope, and — for band scope — the
// band index. Decoding once and switching on the tagged result keeps the
// external index numbering out of the engine logic.
type Target struct {
	Scope ParamScope
	Kind  ParamKind
	Band  int
}

// Flat parameter layout. The numbering is part of the host contract and
// never changes:
//
//	0             volume (dB)
//	1             bypass (bool)
//	2             reset trigger (bool)
//	3, 4, 5       highpass enabled, frequency, Q
//	6, 7, 8       lowpass enabled, frequency, Q
//	9+4i ... 12+4i  band i enabled, gain, frequency, Q
const (
	idxVolume = 0
	idxBypass = 1
	idxReset  = 2

	idxHighpassBase = 3
	idxLowpassBase  = 6
	idxBandBase     = 9

	paramsPerUnit = 3 // enabled, frequency, Q
	paramsPerBand = 4 // enabled, gain, frequency, Q
)

// ParamCount returns the length of the parameter vector for a bank with
// numBands peak bands.
func ParamCount(numBands int) int {
	return idxBandBase + paramsPerBand*numBands
}

// DecodeIndex maps a flat parameter index to its tagged target. It
// returns ok=false for indices outside the declared count; callers treat
// those as no-ops since hosts may send malformed indices.
func DecodeIndex(index, numBands int) (Target, bool) {
	switch index {
	case idxVolume:
		return Target{Scope: ScopeGlobal, Kind: ParamVolume}, true
	case idxBypass:
		return Target{Scope: ScopeGlobal, Kind: ParamBypass}, true
	case idxReset:
		return Target{Scope: ScopeGlobal, Kind: ParamReset}, true
	}

	if index >= idxHighpassBase && index < idxHighpassBase+paramsPerUnit {
		return Target{Scope: ScopeHighpass, Kind: unitKind(index - idxHighpassBase)}, true
	}

	if index >= idxLowpassBase && index < idxLowpassBase+paramsPerUnit {
		return Target{Scope: ScopeLowpass, Kind: unitKind(index - idxLowpassBase)}, true
	}

	if index >= idxBandBase && index < ParamCount(numBands) {
		offset := index - idxBandBase
		band := offset / paramsPerBand

		return Target{Scope: ScopeBand, Kind: bandKind(offset % paramsPerBand), Band: band}, true
	}

	return Target{}, false
}

func unitKind(offset int) ParamKind {
	switch offset {
	case 0:
		return ParamEnabled
	case 1:
		return ParamFrequency
	default:
		return ParamQ
	}
}

func bandKind(offset int) ParamKind {
	switch offset {
	case 0:
		return ParamEnabled
	case 1:
		return ParamGain
	case 2:
		return ParamFrequency
	default:
		return ParamQ
	}
}

// Schema is the static declaration of one parameter: its display name,
// host symbol, value range, default, unit label, and group. Pure data,
// fixed at initialization.
type Schema struct {
	Name    string
	Symbol  string
	Unit    string
	Group   string
	Min     float64
	Max     float64
	Default float64
	Boolean bool
}

// Declared value ranges. One consistent policy per logical control:
// values are clamped into these ranges on every write.
const (
	VolumeMinDB = -90.0
	VolumeMaxDB = 30.0

	GainMinDB = -24.0
	GainMaxDB = 24.0

	FreqMinHz = 20.0
	FreqMaxHz = 20000.0
)

// SchemaFor returns the static declaration for a flat parameter index in
// a bank with numBands peak bands. It is a pure function of its inputs;
// ok=false for out-of-range indices.
func SchemaFor(index, numBands int) (Schema, bool) {
	target, ok := DecodeIndex(index, numBands)
	if !ok {
		return Schema{}, false
	}

	switch target.Scope {
	case ScopeGlobal:
		return globalSchema(target.Kind), true
	case ScopeHighpass:
		return unitSchema(target.Kind, "High-Pass", "hp", defaultHighpassHz), true
	case ScopeLowpass:
		return unitSchema(target.Kind, "Low-Pass", "lp", defaultLowpassHz), true
	default:
		return bandSchema(target.Kind, target.Band, numBands), true
	}
}

func globalSchema(kind ParamKind) Schema {
	switch kind {
	case ParamVolume:
		return Schema{
			Name:   "Volume",
			Symbol: "volume",
			Unit:   "dB",
			Group:  "Global",
			Min:    VolumeMinDB,
			Max:    VolumeMaxDB,
		}
	case ParamBypass:
		return Schema{
			Name:    "Bypass",
			Symbol:  "bypass",
			Group:   "Global",
			Max:     1,
			Boolean: true,
		}
	default: // ParamReset
		return Schema{
			Name:    "Reset",
			Symbol:  "reset",
			Group:   "Global",
			Max:     1,
			Boolean: true,
		}
	}
}

func unitSchema(kind ParamKind, group, symbol string, defaultFreq float64) Schema {
	switch kind {
	case ParamEnabled:
		return Schema{
			Name:    group + " Enabled",
			Symbol:  symbol + "_enabled",
			Group:   group,
			Max:     1,
			Default: 1,
			Boolean: true,
		}
	case ParamFrequency:
		return Schema{
			Name:    group + " Frequency",
			Symbol:  symbol + "_freq",
			Unit:    "Hz",
			Group:   group,
			Min:     FreqMinHz,
			Max:     FreqMaxHz,
			Default: defaultFreq,
		}
	default: // ParamQ
		return Schema{
			Name:    group + " Q",
			Symbol:  symbol + "_q",
			Group:   group,
			Min:     minQ,
			Max:     maxQ,
			Default: defaultQValue,
		}
	}
}

func bandSchema(kind ParamKind, band, numBands int) Schema {
	group := fmt.Sprintf("Band %d", band+1)
	symbol := fmt.Sprintf("band%d", band+1)

	switch kind {
	case ParamEnabled:
		return Schema{
			Name:    group + " Enabled",
			Symbol:  symbol + "_enabled",
			Group:   group,
			Max:     1,
			Default: 1,
			Boolean: true,
		}
	case ParamGain:
		return Schema{
			Name:   group + " Gain",
			Symbol: symbol + "_gain",
			Unit:   "dB",
			Group:  group,
			Min:    GainMinDB,
			Max:    GainMaxDB,
		}
	case ParamFrequency:
		return Schema{
			Name:    group + " Frequency",
			Symbol:  symbol + "_freq",
			Unit:    "Hz",
			Group:   group,
			Min:     FreqMinHz,
			Max:     FreqMaxHz,
			Default: DefaultBandFrequency(band, numBands),
		}
	default: // ParamQ
		return Schema{
			Name:    group + " Q",
			Symbol:  symbol + "_q",
			Group:   group,
			Min:     minQ,
			Max:     maxQ,
			Default: defaultQValue,
		}
	}
}
