package eq

import "testing"

const testBands = 5

func TestParamCount(t *testing.T) {
	if got := ParamCount(5); got != 29 {
		t.Fatalf("ParamCount(5) = %d, want 29", got)
	}
	if got := ParamCount(1); got != 13 {
		t.Fatalf("ParamCount(1) = %d, want 13", got)
	}
}

func TestDecodeIndexLayout(t *testing.T) {
	tests := []struct {
		index int
		want  Target
	}{
		{0, Target{Scope: ScopeGlobal, Kind: ParamVolume}},
		{1, Target{Scope: ScopeGlobal, Kind: ParamBypass}},
		{2, Target{Scope: ScopeGlobal, Kind: ParamReset}},
		{3, Target{Scope: ScopeHighpass, Kind: ParamEnabled}},
		{4, Target{Scope: ScopeHighpass, Kind: ParamFrequency}},
		{5, Target{Scope: ScopeHighpass, Kind: ParamQ}},
		{6, Target{Scope: ScopeLowpass, Kind: ParamEnabled}},
		{7, Target{Scope: ScopeLowpass, Kind: ParamFrequency}},
		{8, Target{Scope: ScopeLowpass, Kind: ParamQ}},
		{9, Target{Scope: ScopeBand, Kind: ParamEnabled, Band: 0}},
		{10, Target{Scope: ScopeBand, Kind: ParamGain, Band: 0}},
		{11, Target{Scope: ScopeBand, Kind: ParamFrequency, Band: 0}},
		{12, Target{Scope: ScopeBand, Kind: ParamQ, Band: 0}},
		{13, Target{Scope: ScopeBand, Kind: ParamEnabled, Band: 1}},
		{28, Target{Scope: ScopeBand, Kind: ParamQ, Band: 4}},
	}
	for _, tt := range tests {
		got, ok := DecodeIndex(tt.index, testBands)
		if !ok {
			t.Fatalf("index %d: not decoded", tt.index)
		}
		if got != tt.want {
			t.Fatalf("index %d: got %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestDecodeIndexRejectsOutOfRange(t *testing.T) {
	for _, index := range []int{-1, ParamCount(testBands), 1000} {
		if _, ok := DecodeIndex(index, testBands); ok {
			t.Fatalf("index %d decoded, want rejection", index)
		}
	}
}

func TestSchemaForAllIndices(t *testing.T) {
	seen := make(map[string]int)

	for i := range ParamCount(testBands) {
		schema, ok := SchemaFor(i, testBands)
		if !ok {
			t.Fatalf("index %d: no schema", i)
		}
		if schema.Name == "" || schema.Symbol == "" || schema.Group == "" {
			t.Fatalf("index %d: incomplete schema %+v", i, schema)
		}
		if schema.Min >= schema.Max {
			t.Fatalf("index %d: degenerate range [%v, %v]", i, schema.Min, schema.Max)
		}
		if schema.Default < schema.Min || schema.Default > schema.Max {
			t.Fatalf("index %d: default %v outside [%v, %v]", i, schema.Default, schema.Min, schema.Max)
		}
		if prev, dup := seen[schema.Symbol]; dup {
			t.Fatalf("indices %d and %d share symbol %q", prev, i, schema.Symbol)
		}
		seen[schema.Symbol] = i
	}
}

func TestSchemaForOutOfRange(t *testing.T) {
	if _, ok := SchemaFor(ParamCount(testBands), testBands); ok {
		t.Fatal("schema returned for out-of-range index")
	}
}

func TestSchemaBooleanFlags(t *testing.T) {
	booleans := []int{1, 2, 3, 6, 9, 13}
	for _, i := range booleans {
		schema, _ := SchemaFor(i, testBands)
		if !schema.Boolean {
			t.Fatalf("index %d (%s) not flagged boolean", i, schema.Symbol)
		}
	}

	schema, _ := SchemaFor(0, testBands)
	if schema.Boolean {
		t.Fatal("volume flagged boolean")
	}
}

func TestSchemaBandFrequencyDefaults(t *testing.T) {
	for band := range testBands {
		index := 9 + 4*band + 2 // band frequency slot
		schema, _ := SchemaFor(index, testBands)
		want := DefaultBandFrequency(band, testBands)
		if schema.Default != want {
			t.Fatalf("band %d frequency default = %v, want %v", band, schema.Default, want)
		}
	}
}
