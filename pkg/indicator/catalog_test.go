package indicator

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestDefaultCatalog_Descriptions(t *testing.T) {
	catalog := DefaultCatalog()
	descriptions := catalog.Descriptions()
	if len(descriptions) != len(builtins()) || len(descriptions) != 48 {
		t.Errorf("expected 48 indicators, got %d", len(descriptions))
	}
	if !slices.IsSortedFunc(descriptions, func(a, b Description) int { return strings.Compare(a.Name, b.Name) }) {
		t.Error("descriptions should be sorted by name")
	}
	for _, d := range descriptions {
		if d.DisplayName == "" || len(d.Categories) == 0 {
			t.Errorf("%s: missing display name or category", d.Name)
		}
		for _, p := range d.Parameters {
			if p.Default < p.Min || p.Default > p.Max {
				t.Errorf("%s.%s: default %v outside [%v, %v]", d.Name, p.Name, p.Default, p.Min, p.Max)
			}
		}
	}
}

func TestCatalog_Get(t *testing.T) {
	catalog := DefaultCatalog()
	d, err := catalog.Get("MACD")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if d.DisplayName != "MACD" || !d.HasCategory(CategoryMomentum) {
		t.Errorf("unexpected description %+v", d)
	}
	p, ok := d.Parameter("MovingAverageType")
	if !ok || p.Kind != EnumParameter || !slices.Equal(p.Options, MovingAverageTypeNames()) {
		t.Errorf("unexpected MovingAverageType parameter %+v", p)
	}
	if signal, _ := d.Parameter("SignalPeriods"); signal.Description != "The number of look-back periods for the signal period." {
		t.Errorf("unexpected signal description %q", signal.Description)
	}

	if _, err := catalog.Get("Nope"); !errors.Is(err, ErrUnknownIndicator) {
		t.Errorf("expected ErrUnknownIndicator, got %v", err)
	}
	if _, ok := catalog.Find("Nope"); ok {
		t.Error("Find should report missing indicators")
	}
}

func TestParameter_Scale(t *testing.T) {
	d, _ := DefaultCatalog().Get("BollingerBand")
	want := map[string]int{"Periods": 0, "Factor": 3, "MovingAverageType": 3}
	for _, p := range d.Parameters {
		if p.Scale() != want[p.Name] {
			t.Errorf("%s: expected scale %d, got %d", p.Name, want[p.Name], p.Scale())
		}
	}
}

func TestCatalog_CreateWithDefaults(t *testing.T) {
	ind, err := DefaultCatalog().Create("RelativeStrengthIndex", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	rsi, ok := ind.(*RelativeStrengthIndex)
	if !ok {
		t.Fatalf("expected *RelativeStrengthIndex, got %T", ind)
	}
	if rsi.periods != 14 || !rsi.values.Capacity().IsInfinite() {
		t.Errorf("expected default periods and infinite capacity")
	}
}

func TestCatalog_CreateTruncatesIntegers(t *testing.T) {
	ind, err := DefaultCatalog().Create("Envelopes", map[string]float64{
		"Periods":           10.9,
		"Envelope":          0.05,
		"MovingAverageType": 0.7,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	env := ind.(*Envelopes)
	if env.settings.Periods != 10 || env.settings.Envelope != 0.05 || env.settings.MovingAverageType != SimpleMovingAverageType {
		t.Errorf("unexpected settings %+v", env.settings)
	}
}

func TestCatalog_CreateErrors(t *testing.T) {
	catalog := DefaultCatalog()
	tests := []struct {
		name   string
		params map[string]float64
		want   error
	}{
		{"Nope", nil, ErrUnknownIndicator},
		{"MACD", map[string]float64{"Foo": 1}, ErrUnknownParameter},
		{"MACD", map[string]float64{"FastPeriods": 0}, ErrInvalidConfiguration},
		{"BollingerBand", map[string]float64{"Factor": 6}, ErrInvalidConfiguration},
		{"UltimateOscillator", map[string]float64{"ShortPeriods": 20}, ErrInvalidConfiguration},
	}
	for _, tt := range tests {
		if _, err := catalog.Create(tt.name, tt.params); !errors.Is(err, tt.want) {
			t.Errorf("%s %v: expected %v, got %v", tt.name, tt.params, tt.want, err)
		}
	}

	_, err := catalog.Create("MACD", map[string]float64{"Foo": 1})
	if err == nil || !strings.Contains(err.Error(), `indicator "MACD" does not have a parameter with name "Foo"`) {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestCatalog_CreateWithCapacity(t *testing.T) {
	capacity, _ := FromPeriods(5)
	ind, err := DefaultCatalog().CreateWithCapacity("SimpleMovingAverage", capacity, map[string]float64{"Periods": 2})
	if err != nil {
		t.Fatalf("CreateWithCapacity failed: %v", err)
	}
	sma := ind.(*SimpleMovingAverage)
	AddValues(sma, linear(20)...)
	if sma.Values().Len() != 5 {
		t.Errorf("expected 5 retained values, got %d", sma.Values().Len())
	}
}

func TestNewCatalog_Duplicates(t *testing.T) {
	d := Description{Name: "X", New: func(Capacity, Params) (Indicator, error) { return nil, nil }}
	if _, err := NewCatalog(d, d); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
	if _, err := NewCatalog(Description{Name: "Y"}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration for missing factory, got %v", err)
	}
}

// minimumParams sets every numeric parameter of d to its lower bound,
// keeping the ordering UltimateOscillator requires
func minimumParams(d Description) map[string]float64 {
	params := make(map[string]float64)
	for _, p := range d.Parameters {
		if p.Kind != EnumParameter {
			params[p.Name] = p.Min
		}
	}
	if d.Name == "UltimateOscillator" {
		params["MediumPeriods"] = params["ShortPeriods"] + 1
		params["LongPeriods"] = params["ShortPeriods"] + 2
	}
	return params
}

func TestCatalog_CreateAtAdvertisedMinimum(t *testing.T) {
	catalog := DefaultCatalog()
	prices := wave(60)

	for _, d := range catalog.Descriptions() {
		params := minimumParams(d)
		options := []string{""}
		if p, ok := d.Parameter("MovingAverageType"); ok {
			options = p.Options
		}
		for i, option := range options {
			if option != "" {
				params["MovingAverageType"] = float64(i)
			}
			ind, err := catalog.Create(d.Name, params)
			if err != nil {
				t.Errorf("%s %s %v: %v", d.Name, option, params, err)
				continue
			}
			run(t, ind, prices)
		}
	}
}
