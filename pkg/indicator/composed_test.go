package indicator

import (
	"errors"
	"math"
	"testing"
	"time"
)

// wave returns a deterministic price path with varying ranges and volumes
func wave(n int) []Price {
	prices := make([]Price, n)
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := range prices {
		x := float64(i)
		c := 100 + 10*math.Sin(x/7) + 3*math.Cos(x/3)
		spread := 1 + 0.5*math.Abs(math.Sin(x/5))
		prices[i] = Price{
			Timestamp: start.AddDate(0, 0, i),
			Open:      c - 0.3,
			High:      c + spread,
			Low:       c - spread,
			Close:     c,
			Volume:    int64(1000 + 400*math.Abs(math.Sin(x/4)) + float64(i%5)*50),
		}
	}
	return prices
}

func TestMACD_Readiness(t *testing.T) {
	macd := must(NewMACD(Infinite, DefaultConvergenceSettings()))
	prices := wave(60)
	for i, p := range prices {
		macd.Add(p)
		if macd.IsReady() != (i >= 26) {
			t.Fatalf("bar %d: IsReady = %v", i+1, macd.IsReady())
		}
	}
	if macd.Values().Len() != 60-26 {
		t.Errorf("expected %d values, got %d", 60-26, macd.Values().Len())
	}

	values, signal, histogram := macd.Values().Slice(), macd.Signal().Slice(), macd.Histogram().Slice()
	for i := range values {
		if !closeTo(histogram[i], values[i]-signal[i], 1e-12) {
			t.Errorf("histogram %d should be MACD minus signal", i)
		}
	}
}

func TestPercentagePriceOscillator_Readiness(t *testing.T) {
	ppo := must(NewPercentagePriceOscillator(Infinite, DefaultConvergenceSettings()))
	AddPrices(ppo, wave(60)...)
	// slow average ready on bar 27, signal needs 10 further values
	if ppo.Values().Len() != 60-35 {
		t.Errorf("expected %d values, got %d", 60-35, ppo.Values().Len())
	}
}

func TestPercentageVolumeOscillator_ZeroForConstantVolume(t *testing.T) {
	pvo := must(NewPercentageVolumeOscillator(Infinite, DefaultConvergenceSettings()))
	for i := 0; i < 60; i++ {
		pvo.Add(Price{Close: 10, Volume: 500})
	}
	if !pvo.IsReady() {
		t.Fatal("PVO should be ready")
	}
	for v := range pvo.Values().All() {
		if v != 0 {
			t.Fatalf("expected 0 for constant volume, got %v", v)
		}
	}
}

func TestKeltnerChannel_BandsAroundAverage(t *testing.T) {
	keltner := must(NewKeltnerChannel(Infinite, DefaultKeltnerChannelSettings()))
	AddPrices(keltner, wave(80)...)
	if !keltner.IsReady() {
		t.Fatal("Keltner channel should be ready")
	}
	upper, middle, lower := keltner.Upper().Slice(), keltner.Middle().Slice(), keltner.Lower().Slice()
	for i := range middle {
		if !closeTo(upper[i]-middle[i], middle[i]-lower[i], 1e-9) {
			t.Fatalf("bands should be symmetric at %d", i)
		}
		if upper[i] <= lower[i] {
			t.Fatalf("upper band should be above lower band at %d", i)
		}
	}
}

func TestChandelierExit_ATRWithSinglePeriod(t *testing.T) {
	long := must(NewChandelierLongExit(Infinite, ChandelierExitSettings{Periods: 1, Factor: 3}))
	short := must(NewChandelierShortExit(Infinite, ChandelierExitSettings{Periods: 1, Factor: 3}))
	prices := wave(5)
	AddPrices(long, prices[0])
	AddPrices(short, prices[0])
	if long.IsReady() || short.IsReady() {
		t.Fatal("exits need an ATR value")
	}
	AddPrices(long, prices[1:]...)
	AddPrices(short, prices[1:]...)
	if !long.IsReady() || !short.IsReady() {
		t.Fatal("exits should be ready")
	}
}

func TestUltimateOscillator_PeriodOrdering(t *testing.T) {
	tests := []UltimateOscillatorSettings{
		{ShortPeriods: 14, MediumPeriods: 14, LongPeriods: 28},
		{ShortPeriods: 7, MediumPeriods: 28, LongPeriods: 28},
		{ShortPeriods: 7, MediumPeriods: 30, LongPeriods: 28},
	}
	for _, settings := range tests {
		if _, err := NewUltimateOscillator(Infinite, settings); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%+v: expected ErrInvalidConfiguration, got %v", settings, err)
		}
	}
}

func TestVolumeWeightedAveragePrice_ResetsOnNewDate(t *testing.T) {
	vwap := NewVolumeWeightedAveragePrice(Infinite)
	morning := time.Date(2024, time.May, 6, 9, 30, 0, 0, time.UTC)

	vwap.Add(Price{Timestamp: morning, High: 11, Low: 9, Close: 10, Volume: 100})
	vwap.Add(Price{Timestamp: morning.Add(time.Minute), High: 21, Low: 19, Close: 20, Volume: 300})
	if vwap.Values().Len() != 2 {
		t.Fatalf("expected 2 values, got %d", vwap.Values().Len())
	}
	if got := vwap.Values().last(); got != 17.5 {
		t.Errorf("expected 17.5, got %v", got)
	}

	vwap.Add(Price{Timestamp: morning.AddDate(0, 0, 1), High: 31, Low: 29, Close: 30, Volume: 10})
	if vwap.Values().Len() != 1 || vwap.Values().last() != 30 {
		t.Errorf("VWAP should restart on a new date, got %v", vwap.Values().Slice())
	}
}

func TestStochRSI_RangeIsBounded(t *testing.T) {
	stoch := must(NewStochRSI(Infinite, DefaultStochRSISettings()))
	AddPrices(stoch, wave(120)...)
	for v := range stoch.Values().All() {
		if v < 0 || v > 1 {
			t.Fatalf("StochRSI should be within [0, 1], got %v", v)
		}
	}
}

func TestWilliamsR_Range(t *testing.T) {
	w := must(NewWilliamsR(Infinite, DefaultWilliamsRSettings()))
	AddPrices(w, wave(60)...)
	for v := range w.Values().All() {
		if v > 0 || v < -100 {
			t.Fatalf("%%R should be within [-100, 0], got %v", v)
		}
	}
}

func TestNegativeVolumeIndex_OnlyMovesOnFallingVolume(t *testing.T) {
	settings := VolumeIndexSettings{SignalPeriods: 1, MovingAverageType: SimpleMovingAverageType}
	nvi := must(NewNegativeVolumeIndex(Infinite, settings))
	AddPrices(nvi,
		Price{Close: 100, Volume: 1000},
		Price{Close: 110, Volume: 2000}, // rising volume, unchanged
		Price{Close: 121, Volume: 1000}, // falling volume, +10%
	)
	want := []float64{1000, 1100}
	got := nvi.Values().Slice()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if !closeTo(got[i], want[i], 1e-12) {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}

func TestFeed(t *testing.T) {
	sma := must(NewSimpleMovingAverage(Infinite, MovingAverageSettings{Periods: 1}))
	if err := Feed(sma, Price{Close: 7}); err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if sma.Values().last() != 7 {
		t.Errorf("average indicators should receive the close")
	}

	corr := must(NewCorrelationCoefficient(Infinite, DefaultCorrelationCoefficientSettings()))
	if err := Feed(corr, Price{Close: 7}); !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("expected ErrUnsupportedInput, got %v", err)
	}

	if err := AddPricePairs(corr, make([]Price, 2), make([]Price, 3)); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration for mismatched pairs, got %v", err)
	}
}

func TestPrice_Validate(t *testing.T) {
	valid := Price{Timestamp: time.Now(), High: 2, Low: 1, Close: 1.5, Volume: 10}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	invalid := []Price{
		{High: 2, Low: 1},
		{Timestamp: time.Now(), High: 1, Low: 2},
		{Timestamp: time.Now(), High: 2, Low: 1, Volume: -1},
	}
	for _, p := range invalid {
		if err := p.Validate(); !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("%+v: expected ErrInvalidPrice, got %v", p, err)
		}
	}
}
