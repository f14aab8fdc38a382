package indicator

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Category groups indicators by what they measure
type Category string

const (
	CategoryComparison    Category = "Comparison"
	CategorySignal        Category = "Signal"
	CategoryMomentum      Category = "Momentum"
	CategoryMovingAverage Category = "MovingAverage"
	CategoryPivot         Category = "Pivot"
	CategoryTrend         Category = "Trend"
	CategoryVolatility    Category = "Volatility"
	CategoryVolume        Category = "Volume"
)

// Factory builds an indicator from resolved parameters
type Factory func(capacity Capacity, params Params) (Indicator, error)

// Description is the catalog entry of one indicator
type Description struct {
	Name        string
	DisplayName string
	Description string
	Categories  []Category
	Parameters  []Parameter
	New         Factory `json:"-"`
}

// HasCategory reports whether the indicator belongs to c
func (d Description) HasCategory(c Category) bool {
	return slices.Contains(d.Categories, c)
}

// Parameter returns the named parameter of the schema
func (d Description) Parameter(name string) (Parameter, bool) {
	for _, p := range d.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Catalog is an immutable registry of indicator descriptions keyed by name
type Catalog struct {
	descriptions map[string]Description
	sorted       []Description
}

// NewCatalog builds a catalog. Names must be unique and every description
// needs a factory.
func NewCatalog(descriptions ...Description) (*Catalog, error) {
	c := &Catalog{descriptions: make(map[string]Description, len(descriptions))}
	for _, d := range descriptions {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: indicator name cannot be empty", ErrInvalidConfiguration)
		}
		if d.New == nil {
			return nil, fmt.Errorf("%w: indicator %q has no factory", ErrInvalidConfiguration, d.Name)
		}
		if _, exists := c.descriptions[d.Name]; exists {
			return nil, fmt.Errorf("%w: indicator %q already registered", ErrInvalidConfiguration, d.Name)
		}
		c.descriptions[d.Name] = d
		c.sorted = append(c.sorted, d)
	}
	slices.SortFunc(c.sorted, func(a, b Description) int { return strings.Compare(a.Name, b.Name) })
	return c, nil
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the catalog of every built-in indicator
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := NewCatalog(builtins()...)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Descriptions returns every description sorted by name
func (c *Catalog) Descriptions() []Description {
	return slices.Clone(c.sorted)
}

// Find returns the named description
func (c *Catalog) Find(name string) (Description, bool) {
	d, ok := c.descriptions[name]
	return d, ok
}

// Get returns the named description or ErrUnknownIndicator
func (c *Catalog) Get(name string) (Description, error) {
	d, ok := c.descriptions[name]
	if !ok {
		return Description{}, fmt.Errorf("%w: indicator with name %q not found", ErrUnknownIndicator, name)
	}
	return d, nil
}

// Create builds the named indicator with Infinite capacity. Missing
// parameters take their defaults.
func (c *Catalog) Create(name string, params map[string]float64) (Indicator, error) {
	return c.CreateWithCapacity(name, Infinite, params)
}

// CreateWithCapacity builds the named indicator with the given capacity
func (c *Catalog) CreateWithCapacity(name string, capacity Capacity, params map[string]float64) (Indicator, error) {
	d, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	resolved, err := resolve(name, d.Parameters, params)
	if err != nil {
		return nil, err
	}
	return d.New(capacity, resolved)
}

// built converts a typed constructor result without leaking a typed nil
func built[T Indicator](ind T, err error) (Indicator, error) {
	if err != nil {
		return nil, err
	}
	return ind, nil
}

func averageDescription(name, displayName, description string, create func(Capacity, MovingAverageSettings) (Indicator, error)) Description {
	return Description{
		Name:        name,
		DisplayName: displayName,
		Description: description,
		Categories:  []Category{CategoryMovingAverage},
		Parameters:  []Parameter{movingAveragePeriods},
		New: func(capacity Capacity, p Params) (Indicator, error) {
			return create(capacity, MovingAverageSettings{Periods: p.Int("Periods")})
		},
	}
}

func builtins() []Description {
	return []Description{
		averageDescription("SimpleMovingAverage", "SMA", "Simple Moving Average", func(c Capacity, s MovingAverageSettings) (Indicator, error) {
			return built(NewSimpleMovingAverage(c, s))
		}),
		averageDescription("ExponentialMovingAverage", "EMA", "Exponential Moving Average", func(c Capacity, s MovingAverageSettings) (Indicator, error) {
			return built(NewExponentialMovingAverage(c, s))
		}),
		averageDescription("DoubleExponentialMovingAverage", "DEMA", "Double Exponential Moving Average", func(c Capacity, s MovingAverageSettings) (Indicator, error) {
			return built(NewDoubleExponentialMovingAverage(c, s))
		}),
		averageDescription("TripleExponentialMovingAverage", "TEMA", "Triple Exponential Moving Average", func(c Capacity, s MovingAverageSettings) (Indicator, error) {
			return built(NewTripleExponentialMovingAverage(c, s))
		}),
		averageDescription("WeightedMovingAverage", "WMA", "Weighted Moving Average", func(c Capacity, s MovingAverageSettings) (Indicator, error) {
			return built(NewWeightedMovingAverage(c, s))
		}),
		averageDescription("HullMovingAverage", "HMA", "Hull Moving Average", func(c Capacity, s MovingAverageSettings) (Indicator, error) {
			return built(NewHullMovingAverage(c, s))
		}),
		{
			Name: "AccumulationDistributionLine", DisplayName: "ADL", Description: "Accumulation Distribution Line",
			Categories: []Category{CategoryMomentum},
			New: func(c Capacity, _ Params) (Indicator, error) {
				return NewAccumulationDistributionLine(c), nil
			},
		},
		{
			Name: "AroonOscillator", DisplayName: "Aroon Oscillator",
			Categories: []Category{CategoryTrend},
			Parameters: []Parameter{aroonPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewAroonOscillator(c, AroonSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "AroonUpDown", DisplayName: "Aroon Up/Down",
			Categories: []Category{CategoryTrend},
			Parameters: []Parameter{aroonPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewAroonUpDown(c, AroonSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "AverageDirectionalIndex", DisplayName: "ADX", Description: "Average Directional Index",
			Categories: []Category{CategoryTrend},
			Parameters: []Parameter{adxPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewAverageDirectionalIndex(c, AverageDirectionalIndexSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "AverageTrueRange", DisplayName: "ATR", Description: "Average True Range",
			Categories: []Category{CategoryVolatility},
			Parameters: []Parameter{atrPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewAverageTrueRange(c, AverageTrueRangeSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "BollingerBand", DisplayName: "Bollinger Bands",
			Categories: []Category{CategoryMovingAverage},
			Parameters: []Parameter{bollingerPeriods, bollingerFactor, bollingerMAType},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewBollingerBand(c, bollingerSettings(p)))
			},
		},
		{
			Name: "BollingerBandPercentB", DisplayName: "Bollinger Bands - %B",
			Categories: []Category{CategoryMovingAverage},
			Parameters: []Parameter{bollingerPeriods, bollingerFactor, bollingerMAType},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewBollingerBandPercentB(c, bollingerSettings(p)))
			},
		},
		{
			Name: "BollingerBandWidth", DisplayName: "Bollinger Bands - Bandwidth",
			Categories: []Category{CategoryMovingAverage},
			Parameters: []Parameter{bollingerPeriods, bollingerFactor, bollingerMAType},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewBollingerBandWidth(c, bollingerSettings(p)))
			},
		},
		{
			Name: "ChaikinMoneyFlow", DisplayName: "CMF", Description: "Chaikin Money Flow",
			Categories: []Category{CategoryMomentum},
			Parameters: []Parameter{cmfPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewChaikinMoneyFlow(c, ChaikinMoneyFlowSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "ChaikinOscillator", DisplayName: "Chaikin Oscillator",
			Categories: []Category{CategoryMomentum},
			Parameters: []Parameter{chaikinFastPeriods, chaikinSlowPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewChaikinOscillator(c, ChaikinOscillatorSettings{
					FastPeriods: p.Int("FastPeriods"),
					SlowPeriods: p.Int("SlowPeriods"),
				}))
			},
		},
		{
			Name: "ChaikinVolatility", DisplayName: "Chaikin Volatility",
			Categories: []Category{CategoryVolatility},
			Parameters: []Parameter{chaikinComparePeriods, chaikinSmoothingPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewChaikinVolatility(c, ChaikinVolatilitySettings{
					ComparePeriods:   p.Int("ComparePeriods"),
					SmoothingPeriods: p.Int("SmoothingPeriods"),
				}))
			},
		},
		{
			Name: "ChandelierLongExit", DisplayName: "Chandelier Long Exit",
			Categories: []Category{CategorySignal},
			Parameters: []Parameter{chandelierPeriods, chandelierFactor},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewChandelierLongExit(c, chandelierSettings(p)))
			},
		},
		{
			Name: "ChandelierShortExit", DisplayName: "Chandelier Short Exit",
			Categories: []Category{CategorySignal},
			Parameters: []Parameter{chandelierPeriods, chandelierFactor},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewChandelierShortExit(c, chandelierSettings(p)))
			},
		},
		{
			Name: "CommodityChannelIndex", DisplayName: "CCI", Description: "Commodity Channel Index",
			Categories: []Category{CategoryMomentum},
			Parameters: []Parameter{cciPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewCommodityChannelIndex(c, CommodityChannelIndexSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "CorrelationCoefficient", DisplayName: "Correlation Coefficient",
			Categories: []Category{CategoryComparison},
			Parameters: []Parameter{correlationPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewCorrelationCoefficient(c, CorrelationCoefficientSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "DonchianChannel", DisplayName: "Donchian Channel",
			Categories: []Category{CategoryTrend},
			Parameters: []Parameter{donchianPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewDonchianChannel(c, DonchianChannelSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "DonchianChannelWidth", DisplayName: "Donchian Channel Width",
			Categories: []Category{CategoryTrend},
			Parameters: []Parameter{donchianPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewDonchianChannelWidth(c, DonchianChannelSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "EaseOfMovement", DisplayName: "EMV", Description: "Ease of Movement",
			Categories: []Category{CategoryMovingAverage},
			Parameters: []Parameter{emvPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewEaseOfMovement(c, EaseOfMovementSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "Envelopes", DisplayName: "Envelopes",
			Categories: []Category{CategoryMomentum},
			Parameters: []Parameter{envelopesPeriods, envelopesEnvelope, envelopesMAType},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewEnvelopes(c, EnvelopesSettings{
					Periods:           p.Int("Periods"),
					Envelope:          p.Float("Envelope"),
					MovingAverageType: p.MovingAverageType("MovingAverageType"),
				}))
			},
		},
		{
			Name: "FibonacciPivotPoints", DisplayName: "Fibonacci Pivot Points",
			Categories: []Category{CategoryPivot},
			New: func(c Capacity, _ Params) (Indicator, error) {
				return NewFibonacciPivotPoints(c), nil
			},
		},
		{
			Name: "KeltnerChannel", DisplayName: "Keltner Channels",
			Categories: []Category{CategoryMomentum},
			Parameters: []Parameter{keltnerMAType, keltnerMAPeriods, keltnerATRPeriod, keltnerFactor},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewKeltnerChannel(c, KeltnerChannelSettings{
					MovingAverageType:       p.MovingAverageType("MovingAverageType"),
					MovingAveragePeriods:    p.Int("MovingAveragePeriods"),
					AverageTrueRangePeriods: p.Int("AverageTrueRangePeriods"),
					Factor:                  p.Float("Factor"),
				}))
			},
		},
		{
			Name: "MACD", DisplayName: "MACD", Description: "Moving Average Convergence/Divergence",
			Categories: []Category{CategoryMomentum},
			Parameters: convergenceParameters(),
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewMACD(c, convergenceSettings(p)))
			},
		},
		{
			Name: "MassIndex", DisplayName: "Mass Index",
			Categories: []Category{CategoryTrend},
			Parameters: []Parameter{massMAPeriods, massSumPeriods, massMAType},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewMassIndex(c, MassIndexSettings{
					MovingAveragePeriods: p.Int("MovingAveragePeriods"),
					SumPeriods:           p.Int("SumPeriods"),
					MovingAverageType:    p.MovingAverageType("MovingAverageType"),
				}))
			},
		},
		{
			Name: "Momentum", DisplayName: "Momentum",
			Categories: []Category{CategoryMomentum},
			Parameters: []Parameter{momentumPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewMomentum(c, MomentumSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "MoneyFlowIndex", DisplayName: "MFI", Description: "Money Flow Index",
			Categories: []Category{CategoryMomentum},
			Parameters: []Parameter{mfiPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewMoneyFlowIndex(c, MoneyFlowIndexSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "NegativeVolumeIndex", DisplayName: "NVI", Description: "Negative Volume Index",
			Categories: []Category{CategoryVolume},
			Parameters: []Parameter{volumeIndexSignal, volumeIndexMAType},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewNegativeVolumeIndex(c, volumeIndexSettings(p)))
			},
		},
		{
			Name: "OnBalanceVolume", DisplayName: "OBV", Description: "On Balance Volume",
			Categories: []Category{CategoryMomentum},
			New: func(c Capacity, _ Params) (Indicator, error) {
				return NewOnBalanceVolume(c), nil
			},
		},
		{
			Name: "PercentagePriceOscillator", DisplayName: "PPO", Description: "Percentage Price Oscillator",
			Categories: []Category{CategoryMomentum},
			Parameters: convergenceParameters(),
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewPercentagePriceOscillator(c, convergenceSettings(p)))
			},
		},
		{
			Name: "PercentageVolumeOscillator", DisplayName: "PVO", Description: "Percentage Volume Oscillator",
			Categories: []Category{CategoryVolume},
			Parameters: convergenceParameters(),
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewPercentageVolumeOscillator(c, convergenceSettings(p)))
			},
		},
		{
			Name: "PositiveVolumeIndex", DisplayName: "PVI", Description: "Positive Volume Index",
			Categories: []Category{CategoryVolume},
			Parameters: []Parameter{volumeIndexSignal, volumeIndexMAType},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewPositiveVolumeIndex(c, volumeIndexSettings(p)))
			},
		},
		{
			Name: "RateOfChange", DisplayName: "ROC", Description: "Rate-of-Change",
			Categories: []Category{CategoryMomentum},
			Parameters: []Parameter{rocPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewRateOfChange(c, RateOfChangeSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "RelativeStrengthIndex", DisplayName: "RSI", Description: "Relative Strength Index",
			Categories: []Category{CategoryMomentum},
			Parameters: []Parameter{rsiPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewRelativeStrengthIndex(c, RelativeStrengthIndexSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "StandardDeviation", DisplayName: "Standard Deviation",
			Categories: []Category{CategoryMovingAverage},
			Parameters: []Parameter{stdDevPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewStandardDeviation(c, StandardDeviationSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "StandardPivotPoints", DisplayName: "Standard Pivots Points",
			Categories: []Category{CategoryPivot},
			New: func(c Capacity, _ Params) (Indicator, error) {
				return NewStandardPivotPoints(c), nil
			},
		},
		{
			Name: "StochRSI", DisplayName: "StochRSI",
			Categories: []Category{CategoryMomentum},
			Parameters: []Parameter{stochRSIPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewStochRSI(c, StochRSISettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "Stochastic", DisplayName: "Stochastic Oscillator",
			Categories: []Category{CategoryMomentum},
			Parameters: []Parameter{stochasticK, stochasticKSmooth, stochasticDSmooth, stochasticMAType},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewStochastic(c, StochasticSettings{
					KPeriods:          p.Int("KPeriods"),
					KSmoothPeriods:    p.Int("KSmoothPeriods"),
					DSmoothPeriods:    p.Int("DSmoothPeriods"),
					MovingAverageType: p.MovingAverageType("MovingAverageType"),
				}))
			},
		},
		{
			Name: "TRIX", DisplayName: "TRIX",
			Categories: []Category{CategoryMovingAverage},
			Parameters: []Parameter{trixPeriods, trixSignal},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewTRIX(c, TRIXSettings{Periods: p.Int("Periods"), SignalPeriods: p.Int("SignalPeriods")}))
			},
		},
		{
			Name: "TrueStrengthIndex", DisplayName: "TSI", Description: "True Strength Index",
			Categories: []Category{CategoryMomentum},
			Parameters: []Parameter{tsiFirst, tsiSecond, tsiMAType},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewTrueStrengthIndex(c, TrueStrengthIndexSettings{
					FirstSmoothingPeriods:  p.Int("FirstSmoothingPeriods"),
					SecondSmoothingPeriods: p.Int("SecondSmoothingPeriods"),
					MovingAverageType:      p.MovingAverageType("MovingAverageType"),
				}))
			},
		},
		{
			Name: "UltimateOscillator", DisplayName: "Ultimate Oscillator",
			Categories: []Category{CategoryMovingAverage},
			Parameters: []Parameter{uoShort, uoMedium, uoLong},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewUltimateOscillator(c, UltimateOscillatorSettings{
					ShortPeriods:  p.Int("ShortPeriods"),
					MediumPeriods: p.Int("MediumPeriods"),
					LongPeriods:   p.Int("LongPeriods"),
				}))
			},
		},
		{
			Name: "VolumeWeightedAveragePrice", DisplayName: "VWAP", Description: "Volume-Weighted Average Price",
			Categories: []Category{CategoryMovingAverage},
			New: func(c Capacity, _ Params) (Indicator, error) {
				return NewVolumeWeightedAveragePrice(c), nil
			},
		},
		{
			Name: "Vortex", DisplayName: "VTX", Description: "Vortex Indicator",
			Categories: []Category{CategoryTrend},
			Parameters: []Parameter{vortexPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewVortex(c, VortexSettings{Periods: p.Int("Periods")}))
			},
		},
		{
			Name: "WilliamsR", DisplayName: "Williams %R",
			Categories: []Category{CategoryMomentum},
			Parameters: []Parameter{williamsRPeriods},
			New: func(c Capacity, p Params) (Indicator, error) {
				return built(NewWilliamsR(c, WilliamsRSettings{Periods: p.Int("Periods")}))
			},
		},
	}
}

func bollingerSettings(p Params) BollingerBandSettings {
	return BollingerBandSettings{
		Periods:           p.Int("Periods"),
		Factor:            p.Float("Factor"),
		MovingAverageType: p.MovingAverageType("MovingAverageType"),
	}
}

func chandelierSettings(p Params) ChandelierExitSettings {
	return ChandelierExitSettings{Periods: p.Int("Periods"), Factor: p.Float("Factor")}
}

func convergenceParameters() []Parameter {
	return []Parameter{convergenceFast, convergenceSlow, convergenceSignal, convergenceMAType}
}

func convergenceSettings(p Params) ConvergenceSettings {
	return ConvergenceSettings{
		FastPeriods:       p.Int("FastPeriods"),
		SlowPeriods:       p.Int("SlowPeriods"),
		SignalPeriods:     p.Int("SignalPeriods"),
		MovingAverageType: p.MovingAverageType("MovingAverageType"),
	}
}

func volumeIndexSettings(p Params) VolumeIndexSettings {
	return VolumeIndexSettings{
		SignalPeriods:     p.Int("SignalPeriods"),
		MovingAverageType: p.MovingAverageType("MovingAverageType"),
	}
}
