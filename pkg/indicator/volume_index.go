package indicator

import (
	"errors"
	"fmt"
)

var (
	volumeIndexSignal = signalPeriodsParam(1000, 255)
	volumeIndexMAType = movingAverageTypeParam(ExponentialMovingAverageType)
)

// volumeIndexStart is the value both volume indexes start from
const volumeIndexStart = 1000.0

// VolumeIndexSettings configures NegativeVolumeIndex and PositiveVolumeIndex
type VolumeIndexSettings struct {
	SignalPeriods     int
	MovingAverageType MovingAverageType
}

// DefaultVolumeIndexSettings returns the catalog defaults
func DefaultVolumeIndexSettings() VolumeIndexSettings {
	return VolumeIndexSettings{
		SignalPeriods:     int(volumeIndexSignal.Default),
		MovingAverageType: MovingAverageType(volumeIndexMAType.Default),
	}
}

// Validate checks the settings ranges
func (s VolumeIndexSettings) Validate() error {
	return errors.Join(volumeIndexSignal.checkInt(s.SignalPeriods), checkMovingAverageType(s.MovingAverageType))
}

// volumeIndex moves by the close's percent change only on bars whose volume
// compares to the previous bar's as selected by tracks
type volumeIndex struct {
	title      string
	settings   VolumeIndexSettings
	tracks     func(volume, previous int64) bool
	signal     AverageIndicator
	previous   *Price
	last       float64
	values     *Series
	signalLine *Series
}

func newVolumeIndex(title string, capacity Capacity, settings VolumeIndexSettings, tracks func(volume, previous int64) bool) (volumeIndex, error) {
	if err := settings.Validate(); err != nil {
		return volumeIndex{}, err
	}
	signal, err := NewMovingAverage(settings.MovingAverageType, settings.SignalPeriods)
	if err != nil {
		return volumeIndex{}, err
	}
	return volumeIndex{
		title:      title,
		settings:   settings,
		tracks:     tracks,
		signal:     signal,
		last:       volumeIndexStart,
		values:     capacity.newSeries(),
		signalLine: capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (v *volumeIndex) Add(price Price) {
	previous := v.previous
	current := price
	v.previous = &current
	if previous == nil {
		return
	}

	if v.tracks(price.Volume, previous.Volume) {
		v.last += (price.Close - previous.Close) / previous.Close * v.last
	}
	v.signal.Add(v.last)
	if v.signal.IsReady() {
		sig, _ := v.signal.Last()
		v.values.push(v.last)
		v.signalLine.push(sig)
	}
}

// Values returns the index values
func (v *volumeIndex) Values() *Series { return v.values }

// Signal returns the signal line
func (v *volumeIndex) Signal() *Series { return v.signalLine }

// IsReady returns true once a value was emitted
func (v *volumeIndex) IsReady() bool { return v.values.Len() > 0 }

// Plot returns the index chart
func (v *volumeIndex) Plot() Plot {
	return chart(v.title, 2,
		line(v.title, v.values, ColorBlack),
		line(fmt.Sprintf("Signal (%d)", v.settings.SignalPeriods), v.signalLine, ColorRed))
}

// NegativeVolumeIndex follows the close on bars with falling volume
type NegativeVolumeIndex struct {
	volumeIndex
}

// NewNegativeVolumeIndex creates an NVI
func NewNegativeVolumeIndex(capacity Capacity, settings VolumeIndexSettings) (*NegativeVolumeIndex, error) {
	v, err := newVolumeIndex("NVI", capacity, settings, func(volume, previous int64) bool { return volume < previous })
	if err != nil {
		return nil, err
	}
	return &NegativeVolumeIndex{v}, nil
}

// PositiveVolumeIndex follows the close on bars with rising volume
type PositiveVolumeIndex struct {
	volumeIndex
}

// NewPositiveVolumeIndex creates a PVI
func NewPositiveVolumeIndex(capacity Capacity, settings VolumeIndexSettings) (*PositiveVolumeIndex, error) {
	v, err := newVolumeIndex("PVI", capacity, settings, func(volume, previous int64) bool { return volume > previous })
	if err != nil {
		return nil, err
	}
	return &PositiveVolumeIndex{v}, nil
}
