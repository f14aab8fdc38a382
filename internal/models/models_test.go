package models

import (
	"math"
	"testing"
	"time"
)

func TestBar_Validate(t *testing.T) {
	now := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		bar     Bar
		wantErr error
	}{
		{
			name: "valid bar",
			bar:  NewBar("AAPL", now, 150, 151, 149, 150.5, 1000),
		},
		{
			name:    "missing symbol",
			bar:     NewBar("", now, 150, 151, 149, 150.5, 1000),
			wantErr: ErrInvalidSymbol,
		},
		{
			name:    "zero timestamp",
			bar:     NewBar("AAPL", time.Time{}, 150, 151, 149, 150.5, 1000),
			wantErr: ErrInvalidTimestamp,
		},
		{
			name:    "high below low",
			bar:     NewBar("AAPL", now, 150, 148, 149, 150.5, 1000),
			wantErr: ErrInvalidBar,
		},
		{
			name:    "negative volume",
			bar:     NewBar("AAPL", now, 150, 151, 149, 150.5, -1),
			wantErr: ErrInvalidVolume,
		},
		{
			name:    "NaN close",
			bar:     NewBar("AAPL", now, 150, 151, 149, math.NaN(), 1000),
			wantErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bar.Validate()
			if err != tt.wantErr {
				t.Errorf("Bar.Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSnapshot_Lookup(t *testing.T) {
	s := Snapshot{
		Symbol: "AAPL",
		Values: []Value{
			{Indicator: "rsi", Line: "RSI", Value: 55, Ready: true},
			{Indicator: "bb", Line: "Upper", Value: 101},
		},
	}

	v, ok := s.Lookup("bb", "Upper")
	if !ok || v.Value != 101 {
		t.Errorf("Lookup(bb, Upper) = %+v, %v", v, ok)
	}
	if _, ok := s.Lookup("bb", "Lower"); ok {
		t.Error("Lookup should report missing lines")
	}
}
