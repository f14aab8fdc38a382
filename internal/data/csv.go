package data

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/mohamedkhairy/stock-indicators/internal/models"
)

// DefaultDateLayout matches dates such as 20240102
const DefaultDateLayout = "20060102"

var (
	// ErrNotEnoughColumns is returned when a record has fewer than six columns
	ErrNotEnoughColumns = errors.New("not enough columns")
	// ErrInvalidTimeFormat is returned when the date column does not match the layout
	ErrInvalidTimeFormat = errors.New("cannot parse date")
	// ErrInvalidPriceFormat is returned when a price column is not a decimal
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")
	// ErrInvalidVolumeFormat is returned when the volume column is not a whole number
	ErrInvalidVolumeFormat = errors.New("volume must be a whole number")
)

// CSVSource reads date,open,high,low,close,volume records. A leading header
// row is skipped.
type CSVSource struct {
	reader *csv.Reader
	closer io.Closer
	symbol string
	layout string
	line   int
}

// NewCSVSource reads bars for symbol from r
func NewCSVSource(r io.Reader, symbol, layout string) *CSVSource {
	if layout == "" {
		layout = DefaultDateLayout
	}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	return &CSVSource{reader: reader, symbol: symbol, layout: layout}
}

// OpenCSV opens a CSV file
func OpenCSV(path, symbol, layout string) (*CSVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	src := NewCSVSource(f, symbol, layout)
	src.closer = f
	return src, nil
}

// Next returns the next bar
func (s *CSVSource) Next(ctx context.Context) (models.Bar, error) {
	for {
		if err := ctx.Err(); err != nil {
			return models.Bar{}, err
		}
		record, err := s.reader.Read()
		if err == io.EOF {
			return models.Bar{}, io.EOF
		}
		s.line++
		if err != nil {
			return models.Bar{}, errors.Wrapf(err, "line %d", s.line)
		}
		if s.line == 1 && isHeader(record) {
			continue
		}

		bar, err := s.decode(record)
		if err != nil {
			return models.Bar{}, errors.Wrapf(err, "line %d", s.line)
		}
		return bar, nil
	}
}

func (s *CSVSource) decode(record []string) (models.Bar, error) {
	if len(record) < 6 {
		return models.Bar{}, ErrNotEnoughColumns
	}

	timestamp, err := time.Parse(s.layout, strings.TrimSpace(record[0]))
	if err != nil {
		return models.Bar{}, errors.Wrap(ErrInvalidTimeFormat, record[0])
	}

	var ohlc [4]float64
	for i := range ohlc {
		d, err := decimal.NewFromString(strings.TrimSpace(record[i+1]))
		if err != nil {
			return models.Bar{}, errors.Wrap(ErrInvalidPriceFormat, record[i+1])
		}
		ohlc[i] = d.InexactFloat64()
	}

	volume, err := decimal.NewFromString(strings.TrimSpace(record[5]))
	if err != nil || !volume.Equal(volume.Truncate(0)) {
		return models.Bar{}, errors.Wrap(ErrInvalidVolumeFormat, record[5])
	}

	return models.NewBar(s.symbol, timestamp, ohlc[0], ohlc[1], ohlc[2], ohlc[3], volume.IntPart()), nil
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "date")
}

// Close closes the underlying file, if any
func (s *CSVSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Name returns "csv"
func (s *CSVSource) Name() string { return "csv" }
