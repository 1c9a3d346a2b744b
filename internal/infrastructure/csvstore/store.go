package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"pricewatch/internal/application"
	"pricewatch/internal/domain"

	"github.com/shopspring/decimal"
)

// TimestampLayout is ISO 8601 with microsecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

var Header = []string{"Timestamp", "Price", "Pair", "Exchange"}

// Store keeps a SampleSeries in a comma-separated file with a fixed header.
type Store struct {
	path string
}

var _ application.SampleStore = (*Store)(nil)

func New(path string) *Store { return &Store{path: path} }

func (s *Store) Location() string { return s.path }

// Write replaces the file with header plus one row per sample in series order.
func (s *Store) Write(series domain.SampleSeries) (err error) {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("csvstore: create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("csvstore: close: %w", cerr)
		}
	}()
	return Encode(f, series)
}

// Read parses the whole file. A missing file yields an error matching fs.ErrNotExist.
func (s *Store) Read() (domain.SampleSeries, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("csvstore: open: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func Encode(w io.Writer, series domain.SampleSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("csvstore: write header: %w", err)
	}
	for _, smp := range series {
		row := []string{
			smp.Timestamp.Format(TimestampLayout),
			smp.Price.String(),
			string(smp.Pair),
			smp.Exchange,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csvstore: write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csvstore: flush: %w", err)
	}
	return nil
}

func Decode(r io.Reader) (domain.SampleSeries, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("csvstore: %w: missing header", domain.ErrMalformedRow)
	}
	if err != nil {
		return nil, fmt.Errorf("csvstore: %w: header: %v", domain.ErrMalformedRow, err)
	}
	for i, col := range Header {
		if head[i] != col {
			return nil, fmt.Errorf("csvstore: %w: column %d is %q, want %q", domain.ErrMalformedRow, i+1, head[i], col)
		}
	}

	series := domain.SampleSeries{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvstore: %w: line %d: %v", domain.ErrMalformedRow, line, err)
		}
		smp, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("csvstore: line %d: %w", line, err)
		}
		series = series.Append(smp)
	}
	return series, nil
}

func parseRow(rec []string) (domain.Sample, error) {
	ts, err := time.Parse(time.RFC3339Nano, rec[0])
	if err != nil {
		return domain.Sample{}, fmt.Errorf("%w: timestamp %q", domain.ErrMalformedRow, rec[0])
	}
	price, err := decimal.NewFromString(rec[1])
	if err != nil {
		return domain.Sample{}, fmt.Errorf("%w: price %q", domain.ErrMalformedRow, rec[1])
	}
	return domain.NewSample(ts, domain.Quote{
		Pair:     domain.Pair(rec[2]),
		Exchange: rec[3],
		Price:    price,
	}), nil
}
