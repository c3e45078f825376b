package yahoo

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// nullMarker is the literal string Yahoo writes for a missing value.
const nullMarker = "null"

// Date is a calendar date decoded from the provider's YYYY-MM-DD column.
type Date struct {
	time.Time
}

// UnmarshalCSV implements gocsv decoding for Date
func (d *Date) UnmarshalCSV(s string) error {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalCSV implements gocsv encoding for Date
func (d Date) MarshalCSV() (string, error) {
	return d.Format(dateLayout), nil
}

// Price is a float column. Valid is false when the provider wrote the null
// marker instead of a number.
type Price struct {
	Float64 float64
	Valid   bool
}

// UnmarshalCSV implements gocsv decoding for Price
func (p *Price) UnmarshalCSV(s string) error {
	if s == "" || s == nullMarker {
		*p = Price{}
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("failed to parse price %q: %w", s, err)
	}
	*p = Price{Float64: v, Valid: true}
	return nil
}

// MarshalCSV implements gocsv encoding for Price
func (p Price) MarshalCSV() (string, error) {
	if !p.Valid {
		return nullMarker, nil
	}
	return strconv.FormatFloat(p.Float64, 'f', -1, 64), nil
}

// Volume is the share-count column. int64 is wide enough for any listed
// security's daily volume.
type Volume struct {
	Int64 int64
	Valid bool
}

// UnmarshalCSV implements gocsv decoding for Volume
func (v *Volume) UnmarshalCSV(s string) error {
	if s == "" || s == nullMarker {
		*v = Volume{}
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse volume %q: %w", s, err)
	}
	*v = Volume{Int64: n, Valid: true}
	return nil
}

// MarshalCSV implements gocsv encoding for Volume
func (v Volume) MarshalCSV() (string, error) {
	if !v.Valid {
		return nullMarker, nil
	}
	return strconv.FormatInt(v.Int64, 10), nil
}

// Row is one OHLCV sample at the scan's interval. The csv tags match the
// header row of the provider's download endpoint exactly.
type Row struct {
	Date     Date   `csv:"Date"`
	Open     Price  `csv:"Open"`
	High     Price  `csv:"High"`
	Low      Price  `csv:"Low"`
	Close    Price  `csv:"Close"`
	AdjClose Price  `csv:"Adj Close"`
	Volume   Volume `csv:"Volume"`
}

// Column describes one output column for consumers that need the schema
// before any data is fetched.
type Column struct {
	Name string
	Type string
}

// Columns returns the fixed output schema. It is identical for every symbol
// and interval.
func Columns() []Column {
	return []Column{
		{Name: "Date", Type: "DATE"},
		{Name: "Open", Type: "DOUBLE"},
		{Name: "High", Type: "DOUBLE"},
		{Name: "Low", Type: "DOUBLE"},
		{Name: "Close", Type: "DOUBLE"},
		{Name: "Adj Close", Type: "DOUBLE"},
		{Name: "Volume", Type: "BIGINT"},
	}
}
