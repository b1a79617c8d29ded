package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// DateLayout is the wire format of every date value.
const DateLayout = "2006-01-02"

// Date is a calendar day read from a date or timestamp column and
// written to JSON as "YYYY-MM-DD". Nullable columns use *Date.
type Date struct {
	time.Time
}

// NewDate returns midnight UTC of the given day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// String returns the date in DateLayout.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

var errInfiniteDate = errors.New("infinite dates are not supported")

// ScanDate implements pgtype.DateScanner.
func (d *Date) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		*d = Date{}
		return nil
	}
	if v.InfinityModifier != pgtype.Finite {
		return errInfiniteDate
	}
	d.Time = v.Time
	return nil
}

// ScanTimestamp implements pgtype.TimestampScanner.
func (d *Date) ScanTimestamp(v pgtype.Timestamp) error {
	if !v.Valid {
		*d = Date{}
		return nil
	}
	if v.InfinityModifier != pgtype.Finite {
		return errInfiniteDate
	}
	d.Time = v.Time
	return nil
}

// ScanTimestamptz implements pgtype.TimestamptzScanner.
func (d *Date) ScanTimestamptz(v pgtype.Timestamptz) error {
	if !v.Valid {
		*d = Date{}
		return nil
	}
	if v.InfinityModifier != pgtype.Finite {
		return errInfiniteDate
	}
	d.Time = v.Time
	return nil
}
