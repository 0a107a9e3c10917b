package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateOnly wraps time.Time for DATE columns so we can control both
// JSON un/marshaling ("2006-01-02") and SQL driver encoding.
type DateOnly time.Time

const dateOnlyLayout = "2006-01-02"

// UnmarshalJSON accepts plain dates ("2024-03-15") and, as a fallback,
// full RFC3339 timestamps of which only the date part is kept.
func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*d = DateOnly(time.Time{})
		return nil
	}

	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		*d = DateOnly(t)
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("DateOnly.UnmarshalJSON: cannot parse %q: %w", s, err)
	}
	*d = DateOnly(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(dateOnlyLayout))
}

// IsZero reports whether the date was never set.
func (d DateOnly) IsZero() bool {
	return time.Time(d).IsZero()
}

// Month and Year expose the calendar parts used by the month filter.
func (d DateOnly) Month() int { return int(time.Time(d).Month()) }
func (d DateOnly) Year() int  { return time.Time(d).Year() }

func (d DateOnly) String() string {
	return time.Time(d).Format(dateOnlyLayout)
}

// Value implements driver.Valuer so GORM can bind a DATE parameter.
func (d DateOnly) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// Scan implements sql.Scanner so GORM can read DATE back.
func (d *DateOnly) Scan(src interface{}) error {
	if src == nil {
		*d = DateOnly(time.Time{})
		return nil
	}

	switch v := src.(type) {
	case time.Time:
		*d = DateOnly(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("DateOnly.Scan: unsupported type %T", src)
	}
}

func (d *DateOnly) scanString(s string) error {
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return fmt.Errorf("DateOnly.Scan: parse %q: %w", s, err)
	}
	*d = DateOnly(t)
	return nil
}
