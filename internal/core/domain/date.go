package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")
var ErrInvalidClock = errors.New("invalid time")

// Date is a calendar date without a time zone. The zero value means "no date".
type Date struct {
	t time.Time // always midnight UTC
}

// NewDate builds a Date, normalising overflowing months and days the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t as observed in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time { return d.t }

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int { return d.t.Compare(o.t) }

// DaysInMonth reports how many days the date's month has.
func (d Date) DaysInMonth() int {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, b)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Clock is a 24-hour time of day with minute precision.
type Clock struct {
	minutes int
}

// NewClock returns the clock for hour:minute. Out-of-range values are rejected.
func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %d:%d", ErrInvalidClock, hour, minute)
	}
	return Clock{minutes: hour*60 + minute}, nil
}

// MustClock is NewClock for literals known to be valid.
func MustClock(hour, minute int) Clock {
	c, err := NewClock(hour, minute)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseClock accepts "H:MM", "HH:MM" and "HH:MM:SS" (seconds are discarded).
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 || len(parts[1]) != 2 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) == 0 || len(parts[0]) > 2 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
	}
	return NewClock(h, m)
}

func (c Clock) Hour() int   { return c.minutes / 60 }
func (c Clock) Minute() int { return c.minutes % 60 }

// Compare returns -1, 0 or +1.
func (c Clock) Compare(o Clock) int {
	switch {
	case c.minutes < o.minutes:
		return -1
	case c.minutes > o.minutes:
		return 1
	}
	return 0
}

// String renders the zero-padded HH:MM form.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidClock, b)
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
