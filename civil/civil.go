// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package civil

import (
	"cmp"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// IST is Indian Standard Time. The offset is fixed; India has no DST.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// Layout is the canonical storage and wire form.
const Layout = "2006-01-02 15:04:05"

const displayLayout = "Jan 2, 2006, 15:04"

var (
	ErrInvalidTimeInput   = errors.New("invalid time input")
	ErrMalformedTimestamp = errors.New("malformed timestamp")
)

// wallClockLayouts are read as IST wall-clock values, in order of preference.
var wallClockLayouts = []string{
	Layout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// Civil is a calendar date and time of day in IST at one-second resolution.
type Civil struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// FromInstant converts an absolute instant to IST.
func FromInstant(t time.Time) (Civil, error) {
	t = t.In(IST)
	if t.Year() < 0 || t.Year() > 9999 {
		return Civil{}, fmt.Errorf("%w: year %d out of range", ErrInvalidTimeInput, t.Year())
	}
	return Civil{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}, nil
}

// FromWallClock normalizes text entered by an operator or sent by a client.
// Values without an offset are IST wall-clock readings; RFC 3339 values carry
// their own offset and are converted.
func FromWallClock(s string) (Civil, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Civil{}, fmt.Errorf("%w: empty value", ErrInvalidTimeInput)
	}
	// time.Parse accepts fractional seconds the layouts do not mention.
	if strings.ContainsRune(s, '.') {
		return Civil{}, fmt.Errorf("%w: fractional seconds in %q", ErrInvalidTimeInput, s)
	}

	for _, layout := range wallClockLayouts {
		if t, err := time.ParseInLocation(layout, s, IST); err == nil {
			return FromInstant(t)
		}
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return FromInstant(t)
	}

	return Civil{}, fmt.Errorf("%w: %q", ErrInvalidTimeInput, s)
}

// Format renders c as YYYY-MM-DD HH:MM:SS.
func Format(c Civil) string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

// Parse is the strict inverse of Format.
func Parse(s string) (Civil, error) {
	if len(s) != len(Layout) {
		return Civil{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch i {
		case 4, 7:
			if ch != '-' {
				return Civil{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
			}
		case 10:
			if ch != ' ' {
				return Civil{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
			}
		case 13, 16:
			if ch != ':' {
				return Civil{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
			}
		default:
			if ch < '0' || ch > '9' {
				return Civil{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
			}
		}
	}

	c := Civil{
		Year:   digits(s[0:4]),
		Month:  digits(s[5:7]),
		Day:    digits(s[8:10]),
		Hour:   digits(s[11:13]),
		Minute: digits(s[14:16]),
		Second: digits(s[17:19]),
	}
	if !c.Valid() {
		return Civil{}, fmt.Errorf("%w: %q is not a calendar time", ErrMalformedTimestamp, s)
	}
	return c, nil
}

// digits decodes a run of ASCII digits already checked by Parse.
func digits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// Display renders c for people, e.g. "Mar 5, 2024, 14:30". Never parse it back.
func Display(c Civil) string {
	return c.Time().Format(displayLayout)
}

// Order is the result of Compare.
type Order int

const (
	Before Order = -1
	Equal  Order = 0
	After  Order = 1
)

func (o Order) String() string {
	switch o {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "equal"
	}
}

// Compare orders a relative to b.
func Compare(a, b Civil) Order {
	for _, d := range [...]int{
		cmp.Compare(a.Year, b.Year),
		cmp.Compare(a.Month, b.Month),
		cmp.Compare(a.Day, b.Day),
		cmp.Compare(a.Hour, b.Hour),
		cmp.Compare(a.Minute, b.Minute),
		cmp.Compare(a.Second, b.Second),
	} {
		if d != 0 {
			return Order(d)
		}
	}
	return Equal
}

// SameDay reports whether a and b fall on the same IST calendar day.
func SameDay(a, b Civil) bool {
	return a.Year == b.Year && a.Month == b.Month && a.Day == b.Day
}

// DayBounds returns the first and last second of the day containing c.
func DayBounds(c Civil) (start, end Civil) {
	start = Civil{Year: c.Year, Month: c.Month, Day: c.Day}
	end = Civil{Year: c.Year, Month: c.Month, Day: c.Day, Hour: 23, Minute: 59, Second: 59}
	return start, end
}

// Valid reports whether c names a real calendar date and clock time.
func (c Civil) Valid() bool {
	if c.Year < 0 || c.Year > 9999 || c.Month < 1 || c.Month > 12 {
		return false
	}
	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 || c.Second < 0 || c.Second > 59 {
		return false
	}
	return c.Day >= 1 && c.Day <= daysIn(c.Year, c.Month)
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (c Civil) IsZero() bool { return c == Civil{} }

// Time returns c as an instant in IST.
func (c Civil) Time() time.Time {
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, 0, IST)
}

// DateString returns the YYYY-MM-DD part of the canonical form.
func (c Civil) DateString() string {
	return Format(c)[:10]
}

func (c Civil) String() string { return Format(c) }

func (c Civil) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(Format(c))
}

func (c *Civil) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Civil{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedTimestamp, err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Scan reads the canonical TEXT column form.
func (c *Civil) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrMalformedTimestamp, src)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value writes c in canonical form.
func (c Civil) Value() (driver.Value, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidTimeInput, c)
	}
	return Format(c), nil
}
