package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Date layouts used on the wire. Rent-roll style records use slashes,
// transaction style records use dashes.
const (
	SlashDateLayout = "2006/01/02"
	DashDateLayout  = "2006-01-02"
)

// Period narrows a collection by year, month and day. A zero field means
// "all" at that level.
type Period struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
	Day   int `json:"day,omitempty"`
}

// CurrentMonth returns the year/month period containing t.
func CurrentMonth(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// IsZero reports whether the period selects everything.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0 && p.Day == 0
}

// Validate checks the ranges and that each level has its parent.
func (p Period) Validate() error {
	if p.Year < 0 {
		return fmt.Errorf("invalid year: %d", p.Year)
	}
	if p.Month < 0 || p.Month > 12 {
		return fmt.Errorf("invalid month: %d", p.Month)
	}
	if p.Day < 0 || p.Day > 31 {
		return fmt.Errorf("invalid day: %d", p.Day)
	}
	if p.Month != 0 && p.Year == 0 {
		return fmt.Errorf("month requires a year")
	}
	if p.Day != 0 && p.Month == 0 {
		return fmt.Errorf("day requires a month")
	}
	return nil
}

// Matches reports whether date falls inside the period. Unparseable dates
// only match the empty period.
func (p Period) Matches(date string) bool {
	if p.IsZero() {
		return true
	}
	y, m, d, ok := ParseDate(date)
	if !ok {
		return false
	}
	if p.Year != 0 && y != p.Year {
		return false
	}
	if p.Month != 0 && m != p.Month {
		return false
	}
	if p.Day != 0 && d != p.Day {
		return false
	}
	return true
}

// Query encodes the non-zero levels as year/month/day query parameters.
func (p Period) Query() url.Values {
	q := url.Values{}
	if p.Year != 0 {
		q.Set("year", strconv.Itoa(p.Year))
	}
	if p.Month != 0 {
		q.Set("month", strconv.Itoa(p.Month))
	}
	if p.Day != 0 {
		q.Set("day", strconv.Itoa(p.Day))
	}
	return q
}

// String renders the period as yyyy, yyyy-mm or yyyy-mm-dd ("all" when empty).
func (p Period) String() string {
	switch {
	case p.Day != 0:
		return fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, p.Day)
	case p.Month != 0:
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	case p.Year != 0:
		return fmt.Sprintf("%04d", p.Year)
	default:
		return "all"
	}
}

// ParseDate splits a yyyy/MM/dd or yyyy-MM-dd string (optionally followed by
// a time part) into its numeric parts.
func ParseDate(s string) (year, month, day int, ok bool) {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var err error
	if year, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(parts[1]); err != nil || month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	if day, err = strconv.Atoi(parts[2]); err != nil || day < 1 || day > 31 {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// NormalizeDate rewrites a parseable date into layout-style zero padded form
// using sep as the separator. Unparseable input is returned unchanged.
func NormalizeDate(s string, sep string) string {
	y, m, d, ok := ParseDate(s)
	if !ok {
		return s
	}
	return fmt.Sprintf("%04d%s%02d%s%02d", y, sep, m, sep, d)
}
