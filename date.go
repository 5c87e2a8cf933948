// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// CalendarDate represents a civil date as a year, month and day in the
// proleptic Gregorian calendar, independent of time of day and timezone.
// It is an immutable value type: all arithmetic returns a new instance.
// Every CalendarDate obtained from NewCalendarDate, ParseISO, Today or
// the arithmetic methods represents a real calendar date.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// ErrInvalidDate is returned, wrapped, for any (year, month, day) or ISO
// string that does not denote a real calendar date.
var ErrInvalidDate = errors.New("invalid calendar date")

// NewCalendarDate returns the CalendarDate for the given year, month and
// day, or an error if the combination is not a real calendar date.
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	if month < 1 || month > 12 {
		return CalendarDate{}, fmt.Errorf("month %d out of range: %w", month, ErrInvalidDate)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return CalendarDate{}, fmt.Errorf("day %d out of range for %v %v: %w", day, month, year, ErrInvalidDate)
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// CalendarDateFromTime returns the CalendarDate for the given time in
// that time's location.
func CalendarDateFromTime(when time.Time) CalendarDate {
	return CalendarDate{Year: when.Year(), Month: Month(when.Month()), Day: when.Day()}
}

// Today returns the current civil date in the given location, or in the
// local timezone if loc is nil. Together with TodayIn and
// CalendarDateFromTime it is the only entry point that consults wall
// clock time.
func Today(loc *time.Location) CalendarDate {
	if loc == nil {
		loc = time.Local
	}
	return CalendarDateFromTime(time.Now().In(loc))
}

// TodayIn returns the current civil date in the named IANA timezone,
// eg. "America/New_York". An empty name selects the local timezone.
func TodayIn(tz string) (CalendarDate, error) {
	if tz == "" {
		return Today(nil), nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return CalendarDate{}, err
	}
	return Today(loc), nil
}

// ParseISO parses a date in strict ISO 8601 YYYY-MM-DD format with zero
// padded components and no timezone suffix. Malformed strings and out of
// range components return an error wrapping ErrInvalidDate; a value such
// as 2025-02-30 is rejected, never normalized to a different date.
func ParseISO(val string) (CalendarDate, error) {
	if len(val) != 10 || val[4] != '-' || val[7] != '-' {
		return CalendarDate{}, fmt.Errorf("%q is not in YYYY-MM-DD format: %w", val, ErrInvalidDate)
	}
	year, ok1 := atoi(val[0:4])
	month, ok2 := atoi(val[5:7])
	day, ok3 := atoi(val[8:10])
	if !ok1 || !ok2 || !ok3 {
		return CalendarDate{}, fmt.Errorf("%q contains non-numeric components: %w", val, ErrInvalidDate)
	}
	return NewCalendarDate(year, Month(month), day)
}

func atoi(val string) (int, bool) {
	n := 0
	for i := 0; i < len(val); i++ {
		if val[i] < '0' || val[i] > '9' {
			return 0, false
		}
		n = n*10 + int(val[i]-'0')
	}
	return n, true
}

// ISO returns the date in canonical YYYY-MM-DD format.
func (cd CalendarDate) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

func (cd CalendarDate) String() string {
	return cd.ISO()
}

// Same returns true if the two dates are the same civil date.
func (cd CalendarDate) Same(other CalendarDate) bool {
	return cd == other
}

// Before returns true if cd is strictly earlier than other, ordering by
// (year, month, day).
func (cd CalendarDate) Before(other CalendarDate) bool {
	if cd.Year != other.Year {
		return cd.Year < other.Year
	}
	if cd.Month != other.Month {
		return cd.Month < other.Month
	}
	return cd.Day < other.Day
}

// After returns true if cd is strictly later than other.
func (cd CalendarDate) After(other CalendarDate) bool {
	return other.Before(cd)
}

// Between returns true if cd lies within the closed interval delimited
// by a and b. The bounds may be supplied in either order.
func (cd CalendarDate) Between(a, b CalendarDate) bool {
	if b.Before(a) {
		a, b = b, a
	}
	return !cd.Before(a) && !cd.After(b)
}

// CalendarDateList represents a list of CalendarDate values.
type CalendarDateList []CalendarDate

// Parse a comma separated list of ISO 8601 dates.
func (cdl *CalendarDateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	dl := make(CalendarDateList, 0, len(parts))
	for _, part := range parts {
		cd, err := ParseISO(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		dl = append(dl, cd)
	}
	*cdl = dl
	return nil
}

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, cd := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(cd.ISO())
	}
	return out.String()
}

// Contains returns true if the list contains the given date.
func (cdl CalendarDateList) Contains(cd CalendarDate) bool {
	for _, d := range cdl {
		if d == cd {
			return true
		}
	}
	return false
}
