// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

import "time"

// The conversions between a CalendarDate and its proleptic day number
// follow the standard civil-from-days/days-from-civil decomposition into
// 400 year eras (146097 days each). Day number 0 is 1970-01-01, a
// Thursday; earlier dates have negative day numbers.

const (
	daysPerEra   = 146097
	epochShift   = 719468 // days from 0000-03-01 to 1970-01-01
	epochWeekday = 4      // 1970-01-01 was a Thursday
)

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// DayNumber returns the number of days between the epoch 1970-01-01 and
// the date, negative for dates before the epoch.
func (cd CalendarDate) DayNumber() int {
	y := cd.Year
	if cd.Month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	mp := int(cd.Month) + 9
	if cd.Month > 2 {
		mp = int(cd.Month) - 3
	}
	doy := (153*mp+2)/5 + cd.Day - 1         // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy   // [0, 146096]
	return era*daysPerEra + doe - epochShift // may be negative
}

func calendarDateFromDayNumber(dn int) CalendarDate {
	z := dn + epochShift
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if mp >= 10 {
		month = mp - 9
	}
	year := yoe + era*400
	if month <= 2 {
		year++
	}
	return CalendarDate{Year: year, Month: Month(month), Day: day}
}

// Weekday returns the day of the week for the date, computed directly
// from the proleptic day number rather than via time.Time, so it cannot
// be skewed by timezone conversion.
func (cd CalendarDate) Weekday() time.Weekday {
	wd := (cd.DayNumber() + epochWeekday) % 7
	if wd < 0 {
		wd += 7
	}
	return time.Weekday(wd)
}

// AddDays returns the date n calendar days later (earlier for negative
// n), rolling through month, year and leap year boundaries. It is exact
// for arbitrarily large |n|.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return calendarDateFromDayNumber(cd.DayNumber() + n)
}

// AddMonths returns the date n whole months later (earlier for negative
// n). If the day does not exist in the target month it is clamped to the
// last day of that month: Jan 31 plus one month is Feb 28 (or Feb 29 in
// a leap year), never Mar 3 and never an error.
func (cd CalendarDate) AddMonths(n int) CalendarDate {
	months := cd.Year*12 + int(cd.Month) - 1 + n
	year := floorDiv(months, 12)
	month := Month(months - year*12 + 1)
	day := cd.Day
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return CalendarDate{Year: year, Month: month, Day: day}
}

// AddYears returns the date n whole years later (earlier for negative
// n), clamping Feb 29 to Feb 28 in non leap years.
func (cd CalendarDate) AddYears(n int) CalendarDate {
	year := cd.Year + n
	day := cd.Day
	if last := DaysInMonth(year, cd.Month); day > last {
		day = last
	}
	return CalendarDate{Year: year, Month: cd.Month, Day: day}
}

// StartOfMonth returns the first day of the date's month.
func (cd CalendarDate) StartOfMonth() CalendarDate {
	return CalendarDate{Year: cd.Year, Month: cd.Month, Day: 1}
}

// EndOfMonth returns the last day of the date's month.
func (cd CalendarDate) EndOfMonth() CalendarDate {
	return CalendarDate{Year: cd.Year, Month: cd.Month, Day: DaysInMonth(cd.Year, cd.Month)}
}

// DaysBetween returns the number of days from a to b, negative if b is
// earlier than a. DaysBetween(a, a) is zero.
func DaysBetween(a, b CalendarDate) int {
	return b.DayNumber() - a.DayNumber()
}
