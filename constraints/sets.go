// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package constraints

import (
	"slices"
	"strings"
	"time"

	"cloudeng.io/algo/container/bitmap"
	"cloudeng.io/datepicker"
)

// WeekdaySet is a set of days of the week backed by a bitmap. A nil set
// is "undefined", which is distinct from a defined but empty set: a rule
// whose WeekdaySet dimension is undefined inherits the global value,
// whereas a defined set, empty or not, replaces it entirely.
type WeekdaySet bitmap.T

// NewWeekdaySet returns a defined WeekdaySet containing the given days.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	s := bitmap.New(7)
	for _, d := range days {
		s.Set(int(d))
	}
	return WeekdaySet(s)
}

// Defined returns true if the set is defined, even if empty.
func (ws WeekdaySet) Defined() bool {
	return ws != nil
}

// Contains returns true if the set contains the given day of the week.
func (ws WeekdaySet) Contains(d time.Weekday) bool {
	return bitmap.T(ws).IsSet(int(d))
}

func (ws WeekdaySet) String() string {
	var out strings.Builder
	for d := range bitmap.T(ws).AllSet(0, 7) {
		if out.Len() > 0 {
			out.WriteString(", ")
		}
		out.WriteString(time.Weekday(d).String())
	}
	return out.String()
}

// MonthSet is a set of calendar months (1-12) backed by a bitmap, with
// the same defined/undefined distinction as WeekdaySet.
type MonthSet bitmap.T

// NewMonthSet returns a defined MonthSet containing the given months.
func NewMonthSet(months ...datepicker.Month) MonthSet {
	s := bitmap.New(13)
	for _, m := range months {
		s.Set(int(m))
	}
	return MonthSet(s)
}

// Defined returns true if the set is defined, even if empty.
func (ms MonthSet) Defined() bool {
	return ms != nil
}

// Contains returns true if the set contains the given month.
func (ms MonthSet) Contains(m datepicker.Month) bool {
	return bitmap.T(ms).IsSet(int(m))
}

func (ms MonthSet) String() string {
	var out strings.Builder
	for m := range bitmap.T(ms).AllSet(0, 13) {
		if out.Len() > 0 {
			out.WriteString(", ")
		}
		out.WriteString(datepicker.Month(m).String())
	}
	return out.String()
}

// YearSet is a set of years. A nil set is undefined; a defined set,
// empty or not, replaces an inherited one.
type YearSet []int

// NewYearSet returns a defined YearSet containing the given years.
func NewYearSet(years ...int) YearSet {
	s := slices.Clone(years)
	if s == nil {
		s = YearSet{}
	}
	return s
}

// Defined returns true if the set is defined, even if empty.
func (ys YearSet) Defined() bool {
	return ys != nil
}

// Contains returns true if the set contains the given year.
func (ys YearSet) Contains(year int) bool {
	return slices.Contains(ys, year)
}
