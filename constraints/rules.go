// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package constraints

import (
	"fmt"

	"cloudeng.io/datepicker"
)

// Dimensions holds one optional value per constraint dimension. In the
// global scope an undefined dimension imposes no constraint; in a rule
// an undefined dimension inherits the global value and a defined one
// replaces it outright, it is never merged with the global value.
type Dimensions struct {
	// MinDate and MaxDate are inclusive selectability bounds.
	MinDate *datepicker.CalendarDate
	MaxDate *datepicker.CalendarDate

	// DisabledDates are individually unselectable dates. EnabledDates,
	// when matched, force-enable a date against every disable dimension
	// except the MinDate/MaxDate bounds. A nil list is undefined.
	DisabledDates datepicker.CalendarDateList
	EnabledDates  datepicker.CalendarDateList

	// DisabledWeekdays disables days of the week; EnabledWeekdays, when
	// defined, disables every day of the week not in the set.
	DisabledWeekdays WeekdaySet
	EnabledWeekdays  WeekdaySet

	// DisabledMonths and EnabledMonths are the month analogs, as are
	// DisabledYears and EnabledYears for years.
	DisabledMonths MonthSet
	EnabledMonths  MonthSet
	DisabledYears  YearSet
	EnabledYears   YearSet

	// MinRange and MaxRange bound the inclusive day count of a two
	// endpoint selection.
	MinRange *int
	MaxRange *int
}

// Scope determines the dates a Rule applies to. It is a closed union:
// the only implementations are DateInterval and RecurringMonths.
type Scope interface {
	// Contains returns true if the scope contains the given date.
	Contains(d datepicker.CalendarDate) bool
	scope()
}

// DateInterval scopes a rule to a closed date interval, inclusive of
// both From and To.
type DateInterval struct {
	From datepicker.CalendarDate
	To   datepicker.CalendarDate
}

// NewDateInterval returns a DateInterval; the bounds may be supplied in
// either order.
func NewDateInterval(from, to datepicker.CalendarDate) DateInterval {
	if to.Before(from) {
		from, to = to, from
	}
	return DateInterval{From: from, To: to}
}

// Contains implements Scope.
func (di DateInterval) Contains(d datepicker.CalendarDate) bool {
	return d.Between(di.From, di.To)
}

func (di DateInterval) scope() {}

func (di DateInterval) String() string {
	return fmt.Sprintf("%v - %v", di.From, di.To)
}

// RecurringMonths scopes a rule to a set of calendar months in every
// year.
type RecurringMonths struct {
	Months MonthSet
}

// Contains implements Scope.
func (rm RecurringMonths) Contains(d datepicker.CalendarDate) bool {
	return rm.Months.Contains(d.Month)
}

func (rm RecurringMonths) scope() {}

func (rm RecurringMonths) String() string {
	return "every " + rm.Months.String()
}

// Rule is a scoped override of constraint dimensions. For any date
// contained by the scopes of several rules, the rule with the highest
// Priority governs that date; rules of equal priority resolve to the one
// earliest in the configured rule list.
type Rule struct {
	Scope    Scope
	Priority int
	Dimensions
}

// Config is the constraint configuration compiled by New. It is treated
// as an immutable snapshot: to change constraints, build a new Config
// and a new Engine rather than mutating an existing one.
type Config struct {
	Global   Dimensions
	Rules    []Rule
	Messages Messages
}
