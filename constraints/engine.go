// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package constraints decides, for an immutable configuration snapshot,
// whether a date, month, year or two endpoint range is selectable and
// why a date is not. Constraints are organized as a global scope plus
// prioritized period rules; for any date at most one rule is
// authoritative and each of its defined dimensions replaces the global
// one outright.
//
// An Engine is compiled once from a Config and holds no mutable state,
// so it is safe for concurrent use by multiple readers without locking.
// Updating constraints means compiling a fresh Engine and swapping the
// reference; old and new engines may coexist.
package constraints

import (
	"slices"

	"cloudeng.io/datepicker"
)

// Engine answers selectability queries for a compiled Config. It never
// panics for any pair of valid dates: a self contradictory configuration
// (eg. MinDate after MaxDate) has not been rejected upstream but still
// evaluates deterministically, typically to "nothing is selectable".
type Engine struct {
	global   Dimensions
	rules    []Rule
	messages Messages
}

// New compiles the given configuration. The Config and everything it
// references must not be mutated afterwards.
func New(cfg Config) *Engine {
	return &Engine{
		global:   cfg.Global,
		rules:    slices.Clone(cfg.Rules),
		messages: cfg.Messages,
	}
}

// authoritative returns the single rule governing d, or nil if no rule's
// scope contains d. The strict comparison keeps the earliest rule on a
// priority tie.
func (e *Engine) authoritative(d datepicker.CalendarDate) *Rule {
	var best *Rule
	for i := range e.rules {
		r := &e.rules[i]
		if r.Scope == nil || !r.Scope.Contains(d) {
			continue
		}
		if best == nil || r.Priority > best.Priority {
			best = r
		}
	}
	return best
}

// effective resolves the dimensions governing d: each dimension defined
// by the authoritative rule replaces the global one, undefined
// dimensions fall back to the global scope. Values are never merged
// across scopes.
func (e *Engine) effective(d datepicker.CalendarDate) Dimensions {
	dims := e.global
	r := e.authoritative(d)
	if r == nil {
		return dims
	}
	if r.MinDate != nil {
		dims.MinDate = r.MinDate
	}
	if r.MaxDate != nil {
		dims.MaxDate = r.MaxDate
	}
	if r.DisabledDates != nil {
		dims.DisabledDates = r.DisabledDates
	}
	if r.EnabledDates != nil {
		dims.EnabledDates = r.EnabledDates
	}
	if r.DisabledWeekdays.Defined() {
		dims.DisabledWeekdays = r.DisabledWeekdays
	}
	if r.EnabledWeekdays.Defined() {
		dims.EnabledWeekdays = r.EnabledWeekdays
	}
	if r.DisabledMonths.Defined() {
		dims.DisabledMonths = r.DisabledMonths
	}
	if r.EnabledMonths.Defined() {
		dims.EnabledMonths = r.EnabledMonths
	}
	if r.DisabledYears.Defined() {
		dims.DisabledYears = r.DisabledYears
	}
	if r.EnabledYears.Defined() {
		dims.EnabledYears = r.EnabledYears
	}
	if r.MinRange != nil {
		dims.MinRange = r.MinRange
	}
	if r.MaxRange != nil {
		dims.MaxRange = r.MaxRange
	}
	return dims
}

// evaluate returns the reasons d is disabled, in evaluation order, or an
// empty slice if d is selectable. DateDisabled and DisabledReasons share
// this single path so that the reasons list is non empty exactly when
// the predicate reports disabled. With firstOnly set the scan stops at
// the first triggered dimension.
func (e *Engine) evaluate(d datepicker.CalendarDate, firstOnly bool) []Reason {
	dims := e.effective(d)
	var reasons []Reason
	if dims.MinDate != nil && d.Before(*dims.MinDate) {
		reasons = append(reasons, ReasonBeforeMinDate)
		if firstOnly {
			return reasons
		}
	}
	if dims.MaxDate != nil && d.After(*dims.MaxDate) {
		reasons = append(reasons, ReasonAfterMaxDate)
		if firstOnly {
			return reasons
		}
	}
	// The EnabledDates whitelist force-enables a date against every
	// disable dimension below, but not against the bounds above.
	if dims.EnabledDates.Contains(d) {
		return reasons
	}
	if dims.DisabledDates.Contains(d) {
		reasons = append(reasons, ReasonDateDisabled)
		if firstOnly {
			return reasons
		}
	}
	wd := d.Weekday()
	if dims.DisabledWeekdays.Defined() && dims.DisabledWeekdays.Contains(wd) {
		reasons = append(reasons, ReasonWeekdayDisabled)
		if firstOnly {
			return reasons
		}
	}
	if dims.EnabledWeekdays.Defined() && !dims.EnabledWeekdays.Contains(wd) {
		reasons = append(reasons, ReasonWeekdayNotEnabled)
		if firstOnly {
			return reasons
		}
	}
	if dims.DisabledMonths.Defined() && dims.DisabledMonths.Contains(d.Month) {
		reasons = append(reasons, ReasonMonthDisabled)
		if firstOnly {
			return reasons
		}
	}
	if dims.EnabledMonths.Defined() && !dims.EnabledMonths.Contains(d.Month) {
		reasons = append(reasons, ReasonMonthNotEnabled)
		if firstOnly {
			return reasons
		}
	}
	if dims.DisabledYears.Defined() && dims.DisabledYears.Contains(d.Year) {
		reasons = append(reasons, ReasonYearDisabled)
		if firstOnly {
			return reasons
		}
	}
	if dims.EnabledYears.Defined() && !dims.EnabledYears.Contains(d.Year) {
		reasons = append(reasons, ReasonYearNotEnabled)
	}
	return reasons
}

// DateDisabled returns true if the date is not selectable under the
// dimensions governing it.
func (e *Engine) DateDisabled(d datepicker.CalendarDate) bool {
	return len(e.evaluate(d, true)) > 0
}

// RangeValid returns true if a two endpoint selection of start and end
// is permitted: both endpoints must individually be selectable and the
// inclusive day count between them must lie within the MinRange/MaxRange
// bounds resolved in the start date's scope. The endpoints may be
// supplied in either order. Undefined bounds impose no limit.
func (e *Engine) RangeValid(start, end datepicker.CalendarDate) bool {
	if end.Before(start) {
		start, end = end, start
	}
	if e.DateDisabled(start) || e.DateDisabled(end) {
		return false
	}
	dims := e.effective(start)
	days := datepicker.DaysBetween(start, end) + 1
	if dims.MinRange != nil && days < *dims.MinRange {
		return false
	}
	if dims.MaxRange != nil && days > *dims.MaxRange {
		return false
	}
	return true
}

// MonthDisabled returns true only if every day of the given month is
// disabled under the date level rules. It exists as a navigation
// shortcut for pickers and is derived from, never independent of, the
// date level evaluation.
func (e *Engine) MonthDisabled(year int, month datepicker.Month) bool {
	for day := 1; day <= datepicker.DaysInMonth(year, month); day++ {
		if !e.DateDisabled(datepicker.CalendarDate{Year: year, Month: month, Day: day}) {
			return false
		}
	}
	return true
}

// YearDisabled returns true only if every month of the given year is
// disabled.
func (e *Engine) YearDisabled(year int) bool {
	for month := datepicker.Month(1); month <= 12; month++ {
		if !e.MonthDisabled(year, month) {
			return false
		}
	}
	return true
}
