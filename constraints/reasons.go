// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package constraints

import (
	"fmt"

	"cloudeng.io/datepicker"
)

// Reason identifies the constraint dimension that disabled a date.
type Reason int

const (
	ReasonBeforeMinDate Reason = iota
	ReasonAfterMaxDate
	ReasonDateDisabled
	ReasonWeekdayDisabled
	ReasonWeekdayNotEnabled
	ReasonMonthDisabled
	ReasonMonthNotEnabled
	ReasonYearDisabled
	ReasonYearNotEnabled
	numReasons
)

var reasonNames = [numReasons]string{
	ReasonBeforeMinDate:     "before-min-date",
	ReasonAfterMaxDate:      "after-max-date",
	ReasonDateDisabled:      "date-disabled",
	ReasonWeekdayDisabled:   "weekday-disabled",
	ReasonWeekdayNotEnabled: "weekday-not-enabled",
	ReasonMonthDisabled:     "month-disabled",
	ReasonMonthNotEnabled:   "month-not-enabled",
	ReasonYearDisabled:      "year-disabled",
	ReasonYearNotEnabled:    "year-not-enabled",
}

var defaultMessages = [numReasons]string{
	ReasonBeforeMinDate:     "date is before the earliest selectable date",
	ReasonAfterMaxDate:      "date is after the latest selectable date",
	ReasonDateDisabled:      "date is not selectable",
	ReasonWeekdayDisabled:   "day of the week is not selectable",
	ReasonWeekdayNotEnabled: "day of the week is not among the selectable days",
	ReasonMonthDisabled:     "month is not selectable",
	ReasonMonthNotEnabled:   "month is not among the selectable months",
	ReasonYearDisabled:      "year is not selectable",
	ReasonYearNotEnabled:    "year is not among the selectable years",
}

// String returns the stable name of the reason, as used for message
// override keys.
func (r Reason) String() string {
	if r < 0 || r >= numReasons {
		return fmt.Sprintf("reason(%d)", int(r))
	}
	return reasonNames[r]
}

// ParseReason parses a reason name as returned by Reason.String.
func ParseReason(name string) (Reason, error) {
	for r, n := range reasonNames {
		if n == name {
			return Reason(r), nil
		}
	}
	return 0, fmt.Errorf("unknown reason: %q", name)
}

// Messages overrides the display text for reasons. Reasons without an
// override fall back to a default English message.
type Messages map[Reason]string

// Text returns the message for the given reason.
func (m Messages) Text(r Reason) string {
	if text, ok := m[r]; ok {
		return text
	}
	if r < 0 || r >= numReasons {
		return fmt.Sprintf("reason(%d)", int(r))
	}
	return defaultMessages[r]
}

// DisabledReasons returns one human readable message per constraint
// dimension that disables the date, in evaluation order. The returned
// list is non empty exactly when DateDisabled returns true; callers join
// the messages for display.
func (e *Engine) DisabledReasons(d datepicker.CalendarDate) []string {
	reasons := e.evaluate(d, false)
	if len(reasons) == 0 {
		return nil
	}
	msgs := make([]string, len(reasons))
	for i, r := range reasons {
		msgs[i] = e.messages.Text(r)
	}
	return msgs
}
