// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package constraints_test

import (
	"reflect"
	"testing"
	"time"

	"cloudeng.io/datepicker"
	"cloudeng.io/datepicker/constraints"
)

func TestReasonsMatchPredicate(t *testing.T) {
	// The reasons list must be non empty exactly when the predicate
	// reports disabled, for every date, under a configuration that
	// exercises every dimension.
	e := constraints.New(constraints.Config{
		Global: constraints.Dimensions{
			MinDate:          cdp(2025, 2, 10),
			MaxDate:          cdp(2025, 11, 20),
			DisabledDates:    datepicker.CalendarDateList{ncd(2025, 6, 18)},
			EnabledDates:     datepicker.CalendarDateList{ncd(2025, 6, 21), ncd(2025, 1, 4)},
			DisabledWeekdays: constraints.NewWeekdaySet(time.Saturday, time.Sunday),
			DisabledMonths:   constraints.NewMonthSet(8),
			DisabledYears:    constraints.NewYearSet(2026),
		},
		Rules: []constraints.Rule{{
			Scope:    constraints.RecurringMonths{Months: constraints.NewMonthSet(7)},
			Priority: 1,
			Dimensions: constraints.Dimensions{
				DisabledWeekdays: constraints.NewWeekdaySet(time.Wednesday),
			},
		}},
	})
	d := ncd(2025, 1, 1)
	for d.Year < 2027 {
		disabled := e.DateDisabled(d)
		reasons := e.DisabledReasons(d)
		if got, want := len(reasons) > 0, disabled; got != want {
			t.Fatalf("%v: reasons %v disagree with predicate %v", d, reasons, disabled)
		}
		d = d.AddDays(1)
	}
}

func TestMultipleReasons(t *testing.T) {
	// A Saturday outside the bounds triggers two independent dimensions.
	e := constraints.New(constraints.Config{
		Global: constraints.Dimensions{
			MinDate:          cdp(2025, 6, 10),
			DisabledWeekdays: constraints.NewWeekdaySet(time.Saturday),
		},
	})
	got := e.DisabledReasons(ncd(2025, 6, 7)) // a Saturday before the min date
	want := []string{
		"date is before the earliest selectable date",
		"day of the week is not selectable",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMessageOverrides(t *testing.T) {
	e := constraints.New(constraints.Config{
		Global: constraints.Dimensions{
			MinDate:          cdp(2025, 6, 10),
			DisabledWeekdays: constraints.NewWeekdaySet(time.Saturday),
		},
		Messages: constraints.Messages{
			constraints.ReasonBeforeMinDate: "too early",
		},
	})
	got := e.DisabledReasons(ncd(2025, 6, 7))
	// The overridden kind uses its message, the rest fall back to the
	// default English text.
	want := []string{"too early", "day of the week is not selectable"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReasonNames(t *testing.T) {
	for _, r := range []constraints.Reason{
		constraints.ReasonBeforeMinDate,
		constraints.ReasonAfterMaxDate,
		constraints.ReasonDateDisabled,
		constraints.ReasonWeekdayDisabled,
		constraints.ReasonWeekdayNotEnabled,
		constraints.ReasonMonthDisabled,
		constraints.ReasonMonthNotEnabled,
		constraints.ReasonYearDisabled,
		constraints.ReasonYearNotEnabled,
	} {
		parsed, err := constraints.ParseReason(r.String())
		if err != nil {
			t.Errorf("failed: %v: %v", r, err)
			continue
		}
		if got, want := parsed, r; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if constraints.Messages(nil).Text(r) == "" {
			t.Errorf("%v: missing default message", r)
		}
	}
	if _, err := constraints.ParseReason("no-such-reason"); err == nil {
		t.Errorf("failed to return an error for an unknown reason name")
	}
}
