// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker_test

import (
	"testing"
	"time"

	"cloudeng.io/datepicker"
)

func TestAddDays(t *testing.T) {
	ncd := newCalendarDate
	for _, tc := range []struct {
		d    datepicker.CalendarDate
		n    int
		want datepicker.CalendarDate
	}{
		{ncd(2024, 1, 1), 0, ncd(2024, 1, 1)},
		{ncd(2024, 2, 28), 1, ncd(2024, 2, 29)},
		{ncd(2023, 2, 28), 1, ncd(2023, 3, 1)},
		{ncd(2024, 3, 1), -1, ncd(2024, 2, 29)},
		{ncd(2024, 12, 31), 1, ncd(2025, 1, 1)},
		{ncd(2025, 1, 1), -1, ncd(2024, 12, 31)},
		{ncd(2024, 1, 31), 31, ncd(2024, 3, 2)},
		{ncd(2000, 1, 1), 36525, ncd(2100, 1, 1)},
		{ncd(2100, 1, 1), -36525, ncd(2000, 1, 1)},
		{ncd(1600, 3, 1), 4 * 146097, ncd(3200, 3, 1)},
		{ncd(1970, 1, 1), -719468, ncd(0, 3, 1)},
	} {
		if got, want := tc.d.AddDays(tc.n), tc.want; got != want {
			t.Errorf("%v add %d days: got %v, want %v", tc.d, tc.n, got, want)
		}
		// Adding the negation must return to the original date.
		if got, want := tc.want.AddDays(-tc.n), tc.d; got != want {
			t.Errorf("%v add %d days: got %v, want %v", tc.want, -tc.n, got, want)
		}
	}
}

func TestAddDaysSequential(t *testing.T) {
	// Walk two years day by day across a leap boundary and verify the
	// sequence against the calendar tables.
	d := newCalendarDate(2023, 12, 1)
	for i := 0; i < 800; i++ {
		next := d.AddDays(1)
		if !next.After(d) {
			t.Fatalf("%v add 1 day: got %v, not later", d, next)
		}
		if got, want := datepicker.DaysBetween(d, next), 1; got != want {
			t.Fatalf("%v to %v: got %v days, want %v", d, next, got, want)
		}
		if d.Day < datepicker.DaysInMonth(d.Year, d.Month) {
			if next.Day != d.Day+1 || next.Month != d.Month || next.Year != d.Year {
				t.Fatalf("%v add 1 day: got %v", d, next)
			}
		} else if next.Day != 1 {
			t.Fatalf("%v add 1 day: got %v, want the first of the next month", d, next)
		}
		d = next
	}
}

func TestAddMonthsClamping(t *testing.T) {
	ncd := newCalendarDate
	for _, tc := range []struct {
		d    datepicker.CalendarDate
		n    int
		want datepicker.CalendarDate
	}{
		{ncd(2024, 1, 31), 1, ncd(2024, 2, 29)}, // clamp, not overflow to Mar 3
		{ncd(2025, 1, 31), 1, ncd(2025, 2, 28)},
		{ncd(2024, 1, 31), 3, ncd(2024, 4, 30)},
		{ncd(2024, 3, 31), -1, ncd(2024, 2, 29)},
		{ncd(2024, 10, 31), 1, ncd(2024, 11, 30)},
		{ncd(2024, 11, 30), 1, ncd(2024, 12, 30)},
		{ncd(2024, 6, 15), 0, ncd(2024, 6, 15)},
		{ncd(2024, 12, 31), 1, ncd(2025, 1, 31)},
		{ncd(2024, 1, 15), -1, ncd(2023, 12, 15)},
		{ncd(2024, 1, 31), 25, ncd(2026, 2, 28)},
		{ncd(2024, 1, 31), -11, ncd(2023, 2, 28)},
		{ncd(2024, 2, 29), 12, ncd(2025, 2, 28)},
	} {
		if got, want := tc.d.AddMonths(tc.n), tc.want; got != want {
			t.Errorf("%v add %d months: got %v, want %v", tc.d, tc.n, got, want)
		}
	}
}

func TestAddYearsClamping(t *testing.T) {
	ncd := newCalendarDate
	for _, tc := range []struct {
		d    datepicker.CalendarDate
		n    int
		want datepicker.CalendarDate
	}{
		{ncd(2024, 2, 29), 1, ncd(2025, 2, 28)},
		{ncd(2024, 2, 29), 4, ncd(2028, 2, 29)},
		{ncd(2024, 2, 29), -1, ncd(2023, 2, 28)},
		{ncd(2024, 2, 29), 76, ncd(2100, 2, 28)}, // 2100 is not a leap year
		{ncd(2025, 6, 15), 10, ncd(2035, 6, 15)},
		{ncd(2025, 6, 15), -30, ncd(1995, 6, 15)},
	} {
		if got, want := tc.d.AddYears(tc.n), tc.want; got != want {
			t.Errorf("%v add %d years: got %v, want %v", tc.d, tc.n, got, want)
		}
	}
}

func TestStartEndOfMonth(t *testing.T) {
	ncd := newCalendarDate
	for _, tc := range []struct {
		d     datepicker.CalendarDate
		start datepicker.CalendarDate
		end   datepicker.CalendarDate
	}{
		{ncd(2024, 2, 15), ncd(2024, 2, 1), ncd(2024, 2, 29)},
		{ncd(2025, 2, 1), ncd(2025, 2, 1), ncd(2025, 2, 28)},
		{ncd(2025, 12, 31), ncd(2025, 12, 1), ncd(2025, 12, 31)},
		{ncd(2025, 4, 10), ncd(2025, 4, 1), ncd(2025, 4, 30)},
	} {
		if got, want := tc.d.StartOfMonth(), tc.start; got != want {
			t.Errorf("%v start of month: got %v, want %v", tc.d, got, want)
		}
		if got, want := tc.d.EndOfMonth(), tc.end; got != want {
			t.Errorf("%v end of month: got %v, want %v", tc.d, got, want)
		}
	}
}

func TestWeekday(t *testing.T) {
	ncd := newCalendarDate
	for _, tc := range []struct {
		d    datepicker.CalendarDate
		want time.Weekday
	}{
		{ncd(1970, 1, 1), time.Thursday},
		{ncd(2000, 1, 1), time.Saturday},
		{ncd(2024, 2, 29), time.Thursday},
		{ncd(2025, 6, 1), time.Sunday},
		{ncd(2025, 6, 7), time.Saturday},
		{ncd(1900, 1, 1), time.Monday},
	} {
		if got, want := tc.d.Weekday(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.d, got, want)
		}
		// Must agree with the conversion point used for formatting.
		if got, want := tc.d.Weekday(), tc.d.Time(nil).Weekday(); got != want {
			t.Errorf("%v: weekday %v disagrees with time.Time %v", tc.d, got, want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	ncd := newCalendarDate
	for _, tc := range []struct {
		a, b datepicker.CalendarDate
		want int
	}{
		{ncd(2025, 6, 1), ncd(2025, 6, 1), 0},
		{ncd(2025, 6, 1), ncd(2025, 6, 5), 4},
		{ncd(2025, 6, 5), ncd(2025, 6, 1), -4},
		{ncd(2024, 2, 28), ncd(2024, 3, 1), 2},
		{ncd(2025, 2, 28), ncd(2025, 3, 1), 1},
		{ncd(2024, 1, 1), ncd(2025, 1, 1), 366},
		{ncd(2000, 1, 1), ncd(2100, 1, 1), 36525},
	} {
		if got, want := datepicker.DaysBetween(tc.a, tc.b), tc.want; got != want {
			t.Errorf("%v to %v: got %v, want %v", tc.a, tc.b, got, want)
		}
	}
}

func TestFormat(t *testing.T) {
	d := newCalendarDate(2025, 6, 7)
	if got, want := d.Format("Mon, 02 Jan 2006"), "Sat, 07 Jun 2025"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Format(time.DateOnly), d.ISO(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	loc, err := time.LoadLocation("Pacific/Kiritimati")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	when := d.Time(loc)
	if got, want := datepicker.CalendarDateFromTime(when), d; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month datepicker.Month
		want  int
	}{
		{2024, 2, 29},
		{2025, 2, 28},
		{2000, 2, 29},
		{1900, 2, 28},
		{2025, 4, 30},
		{2025, 12, 31},
	} {
		if got, want := datepicker.DaysInMonth(tc.year, tc.month), tc.want; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.month, tc.year, got, want)
		}
	}
	if !datepicker.IsLeap(2400) || datepicker.IsLeap(2100) || !datepicker.IsLeap(2028) || datepicker.IsLeap(2027) {
		t.Errorf("leap year rule is wrong")
	}
}
