// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

import "time"

// Time returns the time.Time at midnight on the date in the given
// location (UTC if loc is nil). It is the single point at which a
// CalendarDate is converted to the standard library's representation;
// the (year, month, day) triple remains the source of truth for all
// calendar arithmetic and day of week computation.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, loc)
}

// Format renders the date for display using a standard library layout
// string, eg. "Mon, 02 Jan 2006". Formatting is delegated to time.Time
// via Time(nil); use Time directly when a specific location is needed
// for the formatter.
func (cd CalendarDate) Format(layout string) string {
	return cd.Time(nil).Format(layout)
}
