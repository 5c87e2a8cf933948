// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datepicker provides the date engine used by date picker widgets:
// an immutable civil date value type (CalendarDate) with timezone safe
// "today" resolution, total ordering, and calendar arithmetic that rolls
// correctly through month, year and leap year boundaries. Evaluation of
// selectability constraints over these dates is provided by the
// constraints subpackage and plain data configuration parsing by the
// pickerconfig subpackage.
//
// A CalendarDate is a pure (year, month, day) value: apart from Today,
// TodayIn and CalendarDateFromTime, which capture the current civil date
// in a given location, no operation consults wall clock time or performs
// timezone conversion. Display formatting converts to a time.Time at a
// single, well defined point (CalendarDate.Time).
package datepicker
