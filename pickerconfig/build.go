// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pickerconfig

import (
	"fmt"

	"cloudeng.io/datepicker"
	"cloudeng.io/datepicker/constraints"
	"cloudeng.io/errors"
)

// Validate reports every misconfiguration it can find, aggregated into a
// single error, or nil. The constraint engine accepts an unvalidated
// configuration and degrades deterministically (typically to nothing
// being selectable); Validate exists so that the integration layer can
// warn the operator instead.
func (c *Config) Validate() error {
	errs := &errors.M{}
	validateDimensions(errs, "", c.Dimensions)
	for i, p := range c.Periods {
		prefix := fmt.Sprintf("periods[%d]: ", i)
		hasInterval := p.From != nil || p.To != nil
		hasMonths := p.Months != nil
		switch {
		case hasInterval && hasMonths:
			errs.Append(fmt.Errorf("%speriod cannot have both from/to and months", prefix))
		case !hasInterval && !hasMonths:
			errs.Append(fmt.Errorf("%speriod must have either from/to or months", prefix))
		case hasInterval && (p.From == nil || p.To == nil):
			errs.Append(fmt.Errorf("%speriod must have both from and to", prefix))
		case hasMonths && len(p.Months) == 0:
			errs.Append(fmt.Errorf("%speriod months cannot be empty", prefix))
		}
		validateDimensions(errs, prefix, p.Dimensions)
	}
	for name := range c.Messages {
		if _, err := constraints.ParseReason(name); err != nil {
			errs.Append(fmt.Errorf("messages: %w", err))
		}
	}
	return errs.Err()
}

func validateDimensions(errs *errors.M, prefix string, d Dimensions) {
	if d.MinDate != nil && d.MaxDate != nil {
		minDate, maxDate := datepicker.CalendarDate(*d.MinDate), datepicker.CalendarDate(*d.MaxDate)
		if minDate.After(maxDate) {
			errs.Append(fmt.Errorf("%smin_date %v is after max_date %v", prefix, minDate, maxDate))
		}
	}
	if d.MinRange != nil && *d.MinRange < 1 {
		errs.Append(fmt.Errorf("%smin_range must be at least 1: %d", prefix, *d.MinRange))
	}
	if d.MaxRange != nil && *d.MaxRange < 1 {
		errs.Append(fmt.Errorf("%smax_range must be at least 1: %d", prefix, *d.MaxRange))
	}
	if d.MinRange != nil && d.MaxRange != nil && *d.MinRange > *d.MaxRange {
		errs.Append(fmt.Errorf("%smin_range %d is greater than max_range %d", prefix, *d.MinRange, *d.MaxRange))
	}
}

// Merge returns base with every field defined in overrides replacing the
// corresponding base field. Periods replace as a whole when defined and
// message overrides are merged key by key with overrides winning. It is
// how an integration layer expresses "defaults plus per instance
// configuration" explicitly, in place of shared mutable default state.
func Merge(base, overrides Config) Config {
	merged := base
	merged.Dimensions = mergeDimensions(base.Dimensions, overrides.Dimensions)
	if overrides.Periods != nil {
		merged.Periods = overrides.Periods
	}
	if overrides.Messages != nil {
		msgs := make(map[string]string, len(base.Messages)+len(overrides.Messages))
		for k, v := range base.Messages {
			msgs[k] = v
		}
		for k, v := range overrides.Messages {
			msgs[k] = v
		}
		merged.Messages = msgs
	}
	return merged
}

func mergeDimensions(base, overrides Dimensions) Dimensions {
	merged := base
	if overrides.MinDate != nil {
		merged.MinDate = overrides.MinDate
	}
	if overrides.MaxDate != nil {
		merged.MaxDate = overrides.MaxDate
	}
	if overrides.DisabledDates != nil {
		merged.DisabledDates = overrides.DisabledDates
	}
	if overrides.EnabledDates != nil {
		merged.EnabledDates = overrides.EnabledDates
	}
	if overrides.DisabledDaysOfWeek != nil {
		merged.DisabledDaysOfWeek = overrides.DisabledDaysOfWeek
	}
	if overrides.EnabledDaysOfWeek != nil {
		merged.EnabledDaysOfWeek = overrides.EnabledDaysOfWeek
	}
	if overrides.DisabledMonths != nil {
		merged.DisabledMonths = overrides.DisabledMonths
	}
	if overrides.EnabledMonths != nil {
		merged.EnabledMonths = overrides.EnabledMonths
	}
	if overrides.DisabledYears != nil {
		merged.DisabledYears = overrides.DisabledYears
	}
	if overrides.EnabledYears != nil {
		merged.EnabledYears = overrides.EnabledYears
	}
	if overrides.MinRange != nil {
		merged.MinRange = overrides.MinRange
	}
	if overrides.MaxRange != nil {
		merged.MaxRange = overrides.MaxRange
	}
	return merged
}

// Build converts the plain data configuration into the form compiled by
// constraints.New. Periods whose scope is ambiguous or missing return an
// error; Validate reports the same problems with more context.
func (c *Config) Build() (constraints.Config, error) {
	cfg := constraints.Config{Global: buildDimensions(c.Dimensions)}
	for i, p := range c.Periods {
		rule, err := buildPeriod(p)
		if err != nil {
			return constraints.Config{}, fmt.Errorf("periods[%d]: %w", i, err)
		}
		cfg.Rules = append(cfg.Rules, rule)
	}
	if len(c.Messages) > 0 {
		cfg.Messages = make(constraints.Messages, len(c.Messages))
		for name, text := range c.Messages {
			reason, err := constraints.ParseReason(name)
			if err != nil {
				return constraints.Config{}, fmt.Errorf("messages: %w", err)
			}
			cfg.Messages[reason] = text
		}
	}
	return cfg, nil
}

func buildPeriod(p Period) (constraints.Rule, error) {
	rule := constraints.Rule{Priority: p.Priority, Dimensions: buildDimensions(p.Dimensions)}
	hasInterval := p.From != nil && p.To != nil
	switch {
	case hasInterval && p.Months != nil:
		return constraints.Rule{}, fmt.Errorf("period cannot have both from/to and months")
	case hasInterval:
		from := datepicker.CalendarDate(*p.From)
		to := datepicker.CalendarDate(*p.To)
		rule.Scope = constraints.NewDateInterval(from, to)
	case p.Months != nil:
		rule.Scope = constraints.RecurringMonths{Months: constraints.NewMonthSet(p.Months...)}
	default:
		return constraints.Rule{}, fmt.Errorf("period must have either from/to or months")
	}
	return rule, nil
}

func buildDimensions(d Dimensions) constraints.Dimensions {
	var dims constraints.Dimensions
	if d.MinDate != nil {
		cd := datepicker.CalendarDate(*d.MinDate)
		dims.MinDate = &cd
	}
	if d.MaxDate != nil {
		cd := datepicker.CalendarDate(*d.MaxDate)
		dims.MaxDate = &cd
	}
	if d.DisabledDates != nil {
		dims.DisabledDates = buildDateList(d.DisabledDates)
	}
	if d.EnabledDates != nil {
		dims.EnabledDates = buildDateList(d.EnabledDates)
	}
	if d.DisabledDaysOfWeek != nil {
		dims.DisabledWeekdays = constraints.NewWeekdaySet(d.DisabledDaysOfWeek...)
	}
	if d.EnabledDaysOfWeek != nil {
		dims.EnabledWeekdays = constraints.NewWeekdaySet(d.EnabledDaysOfWeek...)
	}
	if d.DisabledMonths != nil {
		dims.DisabledMonths = constraints.NewMonthSet(d.DisabledMonths...)
	}
	if d.EnabledMonths != nil {
		dims.EnabledMonths = constraints.NewMonthSet(d.EnabledMonths...)
	}
	if d.DisabledYears != nil {
		dims.DisabledYears = constraints.NewYearSet(d.DisabledYears...)
	}
	if d.EnabledYears != nil {
		dims.EnabledYears = constraints.NewYearSet(d.EnabledYears...)
	}
	dims.MinRange = d.MinRange
	dims.MaxRange = d.MaxRange
	return dims
}

func buildDateList(dates []ISODate) datepicker.CalendarDateList {
	dl := make(datepicker.CalendarDateList, len(dates))
	for i, d := range dates {
		dl[i] = datepicker.CalendarDate(d)
	}
	return dl
}
