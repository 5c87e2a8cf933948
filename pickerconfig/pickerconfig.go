// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pickerconfig parses and validates the plain data constraint
// configuration supplied by a picker widget's integration layer and
// builds the constraints.Config compiled by constraints.New. Dates are
// ISO 8601 strings, days of the week are names or numbers (0-6 with
// Sunday as 0) and months are names or numbers (1-12).
//
// Defaults are applied by the explicit Merge function called by the
// integration layer; there is no implicit shared default state.
package pickerconfig

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datepicker"
	"gopkg.in/yaml.v3"
)

// ISODate is a datepicker.CalendarDate that unmarshals from a strict
// YYYY-MM-DD YAML scalar.
type ISODate datepicker.CalendarDate

func (d *ISODate) UnmarshalYAML(value *yaml.Node) error {
	cd, err := datepicker.ParseISO(value.Value)
	if err != nil {
		return err
	}
	*d = ISODate(cd)
	return nil
}

func (d *ISODate) MarshalYAML() (any, error) {
	return datepicker.CalendarDate(*d).ISO(), nil
}

func (d ISODate) String() string {
	return datepicker.CalendarDate(d).ISO()
}

var weekdayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// Weekdays is a list of days of the week that unmarshals from a YAML
// sequence of day names ("Sun" or any longer prefix of "Sunday", case
// insensitive) or numbers 0-6 with Sunday as 0.
type Weekdays []time.Weekday

func (w *Weekdays) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected a sequence of days of the week", value.Line)
	}
	days := make(Weekdays, 0, len(value.Content))
	for _, n := range value.Content {
		d, err := parseWeekday(n.Value)
		if err != nil {
			return err
		}
		days = append(days, d)
	}
	*w = days
	return nil
}

func parseWeekday(val string) (time.Weekday, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("invalid day of week: %d", n)
		}
		return time.Weekday(n), nil
	}
	lc := strings.ToLower(val)
	if len(lc) >= 3 {
		for i := range weekdayNames {
			if strings.HasPrefix(weekdayNames[i], lc) {
				return time.Weekday(i), nil
			}
		}
	}
	return 0, fmt.Errorf("invalid day of week: %q", val)
}

// Months is a list of months that unmarshals from a YAML sequence of
// month names ("Jan" or any longer prefix of "January", case
// insensitive) or numbers 1-12.
type Months []datepicker.Month

func (ml *Months) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected a sequence of months", value.Line)
	}
	months := make(Months, 0, len(value.Content))
	for _, n := range value.Content {
		var m datepicker.Month
		if err := m.Parse(n.Value); err != nil {
			return err
		}
		months = append(months, m)
	}
	*ml = months
	return nil
}

// Dimensions mirrors constraints.Dimensions as plain data. Absent fields
// are undefined: inside a period they inherit the enclosing scope's
// value, at the top level they impose no constraint.
type Dimensions struct {
	// MinDate and MaxDate are inclusive selectability bounds.
	MinDate *ISODate `yaml:"min_date"`
	MaxDate *ISODate `yaml:"max_date"`
	// DisabledDates lists individually unselectable dates; EnabledDates
	// force-enables dates against everything except the bounds above.
	DisabledDates []ISODate `yaml:"disabled_dates"`
	EnabledDates  []ISODate `yaml:"enabled_dates"`
	// Days of the week, 0-6 with Sunday as 0, or names.
	DisabledDaysOfWeek Weekdays `yaml:"disabled_days_of_week"`
	EnabledDaysOfWeek  Weekdays `yaml:"enabled_days_of_week"`
	DisabledMonths     Months   `yaml:"disabled_months"`
	EnabledMonths      Months   `yaml:"enabled_months"`
	DisabledYears      []int    `yaml:"disabled_years"`
	EnabledYears       []int    `yaml:"enabled_years"`
	// MinRange and MaxRange bound the inclusive day count of a two
	// endpoint selection.
	MinRange *int `yaml:"min_range"`
	MaxRange *int `yaml:"max_range"`
}

// Period is a scoped override of constraint dimensions: either a closed
// date interval (from/to) or a recurring set of months, never both.
type Period struct {
	From       *ISODate `yaml:"from"`
	To         *ISODate `yaml:"to"`
	Months     Months   `yaml:"months"`
	Priority   int      `yaml:"priority"`
	Dimensions `yaml:",inline"`
}

// Config is the top level plain data constraint configuration.
type Config struct {
	Dimensions `yaml:",inline"`
	// Periods are evaluated by priority, ties resolving to the earlier
	// entry in this list.
	Periods []Period `yaml:"periods"`
	// Messages overrides the display text for disabled reasons, keyed
	// by reason name (eg. "before-min-date").
	Messages map[string]string `yaml:"messages"`
}

// ParseConfig parses a YAML constraint configuration.
func ParseConfig(spec []byte) (*Config, error) {
	cfg := &Config{}
	if err := cmdyaml.ParseConfig(spec, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseConfigString is like ParseConfig but for a string.
func ParseConfigString(spec string) (*Config, error) {
	return ParseConfig([]byte(spec))
}

// ParseConfigFile parses a YAML constraint configuration from the named
// file as per cmdyaml.ParseConfigFile.
func ParseConfigFile(ctx context.Context, filename string) (*Config, error) {
	cfg := &Config{}
	if err := cmdyaml.ParseConfigFile(ctx, filename, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
