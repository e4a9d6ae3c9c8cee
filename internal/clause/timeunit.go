package clause

import (
	"fmt"
	"time"
)

// TimeUnit is a calendar-free unit of delay. Units are mutually
// convertible through fixed ratios; a month is a fixed nominal 30 days
// so the unit system stays totally ordered and exactly convertible.
type TimeUnit string

const (
	UnitHours  TimeUnit = "hours"
	UnitDays   TimeUnit = "days"
	UnitWeeks  TimeUnit = "weeks"
	UnitMonths TimeUnit = "months"
)

// unitDurations is the fixed conversion table. All arithmetic in this
// package happens in time.Duration after conversion, never in native
// units.
var unitDurations = map[TimeUnit]time.Duration{
	UnitHours:  time.Hour,
	UnitDays:   24 * time.Hour,
	UnitWeeks:  7 * 24 * time.Hour,
	UnitMonths: 30 * 24 * time.Hour,
}

// ParseTimeUnit validates a raw unit string.
func ParseTimeUnit(s string) (TimeUnit, error) {
	u := TimeUnit(s)
	if _, ok := unitDurations[u]; !ok {
		return "", &ValidationError{
			Field:   "unit",
			Message: fmt.Sprintf("unrecognized time unit %q: must be one of hours, days, weeks, months", s),
		}
	}
	return u, nil
}

// Duration returns the base-unit length of one unit.
func (u TimeUnit) Duration() time.Duration {
	return unitDurations[u]
}

// Valid reports whether the unit is one of the recognized values.
func (u TimeUnit) Valid() bool {
	_, ok := unitDurations[u]
	return ok
}

// Period is an amount of time expressed in a unit, e.g. "2 days".
// Amount must be positive wherever a Period appears in Parameters.
type Period struct {
	Amount int64    `json:"amount"`
	Unit   TimeUnit `json:"unit"`
}

// Base converts the period to the common base unit.
func (p Period) Base() time.Duration {
	return time.Duration(p.Amount) * p.Unit.Duration()
}

func (p Period) String() string {
	return fmt.Sprintf("%d %s", p.Amount, p.Unit)
}

// validate checks the invariants shared by every Period field.
// field names the enclosing parameter for error reporting.
func (p Period) validate(field string) error {
	if !p.Unit.Valid() {
		return &ValidationError{
			Field:   field + ".unit",
			Message: fmt.Sprintf("unrecognized time unit %q", string(p.Unit)),
		}
	}
	if p.Amount <= 0 {
		return &ValidationError{
			Field:   field + ".amount",
			Message: fmt.Sprintf("duration amount must be positive, got %d", p.Amount),
		}
	}
	return nil
}
