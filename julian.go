package orrery

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/soniakeys/meeus/julian"
)

const (
	// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00:00 TT).
	J2000 = 2451545.0
	// JulianCentury is the number of days in a Julian century.
	JulianCentury = 36525.0
)

// CalendarDate is a Gregorian calendar timestamp in UTC. Month is one-based.
type CalendarDate struct {
	Year, Month, Day     int
	Hour, Minute, Second int
}

// NewCalendarDate returns the calendar date for the provided time in UTC.
func NewCalendarDate(dt time.Time) CalendarDate {
	dt = dt.UTC()
	return CalendarDate{dt.Year(), int(dt.Month()), dt.Day(), dt.Hour(), dt.Minute(), dt.Second()}
}

// Valid returns whether the date fields are within calendar bounds.
func (c CalendarDate) Valid() bool {
	return c.Month >= 1 && c.Month <= 12 && c.Day >= 1 && c.Day <= 31 &&
		c.Hour >= 0 && c.Hour < 24 && c.Minute >= 0 && c.Minute < 60 &&
		c.Second >= 0 && c.Second < 60
}

// ToJulianDay converts a Gregorian UTC timestamp to its Julian Day, fractional
// part included. Unrepresentable dates return ErrInvalidInput.
func ToJulianDay(c CalendarDate) (float64, error) {
	if !c.Valid() {
		return 0, errors.Wrapf(ErrInvalidInput, "unrepresentable date %+v", c)
	}
	a := (14 - c.Month) / 12
	y := c.Year + 4800 - a
	m := c.Month + 12*a - 3
	jdn := c.Day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	jd := float64(jdn) + (float64(c.Hour)+float64(c.Minute)/60+float64(c.Second)/3600)/24 - 0.5
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return 0, errors.Wrapf(ErrInvalidInput, "non-finite julian day for %+v", c)
	}
	return jd, nil
}

// MustJulianDay converts a timestamp to a Julian Day, falling back to the
// J2000.0 epoch on any conversion failure. The fallback is a valid-looking but
// semantically meaningless value: renderer-facing callers must never treat it
// as an error signal.
func MustJulianDay(c CalendarDate) float64 {
	jd, err := ToJulianDay(c)
	if err != nil {
		return J2000
	}
	return jd
}

// TimeToJulianDay converts a time.Time to its Julian Day.
func TimeToJulianDay(dt time.Time) float64 {
	return MustJulianDay(NewCalendarDate(dt))
}

// FromJulianDay converts a Julian Day back to a time.Time in UTC.
func FromJulianDay(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}

// CenturiesJ2000 returns the number of Julian centuries elapsed since J2000.0.
// Reserved for perturbation terms which this kinematic model omits.
func CenturiesJ2000(jd float64) float64 {
	return (jd - J2000) / JulianCentury
}
