// Package internal provides the launch dataset, the date lookup and all associated program logic.
package internal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// isoDateLayout is the layout used for every date key and for the picture-of-the-day API.
	isoDateLayout = "2006-01-02"
	// minYear and maxMonth bound the syntactic range of a date key.
	minYear  = 1
	maxMonth = 12
	// statusUnknown is what we show for launches without a mission status.
	statusUnknown = "unknown"
	// fieldUnknown is what we show for any other missing text column.
	fieldUnknown = "n/a"
)

// Errors used for date input.
var (
	ErrInvalidDate = errors.New("invalid date")
)

// LaunchRecord is one row of the launch dataset.
// Records are read-only once loaded.
type LaunchRecord struct {
	Year          int
	Month         int
	Day           int
	Date          string // Date is the optional combined date column, normalized to YYYY-MM-DD
	Company       string
	Mission       string
	MissionStatus string
	Rocket        string
	Time          string
	Location      string
	Latitude      *float64
	Longitude     *float64
	// valid is false if any of Year, Month, Day was missing or non-numeric.
	valid bool
}

// NewLaunchRecord returns a record with valid date fields, mostly for callers that do not load
// from CSV.
func NewLaunchRecord(year, month, day int, mission string) LaunchRecord {
	return LaunchRecord{ //nolint:exhaustruct // remaining fields are optional
		Year:    year,
		Month:   month,
		Day:     day,
		Mission: mission,
		valid:   true,
	}
}

// HasDate reports whether the date fields of the record were parsed successfully.
func (lr *LaunchRecord) HasDate() bool {
	return lr.valid
}

// HasCoordinates reports whether both latitude and longitude are set.
func (lr *LaunchRecord) HasCoordinates() bool {
	return lr.Latitude != nil && lr.Longitude != nil
}

// ISODate returns the normalized date of the record. The combined date column wins if present.
// Returns the empty string for records without a usable date.
func (lr *LaunchRecord) ISODate() string {
	if lr.Date != "" {
		return lr.Date
	}

	if !lr.valid {
		return ""
	}

	return fmt.Sprintf("%04d-%02d-%02d", lr.Year, lr.Month, lr.Day)
}

// GetStatusAsStr returns the mission status or 'unknown' if the column was empty.
func (lr *LaunchRecord) GetStatusAsStr() string {
	if lr.MissionStatus == "" {
		return statusUnknown
	}

	return lr.MissionStatus
}

// WithCoordinates returns a copy of the record with the given location.
func (lr LaunchRecord) WithCoordinates(lat, lon float64) LaunchRecord {
	lr.Latitude = &lat
	lr.Longitude = &lon
	return lr
}

// OrUnknown replaces empty text columns for display.
func OrUnknown(str string) string {
	if strings.TrimSpace(str) == "" {
		return fieldUnknown
	}

	return str
}

// DateKey is the (year, month, day) triple used to query the dataset.
type DateKey struct {
	Year  int
	Month int
	Day   int
}

// NewDateKey builds a key from its components without validating it.
func NewDateKey(year, month, day int) DateKey {
	return DateKey{Year: year, Month: month, Day: day}
}

// DateKeyFromTime takes the calendar date of t.
func DateKeyFromTime(t time.Time) DateKey {
	return DateKey{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseDateKey parses a YYYY-MM-DD string. Calendar-invalid dates like 2001-02-30 are rejected.
func ParseDateKey(str string) (DateKey, error) {
	t, err := time.Parse(isoDateLayout, strings.TrimSpace(str))
	if err != nil {
		return DateKey{}, fmt.Errorf("parseDateKey: %w: %q", ErrInvalidDate, str)
	}

	return DateKeyFromTime(t), nil
}

// Validate returns ErrInvalidDate if the triple is not a real calendar date.
func (key DateKey) Validate() error {
	if key.Year < minYear || key.Month < 1 || key.Month > maxMonth || key.Day < 1 {
		return fmt.Errorf("dateKey.validate: %w: %s", ErrInvalidDate, key)
	}

	// time.Date normalizes overflowing days, e.g. Feb 30 becomes Mar 2.
	t := time.Date(key.Year, time.Month(key.Month), key.Day, 0, 0, 0, 0, time.UTC)
	if t.Year() != key.Year || int(t.Month()) != key.Month || t.Day() != key.Day {
		return fmt.Errorf("dateKey.validate: %w: %s", ErrInvalidDate, key)
	}

	return nil
}

// ISO renders the key as YYYY-MM-DD.
func (key DateKey) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", key.Year, key.Month, key.Day)
}

func (key DateKey) String() string {
	return key.ISO()
}
