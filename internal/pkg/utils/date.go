package utils

import (
	"errors"
	"glamslot-service/internal/pkg/constvars"
	"strings"
	"time"
)

var ErrEmptyDate = errors.New("date is empty")

// DayRange is the half-open interval [Start, End) covering one calendar day in UTC.
type DayRange struct {
	Start time.Time
	End   time.Time
}

// ParseDay accepts YYYY-MM-DD or RFC 3339 input and returns the UTC day it falls on.
func ParseDay(value string) (DayRange, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DayRange{}, ErrEmptyDate
	}

	parsed, err := time.Parse(constvars.DateLayoutYYYYMMDD, value)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return DayRange{}, err
		}
	}
	return NewDayRange(parsed), nil
}

func NewDayRange(t time.Time) DayRange {
	start := NormalizeDate(t)
	return DayRange{
		Start: start,
		End:   start.Add(constvars.OneDay),
	}
}

// NormalizeDate truncates t to midnight UTC of its UTC calendar day.
func NormalizeDate(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

func (d DayRange) Contains(t time.Time) bool {
	return !t.Before(d.Start) && t.Before(d.End)
}

func (d DayRange) String() string {
	return d.Start.Format(constvars.DateLayoutYYYYMMDD)
}
