package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMissingRequiredTotal means no required-hours total is configured for the
// intern, so capacity tracking does not apply. It is a signal, not a failure.
var ErrMissingRequiredTotal = errors.New("required hours total not configured")

const hoursPerWorkDay = 8

// Remaining is the capacity left against an intern's required total.
type Remaining struct {
	Hours float64 `json:"hours"`
	Days  int     `json:"days"`
}

// DailyHours sums the elapsed time of every completed session of the record,
// in decimal hours. Excused and unfinished sessions contribute nothing.
func DailyHours(r Record) (float64, error) {
	var minutes int
	for _, session := range []Session{SessionAM, SessionPM} {
		if Classify(r, session) != StateCompleted {
			continue
		}
		timeIn, timeOut, _ := r.sessionFields(session)
		in, err := ParseStamp(timeIn)
		if err != nil {
			return 0, err
		}
		out, err := ParseStamp(timeOut)
		if err != nil {
			return 0, err
		}
		minutes += DurationMinutes(in, out)
	}
	return float64(minutes) / 60, nil
}

// AccumulatedHours is the running total since internship start; callers pass
// every record for the intern, not a query window.
func AccumulatedHours(records []Record) float64 {
	var total float64
	for _, r := range records {
		total += r.TotalHours
	}
	return total
}

// ComputeRemaining derives the hours and days an intern still has to render.
// Hours never go negative; days are whole 8-hour work days, rounded up.
func ComputeRemaining(requiredTotal, accumulated float64) (Remaining, error) {
	if requiredTotal <= 0 {
		return Remaining{}, ErrMissingRequiredTotal
	}
	hours := requiredTotal - accumulated
	if hours < 0 {
		hours = 0
	}
	return Remaining{
		Hours: hours,
		Days:  int(math.Ceil(hours / hoursPerWorkDay)),
	}, nil
}

// ParseRequiredHours extracts the numeric total from the free-text form the
// coordinator portal stores, e.g. "136 hours" or "486". A zero or missing
// number maps to ErrMissingRequiredTotal.
func ParseRequiredHours(raw string) (float64, error) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 {
		return 0, ErrMissingRequiredTotal
	}
	hours, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable required hours %q", raw)
	}
	if hours <= 0 {
		return 0, ErrMissingRequiredTotal
	}
	return hours, nil
}
