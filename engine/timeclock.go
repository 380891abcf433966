package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned whenever a 12-hour clock string does not
// match "H:MM"/"HH:MM" with hour in [1,12] and minute in [0,59].
var ErrInvalidTimeFormat = errors.New("invalid time format")

const minutesPerDay = 1440

type Session string

const (
	SessionAM Session = "AM"
	SessionPM Session = "PM"
)

// ClockTime is a 12-hour wall-clock value as submitted from the mobile app.
type ClockTime struct {
	Time   string `json:"time"`   // "H:MM" or "HH:MM"
	Period string `json:"period"` // "AM" or "PM"
}

// ToMinutes converts a 12-hour time plus period into minutes since midnight.
// 12 AM maps to 0 and 12 PM to 720; any other PM hour gets +720.
func ToMinutes(timeStr, period string) (int, error) {
	period = strings.ToUpper(strings.TrimSpace(period))
	if period != string(SessionAM) && period != string(SessionPM) {
		return 0, fmt.Errorf("%w: bad period %q", ErrInvalidTimeFormat, period)
	}

	parts := strings.Split(strings.TrimSpace(timeStr), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, timeStr)
	}
	if len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, timeStr)
	}

	if hour == 12 {
		hour = 0
	}
	total := hour*60 + minute
	if period == string(SessionPM) {
		total += 720
	}
	return total, nil
}

// FromMinutes is the inverse of ToMinutes. Minutes outside [0,1439] are
// normalized onto the clock face first.
func FromMinutes(minutes int) (timeStr, period string) {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}

	period = string(SessionAM)
	if minutes >= 720 {
		period = string(SessionPM)
	}
	hour := (minutes / 60) % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d", hour, minutes%60), period
}

// DurationMinutes returns the elapsed minutes between two clock offsets,
// adding a day when the out time crosses midnight. The result is floored at
// one minute so same-minute in/out pairs never produce a zero or negative
// duration.
func DurationMinutes(inMinutes, outMinutes int) int {
	if outMinutes < inMinutes {
		outMinutes += minutesPerDay
	}
	elapsed := outMinutes - inMinutes
	if elapsed < 1 {
		elapsed = 1
	}
	return elapsed
}

// ToClockTime converts a minute offset back into a ClockTime pair.
func ToClockTime(minutes int) ClockTime {
	t, p := FromMinutes(minutes)
	return ClockTime{Time: t, Period: p}
}

// Minutes converts the pair form, e.g. {"8:00","AM"}, into a minute offset.
func (ct ClockTime) Minutes() (int, error) {
	return ToMinutes(ct.Time, ct.Period)
}

// ParseStamp parses a combined attendance stamp such as "8:05 AM" into a
// minute offset. Stamps are stored this way on attendance records.
func ParseStamp(stamp string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(stamp))
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, stamp)
	}
	return ToMinutes(fields[0], fields[1])
}

// FormatStamp renders a minute offset in the combined "H:MM AM" form.
func FormatStamp(minutes int) string {
	t, p := FromMinutes(minutes)
	return t + " " + p
}

// IsSet reports whether an attendance stamp field actually holds a time.
// The mobile client submits "" or the literal "not set" for empty sessions.
func IsSet(stamp string) bool {
	s := strings.ToLower(strings.TrimSpace(stamp))
	return s != "" && s != "not set" && s != "n/a"
}
