package engine

import (
	"errors"
	"fmt"
)

// Policy validation failures, surfaced as structured reasons rather than
// silently defaulting the schedule.
var (
	ErrWorkWindowTooShort  = errors.New("working window is shorter than 1 hour")
	ErrWorkWindowTooLong   = errors.New("working window is longer than 16 hours")
	ErrBreakStartsTooEarly = errors.New("break must start after the working day starts")
	ErrBreakEndsTooLate    = errors.New("break must end before the working day ends")
	ErrBreakTooShort       = errors.New("break must be at least 30 minutes")
)

const (
	minWorkMinutes  = 60
	maxWorkMinutes  = 960
	minBreakMinutes = 30
)

// Policy is a company's daily working schedule. The AM session runs from
// Start to BreakStart and the PM session from BreakEnd to End.
type Policy struct {
	Start      ClockTime `json:"start"`
	End        ClockTime `json:"end"`
	BreakStart ClockTime `json:"break_start"`
	BreakEnd   ClockTime `json:"break_end"`
}

// linearize maps a clock offset onto a line anchored at base, pushing it a
// day forward when it falls behind base (overnight schedules).
func linearize(base, minutes int) int {
	if minutes < base {
		minutes += minutesPerDay
	}
	return minutes
}

// linear returns the four policy offsets on a single line anchored at the
// working start, so comparisons work across midnight.
func (p Policy) linear() (start, end, breakStart, breakEnd int, err error) {
	if start, err = p.Start.Minutes(); err != nil {
		return
	}
	if end, err = p.End.Minutes(); err != nil {
		return
	}
	if breakStart, err = p.BreakStart.Minutes(); err != nil {
		return
	}
	if breakEnd, err = p.BreakEnd.Minutes(); err != nil {
		return
	}
	end = linearize(start, end)
	breakStart = linearize(start, breakStart)
	breakEnd = linearize(start, breakEnd)
	return
}

// Validate checks the schedule against the company working-hours rules.
// Checks run in a fixed order and the first failure is returned: malformed
// time, window under 1 hour, window over 16 hours, break starting at or
// before the working start, break ending at or after the working end, break
// under 30 minutes.
func (p Policy) Validate() error {
	start, end, breakStart, breakEnd, err := p.linear()
	if err != nil {
		return err
	}

	workMinutes := end - start
	if workMinutes < minWorkMinutes {
		return fmt.Errorf("%w: got %d minutes", ErrWorkWindowTooShort, workMinutes)
	}
	if workMinutes > maxWorkMinutes {
		return fmt.Errorf("%w: got %d minutes", ErrWorkWindowTooLong, workMinutes)
	}
	if breakStart <= start {
		return ErrBreakStartsTooEarly
	}
	if breakEnd >= end {
		return ErrBreakEndsTooLate
	}
	if breakEnd-breakStart < minBreakMinutes {
		return fmt.Errorf("%w: got %d minutes", ErrBreakTooShort, breakEnd-breakStart)
	}
	return nil
}

// RequiredDailyMinutes is the working window minus the break window.
func (p Policy) RequiredDailyMinutes() (int, error) {
	start, end, breakStart, breakEnd, err := p.linear()
	if err != nil {
		return 0, err
	}
	return (end - start) - (breakEnd - breakStart), nil
}

// IsWithinSession reports whether the wall-clock offset now falls inside the
// given session window: AM is [start, breakStart), PM is [breakEnd, end].
func (p Policy) IsWithinSession(now int, session Session) (bool, error) {
	start, end, breakStart, breakEnd, err := p.linear()
	if err != nil {
		return false, err
	}
	now = linearize(start, now%minutesPerDay)

	switch session {
	case SessionAM:
		return now >= start && now < breakStart, nil
	case SessionPM:
		return now >= breakEnd && now <= end, nil
	default:
		return false, fmt.Errorf("unknown session %q", session)
	}
}

// CurrentSession returns the session window the offset now falls into, or
// false when the clock is outside both windows (before work, on break, or
// after hours).
func (p Policy) CurrentSession(now int) (Session, bool, error) {
	if in, err := p.IsWithinSession(now, SessionAM); err != nil {
		return "", false, err
	} else if in {
		return SessionAM, true, nil
	}
	if in, err := p.IsWithinSession(now, SessionPM); err != nil {
		return "", false, err
	} else if in {
		return SessionPM, true, nil
	}
	return "", false, nil
}
