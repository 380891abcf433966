package engine

// Mark is the explicit per-session status a record can carry, independent of
// the time-in/time-out stamps.
type Mark string

const (
	MarkPresent   Mark = "present"
	MarkAbsent    Mark = "absent"
	MarkLate      Mark = "late"
	MarkLeave     Mark = "leave"
	MarkSick      Mark = "sick"
	MarkNotMarked Mark = "not_marked"
)

// SessionState is the derived lifecycle state of a half-day session.
// NotStarted -> InProgress -> Completed, with Excused reachable directly
// from NotStarted via an absent/leave/sick mark. Completed and Excused are
// terminal.
type SessionState string

const (
	StateNotStarted SessionState = "not_started"
	StateInProgress SessionState = "in_progress"
	StateCompleted  SessionState = "completed"
	StateExcused    SessionState = "excused"
)

// Record is the plain-data view of one intern's attendance for one calendar
// day, as the engine sees it. Stamp fields hold "H:MM AM" strings or an
// unset sentinel (see IsSet).
type Record struct {
	AMTimeIn   string
	AMTimeOut  string
	PMTimeIn   string
	PMTimeOut  string
	AMStatus   Mark
	PMStatus   Mark
	TotalHours float64
}

// excusedMarks require no time pair at all.
var excusedMarks = map[Mark]bool{
	MarkAbsent: true,
	MarkLeave:  true,
	MarkSick:   true,
}

func (r Record) sessionFields(session Session) (timeIn, timeOut string, mark Mark) {
	if session == SessionPM {
		return r.PMTimeIn, r.PMTimeOut, r.PMStatus
	}
	return r.AMTimeIn, r.AMTimeOut, r.AMStatus
}

// Classify derives the session state for one half-day. An excusing mark wins
// over any time fields that may also be present.
func Classify(r Record, session Session) SessionState {
	timeIn, timeOut, mark := r.sessionFields(session)

	if excusedMarks[mark] {
		return StateExcused
	}
	if IsSet(timeIn) && IsSet(timeOut) {
		return StateCompleted
	}
	if IsSet(timeIn) {
		return StateInProgress
	}
	return StateNotStarted
}

// resolved sessions accept no further entries.
func resolved(state SessionState) bool {
	return state == StateCompleted || state == StateExcused
}

// DayResolved reports whether both sessions have reached a terminal state,
// regardless of the wall clock.
func DayResolved(r Record) bool {
	return resolved(Classify(r, SessionAM)) && resolved(Classify(r, SessionPM))
}

// EntryDisabled is the time-entry eligibility rule for the submit control:
// disabled when the whole day is resolved, when the clock is outside both
// session windows, or when the currently active session has already been
// started.
func EntryDisabled(r Record, p Policy, now int) (bool, error) {
	if DayResolved(r) {
		return true, nil
	}

	session, active, err := p.CurrentSession(now)
	if err != nil {
		return false, err
	}
	if !active {
		return true, nil
	}
	return Classify(r, session) != StateNotStarted, nil
}
