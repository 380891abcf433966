package engine

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		session Session
		want    SessionState
	}{
		{
			name:    "empty record not started",
			record:  Record{AMStatus: MarkNotMarked, PMStatus: MarkNotMarked},
			session: SessionAM,
			want:    StateNotStarted,
		},
		{
			name:    "time in without time out is in progress",
			record:  Record{AMTimeIn: "8:00 AM", AMStatus: MarkNotMarked},
			session: SessionAM,
			want:    StateInProgress,
		},
		{
			name:    "time pair completes the session",
			record:  Record{AMTimeIn: "8:00 AM", AMTimeOut: "12:00 PM", AMStatus: MarkNotMarked},
			session: SessionAM,
			want:    StateCompleted,
		},
		{
			name:    "sick mark excuses regardless of time fields",
			record:  Record{AMTimeIn: "8:00 AM", AMTimeOut: "12:00 PM", AMStatus: MarkSick},
			session: SessionAM,
			want:    StateExcused,
		},
		{
			name:    "absent mark needs no time pair",
			record:  Record{PMStatus: MarkAbsent},
			session: SessionPM,
			want:    StateExcused,
		},
		{
			name:    "leave mark excuses",
			record:  Record{PMStatus: MarkLeave},
			session: SessionPM,
			want:    StateExcused,
		},
		{
			name:    "late mark does not excuse",
			record:  Record{AMStatus: MarkLate},
			session: SessionAM,
			want:    StateNotStarted,
		},
		{
			name:    "sentinel stamp counts as unset",
			record:  Record{PMTimeIn: "not set", PMStatus: MarkNotMarked},
			session: SessionPM,
			want:    StateNotStarted,
		},
		{
			name:    "sessions are independent",
			record:  Record{AMTimeIn: "8:00 AM", AMTimeOut: "12:00 PM", PMStatus: MarkNotMarked},
			session: SessionPM,
			want:    StateNotStarted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.record, tt.session); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDayResolved(t *testing.T) {
	full := Record{
		AMTimeIn: "8:00 AM", AMTimeOut: "11:00 AM",
		PMStatus: MarkSick,
	}
	if !DayResolved(full) {
		t.Error("completed AM + excused PM should resolve the day")
	}

	half := Record{AMTimeIn: "8:00 AM", AMTimeOut: "11:00 AM", PMStatus: MarkNotMarked}
	if DayResolved(half) {
		t.Error("open PM session should leave the day unresolved")
	}
}

func TestEntryDisabled(t *testing.T) {
	p := standardPolicy() // 7:00 AM - 7:00 PM, break 11:00 AM - 1:00 PM

	at := func(clock string) int {
		now, err := ParseStamp(clock)
		if err != nil {
			t.Fatal(err)
		}
		return now
	}

	tests := []struct {
		name   string
		record Record
		clock  string
		want   bool
	}{
		{
			name:   "fresh record inside AM window is enabled",
			record: Record{AMStatus: MarkNotMarked, PMStatus: MarkNotMarked},
			clock:  "8:00 AM",
			want:   false,
		},
		{
			name:   "open AM session disables the control",
			record: Record{AMTimeIn: "8:00 AM", AMStatus: MarkNotMarked, PMStatus: MarkNotMarked},
			clock:  "9:00 AM",
			want:   true,
		},
		{
			name:   "completed AM session still blocks during the AM window",
			record: Record{AMTimeIn: "7:30 AM", AMTimeOut: "10:30 AM", AMStatus: MarkNotMarked, PMStatus: MarkNotMarked},
			clock:  "10:45 AM",
			want:   true,
		},
		{
			name:   "completed AM does not block a fresh PM session",
			record: Record{AMTimeIn: "7:30 AM", AMTimeOut: "11:00 AM", AMStatus: MarkNotMarked, PMStatus: MarkNotMarked},
			clock:  "2:00 PM",
			want:   false,
		},
		{
			name:   "break time blocks regardless of record",
			record: Record{AMStatus: MarkNotMarked, PMStatus: MarkNotMarked},
			clock:  "12:00 PM",
			want:   true,
		},
		{
			name:   "after hours blocks regardless of record",
			record: Record{AMStatus: MarkNotMarked, PMStatus: MarkNotMarked},
			clock:  "9:00 PM",
			want:   true,
		},
		{
			name: "fully resolved day blocks even inside a window",
			record: Record{
				AMTimeIn: "7:30 AM", AMTimeOut: "11:00 AM", AMStatus: MarkNotMarked,
				PMStatus: MarkLeave,
			},
			clock: "2:00 PM",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EntryDisabled(tt.record, p, at(tt.clock))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("EntryDisabled() = %v, want %v", got, tt.want)
			}
		})
	}
}
