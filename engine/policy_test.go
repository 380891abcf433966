package engine

import (
	"errors"
	"testing"
)

func standardPolicy() Policy {
	return Policy{
		Start:      ClockTime{"7:00", "AM"},
		End:        ClockTime{"7:00", "PM"},
		BreakStart: ClockTime{"11:00", "AM"},
		BreakEnd:   ClockTime{"1:00", "PM"},
	}
}

func TestValidateAcceptsStandardSchedule(t *testing.T) {
	if err := standardPolicy().Validate(); err != nil {
		t.Fatalf("standard schedule rejected: %v", err)
	}
}

func TestValidateWindowBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		wantErr error
	}{
		{
			name: "exactly one hour window is valid",
			policy: Policy{
				Start:      ClockTime{"9:00", "AM"},
				End:        ClockTime{"10:00", "AM"},
				BreakStart: ClockTime{"9:15", "AM"},
				BreakEnd:   ClockTime{"9:45", "AM"},
			},
		},
		{
			name: "59 minute window is rejected",
			policy: Policy{
				Start:      ClockTime{"9:00", "AM"},
				End:        ClockTime{"9:59", "AM"},
				BreakStart: ClockTime{"9:15", "AM"},
				BreakEnd:   ClockTime{"9:45", "AM"},
			},
			wantErr: ErrWorkWindowTooShort,
		},
		{
			// 6:00 AM to 10:00 PM is exactly 960 minutes.
			name: "exactly sixteen hour window is valid",
			policy: Policy{
				Start:      ClockTime{"6:00", "AM"},
				End:        ClockTime{"10:00", "PM"},
				BreakStart: ClockTime{"12:00", "PM"},
				BreakEnd:   ClockTime{"1:00", "PM"},
			},
		},
		{
			name: "961 minute window is rejected",
			policy: Policy{
				Start:      ClockTime{"6:00", "AM"},
				End:        ClockTime{"10:01", "PM"},
				BreakStart: ClockTime{"12:00", "PM"},
				BreakEnd:   ClockTime{"1:00", "PM"},
			},
			wantErr: ErrWorkWindowTooLong,
		},
		{
			name: "break starting at working start is rejected",
			policy: Policy{
				Start:      ClockTime{"7:00", "AM"},
				End:        ClockTime{"7:00", "PM"},
				BreakStart: ClockTime{"7:00", "AM"},
				BreakEnd:   ClockTime{"8:00", "AM"},
			},
			wantErr: ErrBreakStartsTooEarly,
		},
		{
			name: "break ending at working end is rejected",
			policy: Policy{
				Start:      ClockTime{"7:00", "AM"},
				End:        ClockTime{"7:00", "PM"},
				BreakStart: ClockTime{"6:00", "PM"},
				BreakEnd:   ClockTime{"7:00", "PM"},
			},
			wantErr: ErrBreakEndsTooLate,
		},
		{
			name: "29 minute break is rejected",
			policy: Policy{
				Start:      ClockTime{"7:00", "AM"},
				End:        ClockTime{"7:00", "PM"},
				BreakStart: ClockTime{"12:00", "PM"},
				BreakEnd:   ClockTime{"12:29", "PM"},
			},
			wantErr: ErrBreakTooShort,
		},
		{
			name: "malformed time wins over every other check",
			policy: Policy{
				Start:      ClockTime{"25:00", "AM"},
				End:        ClockTime{"7:00", "PM"},
				BreakStart: ClockTime{"12:00", "PM"},
				BreakEnd:   ClockTime{"1:00", "PM"},
			},
			wantErr: ErrInvalidTimeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateOvernightSchedule(t *testing.T) {
	// Night shift wrapping midnight still has to satisfy the same rules.
	p := Policy{
		Start:      ClockTime{"10:00", "PM"},
		End:        ClockTime{"6:00", "AM"},
		BreakStart: ClockTime{"1:00", "AM"},
		BreakEnd:   ClockTime{"2:00", "AM"},
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("overnight schedule rejected: %v", err)
	}
	minutes, err := p.RequiredDailyMinutes()
	if err != nil {
		t.Fatal(err)
	}
	if minutes != 420 {
		t.Errorf("RequiredDailyMinutes() = %d, want 420", minutes)
	}
}

func TestRequiredDailyMinutes(t *testing.T) {
	minutes, err := standardPolicy().RequiredDailyMinutes()
	if err != nil {
		t.Fatal(err)
	}
	// 12h window minus 2h break.
	if minutes != 600 {
		t.Errorf("RequiredDailyMinutes() = %d, want 600", minutes)
	}
}

func TestIsWithinSession(t *testing.T) {
	p := standardPolicy()
	tests := []struct {
		clock   string
		session Session
		want    bool
	}{
		{"7:00 AM", SessionAM, true},
		{"10:59 AM", SessionAM, true},
		{"11:00 AM", SessionAM, false}, // break start excluded
		{"6:59 AM", SessionAM, false},
		{"1:00 PM", SessionPM, true},
		{"7:00 PM", SessionPM, true}, // end included
		{"12:30 PM", SessionPM, false},
		{"7:01 PM", SessionPM, false},
	}

	for _, tt := range tests {
		now, err := ParseStamp(tt.clock)
		if err != nil {
			t.Fatal(err)
		}
		got, err := p.IsWithinSession(now, tt.session)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("IsWithinSession(%s, %s) = %v, want %v", tt.clock, tt.session, got, tt.want)
		}
	}
}

func TestCurrentSession(t *testing.T) {
	p := standardPolicy()

	now, _ := ParseStamp("9:00 AM")
	session, active, err := p.CurrentSession(now)
	if err != nil || !active || session != SessionAM {
		t.Errorf("CurrentSession(9:00 AM) = %v %v %v, want AM true nil", session, active, err)
	}

	now, _ = ParseStamp("12:00 PM")
	_, active, err = p.CurrentSession(now)
	if err != nil || active {
		t.Errorf("CurrentSession(12:00 PM) active = %v, want false (on break)", active)
	}
}
