package engine

import (
	"errors"
	"testing"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		time    string
		period  string
		want    int
		wantErr bool
	}{
		{"12:00", "AM", 0, false},
		{"12:00", "PM", 720, false},
		{"12:30", "AM", 30, false},
		{"1:00", "AM", 60, false},
		{"8:00", "AM", 480, false},
		{"08:00", "AM", 480, false},
		{"11:59", "AM", 719, false},
		{"1:00", "PM", 780, false},
		{"5:30", "PM", 1050, false},
		{"11:59", "PM", 1439, false},
		{"13:00", "AM", 0, true},
		{"0:30", "AM", 0, true},
		{"8:60", "AM", 0, true},
		{"8:5", "AM", 0, true},
		{"800", "AM", 0, true},
		{"", "AM", 0, true},
		{"8:00", "XM", 0, true},
	}

	for _, tt := range tests {
		got, err := ToMinutes(tt.time, tt.period)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidTimeFormat) {
				t.Errorf("ToMinutes(%q, %q): want ErrInvalidTimeFormat, got %v", tt.time, tt.period, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ToMinutes(%q, %q): unexpected error %v", tt.time, tt.period, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ToMinutes(%q, %q) = %d, want %d", tt.time, tt.period, got, tt.want)
		}
	}
}

func TestFromMinutesRoundTrip(t *testing.T) {
	// Every valid clock value must survive a full round trip once leading
	// zeros are normalized away.
	for minutes := 0; minutes < minutesPerDay; minutes++ {
		timeStr, period := FromMinutes(minutes)
		back, err := ToMinutes(timeStr, period)
		if err != nil {
			t.Fatalf("FromMinutes(%d) produced unparseable %q %q: %v", minutes, timeStr, period, err)
		}
		if back != minutes {
			t.Fatalf("round trip of %d via %q %q gave %d", minutes, timeStr, period, back)
		}
	}
}

func TestFromMinutesNormalizes(t *testing.T) {
	timeStr, period := FromMinutes(minutesPerDay + 30)
	if timeStr != "12:30" || period != "AM" {
		t.Errorf("FromMinutes(1470) = %q %q, want 12:30 AM", timeStr, period)
	}
	timeStr, period = FromMinutes(-60)
	if timeStr != "11:00" || period != "PM" {
		t.Errorf("FromMinutes(-60) = %q %q, want 11:00 PM", timeStr, period)
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name    string
		in, out string
		want    int
	}{
		{"plain morning", "8:00 AM", "12:00 PM", 240},
		{"across noon", "11:30 AM", "1:00 PM", 90},
		{"midnight wraparound", "11:50 PM", "12:10 AM", 20},
		{"same minute floors to one", "9:00 AM", "9:00 AM", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseStamp(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			out, err := ParseStamp(tt.out)
			if err != nil {
				t.Fatal(err)
			}
			if got := DurationMinutes(in, out); got != tt.want {
				t.Errorf("DurationMinutes(%s, %s) = %d, want %d", tt.in, tt.out, got, tt.want)
			}
		})
	}
}

func TestParseStamp(t *testing.T) {
	if _, err := ParseStamp("8:00AM"); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("ParseStamp without separator: want ErrInvalidTimeFormat, got %v", err)
	}
	if _, err := ParseStamp("not set"); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("ParseStamp of sentinel: want ErrInvalidTimeFormat, got %v", err)
	}
	got, err := ParseStamp(" 7:45 pm ")
	if err != nil || got != 1185 {
		t.Errorf("ParseStamp(\" 7:45 pm \") = %d, %v; want 1185, nil", got, err)
	}
}

func TestIsSet(t *testing.T) {
	for _, unset := range []string{"", "  ", "not set", "Not Set", "N/A"} {
		if IsSet(unset) {
			t.Errorf("IsSet(%q) = true, want false", unset)
		}
	}
	if !IsSet("8:00 AM") {
		t.Error("IsSet(\"8:00 AM\") = false, want true")
	}
}
