package engine

import (
	"errors"
	"testing"
)

func TestDailyHours(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   float64
	}{
		{
			name: "full day",
			record: Record{
				AMTimeIn: "8:00 AM", AMTimeOut: "12:00 PM",
				PMTimeIn: "1:00 PM", PMTimeOut: "5:00 PM",
				AMStatus: MarkNotMarked, PMStatus: MarkNotMarked,
			},
			want: 8,
		},
		{
			name: "half day counts the completed session only",
			record: Record{
				AMTimeIn: "8:00 AM", AMTimeOut: "12:30 PM",
				PMTimeIn: "1:00 PM",
				AMStatus: MarkNotMarked, PMStatus: MarkNotMarked,
			},
			want: 4.5,
		},
		{
			name: "excused session contributes zero",
			record: Record{
				AMTimeIn: "8:00 AM", AMTimeOut: "12:00 PM",
				AMStatus: MarkNotMarked, PMStatus: MarkSick,
			},
			want: 4,
		},
		{
			name:   "untouched record is zero",
			record: Record{AMStatus: MarkNotMarked, PMStatus: MarkNotMarked},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DailyHours(tt.record)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("DailyHours() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDailyHoursRejectsMalformedStamp(t *testing.T) {
	r := Record{
		AMTimeIn: "99:00 AM", AMTimeOut: "12:00 PM",
		AMStatus: MarkNotMarked, PMStatus: MarkNotMarked,
	}
	if _, err := DailyHours(r); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("DailyHours with bad stamp: want ErrInvalidTimeFormat, got %v", err)
	}
}

func TestAccumulatedHoursIdempotent(t *testing.T) {
	records := []Record{
		{TotalHours: 8},
		{TotalHours: 4.5},
		{TotalHours: 7.25},
	}
	first := AccumulatedHours(records)
	second := AccumulatedHours(records)
	if first != second {
		t.Fatalf("AccumulatedHours not idempotent: %v vs %v", first, second)
	}
	if first != 19.75 {
		t.Errorf("AccumulatedHours() = %v, want 19.75", first)
	}
}

func TestComputeRemaining(t *testing.T) {
	tests := []struct {
		name                   string
		required, accumulated  float64
		wantHours              float64
		wantDays               int
	}{
		{"plenty left", 486, 100, 386, 49},
		{"exact finish", 100, 100, 0, 0},
		{"overshoot floors at zero", 100, 120, 0, 0},
		{"partial day rounds up", 136, 12.5, 123.5, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeRemaining(tt.required, tt.accumulated)
			if err != nil {
				t.Fatal(err)
			}
			if got.Hours != tt.wantHours || got.Days != tt.wantDays {
				t.Errorf("ComputeRemaining(%v, %v) = %+v, want {%v %d}",
					tt.required, tt.accumulated, got, tt.wantHours, tt.wantDays)
			}
		})
	}
}

func TestComputeRemainingWithoutTotal(t *testing.T) {
	if _, err := ComputeRemaining(0, 40); !errors.Is(err, ErrMissingRequiredTotal) {
		t.Errorf("ComputeRemaining(0, ...): want ErrMissingRequiredTotal, got %v", err)
	}
}

func TestInternProgressScenario(t *testing.T) {
	// Intern with a 136-hour requirement, one full day and one half day in.
	required, err := ParseRequiredHours("136 hours")
	if err != nil {
		t.Fatal(err)
	}
	records := []Record{
		{TotalHours: 8},
		{TotalHours: 4.5},
	}
	accumulated := AccumulatedHours(records)
	if accumulated != 12.5 {
		t.Fatalf("accumulated = %v, want 12.5", accumulated)
	}
	remaining, err := ComputeRemaining(required, accumulated)
	if err != nil {
		t.Fatal(err)
	}
	if remaining.Hours != 123.5 || remaining.Days != 16 {
		t.Errorf("remaining = %+v, want {123.5 16}", remaining)
	}
}

func TestParseRequiredHours(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr error
	}{
		{"136 hours", 136, nil},
		{"486", 486, nil},
		{"240.5 hrs", 240.5, nil},
		{"", 0, ErrMissingRequiredTotal},
		{"0 hours", 0, ErrMissingRequiredTotal},
	}

	for _, tt := range tests {
		got, err := ParseRequiredHours(tt.raw)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseRequiredHours(%q): want %v, got %v", tt.raw, tt.wantErr, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseRequiredHours(%q) = %v, %v; want %v, nil", tt.raw, got, err, tt.want)
		}
	}

	if _, err := ParseRequiredHours("tbd"); err == nil {
		t.Error("ParseRequiredHours(\"tbd\") should fail")
	}
}
