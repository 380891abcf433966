package engine

import "testing"

func TestResolvePartnershipMatrix(t *testing.T) {
	tests := []struct {
		company, coordinator, moaSent bool
		want                          PartnershipStatus
	}{
		{true, true, true, PartnershipPartner},
		{true, true, false, PartnershipPartner},
		{true, false, true, PartnershipWaitingCoordinator},
		{true, false, false, PartnershipWaitingCoordinator},
		{false, true, true, PartnershipWaitingYou},
		{false, true, false, PartnershipWaitingYou},
		{false, false, true, PartnershipPending},
		{false, false, false, PartnershipPending},
	}

	for _, tt := range tests {
		got := ResolvePartnership(tt.company, tt.coordinator, tt.moaSent)
		if got != tt.want {
			t.Errorf("ResolvePartnership(%v, %v, %v) = %v, want %v",
				tt.company, tt.coordinator, tt.moaSent, got, tt.want)
		}
	}
}

func TestCoerceBool(t *testing.T) {
	truthy := []interface{}{true, 1, int64(1), float64(1), "1", "true", "TRUE", "True"}
	for _, v := range truthy {
		if !CoerceBool(v) {
			t.Errorf("CoerceBool(%#v) = false, want true", v)
		}
	}

	falsy := []interface{}{nil, false, 0, int64(0), float64(0), 2, "", "false", "0", "yes", " true", []string{"true"}}
	for _, v := range falsy {
		if CoerceBool(v) {
			t.Errorf("CoerceBool(%#v) = true, want false", v)
		}
	}
}

func TestCoercedFlagsMatchLiteralFlags(t *testing.T) {
	// Mixed serializations from upstream must resolve identically to clean
	// booleans.
	loose := ResolvePartnership(CoerceBool("1"), CoerceBool("true"), CoerceBool(true))
	strict := ResolvePartnership(true, true, true)
	if loose != strict {
		t.Errorf("loose flags resolved to %v, literal flags to %v", loose, strict)
	}

	loose = ResolvePartnership(CoerceBool(0), CoerceBool(nil), CoerceBool(false))
	strict = ResolvePartnership(false, false, false)
	if loose != strict {
		t.Errorf("loose flags resolved to %v, literal flags to %v", loose, strict)
	}
}

func TestMOASent(t *testing.T) {
	tests := []struct {
		status, url string
		want        bool
	}{
		{"sent", "", true},
		{"Received", "", true},
		{"active", "", true},
		{"approved", "", true},
		{"draft", "", false},
		{"", "", false},
		{"", "https://cdn.example.com/moa/42.pdf", true},
		{"draft", "https://cdn.example.com/moa/42.pdf", true},
	}

	for _, tt := range tests {
		if got := MOASent(tt.status, tt.url); got != tt.want {
			t.Errorf("MOASent(%q, %q) = %v, want %v", tt.status, tt.url, got, tt.want)
		}
	}
}
