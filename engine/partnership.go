package engine

import "strings"

// PartnershipStatus is the single displayable state of a company/coordinator
// partnership.
type PartnershipStatus string

const (
	PartnershipPartner            PartnershipStatus = "Partner"
	PartnershipWaitingCoordinator PartnershipStatus = "WaitingCoordinator"
	PartnershipWaitingYou         PartnershipStatus = "WaitingYou"
	PartnershipPending            PartnershipStatus = "Pending"
)

// ResolvePartnership collapses the two independent approval flags and the
// MOA-sent indicator into one status. Both flags false is Pending whether or
// not an MOA has been sent; the backend keeps a single label for both cases.
func ResolvePartnership(companyApproved, coordinatorApproved, moaSent bool) PartnershipStatus {
	switch {
	case companyApproved && coordinatorApproved:
		return PartnershipPartner
	case companyApproved:
		return PartnershipWaitingCoordinator
	case coordinatorApproved:
		return PartnershipWaitingYou
	default:
		// moaSent only distinguishes the two Pending flavors, which share
		// one label.
		return PartnershipPending
	}
}

// CoerceBool applies the loose boolean rule used across the coordinator
// records: literal true, the number 1, or the strings "true"/"1" (word form
// case-insensitive) are true; everything else, including nil, 0, "" and
// "false", is false. Upstream systems serialize these flags in all of those
// shapes.
func CoerceBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	case int:
		return v == 1
	case int32:
		return v == 1
	case int64:
		return v == 1
	case uint:
		return v == 1
	case float32:
		return v == 1
	case float64:
		// JSON numbers decode to float64.
		return v == 1
	default:
		return false
	}
}

// moaStatuses that count as an MOA having been sent.
var moaStatuses = map[string]bool{
	"sent":     true,
	"received": true,
	"active":   true,
	"approved": true,
}

// MOASent derives the moaSent flag from either a status enum value or the
// presence of an uploaded MOA document URL.
func MOASent(status, documentURL string) bool {
	if moaStatuses[strings.ToLower(strings.TrimSpace(status))] {
		return true
	}
	return strings.TrimSpace(documentURL) != ""
}
