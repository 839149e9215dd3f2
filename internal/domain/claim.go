package domain

import "time"

// ClaimStatus enumerates claim lifecycle states. Pending transitions exactly
// once to Approved or Rejected.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "Pending"
	ClaimStatusApproved ClaimStatus = "Approved"
	ClaimStatusRejected ClaimStatus = "Rejected"
)

// Claim is a user's assertion of ownership over a found item.
type Claim struct {
	ID         string
	ItemID     string
	ClaimantID string
	Message    string
	ProofImage *string
	Status     ClaimStatus
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// ClaimListing is a claim joined with claimant identity for item owners,
// and optionally with item fields for the admin console.
type ClaimListing struct {
	Claim
	ClaimantName  string
	ClaimantEmail string
	ItemTitle     string
	ItemType      ItemType
	ItemOwnerName string
}
