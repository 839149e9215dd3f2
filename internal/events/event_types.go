package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventClaimSubmitted EventType = "claim_submitted"
	EventClaimApproved  EventType = "claim_approved"
	EventClaimRejected  EventType = "claim_rejected"
	EventItemResolved   EventType = "item_resolved"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	ItemID    string      `json:"item_id,omitempty"`
	ClaimID   string      `json:"claim_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ClaimSubmittedPayload carries the data the owner notification needs.
type ClaimSubmittedPayload struct {
	ItemTitle   string `json:"item_title"`
	ItemOwnerID string `json:"item_owner_id"`
	ClaimantID  string `json:"claimant_id"`
}

// ClaimResolvedPayload carries the data the claimant notification needs for
// both approvals and rejections.
type ClaimResolvedPayload struct {
	ClaimantID string `json:"claimant_id"`
}

// ItemResolvedPayload marks an owner-initiated manual resolution.
type ItemResolvedPayload struct {
	OwnerID string `json:"owner_id"`
}
