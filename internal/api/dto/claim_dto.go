package dto

import (
	"time"

	"github.com/spitlabs/lostfound-service/internal/domain"
)

// CreateClaimRequest payload for new claims.
type CreateClaimRequest struct {
	ItemID     string  `json:"item_id"`
	ClaimantID string  `json:"claimant_user_id"`
	Message    string  `json:"message"`
	ProofImage *string `json:"proof_image"`
}

// ApproveClaimRequest payload for approvals. The item id is accepted for wire
// compatibility; the claim row is authoritative for which item resolves.
type ApproveClaimRequest struct {
	ItemID string `json:"item_id"`
}

// ClaimView is the claim projection returned to clients.
type ClaimView struct {
	ID         string     `json:"id"`
	ItemID     string     `json:"item_id"`
	ClaimantID string     `json:"claimant_user_id"`
	Message    string     `json:"message"`
	ProofImage *string    `json:"proof_image,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// ClaimListingView extends ClaimView with joined claimant/item fields.
type ClaimListingView struct {
	ClaimView
	ClaimantName  string `json:"claimant_name"`
	ClaimantEmail string `json:"claimant_email"`
	ItemTitle     string `json:"item_title,omitempty"`
	ItemType      string `json:"item_type,omitempty"`
	ItemOwnerName string `json:"item_owner_name,omitempty"`
}

// NewClaimView maps a domain claim.
func NewClaimView(claim domain.Claim) ClaimView {
	return ClaimView{
		ID:         claim.ID,
		ItemID:     claim.ItemID,
		ClaimantID: claim.ClaimantID,
		Message:    claim.Message,
		ProofImage: claim.ProofImage,
		Status:     string(claim.Status),
		CreatedAt:  claim.CreatedAt,
		ResolvedAt: claim.ResolvedAt,
	}
}

// NewClaimListingView maps a joined claim listing.
func NewClaimListingView(listing domain.ClaimListing) ClaimListingView {
	return ClaimListingView{
		ClaimView:     NewClaimView(listing.Claim),
		ClaimantName:  listing.ClaimantName,
		ClaimantEmail: listing.ClaimantEmail,
		ItemTitle:     listing.ItemTitle,
		ItemType:      string(listing.ItemType),
		ItemOwnerName: listing.ItemOwnerName,
	}
}

// StatsView mirrors the admin dashboard counters.
type StatsView struct {
	Users         int64 `json:"users"`
	Items         int64 `json:"items"`
	LostItems     int64 `json:"lostItems"`
	FoundItems    int64 `json:"foundItems"`
	OpenItems     int64 `json:"openItems"`
	PendingClaims int64 `json:"pendingClaims"`
	ResolvedItems int64 `json:"resolvedItems"`
}
