package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spitlabs/lostfound-service/internal/domain"
	"github.com/spitlabs/lostfound-service/internal/events"
	"github.com/spitlabs/lostfound-service/internal/repository"
	apperrors "github.com/spitlabs/lostfound-service/pkg/util"
)

// ClaimService coordinates the claim lifecycle: submit, approve, reject.
// State transitions are atomic and at-most-once; notifications are emitted as
// events after the transition commits and never roll it back.
type ClaimService struct {
	claims     repository.ClaimRepository
	items      repository.ItemRepository
	dispatcher events.Dispatcher
}

// ClaimDependencies bundles repositories for claim service.
type ClaimDependencies struct {
	ClaimRepo  repository.ClaimRepository
	ItemRepo   repository.ItemRepository
	Dispatcher events.Dispatcher
}

// ClaimSubmitInput describes claim creation payload.
type ClaimSubmitInput struct {
	ItemID     string
	Message    string
	ProofImage *string
}

// NewClaimService constructs the service.
func NewClaimService(deps ClaimDependencies) *ClaimService {
	return &ClaimService{
		claims:     deps.ClaimRepo,
		items:      deps.ItemRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Submit files a Pending claim against an existing item and notifies the
// owner. The item is loaded first: a claim is never created for a missing
// item, and owners cannot claim their own postings.
func (s *ClaimService) Submit(ctx context.Context, claimantID string, input ClaimSubmitInput) (*domain.Claim, error) {
	if input.ItemID == "" || claimantID == "" {
		return nil, apperrors.NewValidationError("item_id and claimant_user_id required", nil)
	}

	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("item", map[string]any{"item_id": input.ItemID})
		}
		return nil, err
	}
	if item.UserID == claimantID {
		return nil, apperrors.NewValidationError("cannot claim your own item", nil)
	}

	claim := &domain.Claim{
		ItemID:     item.ID,
		ClaimantID: claimantID,
		Message:    input.Message,
		ProofImage: input.ProofImage,
	}
	if err := s.claims.Create(ctx, claim); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventClaimSubmitted,
		ItemID:    item.ID,
		ClaimID:   claim.ID,
		Timestamp: time.Now(),
		Payload: events.ClaimSubmittedPayload{
			ItemTitle:   item.Title,
			ItemOwnerID: item.UserID,
			ClaimantID:  claimantID,
		},
	})
	return claim, nil
}

// Approve moves a Pending claim to Approved and its item to Resolved in one
// transaction, then notifies the claimant. Approving an already-Approved
// claim succeeds without re-writing or re-notifying; approving a Rejected
// claim is a conflict.
func (s *ClaimService) Approve(ctx context.Context, caller *domain.User, claimID string) (*domain.Claim, error) {
	if err := s.authorizeResolution(ctx, caller, claimID); err != nil {
		return nil, err
	}

	claim, transitioned, err := s.claims.Approve(ctx, claimID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("claim", map[string]any{"claim_id": claimID})
		}
		return nil, err
	}
	if !transitioned {
		if claim.Status == domain.ClaimStatusRejected {
			return nil, apperrors.NewConflict("claim already rejected", nil)
		}
		return claim, nil
	}

	s.publish(ctx, events.Event{
		Type:      events.EventClaimApproved,
		ItemID:    claim.ItemID,
		ClaimID:   claim.ID,
		Timestamp: time.Now(),
		Payload:   events.ClaimResolvedPayload{ClaimantID: claim.ClaimantID},
	})
	return claim, nil
}

// Reject moves a Pending claim to Rejected and notifies the claimant. The
// item stays untouched. Same idempotence rules as Approve, mirrored.
func (s *ClaimService) Reject(ctx context.Context, caller *domain.User, claimID string) (*domain.Claim, error) {
	if err := s.authorizeResolution(ctx, caller, claimID); err != nil {
		return nil, err
	}

	claim, transitioned, err := s.claims.Reject(ctx, claimID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("claim", map[string]any{"claim_id": claimID})
		}
		return nil, err
	}
	if !transitioned {
		if claim.Status == domain.ClaimStatusApproved {
			return nil, apperrors.NewConflict("claim already approved", nil)
		}
		return claim, nil
	}

	s.publish(ctx, events.Event{
		Type:      events.EventClaimRejected,
		ItemID:    claim.ItemID,
		ClaimID:   claim.ID,
		Timestamp: time.Now(),
		Payload:   events.ClaimResolvedPayload{ClaimantID: claim.ClaimantID},
	})
	return claim, nil
}

// ListForItem returns an item's claims with claimant identity, newest first.
// Visible to the item owner and admins only.
func (s *ClaimService) ListForItem(ctx context.Context, caller *domain.User, itemID string) ([]domain.ClaimListing, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("item", map[string]any{"item_id": itemID})
		}
		return nil, err
	}
	if item.UserID != caller.ID && caller.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("only the item owner or an admin can view claims")
	}
	return s.claims.ListForItem(ctx, itemID)
}

// authorizeResolution ensures the caller owns the claimed item or is admin
// before any terminal transition is attempted.
func (s *ClaimService) authorizeResolution(ctx context.Context, caller *domain.User, claimID string) error {
	if caller.Role == domain.RoleAdmin {
		return nil
	}
	claim, err := s.claims.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("claim", map[string]any{"claim_id": claimID})
		}
		return err
	}
	item, err := s.items.GetByID(ctx, claim.ItemID)
	if err != nil {
		return err
	}
	if item.UserID != caller.ID {
		return apperrors.NewForbidden("only the item owner or an admin can resolve a claim")
	}
	return nil
}

func (s *ClaimService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
