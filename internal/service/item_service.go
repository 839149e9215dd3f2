package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spitlabs/lostfound-service/internal/domain"
	"github.com/spitlabs/lostfound-service/internal/events"
	"github.com/spitlabs/lostfound-service/internal/repository"
	apperrors "github.com/spitlabs/lostfound-service/pkg/util"
)

// ItemService coordinates lost/found posting workflows.
type ItemService struct {
	items      repository.ItemRepository
	locations  repository.LocationRepository
	dispatcher events.Dispatcher
}

// ItemDependencies bundles repositories for item service.
type ItemDependencies struct {
	ItemRepo     repository.ItemRepository
	LocationRepo repository.LocationRepository
	Dispatcher   events.Dispatcher
}

// ItemCreateInput describes posting creation payload.
type ItemCreateInput struct {
	Title        string
	Description  string
	Category     string
	LocationID   *string
	LocationText string
	Type         domain.ItemType
	ContactInfo  string
	ImageURL     *string
	Color        *string
	FoundDate    *time.Time
}

// NewItemService constructs the service.
func NewItemService(deps ItemDependencies) *ItemService {
	return &ItemService{
		items:      deps.ItemRepo,
		locations:  deps.LocationRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create inserts a posting owned by ownerID, applying the directory defaults.
func (s *ItemService) Create(ctx context.Context, ownerID string, input ItemCreateInput) (*domain.Item, error) {
	if ownerID == "" || strings.TrimSpace(input.Title) == "" || input.Type == "" || strings.TrimSpace(input.ContactInfo) == "" {
		return nil, apperrors.NewValidationError("user_id, title, type, contact_info required", nil)
	}
	if input.Type != domain.ItemTypeLost && input.Type != domain.ItemTypeFound {
		return nil, apperrors.NewValidationError("type must be Lost or Found", nil)
	}

	item := &domain.Item{
		UserID:       ownerID,
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Category:     input.Category,
		LocationID:   input.LocationID,
		LocationText: input.LocationText,
		Type:         input.Type,
		ContactInfo:  strings.TrimSpace(input.ContactInfo),
		ImageURL:     input.ImageURL,
		Color:        input.Color,
		FoundDate:    input.FoundDate,
	}
	if item.Category == "" {
		item.Category = "Other"
	}
	if item.FoundDate == nil {
		today := time.Now().Truncate(24 * time.Hour)
		item.FoundDate = &today
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListOpen returns open postings with reporter and location names, newest first.
func (s *ItemService) ListOpen(ctx context.Context) ([]domain.ItemListing, error) {
	return s.items.ListOpen(ctx)
}

// ListByOwner returns all postings of a user regardless of status, newest first.
func (s *ItemService) ListByOwner(ctx context.Context, userID string) ([]domain.Item, error) {
	return s.items.ListByOwner(ctx, userID)
}

// Delete removes a posting. Only the owner or an admin may delete.
func (s *ItemService) Delete(ctx context.Context, caller *domain.User, itemID string) error {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("item", map[string]any{"item_id": itemID})
		}
		return err
	}
	if item.UserID != caller.ID && caller.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("only the owner or an admin can delete an item")
	}
	return s.items.Delete(ctx, itemID)
}

// Resolve marks a posting Resolved without a claim. This is the owner's manual
// entry point into the same terminal state claim approval reaches.
func (s *ItemService) Resolve(ctx context.Context, caller *domain.User, itemID string) error {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("item", map[string]any{"item_id": itemID})
		}
		return err
	}
	if item.UserID != caller.ID && caller.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("only the owner or an admin can resolve an item")
	}

	if err := s.items.Resolve(ctx, itemID); err != nil {
		return err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventItemResolved,
		ItemID:    itemID,
		Timestamp: time.Now(),
		Payload:   events.ItemResolvedPayload{OwnerID: item.UserID},
	})
	return nil
}

// ListLocations returns the active campus locations in display order.
func (s *ItemService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.locations.ListActive(ctx)
}

func (s *ItemService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
