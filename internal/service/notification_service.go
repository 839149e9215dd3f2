package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spitlabs/lostfound-service/internal/domain"
	"github.com/spitlabs/lostfound-service/internal/events"
	"github.com/spitlabs/lostfound-service/internal/repository"
)

// NotificationService turns claim lifecycle events into notification rows.
// Writes are best-effort: a failed insert is logged and never undoes the
// state transition that triggered it.
type NotificationService struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// RegisterHandlers subscribes to claim lifecycle events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventClaimSubmitted, n.handleClaimSubmitted)
	n.dispatcher.Subscribe(events.EventClaimApproved, n.handleClaimApproved)
	n.dispatcher.Subscribe(events.EventClaimRejected, n.handleClaimRejected)
	n.dispatcher.Subscribe(events.EventItemResolved, n.handleItemResolved)
}

// ListForUser returns a user's notifications, newest first.
func (n *NotificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return n.notifications.ListForUser(ctx, userID)
}

func (n *NotificationService) handleClaimSubmitted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ClaimSubmittedPayload)
	if !ok {
		return nil
	}
	return n.deliver(ctx, &domain.Notification{
		UserID:         payload.ItemOwnerID,
		Title:          "New Claim on Your Item",
		Message:        fmt.Sprintf("Someone has claimed your found item: %q", payload.ItemTitle),
		Type:           domain.NotificationTypeClaim,
		RelatedItemID:  &event.ItemID,
		RelatedClaimID: &event.ClaimID,
	})
}

func (n *NotificationService) handleClaimApproved(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ClaimResolvedPayload)
	if !ok {
		return nil
	}
	return n.deliver(ctx, &domain.Notification{
		UserID:         payload.ClaimantID,
		Title:          "Claim Approved!",
		Message:        "Your claim has been approved! Please contact the finder to collect your item.",
		Type:           domain.NotificationTypeClaim,
		RelatedClaimID: &event.ClaimID,
	})
}

func (n *NotificationService) handleClaimRejected(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ClaimResolvedPayload)
	if !ok {
		return nil
	}
	return n.deliver(ctx, &domain.Notification{
		UserID:         payload.ClaimantID,
		Title:          "Claim Rejected",
		Message:        "Unfortunately, your claim was not approved. Please try contacting the finder directly if you believe there was a mistake.",
		Type:           domain.NotificationTypeClaim,
		RelatedClaimID: &event.ClaimID,
	})
}

func (n *NotificationService) handleItemResolved(_ context.Context, event events.Event) error {
	n.logger.Info("item resolved manually", zap.String("item_id", event.ItemID))
	return nil
}

func (n *NotificationService) deliver(ctx context.Context, notification *domain.Notification) error {
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Warn("notification delivery failed",
			zap.String("user_id", notification.UserID),
			zap.String("title", notification.Title),
			zap.Error(err))
		return err
	}
	return nil
}
