package domain

import "time"

// NotificationType categorizes notifications.
type NotificationType string

const (
	NotificationTypeClaim NotificationType = "claim"
)

// Notification is a message addressed to a user, created as a side effect of
// claim submission, approval, or rejection. Rows are append-only.
type Notification struct {
	ID             string
	UserID         string
	Title          string
	Message        string
	Type           NotificationType
	RelatedItemID  *string
	RelatedClaimID *string
	CreatedAt      time.Time
}
