package dto

import (
	"time"

	"github.com/spitlabs/lostfound-service/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name       string `json:"name"`
	UCID       string `json:"ucid"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Semester   string `json:"semester"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView is the user projection returned to clients. The password hash is
// stripped here and never serialized.
type UserView struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	UCID       string     `json:"ucid"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Phone      string     `json:"phone"`
	Department string     `json:"department"`
	Year       string     `json:"year"`
	Semester   string     `json:"semester"`
	CreatedAt  time.Time  `json:"created_at"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// NewUserView maps a domain user to its client projection.
func NewUserView(user *domain.User) UserView {
	return UserView{
		ID:         user.ID,
		Name:       user.Name,
		UCID:       user.UCID,
		Email:      user.Email,
		Role:       string(user.Role),
		Phone:      user.Phone,
		Department: user.Department,
		Year:       user.Year,
		Semester:   user.Semester,
		CreatedAt:  user.CreatedAt,
		LastLogin:  user.LastLogin,
	}
}

// NotificationView is the inbox projection.
type NotificationView struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	RelatedItemID  *string   `json:"related_item_id,omitempty"`
	RelatedClaimID *string   `json:"related_claim_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewNotificationView maps a notification row.
func NewNotificationView(n domain.Notification) NotificationView {
	return NotificationView{
		ID:             n.ID,
		Title:          n.Title,
		Message:        n.Message,
		Type:           string(n.Type),
		RelatedItemID:  n.RelatedItemID,
		RelatedClaimID: n.RelatedClaimID,
		CreatedAt:      n.CreatedAt,
	}
}
