package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spitlabs/lostfound-service/internal/api/dto"
	"github.com/spitlabs/lostfound-service/internal/auth"
	"github.com/spitlabs/lostfound-service/internal/service"
	apperrors "github.com/spitlabs/lostfound-service/pkg/util"
)

// UsersHandler exposes registration, login and logout.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Register handles POST /api/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.auth.Register(c.Context(), service.RegisterInput{
		Name:       req.Name,
		UCID:       req.UCID,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Department: req.Department,
		Year:       req.Year,
		Semester:   req.Semester,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"userId":  user.ID,
		"role":    string(user.Role),
	})
}

// Login handles POST /api/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, expiresAt, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"user":      dto.NewUserView(user),
		"token":     token,
		"expiresAt": expiresAt,
	})
}

// Logout handles POST /api/logout.
func (h *UsersHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.auth.Logout(c.Context(), principal.SessionID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
