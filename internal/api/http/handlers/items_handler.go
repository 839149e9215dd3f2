package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spitlabs/lostfound-service/internal/api/dto"
	"github.com/spitlabs/lostfound-service/internal/auth"
	"github.com/spitlabs/lostfound-service/internal/domain"
	"github.com/spitlabs/lostfound-service/internal/service"
	apperrors "github.com/spitlabs/lostfound-service/pkg/util"
)

// ItemsHandler manages the item directory endpoints.
type ItemsHandler struct {
	items *service.ItemService
}

// NewItemsHandler constructs handler.
func NewItemsHandler(itemService *service.ItemService) *ItemsHandler {
	return &ItemsHandler{items: itemService}
}

// List handles GET /api/items.
func (h *ItemsHandler) List(c *fiber.Ctx) error {
	listings, err := h.items.ListOpen(c.Context())
	if err != nil {
		return err
	}
	views := make([]dto.ItemListingView, 0, len(listings))
	for _, listing := range listings {
		views = append(views, dto.NewItemListingView(listing))
	}
	return c.JSON(views)
}

// MyPosts handles GET /api/myposts/:userId.
func (h *ItemsHandler) MyPosts(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	userID := c.Params("userId")
	if userID != principal.User.ID && principal.User.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("cannot list another user's posts")
	}

	items, err := h.items.ListByOwner(c.Context(), userID)
	if err != nil {
		return err
	}
	views := make([]dto.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, dto.NewItemView(item))
	}
	return c.JSON(views)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserID == "" {
		return apperrors.NewValidationError("user_id, title, type, contact_info required", nil)
	}
	if req.UserID != principal.User.ID {
		return apperrors.NewForbidden("user_id must match the authenticated user")
	}
	foundDate, err := req.ParseFoundDate()
	if err != nil {
		return apperrors.NewValidationError("found_date must be YYYY-MM-DD", nil)
	}

	item, err := h.items.Create(c.Context(), principal.User.ID, service.ItemCreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		LocationID:   req.LocationID,
		LocationText: req.LocationText,
		Type:         domain.ItemType(req.Type),
		ContactInfo:  req.ContactInfo,
		ImageURL:     req.ImageURL,
		Color:        req.Color,
		FoundDate:    foundDate,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "itemId": item.ID})
}

// Delete handles DELETE /api/items/:id.
func (h *ItemsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.items.Delete(c.Context(), principal.User, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Resolve handles POST /api/items/:itemId/resolve.
func (h *ItemsHandler) Resolve(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.items.Resolve(c.Context(), principal.User, c.Params("itemId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Item marked as resolved"})
}

// Locations handles GET /api/locations.
func (h *ItemsHandler) Locations(c *fiber.Ctx) error {
	locations, err := h.items.ListLocations(c.Context())
	if err != nil {
		return err
	}
	views := make([]dto.LocationView, 0, len(locations))
	for _, loc := range locations {
		views = append(views, dto.NewLocationView(loc))
	}
	return c.JSON(views)
}
