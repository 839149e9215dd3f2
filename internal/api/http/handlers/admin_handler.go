package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spitlabs/lostfound-service/internal/api/dto"
	"github.com/spitlabs/lostfound-service/internal/observability"
	"github.com/spitlabs/lostfound-service/internal/service"
)

// AdminHandler exposes the admin console aggregation endpoints. Role
// enforcement happens in the router via auth.RequireAdmin.
type AdminHandler struct {
	admin   *service.AdminService
	metrics *observability.Metrics
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService, metrics *observability.Metrics) *AdminHandler {
	return &AdminHandler{admin: adminService, metrics: metrics}
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	summary, err := h.admin.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.StatsView{
		Users:         summary.Users,
		Items:         summary.Items,
		LostItems:     summary.LostItems,
		FoundItems:    summary.FoundItems,
		OpenItems:     summary.OpenItems,
		PendingClaims: summary.PendingClaims,
		ResolvedItems: summary.ResolvedItems,
	})
}

// Items handles GET /api/admin/items.
func (h *AdminHandler) Items(c *fiber.Ctx) error {
	listings, err := h.admin.ListItems(c.Context())
	if err != nil {
		return err
	}
	views := make([]dto.ItemListingView, 0, len(listings))
	for _, listing := range listings {
		views = append(views, dto.NewItemListingView(listing))
	}
	return c.JSON(views)
}

// Claims handles GET /api/admin/claims.
func (h *AdminHandler) Claims(c *fiber.Ctx) error {
	listings, err := h.admin.ListClaims(c.Context())
	if err != nil {
		return err
	}
	views := make([]dto.ClaimListingView, 0, len(listings))
	for _, listing := range listings {
		views = append(views, dto.NewClaimListingView(listing))
	}
	return c.JSON(views)
}

// Users handles GET /api/admin/users.
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, err := h.admin.ListUsers(c.Context())
	if err != nil {
		return err
	}
	views := make([]dto.UserView, 0, len(users))
	for i := range users {
		views = append(views, dto.NewUserView(&users[i]))
	}
	return c.JSON(views)
}

// Metrics handles GET /api/admin/metrics.
func (h *AdminHandler) Metrics(c *fiber.Ctx) error {
	requests, errors := h.metrics.Snapshot()
	return c.JSON(fiber.Map{"requests": requests, "errors": errors})
}
