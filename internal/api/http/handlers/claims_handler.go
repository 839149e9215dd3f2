package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spitlabs/lostfound-service/internal/api/dto"
	"github.com/spitlabs/lostfound-service/internal/auth"
	"github.com/spitlabs/lostfound-service/internal/service"
	apperrors "github.com/spitlabs/lostfound-service/pkg/util"
)

// ClaimsHandler manages the claim workflow endpoints.
type ClaimsHandler struct {
	claims *service.ClaimService
}

// NewClaimsHandler constructs handler.
func NewClaimsHandler(claimService *service.ClaimService) *ClaimsHandler {
	return &ClaimsHandler{claims: claimService}
}

// Submit handles POST /api/claims.
func (h *ClaimsHandler) Submit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClaimantID != "" && req.ClaimantID != principal.User.ID {
		return apperrors.NewForbidden("claimant_user_id must match the authenticated user")
	}

	claim, err := h.claims.Submit(c.Context(), principal.User.ID, service.ClaimSubmitInput{
		ItemID:     req.ItemID,
		Message:    req.Message,
		ProofImage: req.ProofImage,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Claim submitted successfully",
		"claimId": claim.ID,
	})
}

// ListForItem handles GET /api/items/:itemId/claims.
func (h *ClaimsHandler) ListForItem(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	listings, err := h.claims.ListForItem(c.Context(), principal.User, c.Params("itemId"))
	if err != nil {
		return err
	}
	views := make([]dto.ClaimListingView, 0, len(listings))
	for _, listing := range listings {
		views = append(views, dto.NewClaimListingView(listing))
	}
	return c.JSON(views)
}

// Approve handles POST /api/claims/:claimId/approve.
func (h *ClaimsHandler) Approve(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ApproveClaimRequest
	_ = c.BodyParser(&req)

	if _, err := h.claims.Approve(c.Context(), principal.User, c.Params("claimId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Claim approved successfully"})
}

// Reject handles POST /api/claims/:claimId/reject.
func (h *ClaimsHandler) Reject(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if _, err := h.claims.Reject(c.Context(), principal.User, c.Params("claimId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Claim rejected"})
}
