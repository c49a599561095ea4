package handlers

import (
	"errors"
	"strings"

	"campus-portal/internal/core/domain"
	"campus-portal/internal/core/services"
	"campus-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ComplaintHandler handles complaint endpoints
type ComplaintHandler struct {
	complaintService *services.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// CreateComplaintRequest represents complaint creation request body
type CreateComplaintRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create handles complaint creation
// @Summary File a complaint
// @Description File a new complaint owned by the authenticated user
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateComplaintRequest true "Complaint data"
// @Success 201 {object} models.ComplaintResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /complaints [post]
func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Title) == "" {
		return response.BadRequest(c, "Title is required")
	}
	if len(req.Title) > 200 {
		return response.BadRequest(c, "Title must be at most 200 characters")
	}
	if strings.TrimSpace(req.Description) == "" {
		return response.BadRequest(c, "Description is required")
	}

	input := &services.CreateComplaintInput{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
	}

	complaint, err := h.complaintService.Create(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidUser) {
			return response.BadRequest(c, "Invalid user")
		}
		return response.InternalServerError(c, "Failed to create complaint")
	}

	return response.Created(c, fiber.Map{
		"id":        complaint.ID,
		"reference": complaint.Reference,
		"status":    complaint.Status,
	})
}

// List handles listing the caller's complaints
// @Summary List own complaints
// @Description List complaints filed by the authenticated user, newest first
// @Tags Complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ComplaintResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /complaints [get]
func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	complaints, err := h.complaintService.ListByOwner(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list complaints")
	}

	return response.OK(c, complaints)
}
