package services

import (
	"context"
	"log"

	"campus-portal/internal/adapters/persistence/models"
	"campus-portal/internal/adapters/persistence/repositories"
	"campus-portal/internal/core/domain"

	"github.com/google/uuid"
)

// ComplaintService handles complaint business logic
type ComplaintService struct {
	complaintRepo repositories.ComplaintRepository
	userRepo      repositories.UserRepository
}

// NewComplaintService creates a new complaint service
func NewComplaintService(complaintRepo repositories.ComplaintRepository, userRepo repositories.UserRepository) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
	}
}

// CreateComplaintInput represents complaint creation input
type CreateComplaintInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create files a new complaint for the given user. The user is
// re-checked against the store so a valid token for a deleted
// account cannot write.
func (s *ComplaintService) Create(ctx context.Context, userID uint, input *CreateComplaintInput) (*models.ComplaintResponse, error) {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrInvalidUser
	}

	complaint := &models.Complaint{
		UserID:      userID,
		Reference:   uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Status:      models.ComplaintStatusPending,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}
	if complaint.ID == 0 {
		return nil, domain.ErrPersistence
	}

	log.Printf("✅ Complaint filed: #%d by user %d", complaint.ID, userID)

	return complaint.ToResponse(), nil
}

// ListByOwner lists complaints belonging to the given user, newest
// first. Listing is always scoped to the caller, never cross-user.
func (s *ComplaintService) ListByOwner(ctx context.Context, userID uint) ([]*models.ComplaintResponse, error) {
	complaints, err := s.complaintRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		responses = append(responses, c.ToResponse())
	}
	return responses, nil
}
