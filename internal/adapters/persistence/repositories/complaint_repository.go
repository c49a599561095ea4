package repositories

import (
	"context"
	"time"

	"campus-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// complaintRepository implements ComplaintRepository interface
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// Create creates a new complaint
func (r *complaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// ListByOwner lists the owner's complaints, newest first
func (r *complaintRepository) ListByOwner(ctx context.Context, userID uint) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// CountByStatus counts complaints with the given status
func (r *complaintRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Complaint{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountPendingOlderThan counts pending complaints created before the cutoff
func (r *complaintRepository) CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Complaint{}).
		Where("status = ? AND created_at < ?", models.ComplaintStatusPending, cutoff).
		Count(&count).Error
	return count, err
}
