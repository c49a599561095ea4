package repositories

import (
	"context"
	"time"

	"campus-portal/internal/adapters/persistence/models"
)

// UserRepository is the durable credential store
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	CountByEmail(ctx context.Context, email string) (int64, error)
	GetByEmailAndRole(ctx context.Context, email, role string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// ComplaintRepository stores user complaints
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	ListByOwner(ctx context.Context, userID uint) ([]*models.Complaint, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
