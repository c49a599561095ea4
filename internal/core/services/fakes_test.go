package services

import (
	"context"
	"sync"
	"time"

	"campus-portal/internal/adapters/persistence/models"
	"campus-portal/internal/core/domain"

	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory UserRepository. Create enforces the
// unique email index the way the MySQL store does, returning
// domain.ErrEmailTaken on a duplicate.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) CountByEmail(_ context.Context, email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, u := range r.users {
		if u.Email == email {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) GetByEmailAndRole(_ context.Context, email, role string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.Role == role {
			found := *u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		found := *u
		return &found, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByID(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

// delete removes a user, simulating an account removed after a token
// was issued for it.
func (r *fakeUserRepo) delete(id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

// fakeComplaintRepo is an in-memory ComplaintRepository
type fakeComplaintRepo struct {
	mu         sync.Mutex
	nextID     uint
	complaints []*models.Complaint
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{}
}

func (r *fakeComplaintRepo) Create(_ context.Context, complaint *models.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	complaint.ID = r.nextID
	if complaint.CreatedAt.IsZero() {
		complaint.CreatedAt = time.Now()
	}
	stored := *complaint
	r.complaints = append(r.complaints, &stored)
	return nil
}

func (r *fakeComplaintRepo) ListByOwner(_ context.Context, userID uint) ([]*models.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*models.Complaint
	// Inserted in time order, so newest first is reverse insertion order
	for i := len(r.complaints) - 1; i >= 0; i-- {
		if r.complaints[i].UserID == userID {
			found := *r.complaints[i]
			result = append(result, &found)
		}
	}
	return result, nil
}

func (r *fakeComplaintRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, c := range r.complaints {
		if c.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeComplaintRepo) CountPendingOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, c := range r.complaints {
		if c.Status == models.ComplaintStatusPending && c.CreatedAt.Before(cutoff) {
			count++
		}
	}
	return count, nil
}
