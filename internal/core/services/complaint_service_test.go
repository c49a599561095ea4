package services

import (
	"context"
	"testing"

	"campus-portal/internal/adapters/persistence/models"
	"campus-portal/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComplaintService(t *testing.T) (*ComplaintService, *fakeUserRepo, uint) {
	t.Helper()

	userRepo := newFakeUserRepo()
	complaintRepo := newFakeComplaintRepo()

	user := &models.User{Name: "Alice", Email: "a@x.com", Password: "hash", Role: domain.RoleStudent}
	require.NoError(t, userRepo.Create(context.Background(), user))

	return NewComplaintService(complaintRepo, userRepo), userRepo, user.ID
}

func TestComplaintCreate_Success(t *testing.T) {
	t.Parallel()

	svc, _, userID := newTestComplaintService(t)

	complaint, err := svc.Create(context.Background(), userID, &CreateComplaintInput{
		Title:       "Wifi down",
		Description: "No connectivity in dorm B since Monday",
	})
	require.NoError(t, err)
	assert.NotZero(t, complaint.ID)
	assert.NotEmpty(t, complaint.Reference)
	assert.Equal(t, models.ComplaintStatusPending, complaint.Status)
}

func TestComplaintCreate_InvalidUser(t *testing.T) {
	t.Parallel()

	svc, userRepo, userID := newTestComplaintService(t)

	// A token can outlive its account; the store check must catch it
	userRepo.delete(userID)

	_, err := svc.Create(context.Background(), userID, &CreateComplaintInput{
		Title:       "Wifi down",
		Description: "desc",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidUser)
}

func TestComplaintCreate_UniqueReferences(t *testing.T) {
	t.Parallel()

	svc, _, userID := newTestComplaintService(t)

	first, err := svc.Create(context.Background(), userID, &CreateComplaintInput{Title: "One", Description: "d"})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), userID, &CreateComplaintInput{Title: "Two", Description: "d"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestListByOwner_ScopedAndOrdered(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	complaintRepo := newFakeComplaintRepo()
	svc := NewComplaintService(complaintRepo, userRepo)

	alice := &models.User{Name: "Alice", Email: "a@x.com", Password: "hash", Role: domain.RoleStudent}
	bob := &models.User{Name: "Bob", Email: "b@x.com", Password: "hash", Role: domain.RoleStudent}
	require.NoError(t, userRepo.Create(context.Background(), alice))
	require.NoError(t, userRepo.Create(context.Background(), bob))

	_, err := svc.Create(context.Background(), alice.ID, &CreateComplaintInput{Title: "First", Description: "d"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob.ID, &CreateComplaintInput{Title: "Bob's", Description: "d"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), alice.ID, &CreateComplaintInput{Title: "Second", Description: "d"})
	require.NoError(t, err)

	list, err := svc.ListByOwner(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first, and never another user's complaint
	assert.Equal(t, "Second", list[0].Title)
	assert.Equal(t, "First", list[1].Title)

	bobList, err := svc.ListByOwner(context.Background(), bob.ID)
	require.NoError(t, err)
	require.Len(t, bobList, 1)
	assert.Equal(t, "Bob's", bobList[0].Title)
}

func TestListByOwner_Empty(t *testing.T) {
	t.Parallel()

	svc, _, userID := newTestComplaintService(t)

	list, err := svc.ListByOwner(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
