package services

import (
	"bytes"
	"context"
	"log"
	"os"
	"testing"
	"time"

	"campus-portal/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportBacklog_CountsStalePending(t *testing.T) {
	repo := newFakeComplaintRepo()
	ctx := context.Background()

	// One pending complaint past the stale cutoff, one fresh, one resolved
	require.NoError(t, repo.Create(ctx, &models.Complaint{
		UserID: 1, Reference: "r1", Title: "t", Description: "d",
		Status:    models.ComplaintStatusPending,
		CreatedAt: time.Now().Add(-8 * 24 * time.Hour),
	}))
	require.NoError(t, repo.Create(ctx, &models.Complaint{
		UserID: 1, Reference: "r2", Title: "t", Description: "d",
		Status: models.ComplaintStatusPending,
	}))
	require.NoError(t, repo.Create(ctx, &models.Complaint{
		UserID: 2, Reference: "r3", Title: "t", Description: "d",
		Status:    models.ComplaintStatusResolved,
		CreatedAt: time.Now().Add(-9 * 24 * time.Hour),
	}))

	stale, err := repo.CountPendingOlderThan(ctx, time.Now().Add(-staleComplaintAge))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stale)

	svc := NewReportService(repo)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	svc.reportBacklog()

	assert.Contains(t, buf.String(), "2 pending, 1 pending longer than 7 days")
}

func TestReportService_StartStop(t *testing.T) {
	svc := NewReportService(newFakeComplaintRepo())

	svc.Start()
	svc.Stop()
}
