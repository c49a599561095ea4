package services

import (
	"context"

	"campus-portal/internal/adapters/persistence/models"
	"campus-portal/internal/adapters/persistence/repositories"
	"campus-portal/internal/core/domain"
)

// DashboardService aggregates portal statistics for staff.
// Only counts are exposed, never complaint records, so user-owned
// data stays scoped to its owner.
type DashboardService struct {
	userRepo      repositories.UserRepository
	complaintRepo repositories.ComplaintRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(userRepo repositories.UserRepository, complaintRepo repositories.ComplaintRepository) *DashboardService {
	return &DashboardService{
		userRepo:      userRepo,
		complaintRepo: complaintRepo,
	}
}

// DashboardSummary represents portal-wide statistics
type DashboardSummary struct {
	TotalStudents  int64 `json:"total_students"`
	TotalAdmins    int64 `json:"total_admins"`
	TotalOfficials int64 `json:"total_officials"`

	PendingComplaints  int64 `json:"pending_complaints"`
	ResolvedComplaints int64 `json:"resolved_complaints"`
	RejectedComplaints int64 `json:"rejected_complaints"`
}

// GetSummary returns user and complaint counts
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	var err error
	if summary.TotalStudents, err = s.userRepo.CountByRole(ctx, domain.RoleStudent); err != nil {
		return nil, err
	}
	if summary.TotalAdmins, err = s.userRepo.CountByRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if summary.TotalOfficials, err = s.userRepo.CountByRole(ctx, domain.RoleOfficial); err != nil {
		return nil, err
	}

	if summary.PendingComplaints, err = s.complaintRepo.CountByStatus(ctx, models.ComplaintStatusPending); err != nil {
		return nil, err
	}
	if summary.ResolvedComplaints, err = s.complaintRepo.CountByStatus(ctx, models.ComplaintStatusResolved); err != nil {
		return nil, err
	}
	if summary.RejectedComplaints, err = s.complaintRepo.CountByStatus(ctx, models.ComplaintStatusRejected); err != nil {
		return nil, err
	}

	return summary, nil
}
