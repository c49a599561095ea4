package services

import (
	"context"
	"log"
	"time"

	"campus-portal/internal/adapters/persistence/models"
	"campus-portal/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

const staleComplaintAge = 7 * 24 * time.Hour

// ReportService runs the daily complaint backlog report (08:30 daily)
type ReportService struct {
	complaintRepo repositories.ComplaintRepository
	cron          *cron.Cron
}

// NewReportService creates a new report service
func NewReportService(complaintRepo repositories.ComplaintRepository) *ReportService {
	return &ReportService{
		complaintRepo: complaintRepo,
		cron:          cron.New(),
	}
}

// Start schedules the daily backlog report
func (s *ReportService) Start() {
	if _, err := s.cron.AddFunc("30 8 * * *", s.reportBacklog); err != nil {
		log.Printf("❌ Failed to schedule backlog report: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 ReportService started (backlog report at 08:30 daily)")
}

// Stop stops the cron scheduler
func (s *ReportService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReportService stopped")
}

// reportBacklog logs how many complaints have sat pending too long
func (s *ReportService) reportBacklog() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-staleComplaintAge)
	stale, err := s.complaintRepo.CountPendingOlderThan(ctx, cutoff)
	if err != nil {
		log.Printf("❌ Backlog report query error: %v", err)
		return
	}

	pending, err := s.complaintRepo.CountByStatus(ctx, models.ComplaintStatusPending)
	if err != nil {
		log.Printf("❌ Backlog report query error: %v", err)
		return
	}

	log.Printf("📋 Complaint backlog: %d pending, %d pending longer than 7 days", pending, stale)
}
