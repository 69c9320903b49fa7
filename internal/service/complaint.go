package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/repository"
)

type complaintService struct {
	complaintRepo repository.ComplaintRepository
	ids           IDGenerator
	now           Clock
	lock          sync.Locker
}

func NewComplaintService(complaintRepo repository.ComplaintRepository, ids IDGenerator, now Clock, lock sync.Locker) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		ids:           ids,
		now:           now,
		lock:          lock,
	}
}

func (s *complaintService) FileComplaint(ctx context.Context, subject string, category domain.ComplaintCategory, description string) (*domain.Complaint, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("category %q: %w", category, domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("subject is required: %w", domain.ErrInvalidArgument)
	}

	complaint := &domain.Complaint{
		ID:          s.ids.NewID(prefixComplaint),
		Date:        s.now().Format(domain.ComplaintDateLayout),
		Category:    category,
		Subject:     subject,
		Description: description,
		Status:      domain.ComplaintStatusOpen,
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("failed to file complaint: %w", err)
	}
	logger.Info("Complaint filed", "complaintID", complaint.ID, "category", category)
	return complaint, nil
}

func (s *complaintService) ResolveComplaint(ctx context.Context, id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Debug("Resolve ignored for unknown complaint", "complaintID", id)
		return nil
	}
	if err != nil {
		return err
	}
	if complaint.Status == domain.ComplaintStatusResolved {
		return nil
	}

	complaint.Status = domain.ComplaintStatusResolved
	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return fmt.Errorf("failed to resolve complaint: %w", err)
	}
	logger.Info("Complaint resolved", "complaintID", id)
	return nil
}

func (s *complaintService) ListComplaints(ctx context.Context) ([]domain.Complaint, error) {
	return s.complaintRepo.List(ctx)
}
