package memory

import (
	"context"

	"trustrent-backend/internal/domain"
)

type complaintRepository struct {
	s *state
}

func (r *complaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.complaints = append([]domain.Complaint{*c}, r.s.complaints...)
	return nil
}

func (r *complaintRepository) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.complaints {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *complaintRepository) Update(ctx context.Context, c *domain.Complaint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.complaints {
		if r.s.complaints[i].ID == c.ID {
			r.s.complaints[i] = *c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *complaintRepository) List(ctx context.Context) ([]domain.Complaint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]domain.Complaint{}, r.s.complaints...), nil
}
