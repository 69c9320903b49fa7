package memory

import (
	"context"

	"trustrent-backend/internal/domain"
)

type paymentRepository struct {
	s *state
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.payments = append([]domain.Payment{*p}, r.s.payments...)
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.payments {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	return r.filter(func(domain.Payment) bool { return true }), nil
}

func (r *paymentRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.Payment, error) {
	return r.filter(func(p domain.Payment) bool { return p.PropertyID == propertyID }), nil
}

func (r *paymentRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	return r.filter(func(p domain.Payment) bool { return p.TenantID == tenantID }), nil
}

func (r *paymentRepository) filter(keep func(domain.Payment) bool) []domain.Payment {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.Payment, 0, len(r.s.payments))
	for _, p := range r.s.payments {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
