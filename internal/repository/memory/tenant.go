package memory

import (
	"context"

	"trustrent-backend/internal/domain"
)

type tenantRepository struct {
	s *state
}

func (r *tenantRepository) GetCurrent(ctx context.Context) (*domain.Tenant, error) {
	return r.GetByID(ctx, r.s.currentTenant)
}

func (r *tenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.tenants {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *tenantRepository) Update(ctx context.Context, t *domain.Tenant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.tenants {
		if r.s.tenants[i].ID == t.ID {
			r.s.tenants[i] = *t
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *tenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]domain.Tenant{}, r.s.tenants...), nil
}
