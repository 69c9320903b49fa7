package memory

import (
	"context"

	"trustrent-backend/internal/domain"
)

type propertyRepository struct {
	s *state
}

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.properties = append(r.s.properties, copyProperty(*p))
	return nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.properties {
		if p.ID == id {
			found := copyProperty(p)
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.properties {
		if r.s.properties[i].ID == p.ID {
			r.s.properties[i] = copyProperty(*p)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *propertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.Property, 0, len(r.s.properties))
	for _, p := range r.s.properties {
		out = append(out, copyProperty(p))
	}
	return out, nil
}
