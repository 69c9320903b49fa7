package memory

import (
	"context"

	"trustrent-backend/internal/domain"
)

type sessionRepository struct {
	s *state
}

func (r *sessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sess := copySession(r.s.session)
	return &sess, nil
}

func (r *sessionRepository) Save(ctx context.Context, sess *domain.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.session = copySession(*sess)
	return nil
}

func (r *sessionRepository) Landlord(ctx context.Context) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	landlord := r.s.landlord
	return &landlord, nil
}
