package service

import (
	"context"
	"fmt"
	"sync"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/repository"
	"trustrent-backend/internal/view"
)

type sessionService struct {
	sessionRepo repository.SessionRepository
	tenantRepo  repository.TenantRepository
	calls       *CallTracker
	lock        sync.Locker
}

func NewSessionService(sessionRepo repository.SessionRepository, tenantRepo repository.TenantRepository, calls *CallTracker, lock sync.Locker) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		tenantRepo:  tenantRepo,
		calls:       calls,
		lock:        lock,
	}
}

func (s *sessionService) Authenticate(ctx context.Context, role domain.UserRole) (*domain.Session, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("role %q: %w", role, domain.ErrInvalidArgument)
	}

	var userID string
	switch role {
	case domain.UserRoleLandlord:
		landlord, err := s.sessionRepo.Landlord(ctx)
		if err != nil {
			return nil, err
		}
		userID = landlord.ID
	case domain.UserRoleTenant:
		tenant, err := s.tenantRepo.GetCurrent(ctx)
		if err != nil {
			return nil, err
		}
		userID = tenant.ID
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.abandonAdvisory()

	session := &domain.Session{Role: role, UserID: userID, Page: domain.DefaultPage}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	logger.Info("Session authenticated", "role", role, "userID", userID)
	return session, nil
}

func (s *sessionService) Deauthenticate(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.abandonAdvisory()
	return s.sessionRepo.Save(ctx, &domain.Session{Page: domain.DefaultPage})
}

func (s *sessionService) Navigate(ctx context.Context, page string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return err
	}
	if session.Page != page {
		s.abandonAdvisory()
	}
	session.Page = page
	return s.sessionRepo.Save(ctx, session)
}

func (s *sessionService) SelectProperty(ctx context.Context, propertyID string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return err
	}
	if session.Page != view.PagePropertyDetails {
		s.abandonAdvisory()
	}
	session.SelectedPropertyID = &propertyID
	session.Page = view.PagePropertyDetails
	return s.sessionRepo.Save(ctx, session)
}

func (s *sessionService) Current(ctx context.Context) (*domain.Session, error) {
	return s.sessionRepo.Get(ctx)
}

func (s *sessionService) CurrentUser(ctx context.Context) (*domain.User, error) {
	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	switch session.Role {
	case domain.UserRoleLandlord:
		return s.sessionRepo.Landlord(ctx)
	case domain.UserRoleTenant:
		tenant, err := s.tenantRepo.GetByID(ctx, session.UserID)
		if err != nil {
			return nil, err
		}
		return &tenant.User, nil
	}
	return nil, domain.ErrNoActiveSession
}

func (s *sessionService) abandonAdvisory() {
	if n := s.calls.CancelAll(); n > 0 {
		logger.Debug("Cancelled in-flight advisory calls", "count", n)
	}
}
