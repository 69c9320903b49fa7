package service

import (
	"context"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/repository"
	"trustrent-backend/internal/view"
)

type viewService struct {
	router        *view.Router
	sessionRepo   repository.SessionRepository
	tenantRepo    repository.TenantRepository
	propertyRepo  repository.PropertyRepository
	paymentRepo   repository.PaymentRepository
	complaintRepo repository.ComplaintRepository
	now           Clock
}

func NewViewService(
	router *view.Router,
	sessionRepo repository.SessionRepository,
	tenantRepo repository.TenantRepository,
	propertyRepo repository.PropertyRepository,
	paymentRepo repository.PaymentRepository,
	complaintRepo repository.ComplaintRepository,
	now Clock,
) ViewService {
	return &viewService{
		router:        router,
		sessionRepo:   sessionRepo,
		tenantRepo:    tenantRepo,
		propertyRepo:  propertyRepo,
		paymentRepo:   paymentRepo,
		complaintRepo: complaintRepo,
		now:           now,
	}
}

func (s *viewService) Render(ctx context.Context) (*view.View, bool, error) {
	state, err := s.state(ctx)
	if err != nil {
		return nil, false, err
	}
	v, ok := s.router.Render(*state)
	return v, ok, nil
}

func (s *viewService) Navigation(ctx context.Context) ([]view.NavItem, error) {
	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.router.Navigation(view.State{Session: *session}), nil
}

func (s *viewService) PaymentHistory(ctx context.Context, propertyID string) (*view.PaymentHistoryData, error) {
	state, err := s.state(ctx)
	if err != nil {
		return nil, err
	}
	data := view.PaymentHistory(*state, propertyID)
	return &data, nil
}

// state snapshots the store for one render.
func (s *viewService) state(ctx context.Context) (*view.State, error) {
	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	landlord, err := s.sessionRepo.Landlord(ctx)
	if err != nil {
		return nil, err
	}
	state := &view.State{Session: *session, Landlord: *landlord, Now: s.now()}

	if tenant, err := s.tenantRepo.GetCurrent(ctx); err == nil {
		state.Tenant = tenant
	}
	if state.Tenants, err = s.tenantRepo.List(ctx); err != nil {
		return nil, err
	}
	if state.Properties, err = s.propertyRepo.List(ctx); err != nil {
		return nil, err
	}
	if state.Payments, err = s.paymentRepo.List(ctx); err != nil {
		return nil, err
	}
	if state.Complaints, err = s.complaintRepo.List(ctx); err != nil {
		return nil, err
	}

	switch session.Role {
	case domain.UserRoleLandlord:
		state.User = landlord
	case domain.UserRoleTenant:
		if state.Tenant != nil {
			user := state.Tenant.User
			state.User = &user
		}
	}
	return state, nil
}
