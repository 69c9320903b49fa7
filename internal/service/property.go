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
	"trustrent-backend/internal/view"
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
	sessionRepo  repository.SessionRepository
	ids          IDGenerator
	lock         sync.Locker
}

func NewPropertyService(propertyRepo repository.PropertyRepository, sessionRepo repository.SessionRepository, ids IDGenerator, lock sync.Locker) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		sessionRepo:  sessionRepo,
		ids:          ids,
		lock:         lock,
	}
}

// AddProperty stores draft as given and returns the session to the property
// list.
func (s *propertyService) AddProperty(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error) {
	if strings.TrimSpace(draft.Address) == "" {
		return nil, fmt.Errorf("address is required: %w", domain.ErrInvalidArgument)
	}
	if draft.RentAmount < 0 {
		return nil, fmt.Errorf("rent amount %d: %w", draft.RentAmount, domain.ErrInvalidArgument)
	}
	if draft.Status == "" {
		draft.Status = domain.PropertyStatusVacant
	}
	if !draft.Status.Valid() {
		return nil, fmt.Errorf("status %q: %w", draft.Status, domain.ErrInvalidArgument)
	}
	if draft.DueDate == 0 {
		draft.DueDate = 1
	}
	if draft.DueDate < 1 || draft.DueDate > 31 {
		return nil, fmt.Errorf("due date %d: %w", draft.DueDate, domain.ErrInvalidArgument)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	landlord, err := s.sessionRepo.Landlord(ctx)
	if err != nil {
		return nil, err
	}

	property := &domain.Property{
		ID:           s.ids.NewID(prefixProperty),
		Address:      draft.Address,
		City:         draft.City,
		RentAmount:   draft.RentAmount,
		TenantID:     draft.TenantID,
		Image:        draft.Image,
		DueDate:      draft.DueDate,
		Status:       draft.Status,
		LandlordName: landlord.Name,
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to add property: %w", err)
	}

	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	session.Page = view.PageProperties
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	logger.Info("Property added", "propertyID", property.ID, "status", property.Status)
	return property, nil
}

func (s *propertyService) AssignTenant(ctx context.Context, propertyID, tenantID string) error {
	if tenantID == "" {
		return fmt.Errorf("tenant id is required: %w", domain.ErrInvalidArgument)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Debug("Tenant assignment ignored for unknown property", "propertyID", propertyID)
		return nil
	}
	if err != nil {
		return err
	}

	property.TenantID = &tenantID
	property.Status = domain.PropertyStatusOccupied
	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return fmt.Errorf("failed to assign tenant: %w", err)
	}
	logger.Info("Tenant assigned", "propertyID", propertyID, "tenantID", tenantID)
	return nil
}

func (s *propertyService) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

func (s *propertyService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	return s.propertyRepo.List(ctx)
}

type tenantService struct {
	tenantRepo repository.TenantRepository
}

func NewTenantService(tenantRepo repository.TenantRepository) TenantService {
	return &tenantService{tenantRepo: tenantRepo}
}

func (s *tenantService) GetCurrentTenant(ctx context.Context) (*domain.Tenant, error) {
	return s.tenantRepo.GetCurrent(ctx)
}

func (s *tenantService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	return s.tenantRepo.List(ctx)
}
