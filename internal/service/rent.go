package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/repository"
	"trustrent-backend/internal/view"
)

type rentService struct {
	paymentRepo  repository.PaymentRepository
	tenantRepo   repository.TenantRepository
	propertyRepo repository.PropertyRepository
	ids          IDGenerator
	now          Clock
	strictAmount bool
	lock         sync.Locker
}

func NewRentService(
	paymentRepo repository.PaymentRepository,
	tenantRepo repository.TenantRepository,
	propertyRepo repository.PropertyRepository,
	ids IDGenerator,
	now Clock,
	strictAmount bool,
	lock sync.Locker,
) RentService {
	return &rentService{
		paymentRepo:  paymentRepo,
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
		ids:          ids,
		now:          now,
		strictAmount: strictAmount,
		lock:         lock,
	}
}

// RecordRentPayment records an on-time payment by the current tenant for
// their current property and raises their credit score.
func (s *rentService) RecordRentPayment(ctx context.Context, amount int, method string) (*domain.Payment, error) {
	logger.EnterMethod("rentService.RecordRentPayment", "amount", amount, "method", method)
	s.lock.Lock()
	defer s.lock.Unlock()

	tenant, err := s.tenantRepo.GetCurrent(ctx)
	if err != nil {
		logger.ExitMethodWithError("rentService.RecordRentPayment", err)
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	if s.strictAmount {
		property, err := s.propertyRepo.GetByID(ctx, tenant.CurrentPropertyID)
		if err != nil {
			logger.ExitMethodWithError("rentService.RecordRentPayment", err)
			return nil, fmt.Errorf("property %s: %w", tenant.CurrentPropertyID, err)
		}
		if property.RentAmount != amount {
			err = fmt.Errorf("paid %d, rent is %d: %w", amount, property.RentAmount, domain.ErrAmountMismatch)
			logger.ExitMethodWithError("rentService.RecordRentPayment", err)
			return nil, err
		}
	}

	payment := &domain.Payment{
		ID:         s.ids.NewID(prefixPayment),
		PropertyID: tenant.CurrentPropertyID,
		TenantID:   tenant.ID,
		Amount:     amount,
		Date:       s.now().Format(domain.PaymentDateLayout),
		Status:     domain.PaymentStatusPaid,
		IsLate:     false,
		Method:     method,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		logger.ExitMethodWithError("rentService.RecordRentPayment", err)
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	previous := tenant.CreditScore
	tenant.CreditScore = domain.ClampCreditScore(previous + domain.CreditScoreIncrement)
	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		logger.ExitMethodWithError("rentService.RecordRentPayment", err)
		return nil, fmt.Errorf("failed to update credit score: %w", err)
	}

	logger.ExitMethod("rentService.RecordRentPayment", "paymentID", payment.ID, "creditScore", tenant.CreditScore, "previousScore", previous)
	return payment, nil
}

func (s *rentService) ListPayments(ctx context.Context, propertyID string) ([]domain.Payment, error) {
	if propertyID == "" {
		return s.paymentRepo.List(ctx)
	}
	return s.paymentRepo.ListByProperty(ctx, propertyID)
}

func (s *rentService) PaidThisMonth(ctx context.Context, propertyID string) (bool, error) {
	return s.PaidInMonth(ctx, propertyID, s.now())
}

// PaidInMonth reports whether a payment for propertyID was recorded in the
// calendar month containing month.
func (s *rentService) PaidInMonth(ctx context.Context, propertyID string, month time.Time) (bool, error) {
	payments, err := s.paymentRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return false, err
	}
	return domain.PaidInMonth(payments, propertyID, month), nil
}

func (s *rentService) PortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error) {
	properties, err := s.propertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	summary := view.Summarize(properties)
	return &summary, nil
}
