package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/report"
	"trustrent-backend/internal/repository"
	"trustrent-backend/internal/storage"
)

type reportService struct {
	paymentRepo  repository.PaymentRepository
	propertyRepo repository.PropertyRepository
	tenantRepo   repository.TenantRepository
	storage      storage.StorageInterface
	linkExpiry   time.Duration
	now          Clock
}

func NewReportService(
	paymentRepo repository.PaymentRepository,
	propertyRepo repository.PropertyRepository,
	tenantRepo repository.TenantRepository,
	store storage.StorageInterface,
	linkExpiry time.Duration,
	now Clock,
) ReportService {
	return &reportService{
		paymentRepo:  paymentRepo,
		propertyRepo: propertyRepo,
		tenantRepo:   tenantRepo,
		storage:      store,
		linkExpiry:   linkExpiry,
		now:          now,
	}
}

func (s *reportService) GenerateInvoice(ctx context.Context, paymentID string) (*ReportLink, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment %s: %w", paymentID, err)
	}
	property, _ := s.propertyRepo.GetByID(ctx, payment.PropertyID)
	tenant, _ := s.tenantRepo.GetByID(ctx, payment.TenantID)

	var buf bytes.Buffer
	if err := report.RenderInvoice(&buf, payment, property, tenant); err != nil {
		return nil, err
	}
	return s.publish(ctx, "invoices", report.InvoiceFilename(payment), &buf)
}

// GenerateCreditReport renders the current tenant's credit report from their
// own payment history.
func (s *reportService) GenerateCreditReport(ctx context.Context) (*ReportLink, error) {
	tenant, err := s.tenantRepo.GetCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	property, _ := s.propertyRepo.GetByID(ctx, tenant.CurrentPropertyID)
	payments, err := s.paymentRepo.ListByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := report.RenderCreditReport(&buf, tenant, property, payments, s.now()); err != nil {
		return nil, err
	}
	return s.publish(ctx, "credit-reports", report.CreditReportFilename(tenant.Name), &buf)
}

func (s *reportService) publish(ctx context.Context, prefix, filename string, body io.Reader) (*ReportLink, error) {
	key := storage.NewObjectKey(prefix, filename)
	if err := s.storage.SaveFile(ctx, key, body); err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}

	url, err := s.storage.GeneratePresignedDownloadURL(ctx, key, filename, s.linkExpiry)
	if err != nil {
		return nil, err
	}
	logger.Info("Report generated", "key", key, "filename", filename)
	return &ReportLink{
		Key:       key,
		Filename:  filename,
		URL:       url,
		ExpiresAt: s.now().Add(s.linkExpiry),
	}, nil
}

func (s *reportService) OpenDownload(ctx context.Context, token string) (io.ReadCloser, string, error) {
	key, filename, err := s.storage.ResolveDownloadToken(ctx, token)
	if err != nil {
		return nil, "", err
	}
	exists, _, err := s.storage.FileExists(ctx, key)
	if err != nil {
		return nil, "", err
	}
	if !exists {
		return nil, "", fmt.Errorf("report %s: %w", key, domain.ErrNotFound)
	}
	rc, err := s.storage.ReadFile(ctx, key)
	if err != nil {
		return nil, "", err
	}
	return rc, filename, nil
}
