package service

import (
	"context"
	"io"
	"time"

	"trustrent-backend/internal/advisor"
	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/view"
)

type SessionService interface {
	// Authenticate logs role in, resets the page to the dashboard and clears
	// any selected property.
	Authenticate(ctx context.Context, role domain.UserRole) (*domain.Session, error)
	Deauthenticate(ctx context.Context) error
	// Navigate accepts any page token; unknown tokens render nothing.
	Navigate(ctx context.Context, page string) error
	// SelectProperty accepts ids that match no property.
	SelectProperty(ctx context.Context, propertyID string) error
	Current(ctx context.Context) (*domain.Session, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
}

type RentService interface {
	RecordRentPayment(ctx context.Context, amount int, method string) (*domain.Payment, error)
	// ListPayments returns payments most recent first; an empty propertyID
	// returns all of them.
	ListPayments(ctx context.Context, propertyID string) ([]domain.Payment, error)
	PaidThisMonth(ctx context.Context, propertyID string) (bool, error)
	PaidInMonth(ctx context.Context, propertyID string, month time.Time) (bool, error)
	PortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error)
}

type ComplaintService interface {
	FileComplaint(ctx context.Context, subject string, category domain.ComplaintCategory, description string) (*domain.Complaint, error)
	// ResolveComplaint is a no-op for unknown or already resolved ids.
	ResolveComplaint(ctx context.Context, id string) error
	ListComplaints(ctx context.Context) ([]domain.Complaint, error)
}

type PropertyService interface {
	AddProperty(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error)
	// AssignTenant marks the property Occupied by tenantID; unknown property
	// ids are ignored.
	AssignTenant(ctx context.Context, propertyID, tenantID string) error
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	ListProperties(ctx context.Context) ([]domain.Property, error)
}

type TenantService interface {
	GetCurrentTenant(ctx context.Context) (*domain.Tenant, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
}

type AdvisoryService interface {
	// AssembleContext builds the role-scoped snapshot sent with a question.
	AssembleContext(ctx context.Context, role domain.UserRole) (advisor.Snapshot, error)
	Ask(ctx context.Context, instruction string) (string, error)
	TenantInsight(ctx context.Context) (string, error)
}

// ReportLink points at a rendered report.
type ReportLink struct {
	Key       string    `json:"key"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ReportService interface {
	GenerateInvoice(ctx context.Context, paymentID string) (*ReportLink, error)
	GenerateCreditReport(ctx context.Context) (*ReportLink, error)
	// OpenDownload resolves a signed download token to the stored report.
	OpenDownload(ctx context.Context, token string) (io.ReadCloser, string, error)
}

type ReminderService interface {
	SendReminder(ctx context.Context, propertyID string) (*domain.Notification, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID string, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
}

type ViewService interface {
	// Render returns false when the active page renders nothing.
	Render(ctx context.Context) (*view.View, bool, error)
	Navigation(ctx context.Context) ([]view.NavItem, error)
	PaymentHistory(ctx context.Context, propertyID string) (*view.PaymentHistoryData, error)
}

type EmailService interface {
	SendRentReminder(ctx context.Context, to, toName, address string, amount, dueDay int) error
}
