package repository

import (
	"context"

	"trustrent-backend/internal/domain"
)

type PropertyRepository interface {
	// Create appends to the collection.
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
	List(ctx context.Context) ([]domain.Property, error)
}

type PaymentRepository interface {
	// Create prepends to the collection; index 0 is always the latest payment.
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ListByProperty(ctx context.Context, propertyID string) ([]domain.Payment, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error)
}

type ComplaintRepository interface {
	// Create prepends to the collection.
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	Update(ctx context.Context, complaint *domain.Complaint) error
	List(ctx context.Context) ([]domain.Complaint, error)
}

type TenantRepository interface {
	// GetCurrent returns the tenant of the simulated session.
	GetCurrent(ctx context.Context) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	List(ctx context.Context) ([]domain.Tenant, error)
}

type SessionRepository interface {
	Get(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	// Landlord returns the fixed landlord identity.
	Landlord(ctx context.Context) (*domain.User, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID string) error
}
