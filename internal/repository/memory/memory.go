package memory

import (
	"sync"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/repository"
)

// state is the single in-process holder behind every repository of a Store.
// One lock guards all collections so each mutation is observed atomically.
type state struct {
	mu            sync.RWMutex
	landlord      domain.User
	tenants       []domain.Tenant
	currentTenant string
	properties    []domain.Property
	payments      []domain.Payment
	complaints    []domain.Complaint
	notifications []domain.Notification
	session       domain.Session
}

// Seed is the initial content of a Store.
type Seed struct {
	Landlord   domain.User
	Tenant     domain.Tenant
	Properties []domain.Property
	Payments   []domain.Payment // most recent first
	Complaints []domain.Complaint
}

type Store struct {
	repository.PropertyRepository
	repository.PaymentRepository
	repository.ComplaintRepository
	repository.TenantRepository
	repository.SessionRepository
	repository.NotificationRepository
}

func NewStore(seed Seed) *Store {
	s := &state{
		landlord:      seed.Landlord,
		tenants:       []domain.Tenant{seed.Tenant},
		currentTenant: seed.Tenant.ID,
		session:       domain.Session{Page: domain.DefaultPage},
	}
	for _, p := range seed.Properties {
		s.properties = append(s.properties, copyProperty(p))
	}
	s.payments = append(s.payments, seed.Payments...)
	s.complaints = append(s.complaints, seed.Complaints...)

	return &Store{
		PropertyRepository:     &propertyRepository{s: s},
		PaymentRepository:      &paymentRepository{s: s},
		ComplaintRepository:    &complaintRepository{s: s},
		TenantRepository:       &tenantRepository{s: s},
		SessionRepository:      &sessionRepository{s: s},
		NotificationRepository: &notificationRepository{s: s},
	}
}

func copyProperty(p domain.Property) domain.Property {
	if p.TenantID != nil {
		id := *p.TenantID
		p.TenantID = &id
	}
	return p
}

func copySession(sess domain.Session) domain.Session {
	if sess.SelectedPropertyID != nil {
		id := *sess.SelectedPropertyID
		sess.SelectedPropertyID = &id
	}
	return sess
}

func copyNotification(n domain.Notification) domain.Notification {
	if n.Attributes != nil {
		attrs := make(map[string]string, len(n.Attributes))
		for k, v := range n.Attributes {
			attrs[k] = v
		}
		n.Attributes = attrs
	}
	return n
}
