package service

import (
	"sync"
	"time"

	"trustrent-backend/internal/advisor"
	"trustrent-backend/internal/repository/memory"
	"trustrent-backend/internal/storage"
	"trustrent-backend/internal/view"
)

// Deps are the collaborators shared by every service.
type Deps struct {
	Store        *memory.Store
	Gateway      advisor.Gateway
	Storage      storage.StorageInterface
	Email        EmailService
	IDs          IDGenerator
	Now          Clock
	StrictAmount bool
	AdviceLimit  time.Duration // per-call advisory timeout; 0 disables it
	LinkExpiry   time.Duration
}

// Services is the command-dispatch surface over one application state.
type Services struct {
	Session      SessionService
	Rent         RentService
	Complaint    ComplaintService
	Property     PropertyService
	Tenant       TenantService
	Advisory     AdvisoryService
	Report       ReportService
	Reminder     ReminderService
	Notification NotificationService
	View         ViewService
	Calls        *CallTracker
}

// NewServices wires the services around one store. Mutations share a single
// write lock so multi-step operations are observed atomically.
func NewServices(d Deps) *Services {
	if d.IDs == nil {
		d.IDs = UUIDGenerator{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Gateway == nil {
		d.Gateway = advisor.NewStaticGateway("")
	}

	lock := &sync.Mutex{}
	calls := NewCallTracker()
	st := d.Store

	return &Services{
		Session:      NewSessionService(st.SessionRepository, st.TenantRepository, calls, lock),
		Rent:         NewRentService(st.PaymentRepository, st.TenantRepository, st.PropertyRepository, d.IDs, d.Now, d.StrictAmount, lock),
		Complaint:    NewComplaintService(st.ComplaintRepository, d.IDs, d.Now, lock),
		Property:     NewPropertyService(st.PropertyRepository, st.SessionRepository, d.IDs, lock),
		Tenant:       NewTenantService(st.TenantRepository),
		Advisory:     NewAdvisoryService(d.Gateway, st.SessionRepository, st.TenantRepository, st.PropertyRepository, st.PaymentRepository, st.ComplaintRepository, calls, d.AdviceLimit),
		Report:       NewReportService(st.PaymentRepository, st.PropertyRepository, st.TenantRepository, d.Storage, d.LinkExpiry, d.Now),
		Reminder:     NewReminderService(st.PropertyRepository, st.TenantRepository, st.NotificationRepository, d.Email, d.IDs, d.Now),
		Notification: NewNotificationService(st.NotificationRepository),
		View:         NewViewService(view.NewRouter(), st.SessionRepository, st.TenantRepository, st.PropertyRepository, st.PaymentRepository, st.ComplaintRepository, d.Now),
		Calls:        calls,
	}
}
