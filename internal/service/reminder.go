package service

import (
	"context"
	"fmt"
	"time"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/repository"
)

type reminderService struct {
	propertyRepo repository.PropertyRepository
	tenantRepo   repository.TenantRepository
	noteRepo     repository.NotificationRepository
	emailSvc     EmailService
	ids          IDGenerator
	now          Clock
}

func NewReminderService(
	propertyRepo repository.PropertyRepository,
	tenantRepo repository.TenantRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	ids IDGenerator,
	now Clock,
) ReminderService {
	return &reminderService{
		propertyRepo: propertyRepo,
		tenantRepo:   tenantRepo,
		noteRepo:     noteRepo,
		emailSvc:     emailSvc,
		ids:          ids,
		now:          now,
	}
}

// SendReminder notifies the tenant of propertyID that rent is due. The in-app
// notification is kept even when the email cannot be delivered.
func (s *reminderService) SendReminder(ctx context.Context, propertyID string) (*domain.Notification, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("property %s: %w", propertyID, err)
	}
	if property.IsVacant() {
		return nil, fmt.Errorf("property %s has no tenant: %w", propertyID, domain.ErrInvalidArgument)
	}

	note := &domain.Notification{
		ID:      s.ids.NewID(prefixNotification),
		UserID:  *property.TenantID,
		Title:   "Rent reminder",
		Message: fmt.Sprintf("Your rent of $%d for %s is due on day %d of the month.", property.RentAmount, property.Address, property.DueDate),
		Attributes: map[string]string{
			"property_id": property.ID,
			"amount":      fmt.Sprintf("%d", property.RentAmount),
			"due_day":     fmt.Sprintf("%d", property.DueDate),
		},
		CreatedOn: s.now().Format(time.RFC3339),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	tenant, err := s.tenantRepo.GetByID(ctx, *property.TenantID)
	if err != nil {
		logger.Warn("Reminder email skipped, tenant unknown", "propertyID", propertyID, "tenantID", *property.TenantID)
		return note, nil
	}
	if err := s.emailSvc.SendRentReminder(ctx, tenant.Email, tenant.Name, property.Address, property.RentAmount, property.DueDate); err != nil {
		logger.Error("Failed to send rent reminder email", "propertyID", propertyID, "error", err)
	}
	return note, nil
}

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

const (
	DefaultNotificationPageSize = 20
	MaxNotificationPageSize     = 100
	// MaxNotificationPage keeps the page offset within int32.
	MaxNotificationPage = (1<<31 - 1) / MaxNotificationPageSize
)

func (s *notificationService) GetNotifications(ctx context.Context, userID string, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if page > MaxNotificationPage {
		page = MaxNotificationPage
	}
	if pageSize < 1 {
		pageSize = DefaultNotificationPageSize
	}
	if pageSize > MaxNotificationPageSize {
		pageSize = MaxNotificationPageSize
	}
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, userID, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, userID)
}
