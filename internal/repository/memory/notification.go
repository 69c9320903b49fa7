package memory

import (
	"context"
	"fmt"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/logger"
)

type notificationRepository struct {
	s *state
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	logger.EnterMethod("notificationRepository.Create", "userID", n.UserID, "title", n.Title)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.notifications = append([]domain.Notification{copyNotification(*n)}, r.s.notifications...)
	logger.ExitMethod("notificationRepository.Create", "notificationID", n.ID)
	return nil
}

func (r *notificationRepository) List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var mine []domain.Notification
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			mine = append(mine, copyNotification(n))
		}
	}
	count := int32(len(mine))
	if offset < 0 {
		offset = 0
	}
	if offset >= count {
		return []domain.Notification{}, count, nil
	}
	end := count
	if limit > 0 && offset+limit < count {
		end = offset + limit
	}
	return mine[offset:end], count, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.notifications {
		if r.s.notifications[i].ID == id && r.s.notifications[i].UserID == userID {
			r.s.notifications[i].IsRead = true
			return nil
		}
	}
	return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
}
