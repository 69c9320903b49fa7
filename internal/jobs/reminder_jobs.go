package jobs

import (
	"context"
	"time"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/logger"
)

// SendRentReminders reminds the tenant of every occupied property whose next
// rent due date is within the configured lead days and is not yet paid for
// that month.
func (jr *JobRunner) SendRentReminders() {
	jr.runWithRecovery("SendRentReminders", func() {
		count := jr.sendRentReminders(context.Background())
		logger.Info("Rent reminders sent", "count", count)
	})
}

func (jr *JobRunner) sendRentReminders(ctx context.Context) int {
	today := jr.now().UTC()
	leadDays := jr.config.Scheduler.ReminderLeadDays

	properties, err := jr.store.PropertyRepository.List(ctx)
	if err != nil {
		logger.Error("Failed to list properties", "error", err)
		return 0
	}

	count := 0
	for _, p := range properties {
		if p.IsVacant() || p.Status != domain.PropertyStatusOccupied {
			continue
		}
		if !DueWithin(today, p.DueDate, leadDays) {
			continue
		}

		paid, err := jr.services.Rent.PaidInMonth(ctx, p.ID, NextDueDate(today, p.DueDate))
		if err != nil {
			logger.Error("Failed to check payments", "propertyID", p.ID, "error", err)
			continue
		}
		if paid {
			continue
		}

		if _, err := jr.services.Reminder.SendReminder(ctx, p.ID); err != nil {
			logger.Error("Failed to send rent reminder", "propertyID", p.ID, "error", err)
			continue
		}
		count++
	}
	return count
}

// NextDueDate returns the first due date on or after today's date. Due days
// past the end of a short month fall on its last day.
func NextDueDate(today time.Time, dueDay int) time.Time {
	year, month, day := today.Date()
	due := dueDateIn(year, month, dueDay)
	if due.Day() < day {
		due = dueDateIn(year, month+1, dueDay)
	}
	return due
}

func dueDateIn(year int, month time.Month, dueDay int) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if dueDay > lastDay {
		dueDay = lastDay
	}
	return time.Date(year, month, dueDay, 0, 0, 0, 0, time.UTC)
}

// DueWithin reports whether the next due date is at most leadDays away,
// looking into the following month when this month's due day has passed.
func DueWithin(today time.Time, dueDay, leadDays int) bool {
	year, month, day := today.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	days := int(NextDueDate(today, dueDay).Sub(start).Hours() / 24)
	return days <= leadDays
}
