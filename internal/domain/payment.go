package domain

import (
	"strings"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusOverdue PaymentStatus = "Overdue"
)

// PaymentDateLayout is the ISO-8601 calendar date layout of Payment.Date.
const PaymentDateLayout = "2006-01-02"

const DefaultPaymentMethod = "Bank Transfer"

type Payment struct {
	ID         string        `json:"id"`
	PropertyID string        `json:"property_id"`
	TenantID   string        `json:"tenant_id"`
	Amount     int           `json:"amount"`
	Date       string        `json:"date"`
	Status     PaymentStatus `json:"status"`
	IsLate     bool          `json:"is_late"`
	Method     string        `json:"method,omitempty"`
}

func (p *Payment) DisplayMethod() string {
	if p.Method == "" {
		return DefaultPaymentMethod
	}
	return p.Method
}

// PaidInMonth reports whether any payment for propertyID is dated in the
// calendar month of t.
func PaidInMonth(payments []Payment, propertyID string, t time.Time) bool {
	month := t.Format("2006-01")
	for _, p := range payments {
		if p.PropertyID == propertyID && strings.HasPrefix(p.Date, month) {
			return true
		}
	}
	return false
}
