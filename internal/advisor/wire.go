package advisor

import (
	"encoding/json"

	"trustrent-backend/internal/domain"
)

// The context snapshot travels in camelCase, the casing of the advisory wire
// contract, independent of the snake_case tags the domain uses for the API.

type tenantRecord struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Role              domain.UserRole `json:"role"`
	AvatarURL         string          `json:"avatarUrl,omitempty"`
	CreditScore       int             `json:"creditScore"`
	CurrentPropertyID string          `json:"currentPropertyId"`
}

type propertyRecord struct {
	ID           string                `json:"id"`
	Address      string                `json:"address"`
	City         string                `json:"city"`
	RentAmount   int                   `json:"rentAmount"`
	TenantID     *string               `json:"tenantId,omitempty"`
	Image        string                `json:"image"`
	DueDate      int                   `json:"dueDate"`
	Status       domain.PropertyStatus `json:"status"`
	LandlordName string                `json:"landlordName,omitempty"`
}

type paymentRecord struct {
	ID         string               `json:"id"`
	PropertyID string               `json:"propertyId"`
	TenantID   string               `json:"tenantId"`
	Amount     int                  `json:"amount"`
	Date       string               `json:"date"`
	Status     domain.PaymentStatus `json:"status"`
	IsLate     bool                 `json:"isLate"`
	Method     string               `json:"method,omitempty"`
}

type complaintRecord struct {
	ID          string                   `json:"id"`
	Date        string                   `json:"date"`
	Category    domain.ComplaintCategory `json:"category"`
	Subject     string                   `json:"subject"`
	Description string                   `json:"description"`
	Status      domain.ComplaintStatus   `json:"status"`
}

func toTenantRecord(t domain.Tenant) tenantRecord {
	return tenantRecord{
		ID:                t.ID,
		Name:              t.Name,
		Email:             t.Email,
		Role:              t.Role,
		AvatarURL:         t.AvatarURL,
		CreditScore:       t.CreditScore,
		CurrentPropertyID: t.CurrentPropertyID,
	}
}

func toPropertyRecord(p domain.Property) propertyRecord {
	return propertyRecord{
		ID:           p.ID,
		Address:      p.Address,
		City:         p.City,
		RentAmount:   p.RentAmount,
		TenantID:     p.TenantID,
		Image:        p.Image,
		DueDate:      p.DueDate,
		Status:       p.Status,
		LandlordName: p.LandlordName,
	}
}

func toPropertyRecords(properties []domain.Property) []propertyRecord {
	out := make([]propertyRecord, 0, len(properties))
	for _, p := range properties {
		out = append(out, toPropertyRecord(p))
	}
	return out
}

func toPaymentRecords(payments []domain.Payment) []paymentRecord {
	out := make([]paymentRecord, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentRecord{
			ID:         p.ID,
			PropertyID: p.PropertyID,
			TenantID:   p.TenantID,
			Amount:     p.Amount,
			Date:       p.Date,
			Status:     p.Status,
			IsLate:     p.IsLate,
			Method:     p.Method,
		})
	}
	return out
}

func toComplaintRecords(complaints []domain.Complaint) []complaintRecord {
	out := make([]complaintRecord, 0, len(complaints))
	for _, c := range complaints {
		out = append(out, complaintRecord{
			ID:          c.ID,
			Date:        c.Date,
			Category:    c.Category,
			Subject:     c.Subject,
			Description: c.Description,
			Status:      c.Status,
		})
	}
	return out
}

func (s LandlordSnapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Properties         []propertyRecord `json:"properties"`
		RecentRevenue      int              `json:"recentRevenue"`
		OpenComplaintCount int              `json:"openComplaintCount"`
	}{
		Properties:         toPropertyRecords(s.Properties),
		RecentRevenue:      s.RecentRevenue,
		OpenComplaintCount: s.OpenComplaintCount,
	})
}

func (s TenantSnapshot) MarshalJSON() ([]byte, error) {
	var property *propertyRecord
	if s.Property != nil {
		rec := toPropertyRecord(*s.Property)
		property = &rec
	}
	return json.Marshal(struct {
		TenantProfile    tenantRecord      `json:"tenantProfile"`
		Property         *propertyRecord   `json:"property"`
		PaymentHistory   []paymentRecord   `json:"paymentHistory"`
		ActiveComplaints []complaintRecord `json:"activeComplaints"`
	}{
		TenantProfile:    toTenantRecord(s.TenantProfile),
		Property:         property,
		PaymentHistory:   toPaymentRecords(s.PaymentHistory),
		ActiveComplaints: toComplaintRecords(s.ActiveComplaints),
	})
}
