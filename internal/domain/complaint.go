package domain

type ComplaintCategory string

const (
	ComplaintCategoryMaintenance ComplaintCategory = "Maintenance"
	ComplaintCategoryNoise       ComplaintCategory = "Noise"
	ComplaintCategorySafety      ComplaintCategory = "Safety"
	ComplaintCategoryOther       ComplaintCategory = "Other"
)

func (c ComplaintCategory) Valid() bool {
	switch c {
	case ComplaintCategoryMaintenance, ComplaintCategoryNoise, ComplaintCategorySafety, ComplaintCategoryOther:
		return true
	}
	return false
}

type ComplaintStatus string

const (
	ComplaintStatusOpen     ComplaintStatus = "Open"
	ComplaintStatusResolved ComplaintStatus = "Resolved"
)

// ComplaintDateLayout is the short US locale date used for complaints,
// deliberately distinct from PaymentDateLayout.
const ComplaintDateLayout = "1/2/2006"

// Complaint carries no property or tenant reference.
type Complaint struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"`
	Category    ComplaintCategory `json:"category"`
	Subject     string            `json:"subject"`
	Description string            `json:"description"`
	Status      ComplaintStatus   `json:"status"`
}
