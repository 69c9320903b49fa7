package domain

type PropertyStatus string

const (
	PropertyStatusOccupied    PropertyStatus = "Occupied"
	PropertyStatusVacant      PropertyStatus = "Vacant"
	PropertyStatusMaintenance PropertyStatus = "Maintenance"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusOccupied, PropertyStatusVacant, PropertyStatusMaintenance:
		return true
	}
	return false
}

type Property struct {
	ID           string         `json:"id"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	RentAmount   int            `json:"rent_amount"`
	TenantID     *string        `json:"tenant_id,omitempty"` // nil means vacant
	Image        string         `json:"image"`
	DueDate      int            `json:"due_date"` // day of month
	Status       PropertyStatus `json:"status"`
	LandlordName string         `json:"landlord_name,omitempty"`
}

// IsVacant reports whether no tenant is assigned, regardless of Status.
func (p *Property) IsVacant() bool {
	return p.TenantID == nil
}

// PropertyDraft carries the caller-supplied fields of a new property.
type PropertyDraft struct {
	Address    string         `json:"address"`
	City       string         `json:"city"`
	RentAmount int            `json:"rent_amount"`
	TenantID   *string        `json:"tenant_id,omitempty"`
	Image      string         `json:"image"`
	DueDate    int            `json:"due_date"`
	Status     PropertyStatus `json:"status"`
}
