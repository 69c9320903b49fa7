package domain

// PortfolioSummary is the landlord dashboard headline figures.
type PortfolioSummary struct {
	TotalProperties int `json:"total_properties"`
	Occupied        int `json:"occupied"`
	Vacant          int `json:"vacant"`
	MonthlyRevenue  int `json:"monthly_revenue"` // rent roll of occupied properties
}
