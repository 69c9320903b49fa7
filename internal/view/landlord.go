package view

import "trustrent-backend/internal/domain"

const unknown = "Unknown"

type landlord struct{}

func (landlord) sealed() {}

func (landlord) Kind() domain.UserRole { return domain.UserRoleLandlord }

func (landlord) NavigationItems() []NavItem {
	return []NavItem{
		{Page: PageDashboard, Label: "Dashboard"},
		{Page: PageProperties, Label: "Properties"},
		{Page: PageStatistics, Label: "Statistics"},
		{Page: PagePaymentHistory, Label: "Payment History"},
		{Page: PageLandlordFeed, Label: "Feedback"},
	}
}

func (landlord) DashboardView(s State) any {
	return LandlordDashboardData{
		Summary:            Summarize(s.Properties),
		OpenComplaintCount: s.openComplaints(),
	}
}

func (l landlord) Render(page string, s State) (any, bool) {
	switch page {
	case PageDashboard:
		return l.DashboardView(s), true
	case PageProperties:
		return PropertiesData{Properties: s.Properties}, true
	case PageAddProperty:
		return AddPropertyData{
			Statuses: []domain.PropertyStatus{domain.PropertyStatusVacant, domain.PropertyStatusOccupied},
			Draft:    domain.PropertyDraft{Status: domain.PropertyStatusVacant, DueDate: 1},
		}, true
	case PagePropertyDetails:
		if s.Session.SelectedPropertyID == nil {
			return nil, false
		}
		return propertyDetails(*s.Session.SelectedPropertyID, s), true
	case PageStatistics:
		stats := make([]TenantStat, 0, len(s.Tenants))
		for _, t := range s.Tenants {
			stats = append(stats, tenantStat(t, s.paymentsOf(t.ID)))
		}
		return StatisticsData{Tenants: stats}, true
	case PageLandlordFeed:
		return ComplaintsData{Complaints: s.Complaints, OpenCount: s.openComplaints()}, true
	case PagePaymentHistory:
		return paymentHistory(s, ""), true
	}
	return nil, false
}

func propertyDetails(id string, s State) PropertyDetailsData {
	data := PropertyDetailsData{PropertyID: id}
	property := s.findProperty(id)
	if property == nil {
		return data
	}
	data.Found = true
	data.Property = property
	if s.Tenant != nil && s.Tenant.CurrentPropertyID == id {
		t := *s.Tenant
		data.Tenant = &t
		data.PaidThisMonth = domain.PaidInMonth(s.Payments, id, s.Now)
		for _, p := range s.Payments {
			if p.TenantID == t.ID {
				last := p
				data.LastPayment = &last
				break
			}
		}
	}
	return data
}

// paymentHistory lists payments with tenant and property names resolved. An
// empty propertyID keeps every payment.
func paymentHistory(s State, propertyID string) PaymentHistoryData {
	rows := make([]PaymentRow, 0, len(s.Payments))
	for _, p := range s.Payments {
		if propertyID != "" && p.PropertyID != propertyID {
			continue
		}
		row := PaymentRow{Payment: p, TenantName: unknown, PropertyAddress: unknown, DisplayMethod: p.DisplayMethod()}
		for _, t := range s.Tenants {
			if t.ID == p.TenantID {
				row.TenantName = t.Name
				break
			}
		}
		if prop := s.findProperty(p.PropertyID); prop != nil {
			row.PropertyAddress = prop.Address
		}
		rows = append(rows, row)
	}
	return PaymentHistoryData{Rows: rows}
}

// PaymentHistory is the landlord payment ledger filtered by property.
func PaymentHistory(s State, propertyID string) PaymentHistoryData {
	return paymentHistory(s, propertyID)
}
