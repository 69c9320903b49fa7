package view

import (
	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/report"
)

// dashboardPaymentCount is the number of payments shown on the tenant dashboard.
const dashboardPaymentCount = 3

type tenant struct{}

func (tenant) sealed() {}

func (tenant) Kind() domain.UserRole { return domain.UserRoleTenant }

func (tenant) NavigationItems() []NavItem {
	return []NavItem{
		{Page: PageDashboard, Label: "Dashboard"},
		{Page: PageCurrentRental, Label: "My Rental"},
		{Page: PagePayments, Label: "Payment History"},
		{Page: PageComplaints, Label: "Complaints"},
	}
}

func (tenant) DashboardView(s State) any {
	data := TenantDashboardData{Property: s.tenantProperty()}
	var payments []domain.Payment
	if s.Tenant != nil {
		data.Tenant = *s.Tenant
		payments = s.paymentsOf(s.Tenant.ID)
	}
	data.RecentPayments = report.RecentPayments(payments, dashboardPaymentCount)
	data.OnTimeRate = report.OnTimeRate(payments)
	return data
}

func (tn tenant) Render(page string, s State) (any, bool) {
	switch page {
	case PageDashboard:
		return tn.DashboardView(s), true
	case PageCurrentRental:
		data := CurrentRentalData{Property: s.tenantProperty()}
		if data.Property != nil {
			data.LandlordName = data.Property.LandlordName
			if data.LandlordName == "" {
				data.LandlordName = s.Landlord.Name
			}
			data.PaidThisMonth = domain.PaidInMonth(s.Payments, data.Property.ID, s.Now)
		}
		return data, true
	case PageComplaints:
		return ComplaintsData{Complaints: s.Complaints, OpenCount: s.openComplaints()}, true
	case PagePayments:
		var payments []domain.Payment
		if s.Tenant != nil {
			payments = s.paymentsOf(s.Tenant.ID)
		}
		return TenantPaymentsData{Payments: payments, OnTimeRate: report.OnTimeRate(payments)}, true
	}
	return nil, false
}
