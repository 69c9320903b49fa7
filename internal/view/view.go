// Package view maps the session state to the page a client should display.
// Role-specific behaviour lives behind the sealed Role interface, with one
// implementation per user role.
package view

import (
	"time"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/report"
)

const (
	PageLogin           = "login"
	PageDashboard       = domain.DefaultPage
	PageProperties      = "properties"
	PageAddProperty     = "add-property"
	PagePropertyDetails = "property-details"
	PageStatistics      = "statistics"
	PageLandlordFeed    = "landlord-complaints"
	PagePaymentHistory  = "payment-history"
	PageCurrentRental   = "current-rental"
	PageComplaints      = "complaints"
	PagePayments        = "payments"
)

// State is everything a page may read. It is assembled fresh for every render.
type State struct {
	Session    domain.Session
	User       *domain.User // nil when nobody is logged in
	Landlord   domain.User
	Tenant     *domain.Tenant
	Tenants    []domain.Tenant
	Properties []domain.Property
	Payments   []domain.Payment // most recent first
	Complaints []domain.Complaint
	Now        time.Time
}

type NavItem struct {
	Page  string `json:"page"`
	Label string `json:"label"`
}

type View struct {
	Page       string          `json:"page"`
	Role       domain.UserRole `json:"role,omitempty"`
	User       *domain.User    `json:"user,omitempty"`
	Navigation []NavItem       `json:"navigation,omitempty"`
	Data       any             `json:"data"`
}

type LoginData struct {
	Roles []domain.UserRole `json:"roles"`
}

type LandlordDashboardData struct {
	Summary            domain.PortfolioSummary `json:"summary"`
	OpenComplaintCount int                     `json:"open_complaint_count"`
}

type PropertiesData struct {
	Properties []domain.Property `json:"properties"`
}

type AddPropertyData struct {
	Statuses []domain.PropertyStatus `json:"statuses"`
	Draft    domain.PropertyDraft    `json:"draft"`
}

// PropertyDetailsData is rendered even for an id that matches no property;
// Found is false in that case.
type PropertyDetailsData struct {
	Found         bool             `json:"found"`
	PropertyID    string           `json:"property_id"`
	Property      *domain.Property `json:"property,omitempty"`
	Tenant        *domain.Tenant   `json:"tenant,omitempty"`
	PaidThisMonth bool             `json:"paid_this_month"`
	LastPayment   *domain.Payment  `json:"last_payment,omitempty"`
}

type TenantStat struct {
	TenantID     string `json:"tenant_id"`
	Name         string `json:"name"`
	CreditScore  int    `json:"credit_score"`
	OnTimeRate   int    `json:"on_time_rate"`
	PaymentCount int    `json:"payment_count"`
}

type StatisticsData struct {
	Tenants []TenantStat `json:"tenants"`
}

type ComplaintsData struct {
	Complaints []domain.Complaint `json:"complaints"`
	OpenCount  int                `json:"open_count"`
}

type PaymentRow struct {
	domain.Payment
	TenantName      string `json:"tenant_name"`
	PropertyAddress string `json:"property_address"`
	DisplayMethod   string `json:"display_method"`
}

type PaymentHistoryData struct {
	Rows []PaymentRow `json:"rows"`
}

type TenantDashboardData struct {
	Tenant         domain.Tenant    `json:"tenant"`
	Property       *domain.Property `json:"property,omitempty"`
	RecentPayments []domain.Payment `json:"recent_payments"`
	OnTimeRate     int              `json:"on_time_rate"`
}

type CurrentRentalData struct {
	Property      *domain.Property `json:"property,omitempty"`
	LandlordName  string           `json:"landlord_name"`
	PaidThisMonth bool             `json:"paid_this_month"`
}

type TenantPaymentsData struct {
	Payments   []domain.Payment `json:"payments"`
	OnTimeRate int              `json:"on_time_rate"`
}

// Role is implemented once per user role and cannot be implemented outside
// this package.
type Role interface {
	Kind() domain.UserRole
	NavigationItems() []NavItem
	DashboardView(s State) any
	// Render returns the page data, or false when the page is not part of
	// this role's page set or cannot be shown in the current state.
	Render(page string, s State) (any, bool)
	sealed()
}

// ForRole returns the Role variant for r, or false for an unknown role.
func ForRole(r domain.UserRole) (Role, bool) {
	switch r {
	case domain.UserRoleLandlord:
		return landlord{}, true
	case domain.UserRoleTenant:
		return tenant{}, true
	}
	return nil, false
}

type Router struct{}

func NewRouter() *Router {
	return &Router{}
}

// Render resolves the active page. A false result means "render nothing".
func (r *Router) Render(s State) (*View, bool) {
	if s.User == nil || !s.Session.Authenticated() {
		return &View{
			Page: PageLogin,
			Data: LoginData{Roles: []domain.UserRole{domain.UserRoleLandlord, domain.UserRoleTenant}},
		}, true
	}
	role, ok := ForRole(s.Session.Role)
	if !ok {
		return nil, false
	}
	data, ok := role.Render(s.Session.Page, s)
	if !ok {
		return nil, false
	}
	return &View{
		Page:       s.Session.Page,
		Role:       role.Kind(),
		User:       s.User,
		Navigation: role.NavigationItems(),
		Data:       data,
	}, true
}

// Navigation returns the navigation items of the logged in role.
func (r *Router) Navigation(s State) []NavItem {
	if !s.Session.Authenticated() {
		return nil
	}
	role, ok := ForRole(s.Session.Role)
	if !ok {
		return nil
	}
	return role.NavigationItems()
}

func (s State) findProperty(id string) *domain.Property {
	for i := range s.Properties {
		if s.Properties[i].ID == id {
			p := s.Properties[i]
			return &p
		}
	}
	return nil
}

func (s State) tenantProperty() *domain.Property {
	if s.Tenant == nil {
		return nil
	}
	return s.findProperty(s.Tenant.CurrentPropertyID)
}

func (s State) openComplaints() int {
	n := 0
	for _, c := range s.Complaints {
		if c.Status == domain.ComplaintStatusOpen {
			n++
		}
	}
	return n
}

func (s State) paymentsOf(tenantID string) []domain.Payment {
	var out []domain.Payment
	for _, p := range s.Payments {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out
}

// Summarize computes the landlord dashboard figures.
func Summarize(properties []domain.Property) domain.PortfolioSummary {
	sum := domain.PortfolioSummary{TotalProperties: len(properties)}
	for _, p := range properties {
		if p.Status == domain.PropertyStatusOccupied {
			sum.Occupied++
			sum.MonthlyRevenue += p.RentAmount
		}
	}
	sum.Vacant = sum.TotalProperties - sum.Occupied
	return sum
}

func tenantStat(t domain.Tenant, payments []domain.Payment) TenantStat {
	return TenantStat{
		TenantID:     t.ID,
		Name:         t.Name,
		CreditScore:  t.CreditScore,
		OnTimeRate:   report.OnTimeRate(payments),
		PaymentCount: len(payments),
	}
}
