package service

import (
	"context"
	"fmt"

	"trustrent-backend/internal/advisor"
	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/view"
)

// AssembleContext reads the live store on every call and never mutates it.
// Landlords see the portfolio; tenants see only their own profile, rental
// and payments.
func (s *advisoryService) AssembleContext(ctx context.Context, role domain.UserRole) (advisor.Snapshot, error) {
	switch role {
	case domain.UserRoleLandlord:
		return s.landlordSnapshot(ctx)
	case domain.UserRoleTenant:
		return s.tenantSnapshot(ctx)
	}
	return nil, fmt.Errorf("role %q: %w", role, domain.ErrInvalidArgument)
}

func (s *advisoryService) landlordSnapshot(ctx context.Context) (advisor.LandlordSnapshot, error) {
	properties, err := s.propertyRepo.List(ctx)
	if err != nil {
		return advisor.LandlordSnapshot{}, err
	}
	complaints, err := s.complaintRepo.List(ctx)
	if err != nil {
		return advisor.LandlordSnapshot{}, err
	}
	return advisor.LandlordSnapshot{
		Properties:         properties,
		RecentRevenue:      view.Summarize(properties).MonthlyRevenue,
		OpenComplaintCount: len(openComplaints(complaints)),
	}, nil
}

func (s *advisoryService) tenantSnapshot(ctx context.Context) (advisor.TenantSnapshot, error) {
	tenant, err := s.tenantRepo.GetCurrent(ctx)
	if err != nil {
		return advisor.TenantSnapshot{}, err
	}
	snapshot := advisor.TenantSnapshot{TenantProfile: *tenant}

	if property, err := s.propertyRepo.GetByID(ctx, tenant.CurrentPropertyID); err == nil {
		snapshot.Property = property
	}

	snapshot.PaymentHistory, err = s.paymentRepo.ListByTenant(ctx, tenant.ID)
	if err != nil {
		return advisor.TenantSnapshot{}, err
	}

	complaints, err := s.complaintRepo.List(ctx)
	if err != nil {
		return advisor.TenantSnapshot{}, err
	}
	snapshot.ActiveComplaints = openComplaints(complaints)
	return snapshot, nil
}

func openComplaints(complaints []domain.Complaint) []domain.Complaint {
	open := make([]domain.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if c.Status == domain.ComplaintStatusOpen {
			open = append(open, c)
		}
	}
	return open
}
