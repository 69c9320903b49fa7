package memory

import "trustrent-backend/internal/domain"

const (
	DemoLandlordID = "user_landlord_01"
	DemoTenantID   = "user_tenant_01"
)

func strPtr(s string) *string { return &s }

// DemoSeed returns the fixed demo dataset: one landlord, one tenant, three
// properties and three historic payments.
func DemoSeed() Seed {
	return Seed{
		Landlord: domain.User{
			ID:        DemoLandlordID,
			Name:      "Alex Sterling",
			Email:     "alex@trustrent.com",
			Role:      domain.UserRoleLandlord,
			AvatarURL: "https://picsum.photos/100/100",
		},
		Tenant: domain.Tenant{
			User: domain.User{
				ID:        DemoTenantID,
				Name:      "Jordan Rivera",
				Email:     "jordan@gmail.com",
				Role:      domain.UserRoleTenant,
				AvatarURL: "https://picsum.photos/101/101",
			},
			CreditScore:       720,
			CurrentPropertyID: "prop_001",
		},
		Properties: []domain.Property{
			{
				ID:         "prop_001",
				Address:    "101 Silicon Valley Blvd, Apt 4B",
				City:       "San Francisco, CA",
				RentAmount: 3200,
				TenantID:   strPtr(DemoTenantID),
				Image:      "https://picsum.photos/400/300?random=1",
				DueDate:    5,
				Status:     domain.PropertyStatusOccupied,
			},
			{
				ID:         "prop_002",
				Address:    "88 Tech Park Way, Unit 12",
				City:       "San Jose, CA",
				RentAmount: 2800,
				TenantID:   strPtr("user_tenant_02"),
				Image:      "https://picsum.photos/400/300?random=2",
				DueDate:    1,
				Status:     domain.PropertyStatusOccupied,
			},
			{
				ID:         "prop_003",
				Address:    "450 Innovation Dr",
				City:       "Palo Alto, CA",
				RentAmount: 4500,
				Image:      "https://picsum.photos/400/300?random=3",
				DueDate:    1,
				Status:     domain.PropertyStatusVacant,
			},
		},
		Payments: []domain.Payment{
			{ID: "pay_001", PropertyID: "prop_001", TenantID: DemoTenantID, Amount: 3200, Date: "2024-03-05", Status: domain.PaymentStatusPaid, IsLate: false},
			{ID: "pay_002", PropertyID: "prop_001", TenantID: DemoTenantID, Amount: 3200, Date: "2024-02-06", Status: domain.PaymentStatusPaid, IsLate: true},
			{ID: "pay_003", PropertyID: "prop_001", TenantID: DemoTenantID, Amount: 3200, Date: "2024-01-05", Status: domain.PaymentStatusPaid, IsLate: false},
		},
	}
}
