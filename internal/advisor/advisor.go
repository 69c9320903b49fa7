// Package advisor is the boundary to the external text-generation service
// that produces rental "insights". Every Gateway degrades to FallbackMessage
// instead of returning an error; callers only ever display the text.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"trustrent-backend/internal/domain"
)

const (
	FallbackMessage    = "I'm having trouble connecting to the AI service right now. Please try again later."
	EmptyAnswerMessage = "I couldn't generate a response at this time."
)

// Snapshot is a role-scoped, JSON-serializable view of store state.
type Snapshot interface {
	Role() domain.UserRole
}

// LandlordSnapshot and TenantSnapshot marshal to the camelCase records in
// wire.go.
type LandlordSnapshot struct {
	Properties         []domain.Property
	RecentRevenue      int
	OpenComplaintCount int
}

func (LandlordSnapshot) Role() domain.UserRole { return domain.UserRoleLandlord }

type TenantSnapshot struct {
	TenantProfile    domain.Tenant
	Property         *domain.Property
	PaymentHistory   []domain.Payment
	ActiveComplaints []domain.Complaint
}

func (TenantSnapshot) Role() domain.UserRole { return domain.UserRoleTenant }

type Gateway interface {
	Advise(ctx context.Context, instruction string, role domain.UserRole, snapshot Snapshot) string
}

// SystemInstruction frames the provider call: who is asking and the data the
// answer must be grounded on.
func SystemInstruction(role domain.UserRole, snapshot Snapshot) (string, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode context snapshot: %w", err)
	}
	return fmt.Sprintf(`You are TrustRent AI, the assistant of a rental management platform.

User role: %s

Data context (JSON):
%s

Rules:
1. Answer briefly and only from the data context above.
2. Landlords care about rent collection, occupancy and tenant risk.
3. Tenants care about due dates, credit score and payment history.
4. If the data does not contain the answer, say that you do not have that information.
5. Stay short and professional.
6. Credit score logic: each on-time payment adds %d points, up to %d.`,
		role, data, domain.CreditScoreIncrement, domain.MaxCreditScore), nil
}

// StaticGateway answers every question with the same text. It stands in for a
// provider in development and tests.
type StaticGateway struct {
	Answer string
}

func NewStaticGateway(answer string) *StaticGateway {
	return &StaticGateway{Answer: answer}
}

func (g *StaticGateway) Advise(ctx context.Context, instruction string, role domain.UserRole, snapshot Snapshot) string {
	if ctx.Err() != nil {
		return FallbackMessage
	}
	if g.Answer == "" {
		return EmptyAnswerMessage
	}
	return g.Answer
}
