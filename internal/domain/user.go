package domain

type UserRole string

const (
	UserRoleLandlord UserRole = "LANDLORD"
	UserRoleTenant   UserRole = "TENANT"
)

// Valid reports whether r is one of the closed set of roles.
func (r UserRole) Valid() bool {
	return r == UserRoleLandlord || r == UserRoleTenant
}

type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	AvatarURL string   `json:"avatar_url,omitempty"`
}

const (
	MinCreditScore       = 0
	MaxCreditScore       = 900
	CreditScoreIncrement = 15
)

// Tenant is a User plus the tenant-only fields.
type Tenant struct {
	User
	CreditScore       int    `json:"credit_score"`
	CurrentPropertyID string `json:"current_property_id"`
}

// ClampCreditScore bounds a score to [MinCreditScore, MaxCreditScore].
func ClampCreditScore(score int) int {
	if score < MinCreditScore {
		return MinCreditScore
	}
	if score > MaxCreditScore {
		return MaxCreditScore
	}
	return score
}
