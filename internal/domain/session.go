package domain

const DefaultPage = "dashboard"

// Session is the "who is logged in, what page is active" state of the single
// simulated session. An empty Role means nobody is logged in.
type Session struct {
	Role               UserRole `json:"role,omitempty"`
	UserID             string   `json:"user_id,omitempty"`
	Page               string   `json:"page"`
	SelectedPropertyID *string  `json:"selected_property_id,omitempty"`
}

func (s *Session) Authenticated() bool {
	return s.Role != ""
}
