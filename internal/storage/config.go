package storage

// Config holds storage configuration
type Config struct {
	Dir           string // Directory for report files
	BaseURL       string // Server base URL for generating download URLs
	SigningSecret string // HS256 secret for download tokens; random when empty
}
