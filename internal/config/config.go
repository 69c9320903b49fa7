package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Advisor   AdvisorConfig   `yaml:"advisor"`
	Rent      RentConfig      `yaml:"rent"`
	Reports   ReportsConfig   `yaml:"reports"`
	Email     EmailConfig     `yaml:"email"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP and gRPC listener settings
type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`      // HTTP API
	GRPCPort int    `yaml:"grpc_port"` // health service; 0 means Port+1
	BaseURL  string `yaml:"base_url"`  // used in signed download links
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// AdvisorConfig selects and configures the AI advisory gateway
type AdvisorConfig struct {
	Provider       string `yaml:"provider"` // "static", "http" or "gemini"
	Endpoint       string `yaml:"endpoint"`
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// RentConfig contains rent payment rules
type RentConfig struct {
	// StrictAmount rejects payments whose amount differs from the property rent.
	StrictAmount bool `yaml:"strict_amount"`
}

// ReportsConfig contains report artifact storage settings
type ReportsConfig struct {
	Dir               string `yaml:"dir"`
	SigningSecret     string `yaml:"signing_secret"`
	LinkExpiryMinutes int    `yaml:"link_expiry_minutes"`
}

// EmailConfig contains reminder email settings
type EmailConfig struct {
	Provider             string `yaml:"provider"` // "log", "sendgrid" or "gmail"; empty picks sendgrid when a key is set
	SendGridAPIKey       string `yaml:"sendgrid_api_key"`
	GmailCredentialsFile string `yaml:"gmail_credentials_file"`
	FromEmail            string `yaml:"from_email"`
	FromName             string `yaml:"from_name"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	Enabled           bool   `yaml:"enabled"`
	SendRentReminders string `yaml:"send_rent_reminders"`
	ReminderLeadDays  int    `yaml:"reminder_lead_days"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, applies environment overrides and validates it
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns a validated configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.overrideWithEnv()
	_ = cfg.Validate()
	return cfg
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("SERVER_BASE_URL"); val != "" {
		c.Server.BaseURL = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Advisor
	if val := os.Getenv("ADVISOR_PROVIDER"); val != "" {
		c.Advisor.Provider = val
	}
	if val := os.Getenv("ADVISOR_ENDPOINT"); val != "" {
		c.Advisor.Endpoint = val
	}
	if val := os.Getenv("ADVISOR_API_KEY"); val != "" {
		c.Advisor.APIKey = val
	}

	// Reports
	if val := os.Getenv("REPORT_DIR"); val != "" {
		c.Reports.Dir = val
	}
	if val := os.Getenv("REPORT_SIGNING_SECRET"); val != "" {
		c.Reports.SigningSecret = val
	}

	// Email
	if val := os.Getenv("EMAIL_PROVIDER"); val != "" {
		c.Email.Provider = val
	}
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.SendGridAPIKey = val
	}
	if val := os.Getenv("GMAIL_CREDENTIALS_FILE"); val != "" {
		c.Email.GmailCredentialsFile = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills defaults
func (c *Config) Validate() error {
	// Server defaults
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.GRPCPort == 0 {
		c.Server.GRPCPort = c.Server.Port + 1
	}
	if c.Server.GRPCPort < 0 || c.Server.GRPCPort > 65535 {
		return fmt.Errorf("invalid grpc port: %d", c.Server.GRPCPort)
	}
	if c.Server.BaseURL == "" {
		host := c.Server.Host
		if host == "" {
			host = "localhost"
		}
		c.Server.BaseURL = fmt.Sprintf("http://%s:%d", host, c.Server.Port)
	}
	c.Server.BaseURL = strings.TrimRight(c.Server.BaseURL, "/")

	// Advisor validation
	if c.Advisor.Provider == "" {
		c.Advisor.Provider = "static"
	}
	switch c.Advisor.Provider {
	case "static":
	case "http":
		if c.Advisor.Endpoint == "" {
			return fmt.Errorf("advisor endpoint is required for the http provider")
		}
	case "gemini":
		if c.Advisor.APIKey == "" {
			return fmt.Errorf("advisor api key is required for the gemini provider")
		}
		if c.Advisor.Model == "" {
			c.Advisor.Model = "gemini-2.0-flash"
		}
	default:
		return fmt.Errorf("unsupported advisor provider: %s", c.Advisor.Provider)
	}
	if c.Advisor.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid advisor timeout: %d", c.Advisor.TimeoutSeconds)
	}
	if c.Advisor.TimeoutSeconds == 0 {
		c.Advisor.TimeoutSeconds = 30
	}

	// Reports defaults
	if c.Reports.Dir == "" {
		c.Reports.Dir = "./reports"
	}
	if c.Reports.SigningSecret != "" && len(c.Reports.SigningSecret) < 32 {
		return fmt.Errorf("report signing secret must be at least 32 characters")
	}
	if c.Reports.LinkExpiryMinutes == 0 {
		c.Reports.LinkExpiryMinutes = 15
	}

	// Email defaults
	if c.Email.Provider == "" {
		c.Email.Provider = "log"
		if c.Email.SendGridAPIKey != "" {
			c.Email.Provider = "sendgrid"
		}
	}
	switch c.Email.Provider {
	case "log":
	case "sendgrid":
		if c.Email.SendGridAPIKey == "" {
			return fmt.Errorf("sendgrid api key is required for the sendgrid email provider")
		}
	case "gmail":
		if c.Email.GmailCredentialsFile == "" {
			return fmt.Errorf("gmail credentials file is required for the gmail email provider")
		}
	default:
		return fmt.Errorf("unsupported email provider: %s", c.Email.Provider)
	}
	if c.Email.FromEmail == "" {
		c.Email.FromEmail = "no-reply@trustrent.com"
	}
	if c.Email.FromName == "" {
		c.Email.FromName = "TrustRent"
	}

	// Scheduler defaults
	if c.Scheduler.SendRentReminders == "" {
		c.Scheduler.SendRentReminders = "0 0 9 * * *" // Daily at 9 AM UTC
	}
	if c.Scheduler.ReminderLeadDays == 0 {
		c.Scheduler.ReminderLeadDays = 3
	}
	if c.Scheduler.ReminderLeadDays < 0 || c.Scheduler.ReminderLeadDays > 27 {
		return fmt.Errorf("invalid reminder lead days: %d", c.Scheduler.ReminderLeadDays)
	}

	return nil
}

// GetServerAddress returns the HTTP API address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetGRPCAddress returns the gRPC health service address
func (c *Config) GetGRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.GRPCPort)
}
