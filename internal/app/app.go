// Package app wires configuration into a ready-to-serve application state.
package app

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"trustrent-backend/internal/advisor"
	"trustrent-backend/internal/config"
	"trustrent-backend/internal/email"
	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/repository/memory"
	"trustrent-backend/internal/service"
	"trustrent-backend/internal/storage"
)

type App struct {
	Config   *config.Config
	Store    *memory.Store
	Storage  *storage.LocalStorageService
	Services *service.Services
}

// New builds the store, the external gateways and every service from cfg.
// The store is seeded with the demo portfolio.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store := memory.NewStore(memory.DemoSeed())

	// Initialize Storage Service
	logger.Info("Using local report storage", "dir", cfg.Reports.Dir)
	storageSvc, err := storage.NewLocalStorageService(storage.Config{
		Dir:           cfg.Reports.Dir,
		BaseURL:       cfg.Server.BaseURL,
		SigningSecret: cfg.Reports.SigningSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report storage: %w", err)
	}

	gateway, err := NewGateway(ctx, cfg.Advisor)
	if err != nil {
		return nil, err
	}

	sender, err := NewEmailSender(ctx, cfg.Email)
	if err != nil {
		return nil, err
	}

	svc := service.NewServices(service.Deps{
		Store:        store,
		Gateway:      gateway,
		Storage:      storageSvc,
		Email:        email.NewService(sender),
		StrictAmount: cfg.Rent.StrictAmount,
		AdviceLimit:  time.Duration(cfg.Advisor.TimeoutSeconds) * time.Second,
		LinkExpiry:   time.Duration(cfg.Reports.LinkExpiryMinutes) * time.Minute,
	})

	return &App{
		Config:   cfg,
		Store:    store,
		Storage:  storageSvc,
		Services: svc,
	}, nil
}

// NewGateway selects the advisory provider named in cfg.
func NewGateway(ctx context.Context, cfg config.AdvisorConfig) (advisor.Gateway, error) {
	switch cfg.Provider {
	case "gemini":
		logger.Info("Using Gemini advisory gateway", "model", cfg.Model)
		gw, err := advisor.NewGeminiGateway(ctx, advisor.GeminiConfig{APIKey: cfg.APIKey, Model: cfg.Model})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini gateway: %w", err)
		}
		return gw, nil
	case "http":
		logger.Info("Using HTTP advisory gateway", "endpoint", cfg.Endpoint)
		return advisor.NewHTTPGateway(cfg.Endpoint, cfg.APIKey, time.Duration(cfg.TimeoutSeconds)*time.Second), nil
	case "static", "":
		logger.Info("Using static advisory gateway")
		return advisor.NewStaticGateway(""), nil
	}
	return nil, fmt.Errorf("unsupported advisor provider: %s", cfg.Provider)
}

// NewEmailSender returns the sender named by cfg.Provider. The log sender
// only records what would have been sent.
func NewEmailSender(ctx context.Context, cfg config.EmailConfig) (email.Sender, error) {
	switch cfg.Provider {
	case "sendgrid":
		logger.Info("Using SendGrid email sender", "from", cfg.FromEmail)
		return email.NewSendGridSender(cfg.SendGridAPIKey, cfg.FromEmail, cfg.FromName), nil
	case "gmail":
		logger.Info("Using Gmail API email sender", "from", cfg.FromEmail)
		sender, err := email.NewGmailSender(ctx, cfg.FromEmail, cfg.FromName,
			option.WithCredentialsFile(cfg.GmailCredentialsFile),
			option.WithScopes(gmail.GmailSendScope))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gmail sender: %w", err)
		}
		return sender, nil
	case "log", "":
		logger.Warn("No email provider configured, reminder emails will only be logged")
		return email.LogSender{}, nil
	}
	return nil, fmt.Errorf("unsupported email provider: %s", cfg.Provider)
}
