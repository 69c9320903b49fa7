package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trustrent-backend/internal/advisor"
	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/repository"
)

type advisoryService struct {
	gateway       advisor.Gateway
	sessionRepo   repository.SessionRepository
	tenantRepo    repository.TenantRepository
	propertyRepo  repository.PropertyRepository
	paymentRepo   repository.PaymentRepository
	complaintRepo repository.ComplaintRepository
	calls         *CallTracker
	timeout       time.Duration
}

func NewAdvisoryService(
	gateway advisor.Gateway,
	sessionRepo repository.SessionRepository,
	tenantRepo repository.TenantRepository,
	propertyRepo repository.PropertyRepository,
	paymentRepo repository.PaymentRepository,
	complaintRepo repository.ComplaintRepository,
	calls *CallTracker,
	timeout time.Duration,
) AdvisoryService {
	return &advisoryService{
		gateway:       gateway,
		sessionRepo:   sessionRepo,
		tenantRepo:    tenantRepo,
		propertyRepo:  propertyRepo,
		paymentRepo:   paymentRepo,
		complaintRepo: complaintRepo,
		calls:         calls,
		timeout:       timeout,
	}
}

// Ask answers instruction for the logged in role. Provider failures come back
// as advisor.FallbackMessage, never as an error.
func (s *advisoryService) Ask(ctx context.Context, instruction string) (string, error) {
	if strings.TrimSpace(instruction) == "" {
		return "", fmt.Errorf("instruction is required: %w", domain.ErrInvalidArgument)
	}
	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return "", err
	}
	if !session.Authenticated() {
		return "", domain.ErrNoActiveSession
	}

	snapshot, err := s.AssembleContext(ctx, session.Role)
	if err != nil {
		return "", fmt.Errorf("failed to assemble context: %w", err)
	}
	return s.advise(ctx, instruction, session.Role, snapshot), nil
}

// TenantInsight produces the short status summary shown on the tenant
// dashboard.
func (s *advisoryService) TenantInsight(ctx context.Context) (string, error) {
	snapshot, err := s.tenantSnapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to assemble context: %w", err)
	}
	return s.advise(ctx, insightPrompt(snapshot), domain.UserRoleTenant, snapshot), nil
}

func (s *advisoryService) advise(ctx context.Context, instruction string, role domain.UserRole, snapshot advisor.Snapshot) string {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	ctx, done := s.calls.Track(ctx)
	defer done()

	return s.gateway.Advise(ctx, instruction, role, snapshot)
}

func insightPrompt(snapshot advisor.TenantSnapshot) string {
	last := "none"
	if len(snapshot.PaymentHistory) > 0 {
		p := snapshot.PaymentHistory[0]
		standing := "On Time"
		if p.IsLate {
			standing = "Late"
		}
		last = fmt.Sprintf("%s (%s)", p.Date, standing)
	}
	prompt := fmt.Sprintf(`Analyze this tenant's status.
Credit Score: %d.
Last Payment: %s.
Payments Count: %d.

Write a short 2-sentence summary addressing the tenant directly.
Sentence 1: Comment on their current standing/score.
Sentence 2: Give a specific financial tip or warning about the next due date.
Use a professional but encouraging tone.`,
		snapshot.TenantProfile.CreditScore, last, len(snapshot.PaymentHistory))
	logger.Debug("Built tenant insight prompt", "payments", len(snapshot.PaymentHistory))
	return prompt
}
