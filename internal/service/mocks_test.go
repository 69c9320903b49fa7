package service_test

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"trustrent-backend/internal/advisor"
	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/repository/memory"
	"trustrent-backend/internal/service"
	"trustrent-backend/internal/storage"
)

func init() {
	logger.SetOutput(io.Discard, "error", "text")
}

var testNow = time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type seqIDs struct {
	n int
}

func (g *seqIDs) NewID(prefix string) string {
	g.n++
	return fmt.Sprintf("%s_t%03d", prefix, g.n)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Advise(ctx context.Context, instruction string, role domain.UserRole, snapshot advisor.Snapshot) string {
	args := m.Called(ctx, instruction, role, snapshot)
	return args.String(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentReminder(ctx context.Context, to, toName, address string, amount, dueDay int) error {
	args := m.Called(ctx, to, toName, address, amount, dueDay)
	return args.Error(0)
}

type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListByProperty(ctx context.Context, propertyID string) ([]domain.Payment, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type fixture struct {
	store   *memory.Store
	svc     *service.Services
	gateway *MockGateway
	email   *MockEmailService
	storage *storage.LocalStorageService
	ids     *seqIDs
}

type fixtureOption func(*service.Deps)

func withStrictAmount() fixtureOption {
	return func(d *service.Deps) { d.StrictAmount = true }
}

func withSeed(seed memory.Seed) fixtureOption {
	return func(d *service.Deps) { d.Store = memory.NewStore(seed) }
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()
	store, err := storage.NewLocalStorageService(storage.Config{
		Dir:           t.TempDir(),
		BaseURL:       "http://localhost:8080",
		SigningSecret: "0123456789abcdef0123456789abcdef",
	})
	require.NoError(t, err)

	f := &fixture{
		gateway: new(MockGateway),
		email:   new(MockEmailService),
		storage: store,
		ids:     &seqIDs{},
	}
	deps := service.Deps{
		Store:      memory.NewStore(memory.DemoSeed()),
		Gateway:    f.gateway,
		Storage:    store,
		Email:      f.email,
		IDs:        f.ids,
		Now:        fixedClock,
		LinkExpiry: 15 * time.Minute,
	}
	for _, opt := range opts {
		opt(&deps)
	}
	f.store = deps.Store
	f.svc = service.NewServices(deps)
	return f
}
