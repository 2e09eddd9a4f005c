package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/core/services"
	"github.com/SscSPs/club_manager_app/internal/platform/metrics"
	"github.com/SscSPs/club_manager_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockNarrativeGenerator is a mock type for the NarrativeGenerator interface
type MockNarrativeGenerator struct {
	mock.Mock
}

func (m *MockNarrativeGenerator) GenerateNarrative(ctx context.Context, input domain.NarrativeInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// MockStateRepository is a mock type for the StateRepositoryFacade interface
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) LoadState(ctx context.Context) (domain.AppState, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AppState), args.Error(1)
}

func (m *MockStateRepository) SaveState(ctx context.Context, state domain.AppState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

// MockSessionRepository is a mock type for the SessionRepositoryFacade interface
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) FindSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session, ttl time.Duration) error {
	args := m.Called(ctx, session, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

var testDefaults = domain.StateDefaults{
	AdminEmails:    []string{"admin@jcunited.com"},
	SystemPassword: "123456",
}

func strPtr(s string) *string { return &s }

func vnd(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// newContainer builds a state container over an in-memory repository seeded with initial.
func newContainer(initial domain.AppState) (*services.StateContainer, *memory.StateRepository) {
	repo := memory.NewStateRepositoryWith(initial)
	c, err := services.NewStateContainer(context.Background(), repo, testDefaults)
	if err != nil {
		panic(err)
	}
	return c, repo
}

// may2024State is the reference scenario: A active and paid, B active and
// unpaid, one completed match with A, one income and one expense in May 2024.
func may2024State() domain.AppState {
	return domain.AppState{
		Members: []domain.Member{
			{ID: "A", Name: "Anh", Status: domain.MemberActive, Type: domain.MemberInternal, MonthlyFeePaid: true, SupportLevel: vnd(200000)},
			{ID: "B", Name: "Bảo", Status: domain.MemberActive, Type: domain.MemberInternal, MonthlyFeePaid: false, SupportLevel: vnd(200000)},
		},
		Matches: []domain.Match{
			{ID: "m1", Date: "2024-05-04", Location: "Sân A", Type: domain.MatchInternal, Status: domain.MatchCompleted, ParticipantIDs: []string{"A"}, Result: strPtr("3 - 1")},
		},
		Transactions: []domain.Transaction{
			{ID: "t1", Date: "2024-05-03", Amount: vnd(100000), Type: domain.TransactionIncome, Category: domain.CategorySponsorship},
			{ID: "t2", Date: "2024-05-10", Amount: vnd(50000), Type: domain.TransactionExpense, Category: domain.CategoryPitch},
		},
	}
}

// scrape renders the exposition text of m.
func scrape(m *metrics.Metrics) string {
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return w.Body.String()
}
