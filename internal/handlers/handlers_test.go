package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/club_manager_app/internal/apperrors"
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
	"github.com/SscSPs/club_manager_app/internal/handlers"
	"github.com/SscSPs/club_manager_app/internal/middleware"
	"github.com/SscSPs/club_manager_app/internal/platform/config"
	"github.com/SscSPs/club_manager_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	adminToken = "admin-token"
	guestToken = "guest-token"
	adminEmail = "admin@jcunited.com"
)

type HandlersTestSuite struct {
	suite.Suite
	router         *gin.Engine
	cfg            *config.Config
	auth           *MockAuthService
	members        *MockMemberService
	ledger         *MockLedgerService
	matches        *MockMatchService
	fund           *MockFundService
	reconciliation *MockReconciliationService
	archive        *MockReportArchiveService
	insights       *MockInsightsService
	dashboard      *MockDashboardService
	settings       *MockSettingsService
}

func (s *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(middleware.RegisterValidators())
}

func (s *HandlersTestSuite) SetupTest() {
	s.cfg = &config.Config{IsProduction: true}
	s.auth = new(MockAuthService)
	s.members = new(MockMemberService)
	s.ledger = new(MockLedgerService)
	s.matches = new(MockMatchService)
	s.fund = new(MockFundService)
	s.reconciliation = new(MockReconciliationService)
	s.archive = new(MockReportArchiveService)
	s.insights = new(MockInsightsService)
	s.dashboard = new(MockDashboardService)
	s.settings = new(MockSettingsService)

	s.auth.On("RestoreSession", mock.Anything, adminToken).Return(&domain.Session{
		ID:   "s-admin",
		User: domain.User{Name: "Admin", Email: adminEmail, IsAdmin: true},
	}, nil).Maybe()
	s.auth.On("RestoreSession", mock.Anything, guestToken).Return(&domain.Session{
		ID:   "s-guest",
		User: domain.User{Name: "Khách", Email: "guest_1", IsAdmin: false},
	}, nil).Maybe()

	s.router = s.newRouter()
}

func (s *HandlersTestSuite) newRouter() *gin.Engine {
	r := gin.New()
	handlers.RegisterRoutes(r, s.cfg, &portssvc.ServiceContainer{
		Ledger:         s.ledger,
		Member:         s.members,
		Match:          s.matches,
		Fund:           s.fund,
		Reconciliation: s.reconciliation,
		ReportArchive:  s.archive,
		Insights:       s.insights,
		Dashboard:      s.dashboard,
		Auth:           s.auth,
		Settings:       s.settings,
	}, metrics.New())
	return r
}

func (s *HandlersTestSuite) TearDownTest() {
	s.members.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
	s.matches.AssertExpectations(s.T())
	s.fund.AssertExpectations(s.T())
	s.reconciliation.AssertExpectations(s.T())
	s.archive.AssertExpectations(s.T())
	s.settings.AssertExpectations(s.T())
	s.dashboard.AssertExpectations(s.T())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

// do performs a request; body may be nil.
func (s *HandlersTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *HandlersTestSuite) decode(rr *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

func (s *HandlersTestSuite) TestHealth() {
	rr := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.Equal("OK", rr.Body.String())
}

func (s *HandlersTestSuite) TestMetricsEndpoint() {
	rr := s.do(http.MethodGet, "/metrics", "", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), "go_goroutines")
}

func (s *HandlersTestSuite) TestMissingToken() {
	rr := s.do(http.MethodGet, "/api/v1/members", "", nil)
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *HandlersTestSuite) TestExpiredToken() {
	s.auth.On("RestoreSession", mock.Anything, "stale").
		Return(nil, fmt.Errorf("%w: session expired", apperrors.ErrUnauthorized)).Once()

	rr := s.do(http.MethodGet, "/api/v1/members", "stale", nil)
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *HandlersTestSuite) TestGuestCanRead() {
	s.members.On("ListMembers", mock.Anything, dto.ListMembersParams{Status: "ACTIVE"}).
		Return([]domain.Member{{ID: "m1", Name: "An", Status: domain.MemberActive}}, nil).Once()

	rr := s.do(http.MethodGet, "/api/v1/members?status=ACTIVE", guestToken, nil)
	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), `"An"`)
}

func (s *HandlersTestSuite) TestGuestCannotWrite() {
	cases := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "/api/v1/members", dto.CreateMemberRequest{Name: "Bảo"}},
		{http.MethodDelete, "/api/v1/transactions/t1", nil},
		{http.MethodPost, "/api/v1/matches/m1/complete", nil},
		{http.MethodPost, "/api/v1/reports/freeze", dto.FreezeMonthRequest{Month: "2024-05"}},
		{http.MethodPost, "/api/v1/fund/payments", dto.RecordDuesPaymentRequest{Month: "2024-05", MemberID: "m1"}},
		{http.MethodGet, "/api/v1/settings", nil},
		{http.MethodPost, "/api/v1/insights", nil},
	}
	for _, tc := range cases {
		rr := s.do(tc.method, tc.path, guestToken, tc.body)
		s.Equal(http.StatusForbidden, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func (s *HandlersTestSuite) TestCreateMemberDuplicate() {
	s.members.On("AddMember", mock.Anything, mock.AnythingOfType("dto.CreateMemberRequest")).
		Return(nil, fmt.Errorf("%w: member id collision", apperrors.ErrDuplicate)).Once()

	rr := s.do(http.MethodPost, "/api/v1/members", adminToken, map[string]any{"name": "Bảo", "supportLevel": "200000"})
	s.Equal(http.StatusConflict, rr.Code)
}

func (s *HandlersTestSuite) TestCreateTransactionValidation() {
	rr := s.do(http.MethodPost, "/api/v1/transactions", adminToken, map[string]any{
		"date":     "2024-13-01",
		"amount":   "0",
		"type":     "INCOME",
		"category": "NOPE",
	})
	s.Equal(http.StatusBadRequest, rr.Code)

	var resp middleware.BadRequestErrorResponse
	s.decode(rr, &resp)
	s.Equal("Invalid request data", resp.Error)
	fields := map[string]string{}
	for _, d := range resp.Details {
		fields[d.Field] = d.Type
	}
	s.Equal(map[string]string{"date": "isodate", "amount": "gt", "category": "category"}, fields)
}

func (s *HandlersTestSuite) TestCreateTransactionRecordsActor() {
	memberID := "m1"
	s.ledger.On("AddTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Category == domain.CategoryFineLate && req.Amount.Equal(decimal.NewFromInt(50000))
	}), adminEmail).Return(&domain.Transaction{
		ID:              "t1",
		Date:            "2024-05-03",
		Amount:          decimal.NewFromInt(50000),
		Type:            domain.TransactionIncome,
		Category:        domain.CategoryFineLate,
		CreatedBy:       adminEmail,
		RelatedMemberID: &memberID,
	}, nil).Once()

	rr := s.do(http.MethodPost, "/api/v1/transactions", adminToken, map[string]any{
		"date":            "2024-05-03",
		"amount":          "50000",
		"type":            "INCOME",
		"category":        "FINE_LATE",
		"relatedMemberId": memberID,
	})
	s.Equal(http.StatusCreated, rr.Code)

	var resp dto.TransactionResponse
	s.decode(rr, &resp)
	s.Equal("t1", resp.ID)
	s.Equal(adminEmail, resp.CreatedBy)
}

func (s *HandlersTestSuite) TestCompleteMatchWithoutBody() {
	result := "0 - 0"
	s.matches.On("CompleteMatch", mock.Anything, "m1", dto.CompleteMatchRequest{}).
		Return(&domain.Match{ID: "m1", Status: domain.MatchCompleted, Result: &result}, nil).Once()

	rr := s.do(http.MethodPost, "/api/v1/matches/m1/complete", adminToken, nil)
	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), `"0 - 0"`)
}

func (s *HandlersTestSuite) TestFreezeMonth() {
	summary := "**Tốt**"
	s.reconciliation.On("FreezeMonth", mock.Anything, "2024-05", portssvc.FreezeOptions{WithNarrative: true}).
		Return(&domain.MonthlyReport{
			ID:             "r1",
			MonthlySummary: domain.MonthlySummary{Month: "2024-05", MatchCount: 2, WinCount: 1},
			AISummary:      &summary,
			CreatedAt:      time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		}, nil).Once()

	rr := s.do(http.MethodPost, "/api/v1/reports/freeze", adminToken, map[string]any{"month": "2024-05"})
	s.Equal(http.StatusCreated, rr.Code)

	var resp dto.MonthlyReportResponse
	s.decode(rr, &resp)
	s.Equal("r1", resp.ID)
	s.Equal("2024-05", resp.Month)
	s.InDelta(50.0, resp.WinRate, 0.001)
	s.Require().NotNil(resp.AISummaryHTML)
	s.Contains(*resp.AISummaryHTML, "<strong>Tốt</strong>")
	s.Empty(resp.UnpaidMemberIDs)
}

func (s *HandlersTestSuite) TestFreezeMonthWithoutNarrative() {
	s.reconciliation.On("FreezeMonth", mock.Anything, "2024-05", portssvc.FreezeOptions{WithNarrative: false}).
		Return(&domain.MonthlyReport{ID: "r1", MonthlySummary: domain.MonthlySummary{Month: "2024-05"}}, nil).Once()

	rr := s.do(http.MethodPost, "/api/v1/reports/freeze", adminToken, map[string]any{"month": "2024-05", "withNarrative": false})
	s.Equal(http.StatusCreated, rr.Code)
	s.NotContains(rr.Body.String(), "aiSummary")
}

func (s *HandlersTestSuite) TestFreezeMonthRejectsBadMonth() {
	rr := s.do(http.MethodPost, "/api/v1/reports/freeze", adminToken, map[string]any{"month": "May"})
	s.Equal(http.StatusBadRequest, rr.Code)
	s.reconciliation.AssertNotCalled(s.T(), "FreezeMonth", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestPreviewRequiresMonth() {
	rr := s.do(http.MethodGet, "/api/v1/reports/preview", guestToken, nil)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlersTestSuite) TestGetReportNotFound() {
	s.archive.On("GetReport", mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: report missing", apperrors.ErrNotFound)).Once()

	rr := s.do(http.MethodGet, "/api/v1/reports/missing", guestToken, nil)
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *HandlersTestSuite) TestGetReportByMonth() {
	s.archive.On("GetReportByMonth", mock.Anything, "2024-05").
		Return(&domain.MonthlyReport{ID: "r1", MonthlySummary: domain.MonthlySummary{Month: "2024-05"}}, nil).Once()

	rr := s.do(http.MethodGet, "/api/v1/reports/by-month?month=2024-05", guestToken, nil)
	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), `"r1"`)
}

func (s *HandlersTestSuite) TestUnexpectedErrorIsHidden() {
	s.dashboard.On("Dashboard", mock.Anything).Return(nil, fmt.Errorf("disk on fire")).Once()

	rr := s.do(http.MethodGet, "/api/v1/dashboard", guestToken, nil)
	s.Equal(http.StatusInternalServerError, rr.Code)
	s.NotContains(rr.Body.String(), "disk on fire")
}

func (s *HandlersTestSuite) TestFinancialOverview() {
	s.dashboard.On("FinancialOverview", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(&domain.FinancialOverview{Year: 2024}, nil).Once()

	rr := s.do(http.MethodGet, "/api/v1/financial-overview", guestToken, nil)
	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), `"year":2024`)
}

func (s *HandlersTestSuite) TestRecordDuesPayment() {
	s.fund.On("RecordDuesPayment", mock.Anything, dto.RecordDuesPaymentRequest{Month: "2024-05", MemberID: "m1"}, adminEmail).
		Return(&domain.Transaction{ID: "t9", Category: domain.CategoryMonthlyDues, Type: domain.TransactionIncome}, nil).Once()

	rr := s.do(http.MethodPost, "/api/v1/fund/payments", adminToken, map[string]any{"month": "2024-05", "memberId": "m1"})
	s.Equal(http.StatusCreated, rr.Code)
}

func (s *HandlersTestSuite) TestRemoveAdminEmailPassesActor() {
	s.settings.On("RemoveAdminEmail", mock.Anything, "coach@jcunited.com", adminEmail).
		Return([]string{adminEmail}, nil).Once()
	s.settings.On("GetSettings", mock.Anything).
		Return(&dto.SettingsResponse{AdminEmails: []string{adminEmail}, PasswordMasked: "******"}, nil).Once()

	rr := s.do(http.MethodDelete, "/api/v1/settings/admin-emails/coach@jcunited.com", adminToken, nil)
	s.Equal(http.StatusOK, rr.Code)

	var resp dto.SettingsResponse
	s.decode(rr, &resp)
	s.Equal([]string{adminEmail}, resp.AdminEmails)
}

func (s *HandlersTestSuite) TestRemoveOwnAdminEmail() {
	s.settings.On("RemoveAdminEmail", mock.Anything, adminEmail, adminEmail).
		Return(nil, fmt.Errorf("%w: cannot remove your own email", apperrors.ErrValidation)).Once()

	rr := s.do(http.MethodDelete, "/api/v1/settings/admin-emails/"+adminEmail, adminToken, nil)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlersTestSuite) TestUpdatePasswordTooShort() {
	rr := s.do(http.MethodPut, "/api/v1/settings/password", adminToken, map[string]any{"password": "123"})
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlersTestSuite) TestLoginInvalidCredentials() {
	s.auth.On("Login", mock.Anything, dto.LoginRequest{Mode: domain.RoleAdmin, Email: adminEmail, Password: "nope"}).
		Return(nil, apperrors.ErrInvalidCredentials).Once()

	rr := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"mode": "ADMIN", "email": adminEmail, "password": "nope"})
	s.Equal(http.StatusUnauthorized, rr.Code)

	var resp handlers.ErrorResponse
	s.decode(rr, &resp)
	s.Equal("Email hoặc mật khẩu không đúng", resp.Error)
}

func (s *HandlersTestSuite) TestLoginRequiresMode() {
	rr := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"name": "Khách"})
	s.Equal(http.StatusBadRequest, rr.Code)
	s.auth.AssertNotCalled(s.T(), "Login", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestLoginRateLimited() {
	s.cfg.LoginRateLimit = "1-M"
	s.router = s.newRouter()
	s.auth.On("Login", mock.Anything, mock.Anything).
		Return(&dto.LoginResponse{Token: "tok"}, nil).Once()

	first := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"mode": "GUEST", "name": "Khách"})
	second := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"mode": "GUEST", "name": "Khách"})

	s.Equal(http.StatusOK, first.Code)
	s.Equal(http.StatusTooManyRequests, second.Code)
}

func (s *HandlersTestSuite) TestSessionAndLogout() {
	rr := s.do(http.MethodGet, "/api/v1/auth/session", adminToken, nil)
	s.Equal(http.StatusOK, rr.Code)
	var session dto.SessionResponse
	s.decode(rr, &session)
	s.True(session.User.IsAdmin)

	s.auth.On("Logout", mock.Anything, adminToken).Return(nil).Once()
	rr = s.do(http.MethodPost, "/api/v1/auth/logout", adminToken, nil)
	s.Equal(http.StatusNoContent, rr.Code)
	s.auth.AssertExpectations(s.T())
}
