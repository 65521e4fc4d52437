package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/hisab_manager/internal/apperrors"
	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/core/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/SscSPs/hisab_manager/internal/handlers"
	"github.com/SscSPs/hisab_manager/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// closeNotifyingRecorder lets gin's Stream run against a recorder.
type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyingRecorder() *closeNotifyingRecorder {
	return &closeNotifyingRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool {
	return r.closed
}

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	jwtSecret   string
	ownerID     string
	txService   *MockTransactionService
	debtService *MockDebtService
	goalService *MockGoalService
	accService  *MockAccountRecordService
	viewService *MockViewService
	hub         *services.ChangeHub
}

// generateTestToken creates a dummy JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "hisab-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.ownerID = uuid.NewString()

	suite.txService = new(MockTransactionService)
	suite.debtService = new(MockDebtService)
	suite.goalService = new(MockGoalService)
	suite.accService = new(MockAccountRecordService)
	suite.viewService = new(MockViewService)
	suite.hub = services.NewChangeHub(4)

	cfg := &config.Config{
		IsProduction:       true,
		JWTSecret:          suite.jwtSecret,
		RateLimit:          "1000-M",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}
	container := &portssvc.ServiceContainer{
		Transaction:   suite.txService,
		Debt:          suite.debtService,
		Goal:          suite.goalService,
		AccountRecord: suite.accService,
		View:          suite.viewService,
		Changes:       suite.hub,
	}
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, container, nil))
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.ownerID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorOf(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestCORSPreflight() {
	req, _ := http.NewRequest(http.MethodOptions, "/api/v1/transactions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Equal("http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *HandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/debts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.debtService.AssertNotCalled(suite.T(), "ListDebts", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateTransaction_WithLink() {
	paid := domain.Debt{ID: "debt-1", Name: "Ravi", Type: domain.Given, Total: decimal.NewFromInt(1000), Paid: decimal.NewFromInt(400)}
	saved := &domain.Transaction{ID: "tx-1", Date: "2025-12-01", Type: domain.Income, Amount: decimal.NewFromInt(400), Account: "UPI", LinkedID: "debt-1"}
	link := &domain.LinkUpdate{Collection: domain.CollectionDebts, ID: "debt-1", Debt: &paid}

	suite.txService.On("SaveTransaction", mock.Anything, suite.ownerID, mock.MatchedBy(func(req dto.SaveTransactionRequest) bool {
		return req.ID == "" && req.LinkedID == "debt-1" && req.Amount.Equal(decimal.NewFromInt(400))
	})).Return(saved, link, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"date":     "2025-12-01",
		"type":     "Income",
		"amount":   "400",
		"account":  "UPI",
		"linkedId": "debt-1",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SaveTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("tx-1", resp.Transaction.ID)
	suite.Require().NotNil(resp.LinkUpdate)
	suite.Equal(domain.CollectionDebts, resp.LinkUpdate.Collection)
	suite.True(resp.LinkUpdate.Debt.Paid.Equal(decimal.NewFromInt(400)))
	suite.txService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpdateTransaction_UsesPathID() {
	saved := &domain.Transaction{ID: "tx-9", Date: "2025-12-01", Type: domain.Expense, Account: "Cash"}
	suite.txService.On("SaveTransaction", mock.Anything, suite.ownerID, mock.MatchedBy(func(req dto.SaveTransactionRequest) bool {
		return req.ID == "tx-9"
	})).Return(saved, nil, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/transactions/tx-9", map[string]any{
		"id":      "ignored",
		"date":    "2025-12-01",
		"type":    "Expense",
		"amount":  12.5,
		"account": "Cash",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), "linkUpdate")
	suite.txService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateTransaction_BindingFailures() {
	cases := map[string]map[string]any{
		"missing date":                 {"type": "Expense", "account": "Cash"},
		"bad date":                     {"date": "2025-13-01", "type": "Expense", "account": "Cash"},
		"unknown type":                 {"date": "2025-12-01", "type": "Gift", "account": "Cash"},
		"missing account":              {"date": "2025-12-01", "type": "Expense"},
		"transfer without destination": {"date": "2025-12-01", "type": "Balance_Transfer", "account": "Bank"},
	}
	for name, body := range cases {
		w := suite.do(http.MethodPost, "/api/v1/transactions", body)
		suite.Equal(http.StatusBadRequest, w.Code, name)
	}
	suite.txService.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateTransaction_ServiceErrors() {
	suite.txService.On("SaveTransaction", mock.Anything, suite.ownerID, mock.Anything).
		Return(nil, nil, apperrors.NewValidationFailedError("bad amount")).Once()
	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]any{"date": "2025-12-01", "type": "Expense", "account": "Cash"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorOf(w), "bad amount")

	suite.txService.On("SaveTransaction", mock.Anything, suite.ownerID, mock.Anything).
		Return(nil, nil, errors.New("connection refused")).Once()
	w = suite.do(http.MethodPost, "/api/v1/transactions", map[string]any{"date": "2025-12-01", "type": "Expense", "account": "Cash"})
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to save transaction", suite.errorOf(w))
}

func (suite *HandlerTestSuite) TestListTransactions_PassesFilters() {
	txs := []domain.Transaction{{ID: "tx-2"}, {ID: "tx-1"}}
	suite.viewService.On("FilteredTransactions", mock.Anything, suite.ownerID, "rent", "All").Return(txs, nil).Once()
	suite.viewService.On("FilteredTransactions", mock.Anything, suite.ownerID, "", "Income").Return([]domain.Transaction{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?q=rent", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 2)

	w = suite.do(http.MethodGet, "/api/v1/transactions?type=Income", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.viewService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetAndDeleteTransaction() {
	suite.txService.On("GetTransaction", mock.Anything, suite.ownerID, "missing").Return(nil, apperrors.ErrNotFound).Once()
	suite.txService.On("DeleteTransaction", mock.Anything, suite.ownerID, "tx-1").Return(nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("transaction not found", suite.errorOf(w))

	w = suite.do(http.MethodDelete, "/api/v1/transactions/tx-1", nil)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.txService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDebtRoutes() {
	debt := &domain.Debt{ID: "debt-1", Name: "Ravi", Type: domain.Taken, Total: decimal.NewFromInt(2000), DueDate: "2026-02-01"}
	suite.debtService.On("SaveDebt", mock.Anything, suite.ownerID, mock.MatchedBy(func(req dto.SaveDebtRequest) bool {
		return req.Name == "Ravi" && req.Total.Equal(decimal.NewFromInt(2000))
	})).Return(debt, nil).Once()
	suite.debtService.On("ListDebts", mock.Anything, suite.ownerID).Return([]domain.Debt{*debt}, nil).Once()
	suite.debtService.On("DeleteDebt", mock.Anything, suite.ownerID, "debt-1").Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPost, "/api/v1/debts", map[string]any{"name": "Ravi", "type": "Taken", "total": 2000, "dueDate": "2026-02-01"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/debts", map[string]any{"name": "Ravi", "type": "Taken", "dueDate": "soon"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/debts", nil)
	suite.Equal(http.StatusOK, w.Code)
	var list dto.ListDebtsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Require().Len(list.Debts, 1)
	suite.Equal("Ravi", list.Debts[0].Name)

	w = suite.do(http.MethodDelete, "/api/v1/debts/debt-1", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.debtService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGoalAndAccountRoutes() {
	goal := &domain.Goal{ID: "goal-1", Name: "Bike", Target: decimal.NewFromInt(60000)}
	suite.goalService.On("SaveGoal", mock.Anything, suite.ownerID, mock.MatchedBy(func(req dto.SaveGoalRequest) bool {
		return req.ID == "goal-1"
	})).Return(goal, nil).Once()
	suite.accService.On("GetAccountRecord", mock.Anything, suite.ownerID, "acc-1").
		Return(&domain.AccountRecord{ID: "acc-1", Name: "HDFC", Balance: decimal.NewFromInt(500)}, nil).Once()
	suite.accService.On("SaveAccountRecord", mock.Anything, suite.ownerID, mock.Anything).
		Return(nil, apperrors.NewConflictError("account exists")).Once()

	w := suite.do(http.MethodPut, "/api/v1/goals/goal-1", map[string]any{"name": "Bike", "target": "60000"})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/accounts/acc-1", nil)
	suite.Equal(http.StatusOK, w.Code)
	var record domain.AccountRecord
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &record))
	suite.Equal("HDFC", record.Name)

	w = suite.do(http.MethodPost, "/api/v1/accounts", map[string]any{"name": "HDFC"})
	suite.Equal(http.StatusConflict, w.Code)

	suite.goalService.AssertExpectations(suite.T())
	suite.accService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestViewRoutes() {
	totals := &domain.Totals{NetBalance: decimal.NewFromInt(58000), TotalReceivable: decimal.NewFromInt(2000)}
	suite.viewService.On("Totals", mock.Anything, suite.ownerID).Return(totals, nil).Once()
	suite.viewService.On("NameLedgers", mock.Anything, suite.ownerID).Return([]domain.NameLedger{{Key: "ravi", Name: "Ravi"}}, nil).Once()
	suite.viewService.On("GoalReport", mock.Anything, suite.ownerID).Return(nil, errors.New("timeout")).Once()
	suite.viewService.On("Dashboard", mock.Anything, suite.ownerID, "fuel", "Expense").Return(&domain.Dashboard{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/views/totals", nil)
	suite.Equal(http.StatusOK, w.Code)
	var gotTotals domain.Totals
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &gotTotals))
	suite.True(gotTotals.NetBalance.Equal(decimal.NewFromInt(58000)))

	w = suite.do(http.MethodGet, "/api/v1/views/ledgers", nil)
	suite.Equal(http.StatusOK, w.Code)
	var ledgers dto.NameLedgersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &ledgers))
	suite.Require().Len(ledgers.NameLedgers, 1)
	suite.Equal("ravi", ledgers.NameLedgers[0].Key)

	w = suite.do(http.MethodGet, "/api/v1/views/goals", nil)
	suite.Equal(http.StatusInternalServerError, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/views/dashboard?q=fuel&type=Expense", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.viewService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestMeta() {
	suite.viewService.On("KnownAccounts", mock.Anything, suite.ownerID).Return([]string{"Bank", "Cash", "HDFC"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/meta", nil)

	suite.Equal(http.StatusOK, w.Code)
	var meta dto.MetaResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &meta))
	suite.Equal(domain.EntryTypes, meta.EntryTypes)
	suite.Equal(domain.DebtTypes, meta.DebtTypes)
	suite.Equal([]string{"Bank", "Cash", "HDFC"}, meta.Accounts)
	suite.NotEmpty(meta.Categories)
}

func (suite *HandlerTestSuite) TestStreamDashboard_PushesOnChange() {
	var calls atomic.Int32
	suite.viewService.On("Dashboard", mock.Anything, suite.ownerID, "", "All").
		Run(func(mock.Arguments) { calls.Add(1) }).
		Return(&domain.Dashboard{Totals: domain.Totals{NetBalance: decimal.NewFromInt(10)}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/api/v1/views/stream", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.ownerID))
	w := newCloseNotifyingRecorder()

	done := make(chan struct{})
	go func() {
		suite.router.ServeHTTP(w, req)
		close(done)
	}()

	suite.Eventually(func() bool { return calls.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	suite.Equal(1, suite.hub.Subscribers(suite.ownerID))

	// an event of another owner is not delivered
	suite.hub.Publish(domain.ChangeEvent{OwnerID: "someone-else", Collection: domain.CollectionDebts})
	suite.hub.Publish(domain.ChangeEvent{OwnerID: suite.ownerID, Collection: domain.CollectionDebts, RecordID: "debt-1"})
	suite.Eventually(func() bool { return calls.Load() == 2 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		suite.FailNow("stream did not stop after the request was cancelled")
	}

	body := w.Body.String()
	suite.Equal(2, strings.Count(body, "event:dashboard"))
	suite.Equal(int32(2), calls.Load())
	suite.Equal(0, suite.hub.Subscribers(suite.ownerID))
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
