package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	"github.com/SscSPs/hisab_manager/internal/core/services"
	"github.com/SscSPs/hisab_manager/internal/dto"
	"github.com/SscSPs/hisab_manager/internal/handlers"
	"github.com/SscSPs/hisab_manager/internal/platform/config"
	"github.com/SscSPs/hisab_manager/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAPI_MemoryStore runs the whole request path against the in-memory store.
func TestAPI_MemoryStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		IsProduction:        true,
		JWTSecret:           "memory-store-secret",
		JWTIssuer:           "hisab",
		RateLimit:           "1000-M",
		LedgerImplicitMatch: true,
	}
	router := gin.New()
	require.NoError(t, handlers.RegisterRoutes(router, cfg, services.NewServiceContainer(cfg, memory.NewRepositoryProvider()), nil))

	tokenFor := func(subject string) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Issuer:    "hisab",
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := token.SignedString([]byte(cfg.JWTSecret))
		require.NoError(t, err)
		return signed
	}

	call := func(owner, method, url string, body any, out any) int {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req, _ := http.NewRequest(method, url, &buf)
		req.Header.Set("Authorization", "Bearer "+tokenFor(owner))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if out != nil && w.Code < 300 {
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
		}
		return w.Code
	}

	var debt domain.Debt
	require.Equal(t, http.StatusCreated, call("alice", http.MethodPost, "/api/v1/debts",
		map[string]any{"name": "Ravi", "type": "Given", "total": "5000"}, &debt))

	var goal domain.Goal
	require.Equal(t, http.StatusCreated, call("alice", http.MethodPost, "/api/v1/goals",
		map[string]any{"name": "Bike", "target": 60000, "targetDate": "2030-01-01"}, &goal))

	var repayment dto.SaveTransactionResponse
	require.Equal(t, http.StatusCreated, call("alice", http.MethodPost, "/api/v1/transactions",
		map[string]any{"date": "2025-12-01", "type": "Income", "amount": "1500", "account": "UPI", "subcategory": "Ravi", "linkedId": debt.ID}, &repayment))
	require.NotNil(t, repayment.LinkUpdate)
	assert.Equal(t, "1500", repayment.LinkUpdate.Debt.Paid.String())

	var deposit dto.SaveTransactionResponse
	require.Equal(t, http.StatusCreated, call("alice", http.MethodPost, "/api/v1/transactions",
		map[string]any{"date": "2025-12-02", "type": "Goal_Deposit", "amount": 2000, "account": "Bank", "linkedId": goal.ID}, &deposit))
	require.NotNil(t, deposit.LinkUpdate)
	assert.Equal(t, domain.CollectionGoals, deposit.LinkUpdate.Collection)

	var totals domain.Totals
	require.Equal(t, http.StatusOK, call("alice", http.MethodGet, "/api/v1/views/totals", nil, &totals))
	assert.Equal(t, "-500", totals.NetBalance.String())
	assert.Equal(t, "3500", totals.TotalReceivable.String())

	var ledgers dto.NameLedgersResponse
	require.Equal(t, http.StatusOK, call("alice", http.MethodGet, "/api/v1/views/ledgers", nil, &ledgers))
	require.Len(t, ledgers.NameLedgers, 1)
	assert.Len(t, ledgers.NameLedgers[0].LinkedTransactions, 1)

	var report dto.GoalReportResponse
	require.Equal(t, http.StatusOK, call("alice", http.MethodGet, "/api/v1/views/goals", nil, &report))
	require.Len(t, report.Goals, 1)
	assert.Equal(t, "2000", report.Goals[0].Current.String())
	assert.Len(t, report.Goals[0].History, 1)

	// records are scoped to the token subject
	var bobDebts dto.ListDebtsResponse
	require.Equal(t, http.StatusOK, call("bob", http.MethodGet, "/api/v1/debts", nil, &bobDebts))
	assert.Empty(t, bobDebts.Debts)
	assert.Equal(t, http.StatusNotFound, call("bob", http.MethodGet, "/api/v1/debts/"+debt.ID, nil, nil))

	// deleting the transaction keeps the amount on the debt
	assert.Equal(t, http.StatusNoContent, call("alice", http.MethodDelete, "/api/v1/transactions/"+repayment.Transaction.ID, nil, nil))
	var stored domain.Debt
	require.Equal(t, http.StatusOK, call("alice", http.MethodGet, "/api/v1/debts/"+debt.ID, nil, &stored))
	assert.Equal(t, "1500", stored.Paid.String())
}
