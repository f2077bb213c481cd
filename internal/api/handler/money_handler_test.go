package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wishfund-ledger/internal/domain/money"
	"github.com/wishfund-ledger/internal/ledger"
)

func TestMoneyHandler_List(t *testing.T) {
	mockService := new(MockLedgerService)
	handler := NewMoneyHandler(testLogger(), mockService)

	entries := []*money.Entry{
		{ID: uuid.New(), Type: money.TypeIncome, Amount: 1000, Category: "salary", Date: time.Now()},
	}
	expectedQuery := ledger.HistoryQuery{
		Search: "sal",
		Type:   money.TypeIncome,
		Sort:   ledger.SortNewest,
	}
	mockService.On("ListMoneyEntries", mock.Anything, expectedQuery).Return(entries).Once()

	router := setupTestRouter()
	router.GET("/api/money-entries", handler.List)

	req, _ := http.NewRequest(http.MethodGet, "/api/money-entries?search=sal&type=income&sort=newest", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body []MoneyEntryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "income", body[0].Type)
	mockService.AssertExpectations(t)
}

func TestMoneyHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockLedgerService)
		handler := NewMoneyHandler(testLogger(), mockService)

		expected := &money.Entry{
			ID:     uuid.New(),
			Type:   money.TypeIncome,
			Amount: 1000,
			Date:   time.Now(),
		}
		mockService.On("AddMoneyEntry", mock.Anything, money.TypeIncome, float64(1000), "salary", "", time.Time{}).Return(expected, nil).Once()

		router := setupTestRouter()
		router.POST("/api/money-entries", handler.Create)

		jsonBody, _ := json.Marshal(MoneyEntryRequest{Type: "income", Amount: 1000, Category: "salary"})
		req, _ := http.NewRequest(http.MethodPost, "/api/money-entries", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var body MoneyEntryResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, expected.ID.String(), body.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("SuppliedDate", func(t *testing.T) {
		mockService := new(MockLedgerService)
		handler := NewMoneyHandler(testLogger(), mockService)

		date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		expected := &money.Entry{ID: uuid.New(), Type: money.TypeExpense, Amount: 50, Date: date}
		mockService.On("AddMoneyEntry", mock.Anything, money.TypeExpense, float64(50), "", "", date).Return(expected, nil).Once()

		router := setupTestRouter()
		router.POST("/api/money-entries", handler.Create)

		jsonBody, _ := json.Marshal(MoneyEntryRequest{Type: "expense", Amount: 50, Date: "2024-06-01"})
		req, _ := http.NewRequest(http.MethodPost, "/api/money-entries", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidDate", func(t *testing.T) {
		mockService := new(MockLedgerService)
		handler := NewMoneyHandler(testLogger(), mockService)

		router := setupTestRouter()
		router.POST("/api/money-entries", handler.Create)

		jsonBody, _ := json.Marshal(MoneyEntryRequest{Type: "expense", Amount: 50, Date: "June 1st"})
		req, _ := http.NewRequest(http.MethodPost, "/api/money-entries", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		mockService := new(MockLedgerService)
		handler := NewMoneyHandler(testLogger(), mockService)

		mockService.On("AddMoneyEntry", mock.Anything, money.TypeExpense, float64(800), "", "", time.Time{}).
			Return(nil, money.ErrInsufficientFunds{Available: 700, Requested: 800}).Once()

		router := setupTestRouter()
		router.POST("/api/money-entries", handler.Create)

		jsonBody, _ := json.Marshal(MoneyEntryRequest{Type: "expense", Amount: 800})
		req, _ := http.NewRequest(http.MethodPost, "/api/money-entries", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Insufficient funds", body["error"])
		assert.Equal(t, float64(700), body["available"])
		assert.Equal(t, float64(800), body["requested"])
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidType", func(t *testing.T) {
		mockService := new(MockLedgerService)
		handler := NewMoneyHandler(testLogger(), mockService)

		mockService.On("AddMoneyEntry", mock.Anything, money.EntryType("transfer"), float64(10), "", "", time.Time{}).
			Return(nil, money.ErrInvalidType).Once()

		router := setupTestRouter()
		router.POST("/api/money-entries", handler.Create)

		jsonBody, _ := json.Marshal(MoneyEntryRequest{Type: "transfer", Amount: 10})
		req, _ := http.NewRequest(http.MethodPost, "/api/money-entries", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestMoneyHandler_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockLedgerService)
		handler := NewMoneyHandler(testLogger(), mockService)

		id := uuid.New()
		expected := &money.Entry{ID: id, Type: money.TypeExpense, Amount: 250, Date: time.Now()}
		mockService.On("UpdateMoneyEntry", mock.Anything, id, money.TypeExpense, float64(250), "food", "").Return(expected, nil).Once()

		router := setupTestRouter()
		router.PUT("/api/money-entries/:id", handler.Update)

		jsonBody, _ := json.Marshal(MoneyEntryRequest{Type: "expense", Amount: 250, Category: "food"})
		req, _ := http.NewRequest(http.MethodPut, "/api/money-entries/"+id.String(), bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockLedgerService)
		handler := NewMoneyHandler(testLogger(), mockService)

		id := uuid.New()
		mockService.On("UpdateMoneyEntry", mock.Anything, id, money.TypeExpense, float64(250), "", "").
			Return(nil, money.ErrEntryNotFound{ID: id}).Once()

		router := setupTestRouter()
		router.PUT("/api/money-entries/:id", handler.Update)

		jsonBody, _ := json.Marshal(MoneyEntryRequest{Type: "expense", Amount: 250})
		req, _ := http.NewRequest(http.MethodPut, "/api/money-entries/"+id.String(), bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Entry not found", body["error"])
		mockService.AssertExpectations(t)
	})
}

func TestMoneyHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockLedgerService)
		handler := NewMoneyHandler(testLogger(), mockService)

		id := uuid.New()
		mockService.On("DeleteMoneyEntry", mock.Anything, id).Return(nil).Once()

		router := setupTestRouter()
		router.DELETE("/api/money-entries/:id", handler.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/api/money-entries/"+id.String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockLedgerService)
		handler := NewMoneyHandler(testLogger(), mockService)

		id := uuid.New()
		mockService.On("DeleteMoneyEntry", mock.Anything, id).Return(money.ErrEntryNotFound{ID: id}).Once()

		router := setupTestRouter()
		router.DELETE("/api/money-entries/:id", handler.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/api/money-entries/"+id.String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}
