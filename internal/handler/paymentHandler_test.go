package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mbg-project/internal/handler/mocks"
	"mbg-project/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("payment found", func(t *testing.T) {
		mockService := mocks.NewPaymentProvider(t)
		expected := models.Payment{ID: "PAY001", CustomerID: "C1", Total: 15000}

		mockService.On("GetPayment", mock.Anything, "PAY001").Return(expected, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("GET", "/", nil)
		c.Params = []gin.Param{{Key: "id", Value: "PAY001"}}

		h := NewPaymentHandler(mockService)
		h.GetPayment(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var actual models.Payment
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &actual))
		assert.Equal(t, expected.ID, actual.ID)
		assert.Equal(t, expected.Total, actual.Total)
	})

	t.Run("payment not found", func(t *testing.T) {
		mockService := mocks.NewPaymentProvider(t)

		mockService.On("GetPayment", mock.Anything, "unknown").Return(models.Payment{}, errors.New("not found"))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("GET", "/", nil)
		c.Params = []gin.Param{{Key: "id", Value: "unknown"}}

		h := NewPaymentHandler(mockService)
		h.GetPayment(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("empty id", func(t *testing.T) {
		mockService := mocks.NewPaymentProvider(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("GET", "/", nil)
		c.Params = []gin.Param{{Key: "id", Value: ""}}

		h := NewPaymentHandler(mockService)
		h.GetPayment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetPayment")
	})
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	payload := models.Payment{
		CustomerID: "C1",
		Items: []models.LineItem{
			{ProductID: "A", Name: "Kopi Susu", Price: 5000, Quantity: 3, Subtotal: 15000},
		},
		Total: 15000,
	}

	t.Run("payment created", func(t *testing.T) {
		mockService := mocks.NewPaymentProvider(t)

		created := payload
		created.ID = "PAY001"
		mockService.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p models.Payment) bool {
			return p.CustomerID == "C1" && p.Total == 15000
		})).Return(created, nil)

		body, _ := json.Marshal(payload)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("POST", "/pembayaran", bytes.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h := NewPaymentHandler(mockService)
		h.CreatePayment(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var actual models.Payment
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &actual))
		assert.Equal(t, "PAY001", actual.ID)
	})

	t.Run("malformed body", func(t *testing.T) {
		mockService := mocks.NewPaymentProvider(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("POST", "/pembayaran", bytes.NewReader([]byte("{not json")))

		h := NewPaymentHandler(mockService)
		h.CreatePayment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreatePayment")
	})

	t.Run("drifted total maps to 400", func(t *testing.T) {
		mockService := mocks.NewPaymentProvider(t)

		mockService.On("CreatePayment", mock.Anything, mock.Anything).
			Return(models.Payment{}, fmt.Errorf("pembayaran validation failed: %w", models.ErrPaymentBadTotal))

		bad := payload
		bad.Total = 99999
		body, _ := json.Marshal(bad)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("POST", "/pembayaran", bytes.NewReader(body))

		h := NewPaymentHandler(mockService)
		h.CreatePayment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		mockService := mocks.NewPaymentProvider(t)

		mockService.On("CreatePayment", mock.Anything, mock.Anything).
			Return(models.Payment{}, errors.New("db down"))

		body, _ := json.Marshal(payload)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("POST", "/pembayaran", bytes.NewReader(body))

		h := NewPaymentHandler(mockService)
		h.CreatePayment(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty list serializes as [] not null", func(t *testing.T) {
		mockService := mocks.NewPaymentProvider(t)
		mockService.On("ListPayments", mock.Anything).Return(nil, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("GET", "/pembayaran", nil)

		h := NewPaymentHandler(mockService)
		h.ListPayments(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestPaymentHandler_DeletePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("payment deleted", func(t *testing.T) {
		mockService := mocks.NewPaymentProvider(t)
		mockService.On("DeletePayment", mock.Anything, "PAY001").Return(nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("DELETE", "/", nil)
		c.Params = []gin.Param{{Key: "id", Value: "PAY001"}}

		h := NewPaymentHandler(mockService)
		h.DeletePayment(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown payment maps to 404", func(t *testing.T) {
		mockService := mocks.NewPaymentProvider(t)
		mockService.On("DeletePayment", mock.Anything, "unknown").
			Return(fmt.Errorf("deleting pembayaran: %w", sql.ErrNoRows))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("DELETE", "/", nil)
		c.Params = []gin.Param{{Key: "id", Value: "unknown"}}

		h := NewPaymentHandler(mockService)
		h.DeletePayment(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
