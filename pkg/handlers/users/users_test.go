package users_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/regnet/pkg/api"
	"github.com/chris/regnet/pkg/handlers/users"
	"github.com/chris/regnet/pkg/models"
	"github.com/chris/regnet/pkg/registry"
	"github.com/chris/regnet/pkg/registry/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var alice = &models.User{
	DocType:     models.DocTypeUser,
	Name:        "Alice",
	Email:       "a@x.com",
	Phone:       "555-0100",
	SSN:         "111-22-3333",
	UpgradCoins: 500,
	CreatedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
}

func TestRequestNewUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRegistry := new(mocks.Registry)
		mockRegistry.On("RequestNewUser", mock.Anything, "Alice", "a@x.com", "555-0100", "111-22-3333").
			Return(&models.UserRequest{DocType: models.DocTypeRequest, RequestType: models.RequestTypeUser, Name: "Alice"}, nil)

		h := users.NewUsersHandler(mockRegistry)

		body, _ := json.Marshal(api.NewUserRequest{Name: "Alice", Email: "a@x.com", Phone: "555-0100", Ssn: "111-22-3333"})
		req := httptest.NewRequest(http.MethodPost, "/users/requests", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.RequestNewUser(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got api.UserRequest
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "user", got.RequestType)
		mockRegistry.AssertExpectations(t)
	})

	t.Run("Bad Body", func(t *testing.T) {
		mockRegistry := new(mocks.Registry)
		h := users.NewUsersHandler(mockRegistry)

		req := httptest.NewRequest(http.MethodPost, "/users/requests", bytes.NewReader([]byte("{")))
		rr := httptest.NewRecorder()

		h.RequestNewUser(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockRegistry.AssertNotCalled(t, "RequestNewUser")
	})
}

func TestApproveNewUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRegistry := new(mocks.Registry)
		mockRegistry.On("ApproveNewUser", mock.Anything, "Alice", "111-22-3333").Return(alice, nil)

		h := users.NewUsersHandler(mockRegistry)
		rr := httptest.NewRecorder()
		h.ApproveNewUser(rr, httptest.NewRequest(http.MethodPost, "/users/Alice/111-22-3333/approve", nil), "Alice", "111-22-3333")

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockRegistry.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRegistry := new(mocks.Registry)
		mockRegistry.On("ApproveNewUser", mock.Anything, "Bob", "222").
			Return(nil, fmt.Errorf("%w: no matching request found", registry.ErrNotFound))

		h := users.NewUsersHandler(mockRegistry)
		rr := httptest.NewRecorder()
		h.ApproveNewUser(rr, httptest.NewRequest(http.MethodPost, "/users/Bob/222/approve", nil), "Bob", "222")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var got api.Error
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "not found: no matching request found", got.Error)
	})
}

func TestViewUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRegistry := new(mocks.Registry)
		mockRegistry.On("ViewUser", mock.Anything, "Alice", "111-22-3333").Return(alice, nil)

		h := users.NewUsersHandler(mockRegistry)
		rr := httptest.NewRecorder()
		h.ViewUser(rr, httptest.NewRequest(http.MethodGet, "/users/Alice/111-22-3333", nil), "Alice", "111-22-3333")

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.User
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, int64(500), got.UpgradCoins)
		assert.Equal(t, "2024-03-01T12:00:00Z", got.CreatedAt)
	})

	t.Run("Data Corruption", func(t *testing.T) {
		mockRegistry := new(mocks.Registry)
		mockRegistry.On("ViewUser", mock.Anything, "Alice", "111").
			Return(nil, fmt.Errorf("%w: bad json", registry.ErrDataCorruption))

		h := users.NewUsersHandler(mockRegistry)
		rr := httptest.NewRecorder()
		h.ViewUser(rr, httptest.NewRequest(http.MethodGet, "/users/Alice/111", nil), "Alice", "111")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestRechargeAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRegistry := new(mocks.Registry)
		mockRegistry.On("RechargeAccount", mock.Anything, "Alice", "111-22-3333", "upg500").Return(alice, nil)

		h := users.NewUsersHandler(mockRegistry)
		body, _ := json.Marshal(api.Recharge{BankTxId: "upg500"})
		rr := httptest.NewRecorder()
		h.RechargeAccount(rr, httptest.NewRequest(http.MethodPost, "/users/Alice/111-22-3333/recharge", bytes.NewReader(body)), "Alice", "111-22-3333")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockRegistry.AssertExpectations(t)
	})

	t.Run("Invalid Code", func(t *testing.T) {
		mockRegistry := new(mocks.Registry)
		mockRegistry.On("RechargeAccount", mock.Anything, "Alice", "111", "upg7").
			Return(nil, fmt.Errorf("%w: invalid bank transaction ID %q", registry.ErrInvalidTransaction, "upg7"))

		h := users.NewUsersHandler(mockRegistry)
		body, _ := json.Marshal(api.Recharge{BankTxId: "upg7"})
		rr := httptest.NewRecorder()
		h.RechargeAccount(rr, httptest.NewRequest(http.MethodPost, "/users/Alice/111/recharge", bytes.NewReader(body)), "Alice", "111")

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}
