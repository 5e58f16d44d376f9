package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func echoCaller() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ledger.CallerFrom(r.Context()))
	})
}

func TestIdentity(t *testing.T) {
	h := middleware.Identity(secret)(echoCaller())

	t.Run("Success", func(t *testing.T) {
		token, err := middleware.SignToken(secret, ledger.Identity{ID: "registrar", MSPID: "RegistrarMSP"}, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var id ledger.Identity
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &id))
		assert.Equal(t, ledger.Identity{ID: "registrar", MSPID: "RegistrarMSP"}, id)
	})

	t.Run("No Token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		var id ledger.Identity
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &id))
		assert.Equal(t, ledger.Anonymous, id)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := middleware.SignToken("other", ledger.Identity{ID: "x"}, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := middleware.SignToken(secret, ledger.Identity{ID: "x"}, -time.Minute)
		require.NoError(t, err)

		_, err = middleware.ParseToken(secret, token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Not Bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Wrong Algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "x"}).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = middleware.ParseToken(secret, token)
		assert.Error(t, err)
	})
}

func TestNewStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := middleware.NewStructuredLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/properties/P1", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "request rejected", entry["msg"])
	assert.Equal(t, float64(404), entry["response"].(map[string]interface{})["status"])
}
