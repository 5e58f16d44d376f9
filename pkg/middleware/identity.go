package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/chris/regnet/pkg/api"
	"github.com/chris/regnet/pkg/ledger"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims understood by the API. The subject is the
// caller ID.
type Claims struct {
	MSPID string `json:"msp,omitempty"`
	jwt.RegisteredClaims
}

// Identity reads an HS256 bearer token and stores the caller identity in
// the request context. Requests without a token proceed as ledger.Anonymous;
// a token that is present but invalid is rejected with 401.
func Identity(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasPrefix(auth, "Bearer ") {
				api.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			id, err := ParseToken(secret, strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ledger.WithCaller(r.Context(), id)))
		}
		return http.HandlerFunc(fn)
	}
}

// ParseToken validates raw and returns the identity it carries.
func ParseToken(secret, raw string) (ledger.Identity, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ledger.Identity{}, err
	}
	if claims.Subject == "" {
		return ledger.Identity{}, errors.New("token has no subject")
	}
	return ledger.Identity{ID: claims.Subject, MSPID: claims.MSPID}, nil
}

// SignToken issues an HS256 token for id valid for ttl.
func SignToken(secret string, id ledger.Identity, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		MSPID: id.MSPID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
