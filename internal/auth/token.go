package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims carries the signed session payload: the account id plus the
// registered expiry claim.
type Claims struct {
	jwt.RegisteredClaims
	AccountID int64 `json:"account_id"`
}

// Issuer signs and verifies session tokens with a process-wide secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer returns an Issuer. The secret must be non-empty; config enforces
// this before the process starts serving.
func NewIssuer(secret []byte, ttl time.Duration) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("token secret is empty")
	}
	if ttl <= 0 {
		ttl = 10 * time.Hour
	}
	return &Issuer{secret: secret, ttl: ttl}, nil
}

// TTL returns the token validity duration; the session cookie max-age uses
// the same value so cookie and token expire together.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue signs a token for the given account id, expiring TTL from now.
func (i *Issuer) Issue(accountID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
		},
		AccountID: accountID,
	})
	return token.SignedString(i.secret)
}

// Parse verifies the token signature and expiry and returns the account id.
func (i *Issuer) Parse(tokenString string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}
	return claims.AccountID, nil
}
