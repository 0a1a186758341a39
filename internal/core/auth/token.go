package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/thingful/thingful-api/internal/core/domain"
)

const defaultTokenTTL = 3 * time.Hour

// Claims bind the token subject (the user_name at issue time) to the
// account's numeric id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// TokenCodec issues and verifies HMAC-signed, time-bound bearer tokens. The
// signing secret is read-only after construction.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding subject and userID, expiring after the codec's TTL.
func (c *TokenCodec) Issue(subject string, userID int64) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.ttl)),
		},
		UserID: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify recomputes the signature with the current secret and returns the
// embedded principal. Tokens declaring any algorithm other than HS256 are
// rejected as having an invalid signature, closing the algorithm
// substitution hole.
func (c *TokenCodec) Verify(token string) (domain.Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Principal{}, domain.ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Principal{}, domain.ErrInvalidSignature
		default:
			return domain.Principal{}, domain.ErrMalformedToken
		}
	}
	if !parsed.Valid {
		return domain.Principal{}, domain.ErrInvalidSignature
	}

	return domain.Principal{Subject: claims.Subject, UserID: claims.UserID}, nil
}
