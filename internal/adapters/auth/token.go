package auth

import (
	"errors"
	"fmt"
	"time"

	"eventattendance/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenIssuer is the iss claim stamped on and required of every token.
const tokenIssuer = "eventattendance"

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// hmacTokens signs and verifies HS256 tokens with a shared secret.
type hmacTokens struct {
	secret []byte
	now    func() time.Time
}

// NewJWTIssuer returns a TokenIssuer signing HS256 JWTs with secret.
func NewJWTIssuer(secret string) domain.TokenIssuer {
	return &hmacTokens{secret: []byte(secret), now: time.Now}
}

// NewJWTVerifier accepts tokens from NewJWTIssuer with the same secret.
func NewJWTVerifier(secret string) domain.TokenVerifier {
	return &hmacTokens{secret: []byte(secret), now: time.Now}
}

func (t *hmacTokens) Issue(userID, email string, expiry time.Duration) (string, error) {
	issued := t.now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(expiry)),
		},
		Email: email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, issuer and expiry and returns the subject.
func (t *hmacTokens) Verify(token string) (string, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if c.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return c.Subject, nil
}
