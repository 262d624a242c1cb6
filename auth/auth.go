package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminSubject = "admin"
	tokenTTL     = 24 * time.Hour
)

var (
	ErrInvalidPassword = errors.New("auth: invalid password")
	ErrInvalidToken    = errors.New("auth: invalid token")
	ErrMissingToken    = errors.New("auth: missing token")
)

// Authenticator issues and verifies admin tokens. A nil *Authenticator accepts
// every request, which is how the service runs when no secret is configured.
type Authenticator struct {
	jwtKey       []byte
	passwordHash []byte
	now          func() time.Time
}

func New(secret, passwordHash string) *Authenticator {
	return &Authenticator{
		jwtKey:       []byte(secret),
		passwordHash: []byte(passwordHash),
		now:          time.Now,
	}
}

func (a *Authenticator) Enabled() bool {
	return a != nil
}

// HashPassword returns the bcrypt hash to configure as ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// IssueToken checks password and returns a signed admin token with its expiry.
func (a *Authenticator) IssueToken(password string) (string, time.Time, error) {
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidPassword
	}

	now := a.now()
	expiresAt := now.Add(tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   adminSubject,
		IssuedAt:  now.Unix(),
		ExpiresAt: expiresAt.Unix(),
		Id:        uuid.New().String(),
	})

	tokenString, err := token.SignedString(a.jwtKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// Verify parses tokenString and checks its signature, expiry and subject.
func (a *Authenticator) Verify(tokenString string) error {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	if !claims.VerifyExpiresAt(a.now().Unix(), true) {
		return ErrInvalidToken
	}
	if claims.Subject != adminSubject {
		return ErrInvalidToken
	}
	return nil
}

// Authorize checks the bearer token on r. It always succeeds when auth is disabled.
func (a *Authenticator) Authorize(r *http.Request) error {
	if !a.Enabled() {
		return nil
	}
	tokenString := extractToken(r)
	if tokenString == "" {
		return ErrMissingToken
	}
	return a.Verify(tokenString)
}

func extractToken(r *http.Request) string {
	tokenString := r.Header.Get("Authorization")
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		return tokenString[7:]
	}
	return ""
}
