package scope

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const issuer = "student-productivity"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("jwt secret is required")
)

// Payload is the claim set carried by access tokens.
type Payload struct {
	jwt.StandardClaims
	UserID   string `json:"uid"`
	Username string `json:"username"`
}

// Manager issues and verifies access tokens.
type Manager interface {
	CreateToken(userID, username string) (string, time.Time, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New creates an HS256 Manager.
func New(secret string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &implManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *implManager) CreateToken(userID, username string) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	claims := Payload{
		StandardClaims: jwt.StandardClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  now.Unix(),
			ExpiresAt: exp.Unix(),
		},
		UserID:   userID,
		Username: username,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, exp, nil
}

func (m *implManager) Verify(token string) (Payload, error) {
	var p Payload
	parsed, err := jwt.ParseWithClaims(token, &p, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Payload{}, ErrInvalidToken
	}
	if p.UserID == "" || p.Issuer != issuer {
		return Payload{}, ErrInvalidToken
	}
	return p, nil
}

type payloadCtxKey struct{}

// SetPayloadToContext stores p in ctx.
func SetPayloadToContext(ctx context.Context, p Payload) context.Context {
	return context.WithValue(ctx, payloadCtxKey{}, p)
}

// GetPayloadFromContext returns the payload stored by SetPayloadToContext.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadCtxKey{}).(Payload)
	return p, ok
}
