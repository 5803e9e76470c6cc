package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	DefaultTokenTTL = time.Hour
	tokenIssuer     = "estate_envision"
)

// ErrMissingSecret means the signing secret is not configured. It is fatal at startup.
var ErrMissingSecret = errors.New("JWT_SECRET is not set")

// Identity is the subject carried inside an access token.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.StandardClaims
}

// TokenService issues and verifies HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func (s *TokenService) Issue(subject Identity) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}
	now := time.Now()
	claims := &Claims{
		UserID: subject.UserID,
		Email:  subject.Email,
		StandardClaims: jwt.StandardClaims{
			Subject:   subject.UserID,
			ExpiresAt: now.Add(s.ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the token's identity, or nil when the token is malformed,
// forged or expired. Callers treat nil as "not authenticated".
func (s *TokenService) Verify(tokenStr string) *Identity {
	if tokenStr == "" || len(s.secret) == 0 {
		return nil
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return nil
	}
	return &Identity{UserID: claims.UserID, Email: claims.Email}
}
