package services

import (
	"fmt"
	"time"

	apperrors "crm/errors"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// Claims carries the caller identity inside a bearer token.
type Claims struct {
	ID   uint   `json:"id"`
	Role string `json:"role"`
	jwt.StandardClaims
}

// ExpiresIn is the remaining lifetime of the token, never negative.
func (c *Claims) ExpiresIn(now time.Time) time.Duration {
	left := time.Unix(c.ExpiresAt, 0).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// GenerateToken signs an HS256 token for the user with a fresh jti.
func (s *TokenService) GenerateToken(id uint, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:   id,
		Role: role,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.Server("Could not sign token", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry of tokenString.
func (s *TokenService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}
	if claims.ID == 0 || claims.Role == "" {
		return nil, apperrors.Unauthorized("Invalid token payload")
	}
	return claims, nil
}
