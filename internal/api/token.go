package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 7 * 24 * time.Hour

var errInvalidToken = errors.New("invalid token")

// IssueToken signs an HS256 bearer token whose subject is the owner id.
func IssueToken(secret string, ownerID string, ttl time.Duration, now time.Time) (string, error) {
	if strings.TrimSpace(ownerID) == "" {
		return "", errors.New("owner id is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	claims := jwt.RegisteredClaims{
		Subject:   ownerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func parseOwnerToken(raw string, secret []byte, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil || !token.Valid {
		return "", errInvalidToken
	}
	if claims.ExpiresAt == nil || strings.TrimSpace(claims.Subject) == "" {
		return "", errInvalidToken
	}
	return claims.Subject, nil
}
