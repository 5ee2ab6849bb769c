package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
)

// DevFallbackSecret signs tokens when no secret is configured outside
// production. Never accepted in production.
const DevFallbackSecret = "carbonkhet-dev-secret"

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrNoSecret     = errors.New("JWT_SECRET must be configured in production")
)

// Claims represents standard JWT claims plus custom fields
type Claims struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// ResolveSecret returns the signing secret for the current environment.
// Production requires an explicit secret; elsewhere a development fallback
// is tolerated.
func ResolveSecret(cfg *models.Config) (string, error) {
	if cfg.JWT.Secret != "" {
		return cfg.JWT.Secret, nil
	}
	if cfg.App.Environment == "production" {
		return "", ErrNoSecret
	}
	return DevFallbackSecret, nil
}

// GenerateToken generates a signed token asserting (userID, userType)
func GenerateToken(userID, userType string, cfg models.JWTConfig) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.Expiration) * time.Hour)
	expiresAt := expirationTime.Unix()

	claims := Claims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    cfg.Issuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a token string and returns the claims.
// Any verification failure (bad signature, malformed token, expiry)
// surfaces as an error; callers treat all of them as invalid.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
