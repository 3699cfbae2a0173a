package utils

import (
	"errors"
	"time"

	"sparkle/config"

	"github.com/golang-jwt/jwt"
)

// Portal roles carried in the "role" claim.
const (
	RoleAdmin   = "admin"
	RoleCleaner = "cleaner"
	RoleClient  = "client"
)

// Claims is the parsed identity of a portal user.
type Claims struct {
	Subject string
	Role    string
}

func secretKey() ([]byte, error) {
	if config.AppConfig.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not configured")
	}
	return []byte(config.AppConfig.JWTSecret), nil
}

// GenerateToken creates a signed JWT for the given subject and portal role.
// The token expires after the specified duration.
func GenerateToken(subject, role string, duration time.Duration) (string, error) {
	key, err := secretKey()
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	key, err := secretKey()
	if err != nil {
		return nil, err
	}
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
}

// ParseClaims validates a token and extracts its subject and role.
func ParseClaims(tokenString string) (Claims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return Claims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Claims{}, errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ := claims["role"].(string)
	switch role {
	case RoleAdmin, RoleCleaner, RoleClient:
	default:
		return Claims{}, errors.New("token does not contain a valid 'role' claim")
	}
	return Claims{Subject: sub, Role: role}, nil
}
