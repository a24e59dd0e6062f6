package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pboachie/pi-lotto/internal/config"
)

// Claims represents the JWT claims
type Claims struct {
	UID      string   `json:"uid"`
	Username string   `json:"username"`
	Scopes   []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// JWTService defines the interface for the JWT service
type JWTService interface {
	GenerateTokenPair(uid, username string, scopes []string) (string, string, error)
	ValidateToken(tokenString string) (*Claims, error)
	ExtractUIDFromToken(tokenString string) (string, error)
}

// jwtService handles JWT operations
type jwtService struct {
	config *config.JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config *config.JWTConfig) JWTService {
	return &jwtService{config}
}

// GenerateTokenPair creates signed access and refresh tokens for a user
func (j *jwtService) GenerateTokenPair(uid, username string, scopes []string) (string, string, error) {
	access, err := j.sign(uid, username, scopes, j.config.Expiry)
	if err != nil {
		return "", "", err
	}

	refreshExpiry := j.config.RefreshExpiry
	if refreshExpiry <= 0 {
		refreshExpiry = 7 * 24 * time.Hour
	}
	refresh, err := j.sign(uid, username, nil, refreshExpiry)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func (j *jwtService) sign(uid, username string, scopes []string, expiry time.Duration) (string, error) {
	claims := &Claims{
		UID:      uid,
		Username: username,
		Scopes:   scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "pi-lotto",
			Subject:   uid,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.config.Secret))
}

// ValidateToken parses and validates a JWT token
func (j *jwtService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(j.config.Secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("could not parse claims")
	}

	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	return claims, nil
}

// ExtractUIDFromToken pulls the user UID from a JWT token
func (j *jwtService) ExtractUIDFromToken(tokenStr string) (string, error) {
	claims, err := j.ValidateToken(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.UID, nil
}
