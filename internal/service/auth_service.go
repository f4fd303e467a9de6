package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Nischal699/spotify-api/internal/domain"
)

// ErrInvalidToken is returned when a token fails verification for any reason.
var ErrInvalidToken = errors.New("invalid or expired token")

// accessClaims is the internal claims type used for JWT parsing.
type accessClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

// AuthService verifies access tokens issued by the auth service. Token
// issuance lives outside this core; only HS256 verification happens here.
type AuthService struct {
	secret []byte
}

// NewAuthService creates a new AuthService with the shared signing secret.
func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: []byte(secret)}
}

// Verify parses and validates the token and returns the identity it carries.
func (s *AuthService) Verify(token string) (*domain.TokenClaims, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return &domain.TokenClaims{UserID: claims.UserID, Role: claims.Role}, nil
}
