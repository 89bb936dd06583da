package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Haris-56/coupon/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid session token")

// Session is the caller identity passed explicitly into every mutation
// action. The zero value is an unauthenticated session.
type Session struct {
	IsAuth bool
	UserID string
	Role   models.Role
}

// TokenService issues and verifies session tokens.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: 24 * time.Hour}
}

// Generate issues a signed token carrying the user id and role.
func (s *TokenService) Generate(userID string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(s.expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses a token and returns the session it represents. Any parse or
// claim failure yields ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return Session{}, ErrInvalidToken
	}

	return Session{IsAuth: true, UserID: userID, Role: models.Role(role)}, nil
}
