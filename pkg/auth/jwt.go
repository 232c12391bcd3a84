package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// Claims is the identity context issued by the external auth provider. The
// engine only validates and reads it, it never issues tokens of its own.
type Claims struct {
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.TenantID == "" || claims.UserID == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// GenerateToken exists for tests and local tooling; production tokens come
// from the auth provider.
func (s *JWTService) GenerateToken(tenantID, userID string, expirationTime time.Time) (string, error) {
	claims := Claims{
		TenantID: tenantID,
		UserID:   userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
