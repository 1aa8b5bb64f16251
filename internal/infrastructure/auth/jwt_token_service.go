package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/snaplink/snaplink-backend/internal/domain/ports"
)

// accessClaims é o payload assinado: {id, email} mais os campos registrados
type accessClaims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTTokenService implementa ports.TokenService com HMAC-SHA256
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTTokenService cria um emissor/verificador de tokens de acesso
func NewJWTTokenService(secret string, expiry time.Duration) ports.TokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (s *JWTTokenService) Sign(claims ports.TokenClaims) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	})

	return token.SignedString(s.secret)
}

func (s *JWTTokenService) Verify(tokenString string) (*ports.TokenClaims, error) {
	claims := &accessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return &ports.TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
