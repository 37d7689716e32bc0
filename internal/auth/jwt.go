package auth

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/gfsouza/vendas-crm/internal/entity"
)

var ErrInvalidToken = errors.New("token inválido")

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

type Claims struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	TeamID string `json:"team_id,omitempty"`
	jwtlib.RegisteredClaims
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *TokenService) GenerateToken(user *entity.User) (string, error) {
	claims := Claims{
		Name:   user.Name,
		Role:   string(user.Role),
		TeamID: user.TeamID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken devolve a sessão embutida no token ou ErrInvalidToken.
func (s *TokenService) ValidateToken(tokenStr string) (Session, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Session{}, ErrInvalidToken
	}

	return Session{
		UserID: claims.Subject,
		Name:   claims.Name,
		Role:   entity.Role(claims.Role),
		TeamID: claims.TeamID,
	}, nil
}
