package auth

import (
	"context"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/gfsouza/vendas-crm/internal/entity"
)

func TestTokenService_GeraEValida(t *testing.T) {
	svc := NewTokenService("segredo-de-teste", time.Hour)

	user := &entity.User{
		ID:     "user-1",
		Name:   "Fulano",
		Role:   entity.RoleSupervisorEquipe,
		TeamID: "team-1",
	}

	token, err := svc.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	sess, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, "Fulano", sess.Name)
	assert.Equal(t, entity.RoleSupervisorEquipe, sess.Role)
	assert.Equal(t, "team-1", sess.TeamID)
}

func TestTokenService_SegredoErrado(t *testing.T) {
	svc := NewTokenService("segredo-a", time.Hour)
	other := NewTokenService("segredo-b", time.Hour)

	token, err := svc.GenerateToken(&entity.User{ID: "user-1", Role: entity.RoleVendedor})
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_TokenExpirado(t *testing.T) {
	svc := NewTokenService("segredo-de-teste", -time.Minute)

	token, err := svc.GenerateToken(&entity.User{ID: "user-1", Role: entity.RoleVendedor})
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_AlgoritmoNoneRecusado(t *testing.T) {
	svc := NewTokenService("segredo-de-teste", time.Hour)

	claims := Claims{
		Name: "Fulano",
		Role: string(entity.RoleAdminGeral),
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	// Token sem assinatura: o parser só aceita HS256.
	unsigned, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).
		SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_LixoNaoPassa(t *testing.T) {
	svc := NewTokenService("segredo-de-teste", time.Hour)

	_, err := svc.ValidateToken("nem.um.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSession_ContextoIdaEVolta(t *testing.T) {
	sess := Session{UserID: "user-1", Role: entity.RoleVendedor}

	ctx := WithSession(context.Background(), sess)
	got, ok := SessionFrom(ctx)

	assert.True(t, ok)
	assert.Equal(t, sess, got)

	_, ok = SessionFrom(context.Background())
	assert.False(t, ok)
}
