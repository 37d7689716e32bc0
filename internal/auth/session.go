package auth

import (
	"context"

	"github.com/gfsouza/vendas-crm/internal/entity"
)

// Session é a identidade autenticada do chamador, emitida no login e
// carregada explicitamente como valor — nunca como estado global.
type Session struct {
	UserID string
	Name   string
	Role   entity.Role
	TeamID string
}

// Capabilities deriva as permissões da sessão. Único ponto de consulta:
// nenhuma camada deve comparar Role diretamente.
func (s Session) Capabilities() entity.Capabilities {
	return entity.CapabilitiesFor(s.Role)
}

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
