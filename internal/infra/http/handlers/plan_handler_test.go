package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gfsouza/vendas-crm/internal/entity"
)

type stubPlanRepo struct {
	mock.Mock
}

func (m *stubPlanRepo) FindByID(ctx context.Context, id string) (*entity.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Plan), args.Error(1)
}

func (m *stubPlanRepo) List(ctx context.Context) ([]*entity.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Plan), args.Error(1)
}

func TestPlanHandler_ListaCatalogo(t *testing.T) {
	repo := new(stubPlanRepo)
	repo.On("List", mock.Anything).Return([]*entity.Plan{
		{ID: "plan-1", Name: "Fibra 300MB", PriceCents: 9990, OperatorCode: "OP300"},
		{ID: "plan-2", Name: "Fibra 600MB", PriceCents: 12990, OperatorCode: "OP600"},
	}, nil)

	h := NewPlanHandler(repo)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/plans", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var plans []entity.Plan
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plans))
	assert.Len(t, plans, 2)
	assert.Equal(t, "Fibra 300MB", plans[0].Name)
	assert.Equal(t, 12990, plans[1].PriceCents)
}

func TestPlanHandler_CatalogoVazioDevolveListaVazia(t *testing.T) {
	repo := new(stubPlanRepo)
	repo.On("List", mock.Anything).Return(nil, nil)

	h := NewPlanHandler(repo)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/plans", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	// Lista vazia, nunca null, para o front não tratar caso especial.
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestPlanHandler_FalhaDeBanco(t *testing.T) {
	repo := new(stubPlanRepo)
	repo.On("List", mock.Anything).Return(nil, errors.New("banco fora do ar"))

	h := NewPlanHandler(repo)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/plans", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
