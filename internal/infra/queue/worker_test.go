package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWelcomeMailer struct {
	mock.Mock
}

func (m *MockWelcomeMailer) SendWelcome(to, name, tempPassword string) error {
	args := m.Called(to, name, tempPassword)
	return args.Error(0)
}

func envelopeFor(t *testing.T, kind string, payload any) Envelope {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	return Envelope{Kind: kind, Body: body}
}

func TestProcessMessage_UsuarioProvisionadoDisparaEmail(t *testing.T) {
	mailer := new(MockWelcomeMailer)
	mailer.On("SendWelcome", "novo@example.com", "Novo Vendedor", "senha-temp").Return(nil)

	w := NewWorker(nil, mailer, nil)

	err := w.processMessage(context.Background(), envelopeFor(t, KindUserProvisioned, UserProvisionedPayload{
		UserID:       "user-1",
		Name:         "Novo Vendedor",
		Email:        "novo@example.com",
		Role:         "vendedor",
		TempPassword: "senha-temp",
	}))

	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestProcessMessage_FalhaDeEnvioSobeParaNack(t *testing.T) {
	mailer := new(MockWelcomeMailer)
	mailer.On("SendWelcome", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp fora do ar"))

	w := NewWorker(nil, mailer, nil)

	err := w.processMessage(context.Background(), envelopeFor(t, KindUserProvisioned, UserProvisionedPayload{
		Email: "novo@example.com",
	}))

	assert.Error(t, err)
}

func TestProcessMessage_VendaCriadaSoLoga(t *testing.T) {
	mailer := new(MockWelcomeMailer)
	w := NewWorker(nil, mailer, nil)

	err := w.processMessage(context.Background(), envelopeFor(t, KindSaleCreated, SaleCreatedPayload{
		SaleID: "sale-1",
	}))

	assert.NoError(t, err)
	mailer.AssertNotCalled(t, "SendWelcome", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessMessage_EventoDesconhecidoNaoFalha(t *testing.T) {
	w := NewWorker(nil, new(MockWelcomeMailer), nil)

	err := w.processMessage(context.Background(), Envelope{Kind: "algo.novo", Body: []byte(`{}`)})

	assert.NoError(t, err)
}
