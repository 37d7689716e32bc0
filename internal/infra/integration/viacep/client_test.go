package viacep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_Sucesso(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/01310100/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"cep": "01310-100",
			"logradouro": "Avenida Paulista",
			"bairro": "Bela Vista",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	// Pontuação do CEP é descartada antes da consulta.
	addr, err := client.Lookup(context.Background(), "01310-100")

	assert.NoError(t, err)
	assert.Equal(t, "Avenida Paulista", addr.Street)
	assert.Equal(t, "São Paulo", addr.City)
	assert.Equal(t, "SP", addr.State)
}

func TestLookup_CEPMalFormado(t *testing.T) {
	client := NewClient("http://viacep.invalido")

	_, err := client.Lookup(context.Background(), "123")
	assert.ErrorIs(t, err, ErrInvalidCEP)

	_, err = client.Lookup(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidCEP)
}

func TestLookup_CEPInexistente(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A ViaCEP responde 200 com corpo de erro para CEP bem formado
		// que não existe.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"erro": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Lookup(context.Background(), "99999999")
	assert.ErrorIs(t, err, ErrCEPNotFound)
}

func TestLookup_404ViraNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Lookup(context.Background(), "01310100")
	assert.ErrorIs(t, err, ErrCEPNotFound)
}

func TestLookup_ServidorFora(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Lookup(context.Background(), "01310100")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCEPNotFound)
}
