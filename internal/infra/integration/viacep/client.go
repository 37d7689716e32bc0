package viacep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"
)

var (
	ErrInvalidCEP  = errors.New("CEP deve ter 8 dígitos")
	ErrCEPNotFound = errors.New("CEP não encontrado")
)

var nonDigits = regexp.MustCompile(`\D`)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://viacep.com.br/ws"
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Lookup consulta o endereço de um CEP de 8 dígitos. A ViaCEP responde 200
// com {"erro": true} para CEP bem formado porém inexistente.
func (c *Client) Lookup(ctx context.Context, cep string) (*AddressResponse, error) {
	cleaned := nonDigits.ReplaceAllString(cep, "")
	if len(cleaned) != 8 {
		return nil, ErrInvalidCEP
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, cleaned)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("falha ao montar request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar ViaCEP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCEPNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ViaCEP respondeu status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("resposta inválida da ViaCEP: %w", err)
	}

	if body.Erro {
		return nil, ErrCEPNotFound
	}

	return &AddressResponse{
		ZipCode:  body.CEP,
		Street:   body.Logradouro,
		District: body.Bairro,
		City:     body.Localidade,
		State:    body.UF,
	}, nil
}
