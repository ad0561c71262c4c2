// Package cep consulta un servicio externo de CEP (estilo ViaCEP) para
// autocompletar direcciones de pacientes.
package cep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"medical-practice/internal/domain/patients"
)

var ErrNotFound = errors.New("cep: not found")

type viaCEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	// ViaCEP responde 200 con {"erro": true} para CEPs inexistentes.
	Erro bool `json:"erro"`
}

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond)
	return &Client{http: c}
}

func (c *Client) Lookup(ctx context.Context, cep string) (patients.Address, error) {
	var body viaCEPResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get(fmt.Sprintf("/ws/%s/json/", cep))
	if err != nil {
		return patients.Address{}, fmt.Errorf("consultar cep: %w", err)
	}
	if resp.StatusCode() == 404 || body.Erro {
		return patients.Address{}, ErrNotFound
	}
	if resp.IsError() {
		return patients.Address{}, fmt.Errorf("consultar cep: status %d", resp.StatusCode())
	}
	return patients.Address{
		CEP:      body.CEP,
		Street:   body.Logradouro,
		District: body.Bairro,
		City:     body.Localidade,
		State:    body.UF,
	}, nil
}
