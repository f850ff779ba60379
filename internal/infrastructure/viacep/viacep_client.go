package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"oficina_mb/internal/usecase/interfaces"
)

const defaultBaseURL = "https://viacep.com.br"

// Client resolves Brazilian postal codes through the public ViaCEP API
// (GET /ws/{cep}/json/). An unknown CEP is answered by the provider with
// {"erro": true} and HTTP 200, which maps to found=false here; transport
// failures are returned as-is so the caller can report them.

type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ interfaces.ICEPGateway = (*Client)(nil)

type Option func(*Client)

// WithBaseURL points the client at a different host, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type viaCEPResponse struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

func (c *Client) Lookup(ctx context.Context, cep string) (interfaces.EnderecoCEP, bool, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return interfaces.EnderecoCEP{}, false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[cep][gateway] lookup failed cep=%s err=%v", cep, err)
		return interfaces.EnderecoCEP{}, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// ViaCEP answers 400 for malformed CEPs; treat any non-200 as not found.
		log.Printf("[cep][gateway] unexpected status cep=%s status=%d", cep, resp.StatusCode)
		return interfaces.EnderecoCEP{}, false, nil
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return interfaces.EnderecoCEP{}, false, err
	}
	if body.Erro {
		return interfaces.EnderecoCEP{}, false, nil
	}

	return interfaces.EnderecoCEP{
		Logradouro: body.Logradouro,
		Bairro:     body.Bairro,
		Localidade: body.Localidade,
		UF:         body.UF,
	}, true, nil
}
