package viacep

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vibe-gaming/cadastro/internal/domain"
	"github.com/vibe-gaming/cadastro/pkg/logger"
	"go.uber.org/zap"
)

// ErrNotFound is returned when the directory answers with its "erro" marker.
var ErrNotFound = errors.New("zipcode not found")

// Client resolves zipcodes through the ViaCEP directory.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type lookupResponse struct {
	Cep         string    `json:"cep"`
	Logradouro  string    `json:"logradouro"`
	Complemento string    `json:"complemento"`
	Bairro      string    `json:"bairro"`
	Localidade  string    `json:"localidade"`
	Uf          string    `json:"uf"`
	Ibge        string    `json:"ibge"`
	Ddd         string    `json:"ddd"`
	Erro        errorFlag `json:"erro"`
}

// errorFlag accepts both `true` and `"true"`, the directory has served both.
type errorFlag bool

func (f *errorFlag) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	*f = errorFlag(bytes.Equal(data, []byte("true")))
	return nil
}

// Lookup fetches the address for zipcode. The value is sent as given.
func (c *Client) Lookup(ctx context.Context, zipcode string) (*domain.Address, error) {
	endpoint := c.baseURL + "/ws/" + url.PathEscape(zipcode) + "/json/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("postal lookup", zap.String("url", endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var lookupResp lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookupResp); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	if lookupResp.Erro {
		return nil, ErrNotFound
	}

	return &domain.Address{
		Zipcode:      lookupResp.Cep,
		Street:       lookupResp.Logradouro,
		Complement:   lookupResp.Complemento,
		Neighborhood: lookupResp.Bairro,
		City:         lookupResp.Localidade,
		State:        lookupResp.Uf,
		IBGE:         lookupResp.Ibge,
		DDD:          lookupResp.Ddd,
	}, nil
}
