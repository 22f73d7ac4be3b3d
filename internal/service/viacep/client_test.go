package viacep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotPath
}

func TestLookup(t *testing.T) {
	srv, path := newTestServer(t, http.StatusOK, `{
		"cep": "01310-100",
		"logradouro": "Rua X",
		"complemento": "lado ímpar",
		"bairro": "Bela Vista",
		"localidade": "City Y",
		"uf": "SP",
		"ibge": "3550308",
		"ddd": "11"
	}`)

	addr, err := NewClient(srv.URL+"/", time.Second).Lookup(context.Background(), "01310-100")
	require.NoError(t, err)

	assert.Equal(t, "/ws/01310-100/json/", *path)
	assert.Equal(t, "Rua X", addr.Street)
	assert.Equal(t, "City Y", addr.City)
	assert.Equal(t, "SP", addr.State)
}

func TestLookupNotFound(t *testing.T) {
	for _, body := range []string{`{"erro": true}`, `{"erro": "true"}`} {
		srv, _ := newTestServer(t, http.StatusOK, body)

		_, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "99999-999")
		assert.ErrorIs(t, err, ErrNotFound, body)
	}
}

func TestLookupBadStatus(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusBadRequest, `<h1>Bad Request</h1>`)

	_, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestLookupUnreachable(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{}`)
	srv.Close()

	_, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "01310-100")
	assert.Error(t, err)
}
