package registration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibe-gaming/cadastro/internal/domain"
)

func TestRegisterPostsJSON(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).Register(context.Background(), domain.RegistrationInput{
		Name:                 "Maria",
		PasswordConfirmation: "segredo123",
		Terms:                true,
		Zipcode:              "01310-100",
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria", got["name"])
	assert.Equal(t, "segredo123", got["password_confirmation"])
	assert.Equal(t, true, got["terms"])
	assert.Equal(t, "01310-100", got["zipcode"])
}

func TestRegisterNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"email taken"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).Register(context.Background(), domain.RegistrationInput{})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
	assert.Contains(t, statusErr.Body, "email taken")
}

func TestRegisterContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewClient(srv.URL, time.Second).Register(ctx, domain.RegistrationInput{})
	assert.ErrorIs(t, err, context.Canceled)
}
