package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibe-gaming/cadastro/internal/api/http/session"
	"github.com/vibe-gaming/cadastro/internal/config"
	"github.com/vibe-gaming/cadastro/internal/domain"
	"github.com/vibe-gaming/cadastro/internal/repository"
	"github.com/vibe-gaming/cadastro/internal/service"
	"github.com/vibe-gaming/cadastro/internal/service/viacep"
	"github.com/vibe-gaming/cadastro/pkg/validator"
)

type postalFunc func(ctx context.Context, zipcode string) (*domain.Address, error)

func (f postalFunc) Lookup(ctx context.Context, zipcode string) (*domain.Address, error) {
	return f(ctx, zipcode)
}

type registrationFunc func(ctx context.Context, input domain.RegistrationInput) error

func (f registrationFunc) Register(ctx context.Context, input domain.RegistrationInput) error {
	return f(ctx, input)
}

type testApp struct {
	router    *gin.Engine
	repos     *repository.Repositories
	sessionID string
}

func newTestApp(t *testing.T, postal service.PostalClient, registration service.RegistrationClient) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	v, err := validator.New(domain.RegistrationMessages)
	require.NoError(t, err)

	app := &testApp{repos: repository.NewMemoryRepositories(time.Minute, time.Minute)}
	services := service.NewServices(service.Deps{
		Repos:              app.repos,
		Validator:          v,
		PostalClient:       postal,
		RegistrationClient: registration,
	})

	cfg := &config.Config{Session: config.Session{CookieName: "form_session", TTL: time.Minute}}
	h, err := NewHandler(services.Forms, cfg)
	require.NoError(t, err)

	app.router = gin.New()
	h.Init(app.router)

	return app
}

func (a *testApp) do(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if a.sessionID != "" {
		req.AddCookie(&http.Cookie{Name: "form_session", Value: a.sessionID})
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	if id := rec.Header().Get(session.Header); id != "" {
		a.sessionID = id
	}
	return rec
}

func (a *testApp) stored(t *testing.T) *domain.Form {
	t.Helper()
	form, err := a.repos.FormSessions.Get(context.Background(), a.sessionID)
	require.NoError(t, err)
	return form
}

func validValues() url.Values {
	return url.Values{
		"name":                  {"Maria Silva"},
		"email":                 {"maria@example.com"},
		"password":              {"segredo123"},
		"password_confirmation": {"segredo123"},
		"phone":                 {"11987654321"},
		"cpf":                   {"12345678900"},
		"zipcode":               {"01310100"},
		"terms":                 {"on"},
	}
}

func noPostal(t *testing.T) postalFunc {
	return func(context.Context, string) (*domain.Address, error) {
		t.Error("unexpected postal lookup")
		return nil, errors.New("unexpected")
	}
}

func noRegistration(t *testing.T) registrationFunc {
	return func(context.Context, domain.RegistrationInput) error {
		t.Error("unexpected registration")
		return errors.New("unexpected")
	}
}

func TestFormPageStartsSession(t *testing.T) {
	app := newTestApp(t, noPostal(t), noRegistration(t))

	rec := app.do(t, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nome Completo")
	assert.NotEmpty(t, app.sessionID)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, app.sessionID, cookies[0].Value)
}

func TestSubmitRendersFieldErrors(t *testing.T) {
	app := newTestApp(t, noPostal(t), noRegistration(t))
	values := validValues()
	values.Set("password_confirmation", "outrasenha")
	values.Del("terms")

	rec := app.do(t, http.MethodPost, "/", values)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "As senhas precisam ser iguais")
	assert.Contains(t, body, "Aceite os termos antes de continuar.")
	assert.Contains(t, body, `value="123.456.789-00"`)
}

func TestSubmitResetsOnSuccess(t *testing.T) {
	var sent []domain.RegistrationInput
	app := newTestApp(t,
		postalFunc(func(_ context.Context, zipcode string) (*domain.Address, error) {
			return &domain.Address{Zipcode: zipcode, Street: "Rua X", City: "City Y"}, nil
		}),
		registrationFunc(func(_ context.Context, input domain.RegistrationInput) error {
			sent = append(sent, input)
			return nil
		}),
	)

	rec := app.do(t, http.MethodPost, "/zipcode", validValues())
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, "Rua X", app.stored(t).Values.Address)

	rec = app.do(t, http.MethodPost, "/", validValues())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), registeredNotice)
	require.Len(t, sent, 1)
	assert.Equal(t, "City Y", sent[0].City)
	assert.Equal(t, "(11) 98765-4321", sent[0].Phone)

	form := app.stored(t)
	assert.Empty(t, form.Values.Phone)
	assert.Empty(t, form.Values.CPF)
	assert.Empty(t, form.Values.Zipcode)
}

func TestSubmitUpstreamFailureShowsNotice(t *testing.T) {
	app := newTestApp(t,
		postalFunc(func(context.Context, string) (*domain.Address, error) {
			return &domain.Address{Street: "Rua X", City: "City Y"}, nil
		}),
		registrationFunc(func(context.Context, domain.RegistrationInput) error {
			return errors.New("connection refused")
		}),
	)
	app.do(t, http.MethodPost, "/zipcode", validValues())

	rec := app.do(t, http.MethodPost, "/", validValues())

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="notice"`)
	assert.Equal(t, "Maria Silva", app.stored(t).Values.Name)
}

func TestZipcodeBlurNotFound(t *testing.T) {
	app := newTestApp(t,
		postalFunc(func(context.Context, string) (*domain.Address, error) {
			return nil, viacep.ErrNotFound
		}),
		noRegistration(t),
	)

	rec := app.do(t, http.MethodPost, "/zipcode", url.Values{"zipcode": {"99999999"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	form := app.stored(t)
	assert.Equal(t, "99999-999", form.Values.Zipcode)
	assert.Empty(t, form.Values.Address)
}

func TestZipcodeBlurLookupFailureRedirects(t *testing.T) {
	app := newTestApp(t,
		postalFunc(func(context.Context, string) (*domain.Address, error) {
			return nil, errors.New("timeout")
		}),
		noRegistration(t),
	)

	rec := app.do(t, http.MethodPost, "/zipcode", url.Values{"zipcode": {"01310100"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestToggleKeepsTypedValues(t *testing.T) {
	app := newTestApp(t, noPostal(t), noRegistration(t))

	rec := app.do(t, http.MethodPost, "/toggle/password-confirmation", url.Values{"name": {"Maria"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	form := app.stored(t)
	assert.True(t, form.ShowPasswordConfirmation)
	assert.False(t, form.ShowPassword)
	assert.Equal(t, "Maria", form.Values.Name)

	rec = app.do(t, http.MethodGet, "/", nil)
	assert.Contains(t, rec.Body.String(), `<input type="text" id="confirm-password"`)

	rec = app.do(t, http.MethodPost, "/toggle/email", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
