package service

import (
	"context"

	"github.com/vibe-gaming/cadastro/internal/domain"
	"github.com/vibe-gaming/cadastro/internal/repository"
	"github.com/vibe-gaming/cadastro/pkg/validator"
)

type Services struct {
	Forms  Forms
	Postal Postal
}

type Deps struct {
	Repos              *repository.Repositories
	Validator          *validator.Validator
	PostalClient       PostalClient
	RegistrationClient RegistrationClient
}

func NewServices(deps Deps) *Services {
	postal := newPostalService(deps.PostalClient, deps.Repos.Addresses)

	return &Services{
		Forms:  newFormService(deps.Repos.FormSessions, deps.Validator, postal, deps.RegistrationClient),
		Postal: postal,
	}
}

// Forms drives the registration form of one session.
type Forms interface {
	Open(ctx context.Context, sessionID string) (*domain.Form, error)
	SetField(ctx context.Context, sessionID string, field string, value string) (*domain.Form, error)
	SetFields(ctx context.Context, sessionID string, values map[string]string) (*domain.Form, error)
	ToggleVisibility(ctx context.Context, sessionID string, field string) (*domain.Form, error)
	BlurZipcode(ctx context.Context, sessionID string) (*domain.Form, error)
	Submit(ctx context.Context, sessionID string) (*domain.Form, error)
}

type Postal interface {
	Lookup(ctx context.Context, zipcode string) (*domain.Address, error)
}

type PostalClient interface {
	Lookup(ctx context.Context, zipcode string) (*domain.Address, error)
}

type RegistrationClient interface {
	Register(ctx context.Context, input domain.RegistrationInput) error
}
