package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/vibe-gaming/cadastro/internal/domain"
)

type Repositories struct {
	FormSessions FormSessions
	Addresses    Addresses
}

// NewRepositories builds the repositories on top of redis.
func NewRepositories(client redis.UniversalClient, sessionTTL time.Duration, addressTTL time.Duration) *Repositories {
	return newRepositories(newRedisStore(client), sessionTTL, addressTTL)
}

// NewMemoryRepositories keeps everything in process, for a single instance.
func NewMemoryRepositories(sessionTTL time.Duration, addressTTL time.Duration) *Repositories {
	return newRepositories(newMemoryStore(cache.New(sessionTTL, 2*sessionTTL)), sessionTTL, addressTTL)
}

func newRepositories(store kvStore, sessionTTL time.Duration, addressTTL time.Duration) *Repositories {
	return &Repositories{
		FormSessions: newFormSessionRepository(store, sessionTTL),
		Addresses:    newAddressRepository(store, addressTTL),
	}
}

type FormSessions interface {
	Get(ctx context.Context, id string) (*domain.Form, error)
	Save(ctx context.Context, form *domain.Form) error
}

type Addresses interface {
	Get(ctx context.Context, zipcode string) (*domain.Address, error)
	Set(ctx context.Context, zipcode string, address *domain.Address) error
}
