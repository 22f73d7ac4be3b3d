package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vibe-gaming/cadastro/internal/domain"
)

const formSessionPrefix = "form:session:"

type formSessionRepository struct {
	store kvStore
	ttl   time.Duration
}

func newFormSessionRepository(store kvStore, ttl time.Duration) *formSessionRepository {
	return &formSessionRepository{
		store: store,
		ttl:   ttl,
	}
}

func (r *formSessionRepository) Get(ctx context.Context, id string) (*domain.Form, error) {
	data, err := r.store.get(ctx, formSessionPrefix+id)
	if err != nil {
		return nil, err
	}

	var form domain.Form
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("form session unmarshal failed: %w", err)
	}

	return &form, nil
}

// Save stores form and restarts its expiration.
func (r *formSessionRepository) Save(ctx context.Context, form *domain.Form) error {
	data, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("form session marshal failed: %w", err)
	}

	return r.store.set(ctx, formSessionPrefix+form.ID, data, r.ttl)
}
