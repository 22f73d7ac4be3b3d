package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vibe-gaming/cadastro/internal/domain"
)

const addressPrefix = "postal:address:"

type addressRepository struct {
	store kvStore
	ttl   time.Duration
}

func newAddressRepository(store kvStore, ttl time.Duration) *addressRepository {
	return &addressRepository{
		store: store,
		ttl:   ttl,
	}
}

func (r *addressRepository) Get(ctx context.Context, zipcode string) (*domain.Address, error) {
	data, err := r.store.get(ctx, addressPrefix+zipcode)
	if err != nil {
		return nil, err
	}

	var address domain.Address
	if err := json.Unmarshal(data, &address); err != nil {
		return nil, fmt.Errorf("address unmarshal failed: %w", err)
	}

	return &address, nil
}

func (r *addressRepository) Set(ctx context.Context, zipcode string, address *domain.Address) error {
	data, err := json.Marshal(address)
	if err != nil {
		return fmt.Errorf("address marshal failed: %w", err)
	}

	return r.store.set(ctx, addressPrefix+zipcode, data, r.ttl)
}
