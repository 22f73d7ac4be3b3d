package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vibe-gaming/cadastro/internal/domain"
	"github.com/vibe-gaming/cadastro/internal/repository"
	"github.com/vibe-gaming/cadastro/internal/service/viacep"
	"github.com/vibe-gaming/cadastro/pkg/logger"
	"go.uber.org/zap"
)

type postalService struct {
	client    PostalClient
	addresses repository.Addresses
}

func newPostalService(client PostalClient, addresses repository.Addresses) *postalService {
	return &postalService{
		client:    client,
		addresses: addresses,
	}
}

// Lookup resolves zipcode, serving repeated zipcodes from the address cache.
// Unknown zipcodes are not cached.
func (s *postalService) Lookup(ctx context.Context, zipcode string) (*domain.Address, error) {
	cached, err := s.addresses.Get(ctx, zipcode)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		logger.Warn("address cache get failed", zap.String("zipcode", zipcode), zap.Error(err))
	}

	address, err := s.client.Lookup(ctx, zipcode)
	if err != nil {
		if errors.Is(err, viacep.ErrNotFound) {
			return nil, ErrZipcodeNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	if err := s.addresses.Set(ctx, zipcode, address); err != nil {
		logger.Warn("address cache set failed", zap.String("zipcode", zipcode), zap.Error(err))
	}

	return address, nil
}
