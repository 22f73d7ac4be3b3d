package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vibe-gaming/cadastro/internal/domain"
	"github.com/vibe-gaming/cadastro/internal/repository"
	"github.com/vibe-gaming/cadastro/pkg/logger"
	"github.com/vibe-gaming/cadastro/pkg/validator"
	"go.uber.org/zap"
)

const submitFailedNotice = "Não foi possível concluir o cadastro. Tente novamente."

type formService struct {
	sessions           repository.FormSessions
	validator          *validator.Validator
	postal             Postal
	registrationClient RegistrationClient
}

func newFormService(
	sessions repository.FormSessions,
	validator *validator.Validator,
	postal Postal,
	registrationClient RegistrationClient,
) *formService {
	return &formService{
		sessions:           sessions,
		validator:          validator,
		postal:             postal,
		registrationClient: registrationClient,
	}
}

// Open returns the session form, starting a fresh one when sessionID is empty or expired.
// The returned form carries the id the caller must keep using.
func (s *formService) Open(ctx context.Context, sessionID string) (*domain.Form, error) {
	if sessionID != "" {
		form, err := s.sessions.Get(ctx, sessionID)
		if err == nil {
			return form, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get form session failed: %w", err)
		}
	}

	form := domain.NewForm(uuid.NewString())
	if err := s.sessions.Save(ctx, form); err != nil {
		return nil, fmt.Errorf("save form session failed: %w", err)
	}

	return form, nil
}

func (s *formService) SetField(ctx context.Context, sessionID string, field string, value string) (*domain.Form, error) {
	return s.SetFields(ctx, sessionID, map[string]string{field: value})
}

func (s *formService) SetFields(ctx context.Context, sessionID string, values map[string]string) (*domain.Form, error) {
	form, err := s.Open(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for field, value := range values {
		if err := form.SetField(field, value); err != nil {
			return form, err
		}
	}

	return form, s.save(ctx, form)
}

func (s *formService) ToggleVisibility(ctx context.Context, sessionID string, field string) (*domain.Form, error) {
	form, err := s.Open(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := form.ToggleVisibility(field); err != nil {
		return form, err
	}

	return form, s.save(ctx, form)
}

// BlurZipcode looks up the current zipcode and fills address and city.
// The zipcode is not validated first. The form is reloaded once the lookup
// returns so edits made meanwhile survive; overlapping lookups resolve in
// completion order.
func (s *formService) BlurZipcode(ctx context.Context, sessionID string) (*domain.Form, error) {
	form, err := s.Open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	zipcode := form.Values.Zipcode

	var street, city string
	address, err := s.postal.Lookup(ctx, zipcode)
	switch {
	case errors.Is(err, ErrZipcodeNotFound):
		logger.Info("zipcode not found", zap.String("zipcode", zipcode))
	case err != nil:
		logger.Error("postal lookup failed", zap.String("zipcode", zipcode), zap.Error(err))
		return form, err
	default:
		street, city = address.Street, address.City
	}

	form, err = s.Open(ctx, form.ID)
	if err != nil {
		return nil, err
	}
	form.SetAddress(street, city)

	return form, s.save(ctx, form)
}

// Submit validates every field at once and, when clean, sends the values to
// the registration endpoint. A successful request resets the form.
func (s *formService) Submit(ctx context.Context, sessionID string) (*domain.Form, error) {
	form, err := s.Open(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	errs, err := s.validator.Struct(form.Values)
	if err != nil {
		return nil, fmt.Errorf("validate registration failed: %w", err)
	}

	form.SetErrors(errs)
	form.Notice = ""
	if err := s.save(ctx, form); err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return form, ErrValidation
	}

	registerErr := s.registrationClient.Register(ctx, form.Values)

	// the session may have been edited while the request was pending
	form, err = s.Open(ctx, form.ID)
	if err != nil {
		return nil, err
	}

	if registerErr != nil {
		logger.Error("registration request failed", zap.String("session", form.ID), zap.Error(registerErr))
		form.Notice = submitFailedNotice
		if err := s.save(ctx, form); err != nil {
			return nil, err
		}
		return form, fmt.Errorf("%w: %w", ErrRegistrationFailed, registerErr)
	}

	logger.Info("registration submitted", zap.String("session", form.ID))
	form.Reset()

	return form, s.save(ctx, form)
}

func (s *formService) save(ctx context.Context, form *domain.Form) error {
	if err := s.sessions.Save(ctx, form); err != nil {
		return fmt.Errorf("save form session failed: %w", err)
	}
	return nil
}
