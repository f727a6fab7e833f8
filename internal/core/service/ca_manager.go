package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mrdsaas/admin-console/internal/core/domain"
	"github.com/mrdsaas/admin-console/internal/core/ports"
)

// CAManager orchestrates CA account CRUD against the backend. It keeps no
// list state of its own: each mutation is one pass-through call and the
// caller re-lists afterwards, so the console only ever shows a snapshot the
// backend just returned.
type CAManager struct {
	api    ports.CAAccountAPI
	logger zerolog.Logger
}

func NewCAManager(api ports.CAAccountAPI, logger zerolog.Logger) *CAManager {
	return &CAManager{api: api, logger: logger}
}

func (m *CAManager) List(ctx context.Context, token string) ([]domain.CAAccount, error) {
	accounts, err := m.api.List(ctx, token)
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to fetch ca accounts")
		return nil, err
	}
	return accounts, nil
}

func (m *CAManager) Create(ctx context.Context, token string, input domain.CreateCAInput) (*domain.CAAccount, error) {
	created, err := m.api.Create(ctx, token, input)
	if err != nil {
		m.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create ca account")
		return nil, err
	}
	m.logger.Info().Str("id", created.ID).Str("name", created.Name).Msg("ca account created")
	return created, nil
}

func (m *CAManager) Update(ctx context.Context, token, id string, input domain.UpdateCAInput) (*domain.CAAccount, error) {
	updated, err := m.api.Update(ctx, token, id, input)
	if err != nil {
		m.logger.Error().Err(err).Str("id", id).Msg("failed to update ca account")
		return nil, err
	}
	m.logger.Info().Str("id", id).Msg("ca account updated")
	return updated, nil
}

// ToggleStatus flips active to inactive and back, requesting the inverse of
// the status the row currently shows.
func (m *CAManager) ToggleStatus(ctx context.Context, token, id, currentStatus string) (*domain.CAAccount, error) {
	next := domain.ToggleStatus(currentStatus)
	updated, err := m.api.UpdateStatus(ctx, token, id, next)
	if err != nil {
		m.logger.Error().Err(err).Str("id", id).Str("status", next).Msg("failed to update ca status")
		return nil, err
	}
	m.logger.Info().Str("id", id).Str("status", next).Msg("ca status updated")
	return updated, nil
}

func (m *CAManager) Delete(ctx context.Context, token, id string) error {
	if err := m.api.Delete(ctx, token, id); err != nil {
		m.logger.Error().Err(err).Str("id", id).Msg("failed to delete ca account")
		return err
	}
	m.logger.Info().Str("id", id).Msg("ca account deleted")
	return nil
}
