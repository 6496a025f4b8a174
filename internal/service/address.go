package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bewear/internal/address"
	"bewear/internal/cache"
	"bewear/internal/domain"
	"bewear/internal/repository"
)

// identificationPath is the checkout page whose cached rendering depends
// on the user's addresses. Every successful address mutation revalidates it.
const identificationPath = "/cart/identification"

type addressService struct {
	repo        repository.Querier
	createRules address.Validator
	updateRules address.Validator
	pages       cache.Revalidator
	logger      *slog.Logger
}

// NewAddressService creates the shipping-address service. Create and
// update carry separate validation rulesets because the update flow still
// accepts the legacy 8-digit phone mask.
func NewAddressService(repo repository.Querier, pages cache.Revalidator, logger *slog.Logger) domain.AddressService {
	return &addressService{
		repo:        repo,
		createRules: address.NewCreateValidator(),
		updateRules: address.NewUpdateValidator(),
		pages:       pages,
		logger:      logger,
	}
}

// Create validates, normalizes and persists a new address for userID,
// then revalidates the cached identification page.
func (s *addressService) Create(ctx context.Context, userID uuid.UUID, input domain.AddressInput) (*domain.ShippingAddress, error) {
	norm, err := s.createRules.ValidateAndNormalize(input)
	if err != nil {
		return nil, err
	}

	addr, err := s.repo.CreateAddress(ctx, createParams(userID, norm))
	if err != nil {
		return nil, domain.Internal(err, "address.create", "Erro ao criar endereço")
	}

	s.pages.Revalidate(ctx, identificationPath, userID.String())

	s.logger.Info("shipping address created",
		slog.String("address_id", addr.ID.String()),
		slog.String("user_id", userID.String()))

	return &addr, nil
}

// Update validates, normalizes and applies an ownership-scoped update.
// An id that does not exist, or that belongs to another user, yields
// ErrAddressNotFound; the caller cannot tell the two apart.
func (s *addressService) Update(ctx context.Context, addressID, userID uuid.UUID, input domain.AddressInput) (*domain.ShippingAddress, error) {
	norm, err := s.updateRules.ValidateAndNormalize(input)
	if err != nil {
		return nil, err
	}

	addr, err := s.repo.UpdateAddressForUser(ctx, updateParams(addressID, userID, norm))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, domain.Internal(err, "address.update", "Erro ao atualizar endereço")
	}

	s.pages.Revalidate(ctx, identificationPath, userID.String())

	s.logger.Info("shipping address updated",
		slog.String("address_id", addr.ID.String()),
		slog.String("user_id", userID.String()))

	return &addr, nil
}

// List returns the user's addresses, newest first. An empty list is a
// normal outcome, not an error.
func (s *addressService) List(ctx context.Context, userID uuid.UUID) ([]domain.ShippingAddress, error) {
	addresses, err := s.repo.ListAddressesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses for user %s: %w", userID, err)
	}
	return addresses, nil
}

func createParams(userID uuid.UUID, n *address.Normalized) repository.CreateAddressParams {
	return repository.CreateAddressParams{
		UserID:        userID,
		RecipientName: n.RecipientName,
		Street:        n.Street,
		Number:        n.Number,
		Complement:    n.Complement,
		Neighborhood:  n.Neighborhood,
		City:          n.City,
		State:         n.State,
		ZipCode:       n.ZipCode,
		Country:       n.Country,
		Phone:         n.Phone,
		Email:         n.Email,
		CPF:           n.CPF,
	}
}

func updateParams(addressID, userID uuid.UUID, n *address.Normalized) repository.UpdateAddressParams {
	return repository.UpdateAddressParams{
		ID:            addressID,
		UserID:        userID,
		RecipientName: n.RecipientName,
		Street:        n.Street,
		Number:        n.Number,
		Complement:    n.Complement,
		Neighborhood:  n.Neighborhood,
		City:          n.City,
		State:         n.State,
		ZipCode:       n.ZipCode,
		Country:       n.Country,
		Phone:         n.Phone,
		Email:         n.Email,
		CPF:           n.CPF,
	}
}
