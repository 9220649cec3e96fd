package commands

import (
	"context"
	"errors"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/restaurant"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor")
	ErrUpdateRestaurantCommandIsNotConstructed = errors.New(
		"UpdateRestaurantCommand must be created via NewUpdateRestaurantCommand constructor")
	ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
		"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor")
)

// CreateRestaurantCommand is a request to add a restaurant to the catalog.
type CreateRestaurantCommand struct {
	restaurantID kernel.UUID
	name         string
	address      string
	cuisine      string
	contactPhone string
	contactEmail string
	description  string
	rating       *float64

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	name, address, cuisine, contactPhone, contactEmail, description string,
	rating *float64,
) (CreateRestaurantCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return CreateRestaurantCommand{}, errs.NewValueIsInvalidErrorWithCause("CreateRestaurantCommand", err)
	}

	return CreateRestaurantCommand{
		restaurantID: restaurantID,
		name:         name,
		address:      address,
		cuisine:      cuisine,
		contactPhone: contactPhone,
		contactEmail: contactEmail,
		description:  description,
		rating:       rating,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// UpdateRestaurantCommand is a partial update of a restaurant. Nil fields
// stay untouched; a rating can be set but not cleared through this command.
type UpdateRestaurantCommand struct {
	restaurantID kernel.UUID
	name         *string
	address      *string
	cuisine      *string
	contactPhone *string
	contactEmail *string
	description  *string
	rating       *float64

	guard guard.ConstructorGuard
}

// NewUpdateRestaurantCommand creates a command to update a restaurant.
func NewUpdateRestaurantCommand(
	restaurantID kernel.UUID,
	name, address, cuisine, contactPhone, contactEmail, description *string,
	rating *float64,
) (UpdateRestaurantCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return UpdateRestaurantCommand{}, errs.NewValueIsInvalidErrorWithCause("UpdateRestaurantCommand", err)
	}

	return UpdateRestaurantCommand{
		restaurantID: restaurantID,
		name:         name,
		address:      address,
		cuisine:      cuisine,
		contactPhone: contactPhone,
		contactEmail: contactEmail,
		description:  description,
		rating:       rating,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRestaurantCommandIsNotConstructed)
}

// DeleteRestaurantCommand is a request to remove a restaurant.
type DeleteRestaurantCommand struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRestaurantCommand creates a command to delete a restaurant.
func NewDeleteRestaurantCommand(restaurantID kernel.UUID) (DeleteRestaurantCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return DeleteRestaurantCommand{}, errs.NewValueIsInvalidErrorWithCause("DeleteRestaurantCommand", err)
	}

	return DeleteRestaurantCommand{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

// RestaurantCommandHandler handles catalog writes for restaurants.
type RestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewRestaurantCommandHandler creates a handler for restaurant commands.
func NewRestaurantCommandHandler(uowFactory RestaurantUoWFactory) RestaurantCommandHandler {
	return RestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleCreate registers a restaurant and returns it.
func (h RestaurantCommandHandler) HandleCreate(ctx context.Context, cmd CreateRestaurantCommand) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r, err := restaurant.NewRestaurant(
		cmd.restaurantID,
		cmd.name,
		cmd.address,
		cmd.cuisine,
		cmd.contactPhone,
		cmd.contactEmail,
		cmd.description,
		cmd.rating,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RestaurantRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

// HandleUpdate applies the non-nil fields and returns the restaurant.
func (h RestaurantCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateRestaurantCommand) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()

	r, err := restaurantRepo.Get(ctx, cmd.restaurantID)
	if err != nil {
		return nil, err
	}

	var applyErr error
	if cmd.name != nil {
		applyErr = errors.Join(applyErr, r.SetName(*cmd.name))
	}
	if cmd.address != nil {
		applyErr = errors.Join(applyErr, r.SetAddress(*cmd.address))
	}
	if cmd.cuisine != nil {
		applyErr = errors.Join(applyErr, r.SetCuisine(*cmd.cuisine))
	}
	if cmd.contactPhone != nil {
		applyErr = errors.Join(applyErr, r.SetContactPhone(*cmd.contactPhone))
	}
	if cmd.contactEmail != nil {
		r.SetContactEmail(*cmd.contactEmail)
	}
	if cmd.description != nil {
		r.SetDescription(*cmd.description)
	}
	if cmd.rating != nil {
		applyErr = errors.Join(applyErr, r.SetRating(cmd.rating))
	}
	if applyErr != nil {
		return nil, applyErr
	}

	if err = restaurantRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

// HandleDelete removes a restaurant. Its menu items are removed with it by
// the storage adapter.
func (h RestaurantCommandHandler) HandleDelete(ctx context.Context, cmd DeleteRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RestaurantRepository().Delete(ctx, cmd.restaurantID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
