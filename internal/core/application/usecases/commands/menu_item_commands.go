package commands

import (
	"context"
	"errors"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/restaurant"
	"foodfast/internal/core/ports"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor")
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor")
	ErrRemoveMenuItemCommandIsNotConstructed = errors.New(
		"RemoveMenuItemCommand must be created via NewRemoveMenuItemCommand constructor")
)

// AddMenuItemCommand is a request to add an item to a restaurant's menu.
type AddMenuItemCommand struct {
	menuItemID      kernel.UUID
	restaurantID    kernel.UUID
	name            string
	description     string
	price           kernel.Money
	isAvailable     bool
	preparationTime *int
	tags            []string

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
func NewAddMenuItemCommand(
	menuItemID, restaurantID kernel.UUID,
	name, description string,
	price kernel.Money,
	isAvailable bool,
	preparationTime *int,
	tags []string,
) (AddMenuItemCommand, error) {
	if err := errors.Join(menuItemID.Validate(), restaurantID.Validate()); err != nil {
		return AddMenuItemCommand{}, errs.NewValueIsInvalidErrorWithCause("AddMenuItemCommand", err)
	}

	return AddMenuItemCommand{
		menuItemID:      menuItemID,
		restaurantID:    restaurantID,
		name:            name,
		description:     description,
		price:           price,
		isAvailable:     isAvailable,
		preparationTime: preparationTime,
		tags:            tags,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// UpdateMenuItemCommand is a partial update of a menu item. The restaurant
// reference scopes the edit: an item belonging to another restaurant is
// treated as not found.
type UpdateMenuItemCommand struct {
	menuItemID      kernel.UUID
	restaurantID    kernel.UUID
	name            *string
	description     *string
	price           *kernel.Money
	isAvailable     *bool
	preparationTime *int
	tags            []string

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to update a menu item.
func NewUpdateMenuItemCommand(
	menuItemID, restaurantID kernel.UUID,
	name, description *string,
	price *kernel.Money,
	isAvailable *bool,
	preparationTime *int,
	tags []string,
) (UpdateMenuItemCommand, error) {
	if err := errors.Join(menuItemID.Validate(), restaurantID.Validate()); err != nil {
		return UpdateMenuItemCommand{}, errs.NewValueIsInvalidErrorWithCause("UpdateMenuItemCommand", err)
	}

	return UpdateMenuItemCommand{
		menuItemID:      menuItemID,
		restaurantID:    restaurantID,
		name:            name,
		description:     description,
		price:           price,
		isAvailable:     isAvailable,
		preparationTime: preparationTime,
		tags:            tags,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// RemoveMenuItemCommand is a request to remove an item from a restaurant's menu.
type RemoveMenuItemCommand struct {
	menuItemID   kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveMenuItemCommand creates a command to remove a menu item.
func NewRemoveMenuItemCommand(menuItemID, restaurantID kernel.UUID) (RemoveMenuItemCommand, error) {
	if err := errors.Join(menuItemID.Validate(), restaurantID.Validate()); err != nil {
		return RemoveMenuItemCommand{}, errs.NewValueIsInvalidErrorWithCause("RemoveMenuItemCommand", err)
	}

	return RemoveMenuItemCommand{
		menuItemID:   menuItemID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuItemCommandIsNotConstructed)
}

// MenuItemCommandHandler handles menu writes. Every operation verifies the
// restaurant exists first so a menu can never outlive its restaurant.
type MenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewMenuItemCommandHandler creates a handler for menu item commands.
func NewMenuItemCommandHandler(uowFactory MenuUoWFactory) MenuItemCommandHandler {
	return MenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleAdd adds a menu item and returns it.
func (h MenuItemCommandHandler) HandleAdd(ctx context.Context, cmd AddMenuItemCommand) (*restaurant.MenuItem, error) {
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

	if _, err := uow.RestaurantRepository().Get(ctx, cmd.restaurantID); err != nil {
		return nil, err
	}

	item, err := restaurant.NewMenuItem(
		cmd.menuItemID,
		cmd.restaurantID,
		cmd.name,
		cmd.description,
		cmd.price,
		cmd.isAvailable,
		cmd.preparationTime,
		cmd.tags,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}

// HandleUpdate applies the non-nil fields and returns the menu item.
func (h MenuItemCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateMenuItemCommand) (*restaurant.MenuItem, error) {
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

	menuRepo := uow.MenuItemRepository()

	item, err := h.getOwnedItem(ctx, menuRepo, cmd.menuItemID, cmd.restaurantID)
	if err != nil {
		return nil, err
	}

	var applyErr error
	if cmd.name != nil {
		applyErr = errors.Join(applyErr, item.SetName(*cmd.name))
	}
	if cmd.description != nil {
		item.SetDescription(*cmd.description)
	}
	if cmd.price != nil {
		applyErr = errors.Join(applyErr, item.SetPrice(*cmd.price))
	}
	if cmd.isAvailable != nil {
		item.SetAvailability(*cmd.isAvailable)
	}
	if cmd.preparationTime != nil {
		applyErr = errors.Join(applyErr, item.SetPreparationTime(cmd.preparationTime))
	}
	if cmd.tags != nil {
		item.SetTags(cmd.tags)
	}
	if applyErr != nil {
		return nil, applyErr
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}

// HandleRemove removes a menu item. Existing orders keep their snapshotted
// line data.
func (h MenuItemCommandHandler) HandleRemove(ctx context.Context, cmd RemoveMenuItemCommand) error {
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

	menuRepo := uow.MenuItemRepository()

	item, err := h.getOwnedItem(ctx, menuRepo, cmd.menuItemID, cmd.restaurantID)
	if err != nil {
		return err
	}

	if err = menuRepo.Delete(ctx, item.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h MenuItemCommandHandler) getOwnedItem(
	ctx context.Context,
	menuRepo ports.MenuItemRepository,
	menuItemID, restaurantID kernel.UUID,
) (*restaurant.MenuItem, error) {
	item, err := menuRepo.Get(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if !item.RestaurantID().IsEqual(restaurantID) {
		return nil, errs.NewObjectNotFoundError("menuItem", menuItemID)
	}
	return item, nil
}
