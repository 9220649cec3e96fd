package restaurant

import (
	"errors"
	"strings"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem bypassed its constructor.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem")
	// ErrMenuItemNameIsRequired is returned for a blank menu item name.
	ErrMenuItemNameIsRequired = errs.NewValueIsRequiredError("menu item name")
	// ErrPriceIsInvalid is returned for a non-positive price.
	ErrPriceIsInvalid = errs.NewValueIsInvalidError("price must be a positive amount")
	// ErrPreparationTimeIsInvalid is returned for a negative preparation time.
	ErrPreparationTimeIsInvalid = errs.NewValueIsInvalidError("preparation time must not be negative")
)

// MenuItem is one entry on a restaurant's menu. The ordering flow snapshots
// its name and price into order lines, so edits here never rewrite orders.
type MenuItem struct {
	id              kernel.UUID
	restaurantID    kernel.UUID
	name            string
	description     string
	price           kernel.Money
	isAvailable     bool
	preparationTime *int
	tags            []string

	guard guard.ConstructorGuard
}

// NewMenuItem creates a menu item belonging to a restaurant. Price must be
// positive; preparation time, when present, must not be negative.
func NewMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name, description string,
	price kernel.Money,
	isAvailable bool,
	preparationTime *int,
	tags []string,
) (*MenuItem, error) {
	mi := &MenuItem{
		description: strings.TrimSpace(description),
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		mi.setID(id),
		mi.setRestaurantID(restaurantID),
		mi.SetName(name),
		mi.SetPrice(price),
		mi.SetPreparationTime(preparationTime),
	); err != nil {
		return nil, err
	}

	mi.SetTags(tags)
	return mi, nil
}

// Validate ensures the menu item came from the constructor.
func (mi *MenuItem) Validate() error {
	if mi == nil {
		return ErrMenuItemIsNotConstructed
	}
	return mi.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the menu item identifier.
func (mi *MenuItem) ID() kernel.UUID { return mi.id }

// RestaurantID returns the owning restaurant's identifier.
func (mi *MenuItem) RestaurantID() kernel.UUID { return mi.restaurantID }

// Name returns the menu item name.
func (mi *MenuItem) Name() string { return mi.name }

// Description returns the optional description.
func (mi *MenuItem) Description() string { return mi.description }

// Price returns the unit price.
func (mi *MenuItem) Price() kernel.Money { return mi.price }

// IsAvailable reports whether the item may currently be ordered.
func (mi *MenuItem) IsAvailable() bool { return mi.isAvailable }

// PreparationTime returns the optional preparation time in minutes.
func (mi *MenuItem) PreparationTime() *int { return mi.preparationTime }

// Tags returns the item's tags.
func (mi *MenuItem) Tags() []string { return mi.tags }

// SetName updates the menu item name.
func (mi *MenuItem) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMenuItemNameIsRequired
	}
	mi.name = name
	return nil
}

// SetDescription updates the optional description.
func (mi *MenuItem) SetDescription(description string) {
	mi.description = strings.TrimSpace(description)
}

// SetPrice updates the unit price, which must be positive.
func (mi *MenuItem) SetPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return ErrPriceIsInvalid
	}
	mi.price = price
	return nil
}

// SetAvailability marks the item orderable or not.
func (mi *MenuItem) SetAvailability(isAvailable bool) {
	mi.isAvailable = isAvailable
}

// SetPreparationTime updates the optional preparation time in minutes.
func (mi *MenuItem) SetPreparationTime(preparationTime *int) error {
	if preparationTime != nil && *preparationTime < 0 {
		return ErrPreparationTimeIsInvalid
	}
	mi.preparationTime = preparationTime
	return nil
}

// SetTags replaces the item's tags; nil becomes an empty list.
func (mi *MenuItem) SetTags(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	mi.tags = tags
}

func (mi *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	mi.id = id
	return nil
}

func (mi *MenuItem) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	mi.restaurantID = id
	return nil
}
