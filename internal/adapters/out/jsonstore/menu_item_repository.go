package jsonstore

import (
	"context"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/restaurant"
	"foodfast/internal/pkg/errs"
)

type menuItemDTO struct {
	ID              string   `json:"id"`
	RestaurantID    string   `json:"restaurantId"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Price           float64  `json:"price"`
	IsAvailable     bool     `json:"isAvailable"`
	PreparationTime *int     `json:"preparationTime"`
	Tags            []string `json:"tags"`
}

func menuItemFromDomain(entity *restaurant.MenuItem) menuItemDTO {
	return menuItemDTO{
		ID:              entity.ID().String(),
		RestaurantID:    entity.RestaurantID().String(),
		Name:            entity.Name(),
		Description:     entity.Description(),
		Price:           entity.Price().Float64(),
		IsAvailable:     entity.IsAvailable(),
		PreparationTime: entity.PreparationTime(),
		Tags:            entity.Tags(),
	}
}

func menuItemToDomain(dto menuItemDTO) (*restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromString(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoneyFromFloat(dto.Price)
	if err != nil {
		return nil, err
	}

	return restaurant.NewMenuItem(
		id, restaurantID, dto.Name, dto.Description,
		price, dto.IsAvailable, dto.PreparationTime, dto.Tags,
	)
}

// FileMenuItemRepository implements ports.MenuItemRepository over the staged
// menu item collection.
type FileMenuItemRepository struct {
	uow *FileUnitOfWork
}

// Add appends a new menu item to the staged collection.
func (r *FileMenuItemRepository) Add(_ context.Context, entity *restaurant.MenuItem) error {
	if err := entity.Validate(); err != nil {
		return err
	}
	for _, dto := range r.uow.menuItems {
		if dto.ID == entity.ID().String() {
			return errs.NewValueIsInvalidError("id")
		}
	}

	r.uow.menuItems = append(r.uow.menuItems, menuItemFromDomain(entity))
	r.uow.dirty[menuItemsFile] = true
	return nil
}

// Update replaces the staged record with the entity's current state.
func (r *FileMenuItemRepository) Update(_ context.Context, entity *restaurant.MenuItem) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	for i, dto := range r.uow.menuItems {
		if dto.ID == entity.ID().String() {
			r.uow.menuItems[i] = menuItemFromDomain(entity)
			r.uow.dirty[menuItemsFile] = true
			return nil
		}
	}
	return errs.NewObjectNotFoundError("menuItem", entity.ID())
}

// Get retrieves a menu item by ID.
func (r *FileMenuItemRepository) Get(_ context.Context, id kernel.UUID) (*restaurant.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, dto := range r.uow.menuItems {
		if dto.ID == id.String() {
			return menuItemToDomain(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("menuItem", id)
}

// GetAllByRestaurant retrieves a restaurant's menu in insertion order.
func (r *FileMenuItemRepository) GetAllByRestaurant(_ context.Context, restaurantID kernel.UUID) ([]*restaurant.MenuItem, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	items := make([]*restaurant.MenuItem, 0)
	for _, dto := range r.uow.menuItems {
		if dto.RestaurantID != restaurantID.String() {
			continue
		}
		entity, err := menuItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, entity)
	}
	return items, nil
}

// Delete removes a menu item from the staged collection.
func (r *FileMenuItemRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	for i, dto := range r.uow.menuItems {
		if dto.ID == id.String() {
			r.uow.menuItems = append(r.uow.menuItems[:i], r.uow.menuItems[i+1:]...)
			r.uow.dirty[menuItemsFile] = true
			return nil
		}
	}
	return errs.NewObjectNotFoundError("menuItem", id)
}
