package jsonstore

import (
	"context"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/restaurant"
	"foodfast/internal/pkg/errs"
)

type restaurantDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Cuisine      string   `json:"cuisine"`
	ContactPhone string   `json:"contactPhone"`
	ContactEmail string   `json:"contactEmail,omitempty"`
	Description  string   `json:"description,omitempty"`
	Rating       *float64 `json:"rating"`
}

func restaurantFromDomain(entity *restaurant.Restaurant) restaurantDTO {
	return restaurantDTO{
		ID:           entity.ID().String(),
		Name:         entity.Name(),
		Address:      entity.Address(),
		Cuisine:      entity.Cuisine(),
		ContactPhone: entity.ContactPhone(),
		ContactEmail: entity.ContactEmail(),
		Description:  entity.Description(),
		Rating:       entity.Rating(),
	}
}

func restaurantToDomain(dto restaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(
		id, dto.Name, dto.Address, dto.Cuisine,
		dto.ContactPhone, dto.ContactEmail, dto.Description, dto.Rating,
	)
}

// FileRestaurantRepository implements ports.RestaurantRepository over the
// staged restaurant collection.
type FileRestaurantRepository struct {
	uow *FileUnitOfWork
}

// Add appends a new restaurant to the staged collection.
func (r *FileRestaurantRepository) Add(_ context.Context, entity *restaurant.Restaurant) error {
	if err := entity.Validate(); err != nil {
		return err
	}
	for _, dto := range r.uow.restaurants {
		if dto.ID == entity.ID().String() {
			return errs.NewValueIsInvalidError("id")
		}
	}

	r.uow.restaurants = append(r.uow.restaurants, restaurantFromDomain(entity))
	r.uow.dirty[restaurantsFile] = true
	return nil
}

// Update replaces the staged record with the entity's current state.
func (r *FileRestaurantRepository) Update(_ context.Context, entity *restaurant.Restaurant) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	for i, dto := range r.uow.restaurants {
		if dto.ID == entity.ID().String() {
			r.uow.restaurants[i] = restaurantFromDomain(entity)
			r.uow.dirty[restaurantsFile] = true
			return nil
		}
	}
	return errs.NewObjectNotFoundError("restaurant", entity.ID())
}

// Get retrieves a restaurant by ID.
func (r *FileRestaurantRepository) Get(_ context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, dto := range r.uow.restaurants {
		if dto.ID == id.String() {
			return restaurantToDomain(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("restaurant", id)
}

// GetAll retrieves every restaurant.
func (r *FileRestaurantRepository) GetAll(_ context.Context) ([]*restaurant.Restaurant, error) {
	restaurants := make([]*restaurant.Restaurant, 0, len(r.uow.restaurants))
	for _, dto := range r.uow.restaurants {
		entity, err := restaurantToDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, entity)
	}
	return restaurants, nil
}

// Delete removes a restaurant and its menu items in the same staged change.
func (r *FileRestaurantRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	found := false
	kept := r.uow.restaurants[:0]
	for _, dto := range r.uow.restaurants {
		if dto.ID == id.String() {
			found = true
			continue
		}
		kept = append(kept, dto)
	}
	if !found {
		return errs.NewObjectNotFoundError("restaurant", id)
	}
	r.uow.restaurants = kept
	r.uow.dirty[restaurantsFile] = true

	keptItems := r.uow.menuItems[:0]
	for _, dto := range r.uow.menuItems {
		if dto.RestaurantID == id.String() {
			continue
		}
		keptItems = append(keptItems, dto)
	}
	if len(keptItems) != len(r.uow.menuItems) {
		r.uow.menuItems = keptItems
		r.uow.dirty[menuItemsFile] = true
	}

	return nil
}
