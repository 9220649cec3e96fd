// Package restaurantrepo maps the restaurant catalog, restaurants and their
// menu items, onto relational tables.
package restaurantrepo

import (
	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RestaurantDTO is the database row for a restaurant.
type RestaurantDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Address      string
	Cuisine      string
	ContactPhone string
	ContactEmail string
	Description  string
	Rating       *float64 `gorm:"type:numeric(2,1)"`
}

// TableName overrides GORM's default naming.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO is the database row for a menu item.
type MenuItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq             int64     `gorm:"autoIncrement;uniqueIndex"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	Description     string
	Price           float64 `gorm:"type:numeric(12,2)"`
	IsAvailable     bool
	PreparationTime *int
	Tags            pq.StringArray `gorm:"type:text[]"`
}

// TableName overrides GORM's default naming.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantFromDomain(entity *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:           entity.ID().Bytes(),
		Name:         entity.Name(),
		Address:      entity.Address(),
		Cuisine:      entity.Cuisine(),
		ContactPhone: entity.ContactPhone(),
		ContactEmail: entity.ContactEmail(),
		Description:  entity.Description(),
		Rating:       entity.Rating(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(
		id, dto.Name, dto.Address, dto.Cuisine,
		dto.ContactPhone, dto.ContactEmail, dto.Description, dto.Rating,
	)
}

func menuItemFromDomain(entity *restaurant.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:              entity.ID().Bytes(),
		RestaurantID:    entity.RestaurantID().Bytes(),
		Name:            entity.Name(),
		Description:     entity.Description(),
		Price:           entity.Price().Float64(),
		IsAvailable:     entity.IsAvailable(),
		PreparationTime: entity.PreparationTime(),
		Tags:            pq.StringArray(entity.Tags()),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoneyFromFloat(dto.Price)
	if err != nil {
		return nil, err
	}

	return restaurant.NewMenuItem(
		id, restaurantID, dto.Name, dto.Description,
		price, dto.IsAvailable, dto.PreparationTime, []string(dto.Tags),
	)
}
