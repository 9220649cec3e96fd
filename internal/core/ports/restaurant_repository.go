package ports

import (
	"context"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/restaurant"
)

// RestaurantRepository persists Restaurant entities.
type RestaurantRepository interface {
	Add(ctx context.Context, entity *restaurant.Restaurant) error
	Update(ctx context.Context, entity *restaurant.Restaurant) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// MenuItemRepository persists a restaurant's menu items.
type MenuItemRepository interface {
	Add(ctx context.Context, entity *restaurant.MenuItem) error
	Update(ctx context.Context, entity *restaurant.MenuItem) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.MenuItem, error)
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.MenuItem, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
