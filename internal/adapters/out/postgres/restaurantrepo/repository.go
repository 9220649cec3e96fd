package restaurantrepo

import (
	"context"
	"errors"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/restaurant"
	"foodfast/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Add saves a new restaurant.
func (r *GormRestaurantRepository) Add(ctx context.Context, entity *restaurant.Restaurant) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(entity)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing restaurant.
func (r *GormRestaurantRepository) Update(ctx context.Context, entity *restaurant.Restaurant) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(entity)
	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", entity.ID().String())
	}
	return nil
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("restaurant", id.String())
	}
	if err != nil {
		return nil, err
	}

	return restaurantToDomain(dto)
}

// GetAll retrieves every restaurant.
func (r *GormRestaurantRepository) GetAll(ctx context.Context) ([]*restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	restaurants := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		entity, err := restaurantToDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, entity)
	}
	return restaurants, nil
}

// Delete removes a restaurant together with its menu.
func (r *GormRestaurantRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RestaurantDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", id.String())
	}

	return r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "restaurant_id = ?", id.Bytes()).Error
}

// GormMenuItemRepository implements ports.MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// Add saves a new menu item.
func (r *GormMenuItemRepository) Add(ctx context.Context, entity *restaurant.MenuItem) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(entity)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing menu item.
func (r *GormMenuItemRepository) Update(ctx context.Context, entity *restaurant.MenuItem) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(entity)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("seq").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItem", entity.ID().String())
	}
	return nil
}

// Get retrieves a menu item by ID.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("menuItem", id.String())
	}
	if err != nil {
		return nil, err
	}

	return menuItemToDomain(dto)
}

// GetAllByRestaurant retrieves a restaurant's menu in insertion order.
func (r *GormMenuItemRepository) GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.MenuItem, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*restaurant.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		entity, itemErr := menuItemToDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, entity)
	}
	return items, nil
}

// Delete removes a menu item.
func (r *GormMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItem", id.String())
	}
	return nil
}
