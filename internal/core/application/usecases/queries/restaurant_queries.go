package queries

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
	ErrGetAllRestaurantsQueryIsNotConstructed = errors.New(
		"GetAllRestaurantsQuery must be created via NewGetAllRestaurantsQuery constructor")
	ErrGetRestaurantQueryIsNotConstructed = errors.New(
		"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor")
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor")
)

// GetAllRestaurantsQuery retrieves the restaurant catalog.
type GetAllRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRestaurantsQuery creates a query for all restaurants.
func NewGetAllRestaurantsQuery() GetAllRestaurantsQuery {
	return GetAllRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRestaurantsQueryIsNotConstructed)
}

// GetRestaurantQuery retrieves a single restaurant by its identifier.
type GetRestaurantQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantQuery creates a query for one restaurant.
func NewGetRestaurantQuery(restaurantID kernel.UUID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, errs.NewValueIsInvalidErrorWithCause("GetRestaurantQuery", err)
	}

	return GetRestaurantQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

// GetMenuQuery retrieves a restaurant's menu. The restaurant must exist.
type GetMenuQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for a restaurant's menu.
func NewGetMenuQuery(restaurantID kernel.UUID) (GetMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetMenuQuery{}, errs.NewValueIsInvalidErrorWithCause("GetMenuQuery", err)
	}

	return GetMenuQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// RestaurantQueryHandler serves catalog reads.
type RestaurantQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewRestaurantQueryHandler creates a handler for restaurant queries.
func NewRestaurantQueryHandler(uowFactory ports.UnitOfWorkFactory) RestaurantQueryHandler {
	return RestaurantQueryHandler{uowFactory: uowFactory}
}

// HandleGetAll returns every restaurant.
func (h RestaurantQueryHandler) HandleGetAll(ctx context.Context, query GetAllRestaurantsQuery) ([]*restaurant.Restaurant, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.RestaurantRepository().GetAll(ctx)
}

// HandleGet returns the restaurant or errs.ErrObjectNotFound.
func (h RestaurantQueryHandler) HandleGet(ctx context.Context, query GetRestaurantQuery) (*restaurant.Restaurant, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.RestaurantRepository().Get(ctx, query.restaurantID)
}

// HandleGetMenu returns the restaurant's menu items. A missing restaurant is
// errs.ErrObjectNotFound even when the menu would be empty.
func (h RestaurantQueryHandler) HandleGetMenu(ctx context.Context, query GetMenuQuery) ([]*restaurant.MenuItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.RestaurantRepository().Get(ctx, query.restaurantID); err != nil {
		return nil, err
	}

	return uow.MenuItemRepository().GetAllByRestaurant(ctx, query.restaurantID)
}
