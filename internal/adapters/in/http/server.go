package http

import (
	"errors"
	"log/slog"
	"net/http"

	"foodfast/internal/core/application/usecases/commands"
	"foodfast/internal/core/application/usecases/queries"
	"foodfast/internal/core/domain/model/drone"
	"foodfast/internal/core/domain/model/order"
	"foodfast/internal/pkg/errs"
)

// Server wires the HTTP surface to the application use cases. It owns the
// route table and the error-to-status mapping at the boundary.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	assignDroneHandler       commands.AssignDroneCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	registerDroneHandler     commands.RegisterDroneCommandHandler
	updateDroneHandler       commands.UpdateDroneCommandHandler
	restaurantHandler        commands.RestaurantCommandHandler
	menuItemHandler          commands.MenuItemCommandHandler
	customerHandler          commands.CustomerCommandHandler

	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	summaryHandler    queries.GetOperationalSummaryQueryHandler
	droneQueries      queries.DroneQueryHandler
	restaurantQueries queries.RestaurantQueryHandler
	customerQueries   queries.CustomerQueryHandler

	logger *slog.Logger
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignDroneHandler commands.AssignDroneCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	registerDroneHandler commands.RegisterDroneCommandHandler,
	updateDroneHandler commands.UpdateDroneCommandHandler,
	restaurantHandler commands.RestaurantCommandHandler,
	menuItemHandler commands.MenuItemCommandHandler,
	customerHandler commands.CustomerCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	summaryHandler queries.GetOperationalSummaryQueryHandler,
	droneQueries queries.DroneQueryHandler,
	restaurantQueries queries.RestaurantQueryHandler,
	customerQueries queries.CustomerQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		assignDroneHandler:       assignDroneHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		registerDroneHandler:     registerDroneHandler,
		updateDroneHandler:       updateDroneHandler,
		restaurantHandler:        restaurantHandler,
		menuItemHandler:          menuItemHandler,
		customerHandler:          customerHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		summaryHandler:           summaryHandler,
		droneQueries:             droneQueries,
		restaurantQueries:        restaurantQueries,
		customerQueries:          customerQueries,
		logger:                   logger.With("component", "http_server"),
	}
}

// Router builds the route table. Literal routes overlapping a parameterized
// pattern ("/orders/summary" vs "/orders/:id") are registered first because
// matching follows registration order.
func (s *Server) Router() *Router {
	router := NewRouter(s.logger)

	router.Handle(http.MethodGet, "/", s.handleRoot)
	router.Handle(http.MethodGet, "/api/v1/health", s.handleHealth)

	router.Handle(http.MethodGet, "/api/v1/restaurants", s.handleListRestaurants)
	router.Handle(http.MethodPost, "/api/v1/restaurants", s.handleCreateRestaurant)
	router.Handle(http.MethodGet, "/api/v1/restaurants/:id", s.handleGetRestaurant)
	router.Handle(http.MethodPut, "/api/v1/restaurants/:id", s.handleUpdateRestaurant)
	router.Handle(http.MethodDelete, "/api/v1/restaurants/:id", s.handleDeleteRestaurant)
	router.Handle(http.MethodGet, "/api/v1/restaurants/:id/menu", s.handleGetMenu)
	router.Handle(http.MethodPost, "/api/v1/restaurants/:id/menu", s.handleAddMenuItem)
	router.Handle(http.MethodPut, "/api/v1/restaurants/:id/menu/:menuItemId", s.handleUpdateMenuItem)
	router.Handle(http.MethodDelete, "/api/v1/restaurants/:id/menu/:menuItemId", s.handleRemoveMenuItem)

	router.Handle(http.MethodGet, "/api/v1/customers", s.handleListCustomers)
	router.Handle(http.MethodPost, "/api/v1/customers", s.handleCreateCustomer)
	router.Handle(http.MethodGet, "/api/v1/customers/:id", s.handleGetCustomer)
	router.Handle(http.MethodPut, "/api/v1/customers/:id", s.handleUpdateCustomer)

	router.Handle(http.MethodGet, "/api/v1/drones", s.handleListDrones)
	router.Handle(http.MethodPost, "/api/v1/drones", s.handleRegisterDrone)
	router.Handle(http.MethodGet, "/api/v1/drones/:id", s.handleGetDrone)
	router.Handle(http.MethodPut, "/api/v1/drones/:id", s.handleUpdateDrone)
	router.Handle(http.MethodPatch, "/api/v1/drones/:id/status", s.handleChangeDroneStatus)

	router.Handle(http.MethodGet, "/api/v1/orders", s.handleListOrders)
	router.Handle(http.MethodPost, "/api/v1/orders", s.handleCreateOrder)
	router.Handle(http.MethodGet, "/api/v1/orders/summary", s.handleOperationalSummary)
	router.Handle(http.MethodGet, "/api/v1/orders/:id", s.handleGetOrder)
	router.Handle(http.MethodPut, "/api/v1/orders/:id/status", s.handleChangeOrderStatus)
	router.Handle(http.MethodPost, "/api/v1/orders/:id/assign-drone", s.handleAssignDrone)
	router.Handle(http.MethodPost, "/api/v1/orders/:id/cancel", s.handleCancelOrder)

	return router
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *Request) {
	writeData(w, http.StatusOK, map[string]string{
		"service": "foodfast",
		"version": "v1",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondError maps application errors to HTTP statuses. Missing objects are
// 404, validation and business-rule rejections are 400, everything else is a
// logged 500 that never leaks internals.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrOrderCompleted),
		errors.Is(err, drone.ErrDroneUnavailable),
		errors.Is(err, commands.ErrMenuItemNotOnMenu),
		errors.Is(err, commands.ErrMenuItemUnavailable):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
