package http

import (
	"net/http"

	"foodfast/internal/core/application/usecases/commands"
	"foodfast/internal/core/application/usecases/queries"
	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/order"
	"foodfast/internal/pkg/errs"
)

// parseUUID converts a route parameter or body field into a kernel.UUID,
// turning parse failures into 400-mapped validation errors.
func parseUUID(name, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

type createOrderRequest struct {
	CustomerID      string            `json:"customerId"`
	RestaurantID    string            `json:"restaurantId"`
	Items           []createOrderItem `json:"items"`
	DeliveryAddress string            `json:"deliveryAddress"`
	Instructions    string            `json:"instructions"`
	AutoAssignDrone *bool             `json:"autoAssignDrone"`
}

type createOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *Request) {
	var body createOrderRequest
	if err := r.Bind(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	customerID, err := parseUUID("customerId", body.CustomerID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	restaurantID, err := parseUUID("restaurantId", body.RestaurantID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	items := make([]commands.OrderItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		menuItemID, err := parseUUID("menuItemId", item.MenuItemID)
		if err != nil {
			s.respondError(w, err)
			return
		}

		input, err := commands.NewOrderItemInput(menuItemID, item.Quantity)
		if err != nil {
			s.respondError(w, err)
			return
		}
		items = append(items, input)
	}

	// Auto assignment defaults to on when the field is omitted.
	autoAssign := true
	if body.AutoAssignDrone != nil {
		autoAssign = *body.AutoAssignDrone
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customerID,
		restaurantID,
		items,
		body.DeliveryAddress,
		body.Instructions,
		autoAssign,
	)
	if err != nil {
		s.respondError(w, err)
		return
	}

	created, err := s.createOrderHandler.Handle(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusCreated, toOrderResponse(created))
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *Request) {
	var statusFilter *order.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			s.respondError(w, err)
			return
		}
		statusFilter = &status
	}

	var customerFilter *kernel.UUID
	if raw := r.URL.Query().Get("customerId"); raw != "" {
		customerID, err := parseUUID("customerId", raw)
		if err != nil {
			s.respondError(w, err)
			return
		}
		customerFilter = &customerID
	}

	query, err := queries.NewListOrdersQuery(statusFilter, customerFilter)
	if err != nil {
		s.respondError(w, err)
		return
	}

	orders, err := s.listOrdersHandler.Handle(r.Context(), query)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toOrderResponses(orders))
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *Request) {
	orderID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	o, err := s.getOrderHandler.Handle(r.Context(), query)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toOrderResponse(o))
}

func (s *Server) handleOperationalSummary(w http.ResponseWriter, r *Request) {
	summary, err := s.summaryHandler.Handle(r.Context(), queries.NewGetOperationalSummaryQuery())
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, summaryResponse{
		TotalOrders:         summary.TotalOrders,
		DeliveredOrders:     summary.DeliveredOrders,
		AwaitingDroneOrders: summary.AwaitingDroneOrders,
		Revenue:             summary.Revenue.Float64(),
	})
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleChangeOrderStatus(w http.ResponseWriter, r *Request) {
	orderID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	var body changeOrderStatusRequest
	if err := r.Bind(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Status == "" {
		writeError(w, http.StatusBadRequest, "status is required")
		return
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		s.respondError(w, err)
		return
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		s.respondError(w, err)
		return
	}

	updated, err := s.changeOrderStatusHandler.Handle(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toOrderResponse(updated))
}

type assignDroneRequest struct {
	DroneID string `json:"droneId"`
}

func (s *Server) handleAssignDrone(w http.ResponseWriter, r *Request) {
	orderID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	var body assignDroneRequest
	if err := r.Bind(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.DroneID == "" {
		writeError(w, http.StatusBadRequest, "droneId is required")
		return
	}

	droneID, err := parseUUID("droneId", body.DroneID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	cmd, err := commands.NewAssignDroneCommand(orderID, droneID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	updated, err := s.assignDroneHandler.Handle(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toOrderResponse(updated))
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *Request) {
	orderID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	cancelled, err := s.changeOrderStatusHandler.Handle(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toOrderResponse(cancelled))
}
