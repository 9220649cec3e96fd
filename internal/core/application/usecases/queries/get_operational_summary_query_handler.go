package queries

import (
	"context"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/order"
	"foodfast/internal/core/ports"
)

// GetOperationalSummaryQueryHandler computes the operational dashboard
// counters from a single consistent snapshot of the order book.
type GetOperationalSummaryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetOperationalSummaryQueryHandler creates a handler for the summary.
func NewGetOperationalSummaryQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOperationalSummaryQueryHandler {
	return GetOperationalSummaryQueryHandler{uowFactory: uowFactory}
}

// Handle computes the summary.
func (h GetOperationalSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOperationalSummaryQuery,
) (GetOperationalSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOperationalSummaryQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetOperationalSummaryQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return GetOperationalSummaryQueryResponse{}, err
	}

	response := GetOperationalSummaryQueryResponse{
		TotalOrders: len(orders),
		Revenue:     kernel.Money{},
	}
	for _, o := range orders {
		switch o.Status() {
		case order.Delivered:
			response.DeliveredOrders++
		case order.AwaitingDrone:
			response.AwaitingDroneOrders++
		}
		if o.Status() != order.Cancelled {
			response.Revenue = response.Revenue.Add(o.TotalPrice())
		}
	}

	return response, nil
}
