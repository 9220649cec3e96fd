package queries

import (
	"context"

	"foodfast/internal/core/domain/model/order"
	"foodfast/internal/core/ports"
)

// ListOrdersQueryHandler reads orders with optional filters, preserving
// creation order.
type ListOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle returns the matching orders. No match is an empty slice, not an error.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	var (
		orders []*order.Order
		err    error
	)
	switch {
	case query.CustomerID() != nil:
		orders, err = orderRepo.GetAllByCustomer(ctx, *query.CustomerID())
	case query.Status() != nil:
		orders, err = orderRepo.GetAllInStatus(ctx, *query.Status())
	default:
		orders, err = orderRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	// When both filters are present the customer read is narrowed further.
	if query.CustomerID() != nil && query.Status() != nil {
		filtered := orders[:0]
		for _, o := range orders {
			if o.Status() == *query.Status() {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	return orders, nil
}
