package queries

import (
	"errors"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/order"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor")

// ListOrdersQuery retrieves orders, optionally narrowed by status and by
// customer. Both filters combine with AND when present.
type ListOrdersQuery struct {
	status     *order.Status
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for orders. Nil filters mean all orders.
func NewListOrdersQuery(status *order.Status, customerID *kernel.UUID) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
		}
	}

	return ListOrdersQuery{
		status:     status,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when absent.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// CustomerID returns the customer filter, nil when absent.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}
