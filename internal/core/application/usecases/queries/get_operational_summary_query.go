package queries

import (
	"errors"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/guard"
)

var ErrGetOperationalSummaryQueryIsNotConstructed = errors.New(
	"GetOperationalSummaryQuery must be created via NewGetOperationalSummaryQuery constructor")

// GetOperationalSummaryQuery retrieves the dashboard counters: order totals,
// delivery progress, and revenue.
type GetOperationalSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOperationalSummaryQuery creates a parameterless summary query.
func NewGetOperationalSummaryQuery() GetOperationalSummaryQuery {
	return GetOperationalSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOperationalSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOperationalSummaryQueryIsNotConstructed)
}

// GetOperationalSummaryQueryResponse is the summary read model. Revenue sums
// the totals of every non-cancelled order regardless of delivery progress.
type GetOperationalSummaryQueryResponse struct {
	TotalOrders         int
	DeliveredOrders     int
	AwaitingDroneOrders int
	Revenue             kernel.Money
}
