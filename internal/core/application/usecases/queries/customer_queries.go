package queries

import (
	"context"
	"errors"

	"foodfast/internal/core/domain/model/customer"
	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/ports"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

var (
	ErrGetAllCustomersQueryIsNotConstructed = errors.New(
		"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor")
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor")
)

// GetAllCustomersQuery retrieves every registered customer.
type GetAllCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCustomersQuery creates a query for all customers.
func NewGetAllCustomersQuery() GetAllCustomersQuery {
	return GetAllCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

// GetCustomerQuery retrieves a single customer by identifier.
type GetCustomerQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query for one customer.
func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, errs.NewValueIsInvalidErrorWithCause("GetCustomerQuery", err)
	}

	return GetCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerQueryHandler serves customer reads.
type CustomerQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewCustomerQueryHandler creates a handler for customer queries.
func NewCustomerQueryHandler(uowFactory ports.UnitOfWorkFactory) CustomerQueryHandler {
	return CustomerQueryHandler{uowFactory: uowFactory}
}

// HandleGetAll returns every customer.
func (h CustomerQueryHandler) HandleGetAll(ctx context.Context, query GetAllCustomersQuery) ([]*customer.Customer, error) {
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

	return uow.CustomerRepository().GetAll(ctx)
}

// HandleGet returns the customer or errs.ErrObjectNotFound.
func (h CustomerQueryHandler) HandleGet(ctx context.Context, query GetCustomerQuery) (*customer.Customer, error) {
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

	return uow.CustomerRepository().Get(ctx, query.customerID)
}
