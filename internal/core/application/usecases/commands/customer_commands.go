package commands

import (
	"context"
	"errors"

	"foodfast/internal/core/domain/model/customer"
	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor")
	ErrUpdateCustomerCommandIsNotConstructed = errors.New(
		"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor")
)

// CreateCustomerCommand is a request to register a customer.
type CreateCustomerCommand struct {
	customerID kernel.UUID
	name       string
	email      string
	address    string
	phone      string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(customerID kernel.UUID, name, email, address, phone string) (CreateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateCustomerCommand{}, errs.NewValueIsInvalidErrorWithCause("CreateCustomerCommand", err)
	}

	return CreateCustomerCommand{
		customerID: customerID,
		name:       name,
		email:      email,
		address:    address,
		phone:      phone,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// UpdateCustomerCommand is a partial update of a customer's profile.
type UpdateCustomerCommand struct {
	customerID kernel.UUID
	name       *string
	email      *string
	address    *string
	phone      *string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer.
func NewUpdateCustomerCommand(customerID kernel.UUID, name, email, address, phone *string) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, errs.NewValueIsInvalidErrorWithCause("UpdateCustomerCommand", err)
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		name:       name,
		email:      email,
		address:    address,
		phone:      phone,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerCommandHandler handles customer profile writes.
type CustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCustomerCommandHandler creates a handler for customer commands.
func NewCustomerCommandHandler(uowFactory CustomerUoWFactory) CustomerCommandHandler {
	return CustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleCreate registers a customer and returns it.
func (h CustomerCommandHandler) HandleCreate(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(cmd.customerID, cmd.name, cmd.email, cmd.address, cmd.phone)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// HandleUpdate applies the non-nil fields and returns the customer.
func (h CustomerCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	c, err := customerRepo.Get(ctx, cmd.customerID)
	if err != nil {
		return nil, err
	}

	var applyErr error
	if cmd.name != nil {
		applyErr = errors.Join(applyErr, c.SetName(*cmd.name))
	}
	if cmd.email != nil {
		applyErr = errors.Join(applyErr, c.SetEmail(*cmd.email))
	}
	if cmd.address != nil {
		applyErr = errors.Join(applyErr, c.SetAddress(*cmd.address))
	}
	if cmd.phone != nil {
		applyErr = errors.Join(applyErr, c.SetPhone(*cmd.phone))
	}
	if applyErr != nil {
		return nil, applyErr
	}

	if err = customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
