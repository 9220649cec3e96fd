package jsonstore

import (
	"context"

	"foodfast/internal/core/domain/model/customer"
	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
)

type customerDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func customerFromDomain(entity *customer.Customer) customerDTO {
	return customerDTO{
		ID:      entity.ID().String(),
		Name:    entity.Name(),
		Email:   entity.Email(),
		Address: entity.Address(),
		Phone:   entity.Phone(),
	}
}

func customerToDomain(dto customerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(id, dto.Name, dto.Email, dto.Address, dto.Phone)
}

// FileCustomerRepository implements ports.CustomerRepository over the staged
// customer collection.
type FileCustomerRepository struct {
	uow *FileUnitOfWork
}

// Add appends a new customer to the staged collection.
func (r *FileCustomerRepository) Add(_ context.Context, entity *customer.Customer) error {
	if err := entity.Validate(); err != nil {
		return err
	}
	for _, dto := range r.uow.customers {
		if dto.ID == entity.ID().String() {
			return errs.NewValueIsInvalidError("id")
		}
	}

	r.uow.customers = append(r.uow.customers, customerFromDomain(entity))
	r.uow.dirty[customersFile] = true
	return nil
}

// Update replaces the staged record with the entity's current state.
func (r *FileCustomerRepository) Update(_ context.Context, entity *customer.Customer) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	for i, dto := range r.uow.customers {
		if dto.ID == entity.ID().String() {
			r.uow.customers[i] = customerFromDomain(entity)
			r.uow.dirty[customersFile] = true
			return nil
		}
	}
	return errs.NewObjectNotFoundError("customer", entity.ID())
}

// Get retrieves a customer by ID.
func (r *FileCustomerRepository) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, dto := range r.uow.customers {
		if dto.ID == id.String() {
			return customerToDomain(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("customer", id)
}

// GetAll retrieves every customer.
func (r *FileCustomerRepository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0, len(r.uow.customers))
	for _, dto := range r.uow.customers {
		entity, err := customerToDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, entity)
	}
	return customers, nil
}
