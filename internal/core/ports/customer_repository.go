package ports

import (
	"context"

	"foodfast/internal/core/domain/model/customer"
	"foodfast/internal/core/domain/model/kernel"
)

// CustomerRepository persists Customer entities.
type CustomerRepository interface {
	Add(ctx context.Context, entity *customer.Customer) error
	Update(ctx context.Context, entity *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
