// Package customerrepo maps customers onto the customers table.
package customerrepo

import (
	"foodfast/internal/core/domain/model/customer"
	"foodfast/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the database row for a customer.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Email   string `gorm:"uniqueIndex"`
	Address string
	Phone   string
}

// TableName overrides GORM's default naming.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(entity *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      entity.ID().Bytes(),
		Name:    entity.Name(),
		Email:   entity.Email(),
		Address: entity.Address(),
		Phone:   entity.Phone(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(id, dto.Name, dto.Email, dto.Address, dto.Phone)
}
