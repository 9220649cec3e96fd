// Package orderrepo maps order aggregates onto their relational form: an
// orders row plus one order_lines row per line, keyed back by order_id.
package orderrepo

import (
	"time"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order. Seq is a serial used to keep
// creation order without relying on timestamp precision.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq             int64     `gorm:"autoIncrement;uniqueIndex"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string
	Instructions    string
	Lines           []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalPrice      float64        `gorm:"type:numeric(12,2)"`
	Status          string         `gorm:"index"`
	DroneID         *uuid.UUID     `gorm:"type:uuid;index"`
	AutoAssign      bool
	CreatedAt       time.Time
	DispatchedAt    *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one priced line of an order.
type OrderLineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Seq        int64     `gorm:"autoIncrement;uniqueIndex"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Name       string
	Quantity   int
	UnitPrice  float64 `gorm:"type:numeric(12,2)"`
	LineTotal  float64 `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var droneID *uuid.UUID
	if id := aggregate.Drone(); id != nil {
		raw := id.Bytes()
		droneID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:         uuid.New(),
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: line.MenuItemID().Bytes(),
			Name:       line.Name(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice().Float64(),
			LineTotal:  line.Total().Float64(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Instructions:    aggregate.Instructions(),
		Lines:           lines,
		TotalPrice:      aggregate.TotalPrice().Float64(),
		Status:          aggregate.Status().String(),
		DroneID:         droneID,
		AutoAssign:      aggregate.AutoAssign(),
		CreatedAt:       aggregate.CreatedAt(),
		DispatchedAt:    aggregate.DispatchedAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		CancelledAt:     aggregate.CancelledAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		menuItemID, lineErr := kernel.UUIDFromBytes(lineDTO.MenuItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		unitPrice, lineErr := kernel.NewMoneyFromFloat(lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		line, lineErr := order.NewLine(menuItemID, lineDTO.Name, lineDTO.Quantity, unitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var droneID *kernel.UUID
	if dto.DroneID != nil {
		parsed, droneErr := kernel.UUIDFromBytes((*dto.DroneID)[:])
		if droneErr != nil {
			return nil, droneErr
		}
		droneID = &parsed
	}

	return order.RestoreOrder(
		id, customerID, restaurantID,
		dto.DeliveryAddress, dto.Instructions, lines,
		status, droneID, dto.AutoAssign,
		dto.CreatedAt, dto.DispatchedAt, dto.DeliveredAt, dto.CancelledAt,
	)
}
