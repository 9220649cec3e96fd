package jsonstore

import (
	"context"
	"time"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/order"
	"foodfast/internal/pkg/errs"
)

type orderLineDTO struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	LineTotal  float64 `json:"lineTotal"`
}

type orderDTO struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customerId"`
	RestaurantID    string         `json:"restaurantId"`
	DeliveryAddress string         `json:"deliveryAddress"`
	Instructions    string         `json:"instructions,omitempty"`
	Items           []orderLineDTO `json:"items"`
	TotalPrice      float64        `json:"totalPrice"`
	Status          string         `json:"status"`
	DroneID         *string        `json:"droneId"`
	AutoAssign      bool           `json:"autoAssign"`
	CreatedAt       time.Time      `json:"createdAt"`
	DispatchedAt    *time.Time     `json:"dispatchedAt"`
	DeliveredAt     *time.Time     `json:"deliveredAt"`
	CancelledAt     *time.Time     `json:"cancelledAt"`
}

func orderFromDomain(aggregate *order.Order) orderDTO {
	lines := make([]orderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, orderLineDTO{
			MenuItemID: line.MenuItemID().String(),
			Name:       line.Name(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice().Float64(),
			LineTotal:  line.Total().Float64(),
		})
	}

	var droneID *string
	if id := aggregate.Drone(); id != nil {
		s := id.String()
		droneID = &s
	}

	return orderDTO{
		ID:              aggregate.ID().String(),
		CustomerID:      aggregate.CustomerID().String(),
		RestaurantID:    aggregate.RestaurantID().String(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Instructions:    aggregate.Instructions(),
		Items:           lines,
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

func orderToDomain(dto orderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromString(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		menuItemID, lineErr := kernel.UUIDFromString(item.MenuItemID)
		if lineErr != nil {
			return nil, lineErr
		}
		unitPrice, lineErr := kernel.NewMoneyFromFloat(item.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		line, lineErr := order.NewLine(menuItemID, item.Name, item.Quantity, unitPrice)
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
		parsed, droneErr := kernel.UUIDFromString(*dto.DroneID)
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

// FileOrderRepository implements ports.OrderRepository over the staged
// order collection. Slice order is creation order.
type FileOrderRepository struct {
	uow *FileUnitOfWork
}

// Add appends a new order to the staged collection.
func (r *FileOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	for _, dto := range r.uow.orders {
		if dto.ID == aggregate.ID().String() {
			return errs.NewValueIsInvalidError("id")
		}
	}

	r.uow.orders = append(r.uow.orders, orderFromDomain(aggregate))
	r.uow.dirty[ordersFile] = true
	return nil
}

// Update replaces the staged record with the aggregate's current state.
func (r *FileOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for i, dto := range r.uow.orders {
		if dto.ID == aggregate.ID().String() {
			r.uow.orders[i] = orderFromDomain(aggregate)
			r.uow.dirty[ordersFile] = true
			return nil
		}
	}
	return errs.NewObjectNotFoundError("order", aggregate.ID())
}

// Get retrieves an order by ID.
func (r *FileOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, dto := range r.uow.orders {
		if dto.ID == id.String() {
			return orderToDomain(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("order", id)
}

// GetAll retrieves every order in creation order.
func (r *FileOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(r.uow.orders))
	for _, dto := range r.uow.orders {
		aggregate, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

// GetAllInStatus retrieves orders in the given status, in creation order.
func (r *FileOrderRepository) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)
	for _, dto := range r.uow.orders {
		if dto.Status != status.String() {
			continue
		}
		aggregate, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

// GetAllByCustomer retrieves a customer's orders in creation order.
func (r *FileOrderRepository) GetAllByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0)
	for _, dto := range r.uow.orders {
		if dto.CustomerID != customerID.String() {
			continue
		}
		aggregate, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

// GetFirstAwaitingDrone retrieves the oldest order parked in awaiting_drone.
func (r *FileOrderRepository) GetFirstAwaitingDrone(_ context.Context) (*order.Order, error) {
	for _, dto := range r.uow.orders {
		if dto.Status == order.AwaitingDrone.String() {
			return orderToDomain(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("order", "first awaiting drone")
}
