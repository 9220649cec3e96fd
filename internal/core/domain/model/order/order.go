package order

import (
	"errors"
	"strings"
	"time"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order bypassed its constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrOrderCompleted is returned when mutating an order whose status is terminal.
	ErrOrderCompleted = errors.New("order is already delivered or cancelled")
	// ErrLinesAreRequired is returned when creating an order with no line items.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("order must contain at least one line item")
	// ErrDeliveryAddressIsRequired is returned when no delivery address could be resolved.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
)

// Order is the aggregate root of the fulfillment lifecycle. It owns the
// status state machine, the priced line items, and the reference to the
// drone carrying it.
//
// Invariants:
//   - total price equals the sum of the rounded line totals
//   - status moves only through TransitionTo/AssignDrone/MarkAwaitingDrone,
//     and never out of a terminal status
//   - dispatched/delivered/cancelled timestamps are stamped once
//   - the drone reference survives completion as history; the caller frees
//     the drone record itself when TransitionTo reports a release
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress string
	instructions    string
	lines           []Line
	totalPrice      kernel.Money
	status          Status
	droneID         *kernel.UUID
	autoAssign      bool
	createdAt       time.Time
	dispatchedAt    *time.Time
	deliveredAt     *time.Time
	cancelledAt     *time.Time

	isConstructed bool
}

// NewOrder creates a pending order from already-resolved, priced lines.
// The total price is derived here as the sum of the rounded line totals.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	instructions string,
	lines []Line,
	autoAssign bool,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		autoAssign:    autoAssign,
		instructions:  strings.TrimSpace(instructions),
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an order from persistence, including its lifecycle
// timestamps and any drone reference. The status must be valid and must be
// consistent with the drone reference only to the extent the store recorded.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	instructions string,
	lines []Line,
	status Status,
	droneID *kernel.UUID,
	autoAssign bool,
	createdAt time.Time,
	dispatchedAt, deliveredAt, cancelledAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, deliveryAddress, instructions, lines, autoAssign, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if droneID != nil {
		if err = droneID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.droneID = droneID
	o.dispatchedAt = dispatchedAt
	o.deliveredAt = deliveredAt
	o.cancelledAt = cancelledAt
	return o, nil
}

// Validate ensures the order came from a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// Instructions returns the free-form delivery instructions.
func (o *Order) Instructions() string { return o.instructions }

// Lines returns the priced line items.
func (o *Order) Lines() []Line { return o.lines }

// TotalPrice returns the order total.
func (o *Order) TotalPrice() kernel.Money { return o.totalPrice }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Drone returns the carrying drone's identifier, nil when none was ever bound.
// The reference persists after delivery or cancellation as history.
func (o *Order) Drone() *kernel.UUID { return o.droneID }

// AutoAssign reports whether allocation should run at creation time.
func (o *Order) AutoAssign() bool { return o.autoAssign }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// DispatchedAt returns when a drone was first bound, nil if never.
func (o *Order) DispatchedAt() *time.Time { return o.dispatchedAt }

// DeliveredAt returns the delivery timestamp, nil if not delivered.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CancelledAt returns the cancellation timestamp, nil if not cancelled.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// AssignDrone binds a drone to the order, moving it to enroute and stamping
// the dispatch time on first assignment. The caller is responsible for
// checking and flipping the drone's own availability; this method only guards
// the order side, rejecting completed orders with ErrOrderCompleted.
func (o *Order) AssignDrone(droneID kernel.UUID, at time.Time) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrOrderCompleted
	}

	o.status = Enroute
	o.droneID = &droneID
	if o.dispatchedAt == nil {
		stamp := at
		o.dispatchedAt = &stamp
	}
	return nil
}

// MarkAwaitingDrone records that allocation ran and found no eligible drone.
// This is a valid outcome, not a failure; the allocation sweep retries later.
func (o *Order) MarkAwaitingDrone() error {
	if o.status.IsTerminal() {
		return ErrOrderCompleted
	}
	o.status = AwaitingDrone
	return nil
}

// TransitionTo moves the order to newStatus. Any valid status is accepted
// from a non-terminal state; transitions out of delivered or cancelled are
// rejected with ErrOrderCompleted.
//
// Entering delivered or cancelled stamps the matching timestamp and returns
// the drone to release, if one is bound. The drone reference itself is kept.
func (o *Order) TransitionTo(newStatus Status, at time.Time) (*kernel.UUID, error) {
	if err := newStatus.Validate(); err != nil {
		return nil, err
	}
	if o.status.IsTerminal() {
		return nil, ErrOrderCompleted
	}

	o.status = newStatus

	var released *kernel.UUID
	stamp := at
	switch newStatus {
	case Delivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &stamp
		}
		released = o.droneID
	case Cancelled:
		if o.cancelledAt == nil {
			o.cancelledAt = &stamp
		}
		released = o.droneID
	}

	return released, nil
}

// Cancel is shorthand for TransitionTo(Cancelled, at).
func (o *Order) Cancel(at time.Time) (*kernel.UUID, error) {
	return o.TransitionTo(Cancelled, at)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	var total kernel.Money
	for _, l := range lines {
		total = total.Add(l.Total())
	}

	o.lines = lines
	o.totalPrice = total
	return nil
}
