package order

import (
	"strings"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
)

// Line errors.
var (
	ErrLineNameIsRequired = errs.NewValueIsRequiredError("line item name")
	ErrQuantityIsInvalid  = errs.NewValueIsInvalidError("quantity must be greater than 0")
)

// Line is a value object holding one priced order line. The menu item's name
// and unit price are snapshotted at ordering time so later menu edits do not
// rewrite order history. The line total is computed once, rounded to two
// decimal places, and never recomputed.
type Line struct {
	menuItemID kernel.UUID
	name       string
	quantity   int
	unitPrice  kernel.Money
	lineTotal  kernel.Money
}

// NewLine builds a priced line from a resolved menu item snapshot.
// Quantity must be positive and the unit price must be a positive amount.
func NewLine(menuItemID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Line, error) {
	if err := menuItemID.Validate(); err != nil {
		return Line{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Line{}, ErrLineNameIsRequired
	}
	if quantity <= 0 {
		return Line{}, ErrQuantityIsInvalid
	}
	if err := unitPrice.Validate(); err != nil {
		return Line{}, err
	}
	if !unitPrice.IsPositive() {
		return Line{}, errs.NewValueIsInvalidError("unit price must be a positive amount")
	}

	return Line{
		menuItemID: menuItemID,
		name:       strings.TrimSpace(name),
		quantity:   quantity,
		unitPrice:  unitPrice,
		lineTotal:  unitPrice.MulQuantity(quantity),
	}, nil
}

// MenuItemID returns the ordered menu item's identifier.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Name returns the menu item name snapshot.
func (l Line) Name() string {
	return l.name
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the unit price snapshot.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns the rounded line total.
func (l Line) Total() kernel.Money {
	return l.lineTotal
}
