// Package customer contains the Customer entity: the account a delivery order
// is placed for. Customers carry field validation only; the ordering flow
// treats them as a read-mostly reference.
package customer

import (
	"errors"
	"strings"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer bypassed its constructor.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")
	// ErrNameIsRequired is returned for a blank customer name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned for a blank email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrAddressIsRequired is returned for a blank address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrPhoneIsRequired is returned for a blank phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// Customer is a registered delivery customer. The address doubles as the
// default delivery destination when an order omits one.
type Customer struct {
	id      kernel.UUID
	name    string
	email   string
	address string
	phone   string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer. All fields are required; the email is
// normalized to lower case.
func NewCustomer(id kernel.UUID, name, email, address, phone string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.SetName(name),
		c.SetEmail(email),
		c.SetAddress(address),
		c.SetPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the customer came from the constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// Name returns the customer's name.
func (c *Customer) Name() string { return c.name }

// Email returns the lower-cased email address.
func (c *Customer) Email() string { return c.email }

// Address returns the customer's address.
func (c *Customer) Address() string { return c.address }

// Phone returns the customer's phone number.
func (c *Customer) Phone() string { return c.phone }

// SetName updates the customer's name.
func (c *Customer) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// SetEmail updates and normalizes the email address.
func (c *Customer) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}

// SetAddress updates the customer's address.
func (c *Customer) SetAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

// SetPhone updates the customer's phone number.
func (c *Customer) SetPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}
