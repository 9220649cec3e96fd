// Package restaurant contains the Restaurant entity and its menu items.
// These are catalog records the ordering flow resolves against; they carry
// field validation but no lifecycle of their own.
package restaurant

import (
	"errors"
	"strings"

	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
	"foodfast/internal/pkg/guard"
)

const (
	minRating = 0.0
	maxRating = 5.0
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant bypassed its constructor.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant")
	// ErrNameIsRequired is returned for a blank restaurant name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned for a blank address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrCuisineIsRequired is returned for a blank cuisine type.
	ErrCuisineIsRequired = errs.NewValueIsRequiredError("cuisine")
	// ErrContactPhoneIsRequired is returned for a blank contact phone.
	ErrContactPhoneIsRequired = errs.NewValueIsRequiredError("contactPhone")
)

// Restaurant is a catalog entity describing one partner restaurant.
type Restaurant struct {
	id           kernel.UUID
	name         string
	address      string
	cuisine      string
	contactPhone string
	contactEmail string
	description  string
	rating       *float64

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant. Name, address, cuisine, and contact
// phone are required; rating, when present, must be within [0,5].
func NewRestaurant(
	id kernel.UUID,
	name, address, cuisine, contactPhone, contactEmail, description string,
	rating *float64,
) (*Restaurant, error) {
	r := &Restaurant{
		contactEmail: strings.TrimSpace(contactEmail),
		description:  strings.TrimSpace(description),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.SetName(name),
		r.SetAddress(address),
		r.SetCuisine(cuisine),
		r.SetContactPhone(contactPhone),
		r.SetRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the restaurant came from the constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant identifier.
func (r *Restaurant) ID() kernel.UUID { return r.id }

// Name returns the restaurant name.
func (r *Restaurant) Name() string { return r.name }

// Address returns the street address.
func (r *Restaurant) Address() string { return r.address }

// Cuisine returns the cuisine type.
func (r *Restaurant) Cuisine() string { return r.cuisine }

// ContactPhone returns the contact phone number.
func (r *Restaurant) ContactPhone() string { return r.contactPhone }

// ContactEmail returns the optional contact email.
func (r *Restaurant) ContactEmail() string { return r.contactEmail }

// Description returns the optional free-form description.
func (r *Restaurant) Description() string { return r.description }

// Rating returns the optional rating in [0,5].
func (r *Restaurant) Rating() *float64 { return r.rating }

// SetName updates the restaurant name.
func (r *Restaurant) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

// SetAddress updates the street address.
func (r *Restaurant) SetAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	r.address = address
	return nil
}

// SetCuisine updates the cuisine type.
func (r *Restaurant) SetCuisine(cuisine string) error {
	cuisine = strings.TrimSpace(cuisine)
	if cuisine == "" {
		return ErrCuisineIsRequired
	}
	r.cuisine = cuisine
	return nil
}

// SetContactPhone updates the contact phone number.
func (r *Restaurant) SetContactPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrContactPhoneIsRequired
	}
	r.contactPhone = phone
	return nil
}

// SetContactEmail updates the optional contact email.
func (r *Restaurant) SetContactEmail(email string) {
	r.contactEmail = strings.TrimSpace(email)
}

// SetDescription updates the optional description.
func (r *Restaurant) SetDescription(description string) {
	r.description = strings.TrimSpace(description)
}

// SetRating updates the optional rating, enforcing the [0,5] range.
func (r *Restaurant) SetRating(rating *float64) error {
	if rating != nil && (*rating < minRating || *rating > maxRating) {
		return errs.NewValueIsOutOfRangeError("rating", *rating, minRating, maxRating)
	}
	r.rating = rating
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}
