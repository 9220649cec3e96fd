package order

import (
	"fmt"
	"sort"
	"strings"

	"foodfast/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending ──> preparing ──> awaiting_drone ──> enroute ──> delivered
//	    │            │               │              │
//	    └────────────┴───────────────┴──────────────┴──> cancelled
//
// Transitions are applied permissively (operators may move an order to any
// valid status), with one hard rule: delivered and cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value
	// helps catch uninitialized Status fields.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	Pending

	// Preparing indicates the restaurant is working on the order.
	Preparing

	// AwaitingDrone indicates allocation ran but no eligible drone existed.
	AwaitingDrone

	// Enroute indicates a drone is carrying the order.
	Enroute

	// Delivered is the successful terminal status.
	Delivered

	// Cancelled is the terminal status for abandoned orders.
	Cancelled
)

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:       "pending",
		Preparing:     "preparing",
		AwaitingDrone: "awaiting_drone",
		Enroute:       "enroute",
		Delivered:     "delivered",
		Cancelled:     "cancelled",
	}
}

// StatusFromString parses the wire representation of a status,
// case-insensitively. Returns a ValueIsInvalidError naming the allowed
// values for anything else.
func StatusFromString(s string) (Status, error) {
	target := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == target {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of: %s", s, strings.Join(AllStatusStrings(), ", ")),
	)
}

// AllStatusStrings returns every valid wire status, sorted, for error messages.
func AllStatusStrings() []string {
	strs := make([]string, 0, len(getValidStatusStrings()))
	for _, s := range getValidStatusStrings() {
		strs = append(strs, s)
	}
	sort.Strings(strs)
	return strs
}

// Validate rejects Unknown and any out-of-range value.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
