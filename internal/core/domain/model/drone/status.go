package drone

import (
	"fmt"
	"sort"
	"strings"

	"foodfast/internal/pkg/errs"
)

// Status represents the operational state of a drone.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the drone is idle at base and may be dispatched.
	Available

	// Delivering means the drone is bound to exactly one enroute order.
	Delivering

	// Charging means the drone is recharging; the recharge job returns it
	// to available once the battery is full.
	Charging

	// Maintenance takes the drone out of rotation until an operator
	// returns it to available.
	Maintenance
)

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Available:   "available",
		Delivering:  "delivering",
		Charging:    "charging",
		Maintenance: "maintenance",
	}
}

// StatusFromString parses the wire representation of a drone status,
// case-insensitively.
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
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
