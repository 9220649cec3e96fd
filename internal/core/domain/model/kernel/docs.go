// Package kernel provides the domain primitives shared by every aggregate in
// the system.
//
// It contains:
//   - UUID: a validated unique identifier wrapping github.com/google/uuid
//   - Money: a two-decimal currency amount backed by shopspring/decimal
//
// Both types are immutable value objects. Their zero values are invalid and
// fail Validate, so aggregates can detect fields that bypassed a constructor.
package kernel
