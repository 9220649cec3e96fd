// Package errs provides the standardized error types used across the
// application. Each type follows the same shape: a sentinel error variable,
// a struct carrying the failure details, constructors with and without an
// underlying cause, and an Unwrap method targeting the sentinel so callers
// can classify failures with errors.Is.
//
// Error types:
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - ValueIsInvalidError: a supplied value failed validation
//   - ValueIsOutOfRangeError: a value fell outside its permitted bounds
//   - ValueIsRequiredError: a required value is missing
//
// The HTTP adapter maps these onto status codes: ObjectNotFound becomes 404,
// the value errors become 400, and anything unclassified becomes 500.
package errs
