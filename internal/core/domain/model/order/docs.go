// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is created in the pending status and moves through
// preparing, awaiting_drone, and enroute toward delivered; cancelled is
// reachable from any non-terminal status. Delivered and cancelled are
// terminal: no transition or drone assignment leaves them.
//
// Pricing follows the round-per-line-then-sum policy: each line total is
// unitPrice x quantity rounded to two decimal places, and the order total is
// the sum of those already-rounded line totals.
//
// The drone reference is kept as history after the order completes; releasing
// the physical drone is reported to the caller, which owns the drone record.
package order
