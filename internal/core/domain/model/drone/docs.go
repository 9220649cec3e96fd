// Package drone contains the Drone aggregate: the physical resource registry
// entry the allocator chooses from.
//
// A drone's status is flipped to delivering exactly when an order binds it and
// released back to available when that order completes; the charging status
// participates in the recharge job, and maintenance takes a drone out of
// rotation entirely. Manual status edits through the API are permitted for
// operators and therefore bypass the delivery coupling on purpose.
package drone
