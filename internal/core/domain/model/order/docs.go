// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding the lab, patient, customer and services
//   - State: the lifecycle state machine Created -> Analysis -> Completed
//   - Status: the orthogonal activity flag used for soft deletion
//   - Service: a billable line item with its own informational status
//
// Key business rules:
//   - an order needs at least one service and a positive total value
//   - the lifecycle only moves forward, one step at a time, and Completed is final
//   - completed orders cannot be deleted
//   - deletion is soft: the record stays with StatusDeleted and its last State
package order
