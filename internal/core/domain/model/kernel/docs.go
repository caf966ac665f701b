// Package kernel provides core domain primitives shared by the labflow aggregates.
//
// The package includes:
//   - ID: a 24-character hexadecimal identifier for entities and aggregates
//   - Email: a normalized, format-checked email address
//   - PageRequest and PageInfo: offset pagination input and the metadata derived from it
//
// These primitives are immutable value objects. Their zero values are invalid and
// fail Validate, so they must be obtained from their constructors.
package kernel
