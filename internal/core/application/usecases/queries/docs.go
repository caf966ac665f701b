// Package queries contains read-only operations over orders and users.
// Queries never modify state: each is a validated query object plus a handler that
// returns presentation-ready responses.
package queries
