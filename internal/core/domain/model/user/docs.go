// Package user provides the User aggregate: an account identified by a unique email
// and authenticated by a password hash. Users are soft deleted; a deleted user frees
// its email for a new registration.
package user
