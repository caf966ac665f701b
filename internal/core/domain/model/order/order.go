package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	ErrServicesAreRequired = errs.NewValueIsRequiredErrorWithCause(
		"services", errors.New("at least one service is required"))

	ErrServicesTotalIsNotPositive = errs.NewValueIsInvalidErrorWithCause(
		"services", errors.New("total value of services must be greater than zero"))

	ErrCompletedOrderCannotBeDeleted = errs.NewValueIsInvalidErrorWithCause(
		"state", errors.New("cannot delete a completed order"))

	ErrOrderIsDeleted = errs.NewValueIsInvalidErrorWithCause(
		"status", errors.New("order is deleted"))
)

// Order is the aggregate root of a lab order: who requested which services from
// which lab, and where the order stands in its lifecycle.
//
// Invariants:
//   - a new order has at least one service and a positive total value
//   - lab, patient and customer are non-blank
//   - a new order starts in StateCreated with StatusActive
//   - State only moves along the forward edge returned by State.Advance
//   - Status only moves Active -> Deleted, and never for a completed order
type Order struct {
	id       kernel.ID
	lab      string
	patient  string
	customer string
	services []Service
	state    State
	status   Status

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

func now() time.Time {
	// postgres keeps microseconds
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NewOrder creates an order in StateCreated / StatusActive.
//
// All field errors are reported together; the services rules are checked in order:
// an empty list fails with ErrServicesAreRequired, a non-positive total with
// ErrServicesTotalIsNotPositive.
func NewOrder(id kernel.ID, lab, patient, customer string, services []Service) (*Order, error) {
	ts := now()
	o := &Order{
		state:         StateCreated,
		status:        StatusActive,
		createdAt:     ts,
		updatedAt:     ts,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLab(lab),
		o.setPatient(patient),
		o.setCustomer(customer),
		o.setServices(services),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an order from persistence. It checks identity and the
// state/status enums but not the creation rules, which held when the order was made.
func RestoreOrder(
	id kernel.ID,
	lab, patient, customer string,
	services []Service,
	state State,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), state.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		lab:           lab,
		patient:       patient,
		customer:      customer,
		services:      slices.Clone(services),
		state:         state,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate checks the aggregate invariants after rehydration.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.ID { return o.id }

// Lab returns the laboratory the order was placed with.
func (o *Order) Lab() string { return o.lab }

// Patient returns the patient the samples belong to.
func (o *Order) Patient() string { return o.patient }

// Customer returns who placed the order.
func (o *Order) Customer() string { return o.customer }

// State returns the lifecycle stage.
func (o *Order) State() State { return o.state }

// Status returns the activity flag.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Services returns a copy of the line items.
func (o *Order) Services() []Service {
	return slices.Clone(o.services)
}

// IsActive reports whether the order has not been soft deleted.
func (o *Order) IsActive() bool {
	return o.status == StatusActive
}

// Total sums the service values.
func (o *Order) Total() float64 {
	return totalOf(o.services)
}

// Advance moves the order to the next lifecycle state.
//
// Returns an error without mutating the order when it is deleted or its state is
// terminal.
func (o *Order) Advance() error {
	if !o.IsActive() {
		return ErrOrderIsDeleted
	}

	next, err := o.state.Advance()
	if err != nil {
		return err
	}

	o.state = next
	o.updatedAt = now()
	return nil
}

// Delete soft-deletes the order. Completed orders cannot be deleted and a deleted
// order cannot be deleted again; in both cases the order is left untouched.
func (o *Order) Delete() error {
	if !o.IsActive() {
		return ErrOrderIsDeleted
	}
	if o.state == StateCompleted {
		return ErrCompletedOrderCannotBeDeleted
	}

	o.status = StatusDeleted
	o.updatedAt = now()
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLab(lab string) error {
	lab = strings.TrimSpace(lab)
	if lab == "" {
		return errs.NewValueIsRequiredError("lab")
	}
	o.lab = lab
	return nil
}

func (o *Order) setPatient(patient string) error {
	patient = strings.TrimSpace(patient)
	if patient == "" {
		return errs.NewValueIsRequiredError("patient")
	}
	o.patient = patient
	return nil
}

func (o *Order) setCustomer(customer string) error {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}

func (o *Order) setServices(services []Service) error {
	if len(services) == 0 {
		return ErrServicesAreRequired
	}
	if totalOf(services) <= 0 {
		return ErrServicesTotalIsNotPositive
	}
	o.services = slices.Clone(services)
	return nil
}

func totalOf(services []Service) float64 {
	var total float64
	for _, s := range services {
		total += s.value
	}
	return total
}
