package commands

import (
	"errors"
	"fmt"
	"strings"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/pkg/errs"
	"labflow/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ServiceInput is a requested line item. An empty Status means PENDING.
type ServiceInput struct {
	Name   string
	Value  float64
	Status string
}

// CreateOrderCommand represents a request to register a new lab order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewID(), "Central Lab", "Jane Roe", "Acme Health",
//	    []ServiceInput{{Name: "Hemogram", Value: 40}})
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.ID
	lab      string
	patient  string
	customer string
	services []order.Service

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request: a valid id, non-blank parties, at
// least one service, and for every service a name, a value greater than zero and a
// known status. All violations are reported together.
func NewCreateOrderCommand(
	orderID kernel.ID,
	lab, patient, customer string,
	services []ServiceInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		requireText("lab", lab, &cmd.lab),
		requireText("patient", patient, &cmd.patient),
		requireText("customer", customer, &cmd.customer),
		cmd.setServices(services),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate reports whether the command was built through NewCreateOrderCommand.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.ID { return c.orderID }
func (c CreateOrderCommand) Lab() string { return c.lab }
func (c CreateOrderCommand) Patient() string { return c.patient }
func (c CreateOrderCommand) Customer() string { return c.customer }

// Services returns a copy of the validated line items.
func (c CreateOrderCommand) Services() []order.Service {
	out := make([]order.Service, len(c.services))
	copy(out, c.services)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func requireText(name, value string, dst *string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}

func (c *CreateOrderCommand) setServices(inputs []ServiceInput) error {
	if len(inputs) == 0 {
		return order.ErrServicesAreRequired
	}

	services := make([]order.Service, 0, len(inputs))
	var problems []error
	for i, in := range inputs {
		status, err := order.ParseServiceStatus(in.Status)
		if err != nil {
			problems = append(problems, fmt.Errorf("services[%d]: %w", i, err))
			continue
		}
		svc, err := order.NewService(in.Name, in.Value, status)
		if err != nil {
			problems = append(problems, fmt.Errorf("services[%d]: %w", i, err))
			continue
		}
		services = append(services, svc)
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	c.services = services
	return nil
}
