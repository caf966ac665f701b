package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"labflow/internal/pkg/errs"
)

// ServiceStatus tracks an individual billable service. It is informational and
// does not gate order advancement.
type ServiceStatus int

const (
	ServiceStatusUnknown ServiceStatus = iota
	ServicePending
	ServiceDone
)

func getServiceStatusStrings() map[ServiceStatus]string {
	return map[ServiceStatus]string{
		ServiceStatusUnknown: "UNKNOWN",
		ServicePending:       "PENDING",
		ServiceDone:          "DONE",
	}
}

// ParseServiceStatus accepts "PENDING" or "DONE" in any case. An empty string
// yields ServicePending.
func ParseServiceStatus(s string) (ServiceStatus, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if normalized == "" {
		return ServicePending, nil
	}
	for status, str := range getServiceStatusStrings() {
		if status != ServiceStatusUnknown && str == normalized {
			return status, nil
		}
	}
	return ServiceStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"service status", fmt.Errorf("%q is not a valid service status", s))
}

// String implements fmt.Stringer. Invalid values render as "UNKNOWN".
func (s ServiceStatus) String() string {
	if str, ok := getServiceStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Service is a billable line item of an order.
type Service struct {
	name   string
	value  float64
	status ServiceStatus
}

// NewService validates a line item: the name must be non-blank, the value a finite
// number greater than zero and the status known.
func NewService(name string, value float64, status ServiceStatus) (Service, error) {
	name = strings.TrimSpace(name)

	var nameErr, valueErr, statusErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("service name")
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		valueErr = errs.NewValueIsInvalidErrorWithCause("service value", fmt.Errorf("%v is not greater than 0", value))
	}
	if status != ServicePending && status != ServiceDone {
		statusErr = errs.NewValueIsInvalidErrorWithCause("service status", fmt.Errorf("%d is not a valid service status", status))
	}
	if err := errors.Join(nameErr, valueErr, statusErr); err != nil {
		return Service{}, err
	}

	return Service{name: name, value: value, status: status}, nil
}

// Name is the trimmed service name.
func (s Service) Name() string { return s.name }

// Value is the billed amount, always greater than zero.
func (s Service) Value() float64 { return s.value }

// Status is the informational processing status of the line item.
func (s Service) Status() ServiceStatus { return s.status }
