// Package orderrepo persists order aggregates in the orders table.
package orderrepo

import (
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
)

// OrderDTO is the row shape of the orders table. Services are stored as a JSONB
// array since they are only ever read and written together with their order.
type OrderDTO struct {
	ID        string       `gorm:"type:char(24);primaryKey"`
	Lab       string       `gorm:"not null"`
	Patient   string       `gorm:"not null"`
	Customer  string       `gorm:"not null"`
	Services  []ServiceDTO `gorm:"type:jsonb;serializer:json;not null"`
	State     string       `gorm:"type:varchar(16);not null"`
	Status    string       `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time    `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ServiceDTO is one element of the services JSON array.
type ServiceDTO struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Status string  `json:"status"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	services := make([]ServiceDTO, 0, len(aggregate.Services()))
	for _, s := range aggregate.Services() {
		services = append(services, ServiceDTO{
			Name:   s.Name(),
			Value:  s.Value(),
			Status: s.Status().String(),
		})
	}

	return OrderDTO{
		ID:        aggregate.ID().String(),
		Lab:       aggregate.Lab(),
		Patient:   aggregate.Patient(),
		Customer:  aggregate.Customer(),
		Services:  services,
		State:     aggregate.State().String(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	services := make([]order.Service, 0, len(dto.Services))
	for _, s := range dto.Services {
		status, statusErr := order.ParseServiceStatus(s.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		svc, svcErr := order.NewService(s.Name, s.Value, status)
		if svcErr != nil {
			return nil, svcErr
		}
		services = append(services, svc)
	}

	state, err := order.ParseState(dto.State)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Lab,
		dto.Patient,
		dto.Customer,
		services,
		state,
		status,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
