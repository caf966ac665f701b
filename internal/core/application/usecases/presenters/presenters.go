// Package presenters shapes domain aggregates into the representations returned to
// clients. Presenters never expose password hashes or deletion timestamps.
package presenters

import (
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/domain/model/user"
)

type ServiceResponse struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Status string  `json:"status"`
}

type OrderResponse struct {
	ID        string            `json:"id"`
	Lab       string            `json:"lab"`
	Patient   string            `json:"patient"`
	Customer  string            `json:"customer"`
	State     string            `json:"state"`
	Status    string            `json:"status"`
	Services  []ServiceResponse `json:"services"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Page is a page of items together with its pagination metadata.
type Page[T any] struct {
	Data       []T             `json:"data"`
	Pagination kernel.PageInfo `json:"pagination"`
}

func Order(o *order.Order) OrderResponse {
	services := o.Services()
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceResponse{Name: s.Name(), Value: s.Value(), Status: s.Status().String()})
	}
	return OrderResponse{
		ID:        o.ID().String(),
		Lab:       o.Lab(),
		Patient:   o.Patient(),
		Customer:  o.Customer(),
		State:     o.State().String(),
		Status:    o.Status().String(),
		Services:  out,
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func User(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID().String(),
		Email:     u.Email().String(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func Auth(token string, u *user.User) AuthResponse {
	return AuthResponse{Token: token, User: User(u)}
}

// Orders presents a page of orders.
func Orders(orders []*order.Order, req kernel.PageRequest, total int64) Page[OrderResponse] {
	return newPage(orders, Order, req, total)
}

// Users presents a page of users.
func Users(users []*user.User, req kernel.PageRequest, total int64) Page[UserResponse] {
	return newPage(users, User, req, total)
}

func newPage[A, R any](items []A, present func(A) R, req kernel.PageRequest, total int64) Page[R] {
	data := make([]R, 0, len(items))
	for _, item := range items {
		data = append(data, present(item))
	}
	return Page[R]{Data: data, Pagination: kernel.NewPageInfo(req, total)}
}
