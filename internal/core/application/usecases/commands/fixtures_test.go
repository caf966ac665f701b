package commands_test

import (
	"testing"
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, state order.State) *order.Order {
	t.Helper()
	svc, err := order.NewService("Hemogram", 40, order.ServicePending)
	require.NoError(t, err)
	ts := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(kernel.NewID(), "Central Lab", "Jane Roe", "Acme Health",
		[]order.Service{svc}, state, order.StatusActive, ts, ts)
	require.NoError(t, err)
	return o
}

func restoredUser(t *testing.T, email, hash string) *user.User {
	t.Helper()
	e, err := kernel.NewEmail(email)
	require.NoError(t, err)
	ts := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	u, err := user.RestoreUser(kernel.NewID(), e, hash, ts, ts, nil)
	require.NoError(t, err)
	return u
}
