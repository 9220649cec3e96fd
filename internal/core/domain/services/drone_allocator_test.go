package services_test

import (
	"testing"
	"time"

	"foodfast/internal/core/domain/model/drone"
	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/order"
	"foodfast/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDrone(t *testing.T, identifier string, status drone.Status, battery int) *drone.Drone {
	t.Helper()
	d, err := drone.NewDrone(kernel.NewUUID(), identifier, status, 5.0, battery, "Harbor Hub", "", time.Now().UTC())
	require.NoError(t, err)
	return d
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), "Margherita", 1, kernel.MustMoneyFromFloat(12.50))
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"11 Harbor Street", "", []order.Line{line}, true, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func TestDroneAllocator_Allocate(t *testing.T) {
	allocator := services.NewDroneAllocator()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should select the available drone with the highest battery", func(t *testing.T) {
		a := newDrone(t, "A", drone.Available, 40)
		b := newDrone(t, "B", drone.Available, 90)
		c := newDrone(t, "C", drone.Maintenance, 100)
		o := newOrder(t)

		selected, err := allocator.Allocate(o, []*drone.Drone{a, b, c}, now)

		require.NoError(t, err)
		require.NotNil(t, selected)
		assert.True(t, selected.IsEqual(b))
		assert.Equal(t, drone.Delivering, b.Status())
		assert.Equal(t, order.Enroute, o.Status())
		require.NotNil(t, o.Drone())
		assert.True(t, o.Drone().IsEqual(b.ID()))
		require.NotNil(t, o.DispatchedAt())
		assert.Equal(t, now, *o.DispatchedAt())

		// Losing drones are untouched.
		assert.Equal(t, drone.Available, a.Status())
		assert.Equal(t, drone.Maintenance, c.Status())
	})

	t.Run("should park the order when no drone is eligible", func(t *testing.T) {
		lowBattery := newDrone(t, "A", drone.Available, drone.DispatchBatteryFloor-1)
		busy := newDrone(t, "B", drone.Delivering, 100)
		o := newOrder(t)

		selected, err := allocator.Allocate(o, []*drone.Drone{lowBattery, busy}, now)

		require.NoError(t, err)
		assert.Nil(t, selected)
		assert.Equal(t, order.AwaitingDrone, o.Status())
		assert.Nil(t, o.Drone())
	})

	t.Run("should park the order when there are no drones at all", func(t *testing.T) {
		o := newOrder(t)

		selected, err := allocator.Allocate(o, nil, now)

		require.NoError(t, err)
		assert.Nil(t, selected)
		assert.Equal(t, order.AwaitingDrone, o.Status())
	})

	t.Run("should break battery ties by registration order", func(t *testing.T) {
		first := newDrone(t, "A", drone.Available, 80)
		second := newDrone(t, "B", drone.Available, 80)
		o := newOrder(t)

		selected, err := allocator.Allocate(o, []*drone.Drone{first, second}, now)

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(first))
	})

	t.Run("should treat the battery floor as inclusive", func(t *testing.T) {
		edge := newDrone(t, "A", drone.Available, drone.DispatchBatteryFloor)
		o := newOrder(t)

		selected, err := allocator.Allocate(o, []*drone.Drone{edge}, now)

		require.NoError(t, err)
		require.NotNil(t, selected)
		assert.True(t, selected.IsEqual(edge))
	})

	t.Run("selection is deterministic for repeated identical inputs", func(t *testing.T) {
		for range 3 {
			a := newDrone(t, "A", drone.Available, 40)
			b := newDrone(t, "B", drone.Available, 90)
			o := newOrder(t)

			selected, err := allocator.Allocate(o, []*drone.Drone{a, b}, now)

			require.NoError(t, err)
			assert.True(t, selected.IsEqual(b))
		}
	})
}
