package commands_test

import (
	"testing"

	"foodfast/internal/core/application/usecases/commands"
	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItemInput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		item, err := commands.NewOrderItemInput(id, 3)

		require.NoError(t, err)
		assert.True(t, item.MenuItemID().IsEqual(id))
		assert.Equal(t, 3, item.Quantity())
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := commands.NewOrderItemInput(kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := commands.NewOrderItemInput(kernel.NewUUID(), -2)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty menu item id", func(t *testing.T) {
		_, err := commands.NewOrderItemInput(kernel.UUID{}, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewCreateOrderCommand(t *testing.T) {
	item, err := commands.NewOrderItemInput(kernel.NewUUID(), 1)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]commands.OrderItemInput{item}, "9 Hill St", "leave at door", true)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "9 Hill St", cmd.DeliveryAddress())
		assert.Equal(t, "leave at door", cmd.Instructions())
		assert.True(t, cmd.AutoAssign())
	})

	t.Run("no items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, "", "", false)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid customer id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
			[]commands.OrderItemInput{item}, "", "", false)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
