package commands_test

import (
	"testing"
	"time"

	"foodfast/internal/core/application/usecases/commands"
	"foodfast/internal/core/domain/model/drone"
	"foodfast/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_Progress(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder()
	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Preparing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, updated.Status())
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_DeliveredReleasesDrone(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder()
	testDrone := newTestDrone("DRONE-1", 70, drone.Available)
	require.NoError(t, testDrone.BeginDelivery())
	require.NoError(t, testOrder.AssignDrone(testDrone.ID(), time.Now().UTC()))

	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Delivered)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once(),
		droneRepo.On("Update", ctx, testDrone).Return(nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, updated.Status())
	assert.Equal(t, drone.Available, testDrone.Status())
	// The order keeps the drone reference as delivery history.
	require.NotNil(t, testOrder.Drone())
	assert.NotNil(t, testOrder.DeliveredAt())
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelEnrouteReleasesDrone(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder()
	testDrone := newTestDrone("DRONE-1", 70, drone.Available)
	require.NoError(t, testDrone.BeginDelivery())
	require.NoError(t, testOrder.AssignDrone(testDrone.ID(), time.Now().UTC()))

	cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once(),
		droneRepo.On("Update", ctx, testDrone).Return(nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, updated.Status())
	assert.Equal(t, drone.Available, testDrone.Status())
	assert.NotNil(t, testOrder.CancelledAt())
}

func TestChangeOrderStatusCommandHandler_Handle_TerminalOrderRejected(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder()
	_, err := testOrder.Cancel(time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Preparing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderCompleted)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
