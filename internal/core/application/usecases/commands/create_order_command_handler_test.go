package commands_test

import (
	"testing"

	"foodfast/internal/core/application/usecases/commands"
	"foodfast/internal/core/domain/model/drone"
	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/core/domain/model/order"
	"foodfast/internal/core/domain/model/restaurant"
	"foodfast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCmd(t *testing.T, customerID, restaurantID kernel.UUID, items []commands.OrderItemInput, autoAssign bool) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, restaurantID, items, "", "ring twice", autoAssign)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testCustomer := newTestCustomer()
	testRestaurant := newTestRestaurant()
	rice := newTestMenuItem(testRestaurant.ID(), "Fried Rice", 9.99, true)
	spring := newTestMenuItem(testRestaurant.ID(), "Spring Rolls", 3.50, true)
	menu := []*restaurant.MenuItem{rice, spring}

	itemA, err := commands.NewOrderItemInput(rice.ID(), 2)
	require.NoError(t, err)
	itemB, err := commands.NewOrderItemInput(spring.ID(), 1)
	require.NoError(t, err)

	cmd := newCreateOrderCmd(t, testCustomer.ID(), testRestaurant.ID(),
		[]commands.OrderItemInput{itemA, itemB}, false)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	restaurantRepo := new(MockRestaurantRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, testCustomer.ID()).Return(testCustomer, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, testRestaurant.ID()).Return(testRestaurant, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByRestaurant", ctx, testRestaurant.ID()).Return(menu, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.Pending, created.Status())
	// Each line rounds on its own: 2*9.99 = 19.98, plus 3.50.
	assert.Equal(t, "23.48", created.TotalPrice().String())
	// Blank address falls back to the customer's stored one.
	assert.Equal(t, testCustomer.Address(), created.DeliveryAddress())
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()

	testRestaurant := newTestRestaurant()
	rice := newTestMenuItem(testRestaurant.ID(), "Fried Rice", 9.99, true)
	item, err := commands.NewOrderItemInput(rice.ID(), 1)
	require.NoError(t, err)

	missingCustomerID := kernel.NewUUID()
	cmd := newCreateOrderCmd(t, missingCustomerID, testRestaurant.ID(), []commands.OrderItemInput{item}, false)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, missingCustomerID).
			Return(nil, errs.NewObjectNotFoundError("customer", missingCustomerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, created)
}

func TestCreateOrderCommandHandler_Handle_ItemFromAnotherRestaurant(t *testing.T) {
	ctx := t.Context()

	testCustomer := newTestCustomer()
	testRestaurant := newTestRestaurant()
	foreignItem, err := commands.NewOrderItemInput(kernel.NewUUID(), 1)
	require.NoError(t, err)

	cmd := newCreateOrderCmd(t, testCustomer.ID(), testRestaurant.ID(), []commands.OrderItemInput{foreignItem}, false)

	customerRepo := new(MockCustomerRepository)
	restaurantRepo := new(MockRestaurantRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, testCustomer.ID()).Return(testCustomer, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, testRestaurant.ID()).Return(testRestaurant, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByRestaurant", ctx, testRestaurant.ID()).
			Return([]*restaurant.MenuItem{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrMenuItemNotOnMenu)
}

func TestCreateOrderCommandHandler_Handle_UnavailableItem(t *testing.T) {
	ctx := t.Context()

	testCustomer := newTestCustomer()
	testRestaurant := newTestRestaurant()
	soldOut := newTestMenuItem(testRestaurant.ID(), "Laksa", 7.80, false)

	item, err := commands.NewOrderItemInput(soldOut.ID(), 1)
	require.NoError(t, err)
	cmd := newCreateOrderCmd(t, testCustomer.ID(), testRestaurant.ID(), []commands.OrderItemInput{item}, false)

	customerRepo := new(MockCustomerRepository)
	restaurantRepo := new(MockRestaurantRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, testCustomer.ID()).Return(testCustomer, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, testRestaurant.ID()).Return(testRestaurant, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByRestaurant", ctx, testRestaurant.ID()).
			Return([]*restaurant.MenuItem{soldOut}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrMenuItemUnavailable)
}

func TestCreateOrderCommandHandler_Handle_AutoAssignDispatches(t *testing.T) {
	ctx := t.Context()

	testCustomer := newTestCustomer()
	testRestaurant := newTestRestaurant()
	rice := newTestMenuItem(testRestaurant.ID(), "Fried Rice", 9.99, true)

	item, err := commands.NewOrderItemInput(rice.ID(), 1)
	require.NoError(t, err)
	cmd := newCreateOrderCmd(t, testCustomer.ID(), testRestaurant.ID(), []commands.OrderItemInput{item}, true)

	best := newTestDrone("DRONE-2", 95, drone.Available)
	fleet := []*drone.Drone{
		newTestDrone("DRONE-1", 40, drone.Available),
		best,
	}

	orderRepo := new(MockOrderRepository)
	droneRepo := new(MockDroneRepository)
	customerRepo := new(MockCustomerRepository)
	restaurantRepo := new(MockRestaurantRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, testCustomer.ID()).Return(testCustomer, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, testRestaurant.ID()).Return(testRestaurant, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByRestaurant", ctx, testRestaurant.ID()).
			Return([]*restaurant.MenuItem{rice}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("GetAll", ctx).Return(fleet, nil).Once(),
		droneRepo.On("Update", ctx, best).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Enroute, created.Status())
	require.NotNil(t, created.Drone())
	assert.True(t, created.Drone().IsEqual(best.ID()))
	assert.Equal(t, drone.Delivering, best.Status())
	assert.NotNil(t, created.DispatchedAt())
}

func TestCreateOrderCommandHandler_Handle_AutoAssignNoDrones(t *testing.T) {
	ctx := t.Context()

	testCustomer := newTestCustomer()
	testRestaurant := newTestRestaurant()
	rice := newTestMenuItem(testRestaurant.ID(), "Fried Rice", 9.99, true)

	item, err := commands.NewOrderItemInput(rice.ID(), 1)
	require.NoError(t, err)
	cmd := newCreateOrderCmd(t, testCustomer.ID(), testRestaurant.ID(), []commands.OrderItemInput{item}, true)

	orderRepo := new(MockOrderRepository)
	droneRepo := new(MockDroneRepository)
	customerRepo := new(MockCustomerRepository)
	restaurantRepo := new(MockRestaurantRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, testCustomer.ID()).Return(testCustomer, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, testRestaurant.ID()).Return(testRestaurant, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByRestaurant", ctx, testRestaurant.ID()).
			Return([]*restaurant.MenuItem{rice}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("GetAll", ctx).Return([]*drone.Drone{}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	// An empty fleet is not an error; the order just waits.
	require.NoError(t, err)
	assert.Equal(t, order.AwaitingDrone, created.Status())
	assert.Nil(t, created.Drone())
}
