package cmd

import (
	"log/slog"

	httpadapter "foodfast/internal/adapters/in/http"
	"foodfast/internal/core/application/usecases/commands"
	"foodfast/internal/core/application/usecases/queries"
	"foodfast/internal/core/ports"
	"foodfast/internal/jobs"
)

// CompositionRoot wires the storage-agnostic unit of work factory into every
// command and query handler. The narrow per-command factories are satisfied
// by Func adapters over the single ports factory.
type CompositionRoot struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDroneCommandHandler() commands.AssignDroneCommandHandler {
	return commands.NewAssignDroneCommandHandler(c.dispatchFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.dispatchFactory())
}

func (c *CompositionRoot) CreateAllocateDroneCommandHandler() commands.AllocateDroneCommandHandler {
	return commands.NewAllocateDroneCommandHandler(c.dispatchFactory())
}

func (c *CompositionRoot) CreateRegisterDroneCommandHandler() commands.RegisterDroneCommandHandler {
	return commands.NewRegisterDroneCommandHandler(c.droneFactory())
}

func (c *CompositionRoot) CreateUpdateDroneCommandHandler() commands.UpdateDroneCommandHandler {
	return commands.NewUpdateDroneCommandHandler(c.droneFactory())
}

func (c *CompositionRoot) CreateRechargeDronesCommandHandler() commands.RechargeDronesCommandHandler {
	return commands.NewRechargeDronesCommandHandler(c.droneFactory())
}

func (c *CompositionRoot) CreateRestaurantCommandHandler() commands.RestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateMenuItemCommandHandler() commands.MenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCustomerCommandHandler() commands.CustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAllocateDroneCommandHandler(),
		c.CreateRechargeDronesCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignDroneCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateRegisterDroneCommandHandler(),
		c.CreateUpdateDroneCommandHandler(),
		c.CreateRestaurantCommandHandler(),
		c.CreateMenuItemCommandHandler(),
		c.CreateCustomerCommandHandler(),
		queries.NewGetOrderQueryHandler(c.uowFactory),
		queries.NewListOrdersQueryHandler(c.uowFactory),
		queries.NewGetOperationalSummaryQueryHandler(c.uowFactory),
		queries.NewDroneQueryHandler(c.uowFactory),
		queries.NewRestaurantQueryHandler(c.uowFactory),
		queries.NewCustomerQueryHandler(c.uowFactory),
		c.logger,
	)
}

func (c *CompositionRoot) dispatchFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) droneFactory() commands.DroneUoWFactory {
	return FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncDroneUoWFactory func() commands.DroneUoW

func (f FuncDroneUoWFactory) Create() commands.DroneUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}
