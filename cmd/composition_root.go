package cmd

import (
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.OrderEventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRobotCommandHandler() commands.CreateRobotCommandHandler {
	var f commands.RobotUoWFactory = FuncRobotUoWFactory(func() commands.RobotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRobotCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateRobotStatusCommandHandler() commands.UpdateRobotStatusCommandHandler {
	var f commands.RobotUoWFactory = FuncRobotUoWFactory(func() commands.RobotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRobotStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateRobotCompletedOrdersCommandHandler() commands.UpdateRobotCompletedOrdersCommandHandler {
	var f commands.RobotUoWFactory = FuncRobotUoWFactory(func() commands.RobotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRobotCompletedOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteRobotCommandHandler() commands.DeleteRobotCommandHandler {
	var f commands.RobotUoWFactory = FuncRobotUoWFactory(func() commands.RobotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteRobotCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateInventoryItemCommandHandler() commands.CreateInventoryItemCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInventoryItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateInventoryStockCommandHandler() commands.UpdateInventoryStockCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateInventoryStockCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteInventoryItemCommandHandler() commands.DeleteInventoryItemCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteInventoryItemCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHasActiveOrderForRobotQueryHandler() queries.HasActiveOrderForRobotQueryHandler {
	return queries.NewHasActiveOrderForRobotQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllRobotsQueryHandler() queries.GetAllRobotsQueryHandler {
	return queries.NewGetAllRobotsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRobotByIDQueryHandler() queries.GetRobotByIDQueryHandler {
	return queries.NewGetRobotByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllInventoryQueryHandler() queries.GetAllInventoryQueryHandler {
	return queries.NewGetAllInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryItemByIDQueryHandler() queries.GetInventoryItemByIDQueryHandler {
	return queries.NewGetInventoryItemByIDQueryHandler(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRobotUoWFactory func() commands.RobotUoW

func (f FuncRobotUoWFactory) Create() commands.RobotUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}
