// Package http is the inbound HTTP facade. It binds requests, parses
// identifiers and status names at the edge, dispatches to command and query
// handlers, and performs the single mapping from error kind to status code.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/robot"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// The server depends on one-method views of the use case handlers so tests
// can substitute stubs. The concrete command and query handlers satisfy
// these implicitly.
type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	updateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}
	deleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	createRobotHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRobotCommand) (*robot.Robot, error)
	}
	updateRobotStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateRobotStatusCommand) (*robot.Robot, error)
	}
	updateRobotCompletedOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateRobotCompletedOrdersCommand) (*robot.Robot, error)
	}
	deleteRobotHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteRobotCommand) error
	}
	createInventoryItemHandler interface {
		Handle(ctx context.Context, cmd commands.CreateInventoryItemCommand) (*inventory.InventoryItem, error)
	}
	updateInventoryStockHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateInventoryStockCommand) (*inventory.InventoryItem, error)
	}
	deleteInventoryItemHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteInventoryItemCommand) error
	}

	getAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.GetAllOrdersQueryResponse, error)
	}
	getOrderByIDHandler interface {
		Handle(ctx context.Context, query queries.GetOrderByIDQuery) (queries.GetOrderByIDQueryResponse, error)
	}
	getOrderStatsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.GetOrderStatsQueryResponse, error)
	}
	hasActiveOrderForRobotHandler interface {
		Handle(ctx context.Context, query queries.HasActiveOrderForRobotQuery) (bool, error)
	}
	getAllRobotsHandler interface {
		Handle(ctx context.Context, query queries.GetAllRobotsQuery) ([]queries.GetAllRobotsQueryResponse, error)
	}
	getRobotByIDHandler interface {
		Handle(ctx context.Context, query queries.GetRobotByIDQuery) (queries.GetRobotByIDQueryResponse, error)
	}
	getAllInventoryHandler interface {
		Handle(ctx context.Context, query queries.GetAllInventoryQuery) ([]queries.GetAllInventoryQueryResponse, error)
	}
	getInventoryItemByIDHandler interface {
		Handle(ctx context.Context, query queries.GetInventoryItemByIDQuery) (queries.GetInventoryItemByIDQueryResponse, error)
	}
)

// Server handles HTTP requests for orders, robots and inventory.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	logger *slog.Logger

	// Command handlers
	admitOrder                 createOrderHandler
	updateOrderStatus          updateOrderStatusHandler
	deleteOrder                deleteOrderHandler
	createRobot                createRobotHandler
	updateRobotStatus          updateRobotStatusHandler
	updateRobotCompletedOrders updateRobotCompletedOrdersHandler
	deleteRobot                deleteRobotHandler
	createInventoryItem        createInventoryItemHandler
	updateInventoryStock       updateInventoryStockHandler
	deleteInventoryItem        deleteInventoryItemHandler

	// Query handlers
	getAllOrders           getAllOrdersHandler
	getOrderByID           getOrderByIDHandler
	getOrderStats          getOrderStatsHandler
	hasActiveOrderForRobot hasActiveOrderForRobotHandler
	getAllRobots           getAllRobotsHandler
	getRobotByID           getRobotByIDHandler
	getAllInventory        getAllInventoryHandler
	getInventoryItemByID   getInventoryItemByIDHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	logger *slog.Logger,
	admitOrder createOrderHandler,
	updateOrderStatus updateOrderStatusHandler,
	deleteOrder deleteOrderHandler,
	createRobot createRobotHandler,
	updateRobotStatus updateRobotStatusHandler,
	updateRobotCompletedOrders updateRobotCompletedOrdersHandler,
	deleteRobot deleteRobotHandler,
	createInventoryItem createInventoryItemHandler,
	updateInventoryStock updateInventoryStockHandler,
	deleteInventoryItem deleteInventoryItemHandler,
	getAllOrders getAllOrdersHandler,
	getOrderByID getOrderByIDHandler,
	getOrderStats getOrderStatsHandler,
	hasActiveOrderForRobot hasActiveOrderForRobotHandler,
	getAllRobots getAllRobotsHandler,
	getRobotByID getRobotByIDHandler,
	getAllInventory getAllInventoryHandler,
	getInventoryItemByID getInventoryItemByIDHandler,
) *Server {
	return &Server{
		logger:                     logger,
		admitOrder:                 admitOrder,
		updateOrderStatus:          updateOrderStatus,
		deleteOrder:                deleteOrder,
		createRobot:                createRobot,
		updateRobotStatus:          updateRobotStatus,
		updateRobotCompletedOrders: updateRobotCompletedOrders,
		deleteRobot:                deleteRobot,
		createInventoryItem:        createInventoryItem,
		updateInventoryStock:       updateInventoryStock,
		deleteInventoryItem:        deleteInventoryItem,
		getAllOrders:               getAllOrders,
		getOrderByID:               getOrderByID,
		getOrderStats:              getOrderStats,
		hasActiveOrderForRobot:     hasActiveOrderForRobot,
		getAllRobots:               getAllRobots,
		getRobotByID:               getRobotByID,
		getAllInventory:            getAllInventory,
		getInventoryItemByID:       getInventoryItemByID,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance. The static
// /orders/stats route is registered before /orders/:id so it is never
// captured by the id parameter.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.GET("/orders/stats", s.GetOrderStats)
	e.GET("/orders", s.GetOrders)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:id", s.GetOrderByID)
	e.PUT("/orders/:id/status", s.UpdateOrderStatus)
	e.DELETE("/orders/:id", s.DeleteOrder)

	e.GET("/robots", s.GetRobots)
	e.POST("/robots", s.CreateRobot)
	e.GET("/robots/:id", s.GetRobotByID)
	e.GET("/robots/:id/hasActiveOrder", s.HasActiveOrderForRobot)
	e.PUT("/robots/:id/status", s.UpdateRobotStatus)
	e.PUT("/robots/:id/completedOrders", s.UpdateRobotCompletedOrders)
	e.DELETE("/robots/:id", s.DeleteRobot)

	e.GET("/inventory", s.GetInventory)
	e.POST("/inventory", s.CreateInventoryItem)
	e.GET("/inventory/:id", s.GetInventoryItemByID)
	e.PUT("/inventory/:id/stock", s.UpdateInventoryStock)
	e.DELETE("/inventory/:id", s.DeleteInventoryItem)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /orders - retrieves all orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondQueryError(ctx, err, "retrieve orders")
	}

	response := make([]OrderView, len(orders))
	for i, o := range orders {
		response[i] = orderViewFromList(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /orders/:id.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	found, err := s.getOrderByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondQueryError(ctx, err, "retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderViewFromLookup(found))
}

// CreateOrder handles POST /orders - runs the admission protocol.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid request body")
	}

	robotID, err := kernel.UUIDFromString(req.RobotID)
	if err != nil {
		return ctx.String(http.StatusBadRequest, errs.NewValueIsInvalidErrorWithCause("robotId", err).Error())
	}
	itemID, err := kernel.UUIDFromString(req.ItemID)
	if err != nil {
		return ctx.String(http.StatusBadRequest, errs.NewValueIsInvalidErrorWithCause("itemId", err).Error())
	}

	cmd, err := commands.NewCreateOrderCommand(robotID, itemID, req.Quantity, req.Location)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	created, err := s.admitOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewFromDomain(created))
}

// UpdateOrderStatus handles PUT /orders/:id/status. The status name is
// parsed here so a missing or unrecognized name surfaces the exact
// validation message before any use case runs.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	updated, err := s.updateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewFromDomain(updated))
}

// DeleteOrder handles DELETE /orders/:id - rejected while the order is active.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	if err := s.deleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrderStats handles GET /orders/stats - plain text counters.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	query := queries.NewGetOrderStatsQuery()

	stats, err := s.getOrderStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondQueryError(ctx, err, "retrieve order stats")
	}

	return ctx.String(http.StatusOK, fmt.Sprintf(
		"Completed Orders: %d, Canceled Orders: %d",
		stats.CompletedOrders, stats.CanceledOrders))
}

// GetRobots handles GET /robots.
func (s *Server) GetRobots(ctx echo.Context) error {
	query := queries.NewGetAllRobotsQuery()

	robots, err := s.getAllRobots.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondQueryError(ctx, err, "retrieve robots")
	}

	response := make([]RobotView, len(robots))
	for i, r := range robots {
		response[i] = robotViewFromList(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRobotByID handles GET /robots/:id.
func (s *Server) GetRobotByID(ctx echo.Context) error {
	robotID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetRobotByIDQuery(robotID)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	found, err := s.getRobotByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondQueryError(ctx, err, "retrieve robot")
	}

	return ctx.JSON(http.StatusOK, robotViewFromLookup(found))
}

// HasActiveOrderForRobot handles GET /robots/:id/hasActiveOrder.
func (s *Server) HasActiveOrderForRobot(ctx echo.Context) error {
	robotID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewHasActiveOrderForRobotQuery(robotID)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	hasActive, err := s.hasActiveOrderForRobot.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondQueryError(ctx, err, "check active order")
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"hasActiveOrder": hasActive})
}

// CreateRobot handles POST /robots - registers a new robot.
func (s *Server) CreateRobot(ctx echo.Context) error {
	var req CreateRobotRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid request body")
	}

	status, err := robot.StatusFromString(req.Status)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	var currentOrderID *kernel.UUID
	if req.CurrentOrderID != nil {
		orderID, err := kernel.UUIDFromString(*req.CurrentOrderID)
		if err != nil {
			return ctx.String(http.StatusBadRequest, err.Error())
		}
		currentOrderID = &orderID
	}

	cmd, err := commands.NewCreateRobotCommand(status, currentOrderID, req.CompletedOrders, req.Errors)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	created, err := s.createRobot.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, robotViewFromDomain(created))
}

// UpdateRobotStatus handles PUT /robots/:id/status?status=S.
func (s *Server) UpdateRobotStatus(ctx echo.Context) error {
	robotID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	status, err := robot.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewUpdateRobotStatusCommand(robotID, status)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	updated, err := s.updateRobotStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, robotViewFromDomain(updated))
}

// UpdateRobotCompletedOrders handles PUT /robots/:id/completedOrders?completedOrders=N.
func (s *Server) UpdateRobotCompletedOrders(ctx echo.Context) error {
	robotID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	raw := ctx.QueryParam("completedOrders")
	if raw == "" {
		return ctx.String(http.StatusBadRequest, errs.NewValueIsRequiredError("completedOrders").Error())
	}
	completedOrders, err := strconv.Atoi(raw)
	if err != nil {
		return ctx.String(http.StatusBadRequest, errs.NewValueIsInvalidErrorWithCause("completedOrders", err).Error())
	}

	cmd, err := commands.NewUpdateRobotCompletedOrdersCommand(robotID, completedOrders)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	updated, err := s.updateRobotCompletedOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, robotViewFromDomain(updated))
}

// DeleteRobot handles DELETE /robots/:id - rejected while the robot holds
// an active order.
func (s *Server) DeleteRobot(ctx echo.Context) error {
	robotID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewDeleteRobotCommand(robotID)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	if err := s.deleteRobot.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetInventory handles GET /inventory.
func (s *Server) GetInventory(ctx echo.Context) error {
	query := queries.NewGetAllInventoryQuery()

	items, err := s.getAllInventory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondQueryError(ctx, err, "retrieve inventory")
	}

	response := make([]InventoryItemView, len(items))
	for i, item := range items {
		response[i] = inventoryViewFromList(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetInventoryItemByID handles GET /inventory/:id.
func (s *Server) GetInventoryItemByID(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetInventoryItemByIDQuery(itemID)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	found, err := s.getInventoryItemByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondQueryError(ctx, err, "retrieve inventory item")
	}

	return ctx.JSON(http.StatusOK, inventoryViewFromLookup(found))
}

// CreateInventoryItem handles POST /inventory.
func (s *Server) CreateInventoryItem(ctx echo.Context) error {
	var req CreateInventoryItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateInventoryItemCommand(req.Name, req.Stock, req.ReorderThreshold)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	created, err := s.createInventoryItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, inventoryViewFromDomain(created))
}

// UpdateInventoryStock handles PUT /inventory/:id/stock?stock=N - absolute set.
func (s *Server) UpdateInventoryStock(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	raw := ctx.QueryParam("stock")
	if raw == "" {
		return ctx.String(http.StatusBadRequest, errs.NewValueIsRequiredError("stock").Error())
	}
	stock, err := strconv.Atoi(raw)
	if err != nil {
		return ctx.String(http.StatusBadRequest, errs.NewValueIsInvalidErrorWithCause("stock", err).Error())
	}

	cmd, err := commands.NewUpdateInventoryStockCommand(itemID, stock)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	updated, err := s.updateInventoryStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, inventoryViewFromDomain(updated))
}

// DeleteInventoryItem handles DELETE /inventory/:id.
func (s *Server) DeleteInventoryItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewDeleteInventoryItemCommand(itemID)
	if err != nil {
		return ctx.String(http.StatusBadRequest, err.Error())
	}

	if err := s.deleteInventoryItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
