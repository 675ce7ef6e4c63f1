package http

import (
	"time"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/robot"
)

// OrderView is the wire representation of an order. Views are immutable
// snapshots; mutating a view has no effect on stored state.
type OrderView struct {
	ID            string    `json:"id"`
	RobotID       string    `json:"robotId"`
	ItemID        string    `json:"itemId"`
	Quantity      int       `json:"quantity"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// RobotView is the wire representation of a robot. CurrentOrderID is null
// while the robot has no active order.
type RobotView struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	CurrentOrderID  *string   `json:"currentOrderId"`
	CompletedOrders int       `json:"completedOrders"`
	Errors          string    `json:"errors"`
	LastUpdatedAt   time.Time `json:"lastUpdatedAt"`
}

// InventoryItemView is the wire representation of an inventory item.
type InventoryItemView struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Stock            int       `json:"stock"`
	ReorderThreshold int       `json:"reorderThreshold"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	RobotID  string `json:"robotId"`
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
	Location string `json:"location"`
}

// UpdateOrderStatusRequest is the body of PUT /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateRobotRequest is the body of POST /robots.
type CreateRobotRequest struct {
	Status          string  `json:"status"`
	CurrentOrderID  *string `json:"currentOrderId,omitempty"`
	CompletedOrders int     `json:"completedOrders"`
	Errors          string  `json:"errors"`
}

// CreateInventoryItemRequest is the body of POST /inventory.
type CreateInventoryItemRequest struct {
	Name             string `json:"name"`
	Stock            int    `json:"stock"`
	ReorderThreshold int    `json:"reorderThreshold"`
}

func orderViewFromDomain(o *order.Order) OrderView {
	return OrderView{
		ID:            o.ID().String(),
		RobotID:       o.RobotID().String(),
		ItemID:        o.ItemID().String(),
		Quantity:      o.Quantity(),
		Location:      o.Location(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		LastUpdatedAt: o.LastUpdatedAt(),
	}
}

func orderViewFromList(r queries.GetAllOrdersQueryResponse) OrderView {
	return OrderView{
		ID:            r.ID.String(),
		RobotID:       r.RobotID.String(),
		ItemID:        r.ItemID.String(),
		Quantity:      r.Quantity,
		Location:      r.Location,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

func orderViewFromLookup(r queries.GetOrderByIDQueryResponse) OrderView {
	return OrderView{
		ID:            r.ID.String(),
		RobotID:       r.RobotID.String(),
		ItemID:        r.ItemID.String(),
		Quantity:      r.Quantity,
		Location:      r.Location,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

func robotViewFromDomain(r *robot.Robot) RobotView {
	view := RobotView{
		ID:              r.ID().String(),
		Status:          r.Status().String(),
		CompletedOrders: r.CompletedOrders(),
		Errors:          r.Errors(),
		LastUpdatedAt:   r.LastUpdatedAt(),
	}
	if orderID := r.CurrentOrderID(); orderID != nil {
		s := orderID.String()
		view.CurrentOrderID = &s
	}
	return view
}

func robotViewFromList(r queries.GetAllRobotsQueryResponse) RobotView {
	view := RobotView{
		ID:              r.ID.String(),
		Status:          r.Status,
		CompletedOrders: r.CompletedOrders,
		Errors:          r.Errors,
		LastUpdatedAt:   r.LastUpdatedAt,
	}
	if r.CurrentOrderID != nil {
		s := r.CurrentOrderID.String()
		view.CurrentOrderID = &s
	}
	return view
}

func robotViewFromLookup(r queries.GetRobotByIDQueryResponse) RobotView {
	view := RobotView{
		ID:              r.ID.String(),
		Status:          r.Status,
		CompletedOrders: r.CompletedOrders,
		Errors:          r.Errors,
		LastUpdatedAt:   r.LastUpdatedAt,
	}
	if r.CurrentOrderID != nil {
		s := r.CurrentOrderID.String()
		view.CurrentOrderID = &s
	}
	return view
}

func inventoryViewFromDomain(i *inventory.InventoryItem) InventoryItemView {
	return InventoryItemView{
		ID:               i.ID().String(),
		Name:             i.Name(),
		Stock:            i.Stock(),
		ReorderThreshold: i.ReorderThreshold(),
		LastUpdatedAt:    i.LastUpdatedAt(),
	}
}

func inventoryViewFromList(r queries.GetAllInventoryQueryResponse) InventoryItemView {
	return InventoryItemView{
		ID:               r.ID.String(),
		Name:             r.Name,
		Stock:            r.Stock,
		ReorderThreshold: r.ReorderThreshold,
		LastUpdatedAt:    r.LastUpdatedAt,
	}
}

func inventoryViewFromLookup(r queries.GetInventoryItemByIDQueryResponse) InventoryItemView {
	return InventoryItemView{
		ID:               r.ID.String(),
		Name:             r.Name,
		Stock:            r.Stock,
		ReorderThreshold: r.ReorderThreshold,
		LastUpdatedAt:    r.LastUpdatedAt,
	}
}
