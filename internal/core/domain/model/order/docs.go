// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order binds a picking robot to an inventory debit for the duration of a
// fulfillment run. Orders are created in PENDING status by the order
// coordinator and move through the lifecycle
//
//	PENDING ──> IN_PROGRESS ──> COMPLETED
//	   │             │
//	   └──> CANCELED <┘
//
// COMPLETED and CANCELED are terminal: no further transitions are permitted.
// The aggregate enforces these transitions itself; cross-entity side effects
// (robot pointer, inventory stock) are coordinated by the application layer.
package order
