// Package robot contains the Robot aggregate and its status model.
//
// A robot is a warehouse picking unit. Its operational status is reported by
// external systems through the robot manager; the order coordinator only
// mutates the fields under its ownership: the currentOrderId pointer that
// links a robot to its active order, and the completedOrders counter.
//
// The robot-local invariant tying status to assignment:
//   - IN_PROGRESS requires a current order ID
//   - IDLE and COMPLETED require no current order ID
//
// is enforced by the aggregate on construction and on every status change.
package robot
