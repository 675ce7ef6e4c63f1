// Package robotrepo provides data transfer objects and mapping functions for
// robot persistence. Besides aggregate reads and writes, the repository
// implements the conditional single-column updates the order coordinator
// relies on for race-free assignment.
package robotrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/robot"

	"github.com/google/uuid"
)

// RobotDTO represents the database structure for persisting robot aggregates.
// CurrentOrderID is nullable: NULL means the robot is free, which is exactly
// the condition the coordinator's assignment update tests at the store level.
type RobotDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Status          string     `gorm:"index"`
	CurrentOrderID  *uuid.UUID `gorm:"type:uuid;index"`
	CompletedOrders int
	Errors          string
	LastUpdatedAt   time.Time
}

// TableName specifies the database table name for robot entities.
func (RobotDTO) TableName() string {
	return "robots"
}

// fromDomain converts a robot domain aggregate to its database representation.
func fromDomain(aggregate *robot.Robot) RobotDTO {
	var currentOrderID *uuid.UUID
	if id := aggregate.CurrentOrderID(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	return RobotDTO{
		ID:              aggregate.ID().Bytes(),
		Status:          aggregate.Status().String(),
		CurrentOrderID:  currentOrderID,
		CompletedOrders: aggregate.CompletedOrders(),
		Errors:          aggregate.Errors(),
		LastUpdatedAt:   aggregate.LastUpdatedAt(),
	}
}

// toDomain converts a database DTO to a robot domain aggregate using
// RestoreRobot, so a stored row violating the status/assignment invariant
// fails restoration instead of flowing through the coordinator.
func toDomain(dto RobotDTO) (*robot.Robot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		orderID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}

		currentOrderID = &orderID
	}

	status, err := robot.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return robot.RestoreRobot(
		id,
		status,
		currentOrderID,
		dto.CompletedOrders,
		dto.Errors,
		dto.LastUpdatedAt,
	)
}
