package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrHasActiveOrderForRobotQueryIsNotConstructed = errors.New(
	"HasActiveOrderForRobotQuery must be created via NewHasActiveOrderForRobotQuery constructor",
)

// HasActiveOrderForRobotQuery checks whether a robot currently has an order
// in a non-terminal status. Dispatch tooling uses it to probe availability
// without loading the robot aggregate.
type HasActiveOrderForRobotQuery struct { //nolint:recvcheck //using for validation
	robotID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHasActiveOrderForRobotQuery creates an availability probe for the robot.
func NewHasActiveOrderForRobotQuery(robotID kernel.UUID) (HasActiveOrderForRobotQuery, error) {
	q := HasActiveOrderForRobotQuery{guard: guard.NewConstructorGuard()}

	if err := q.setRobotID(robotID); err != nil {
		return HasActiveOrderForRobotQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q HasActiveOrderForRobotQuery) Validate() error {
	return q.guard.Validate(ErrHasActiveOrderForRobotQueryIsNotConstructed)
}

// RobotID returns the identifier of the robot to probe.
func (q HasActiveOrderForRobotQuery) RobotID() kernel.UUID {
	return q.robotID
}

func (q *HasActiveOrderForRobotQuery) setRobotID(robotID kernel.UUID) error {
	if err := robotID.Validate(); err != nil {
		return err
	}
	q.robotID = robotID
	return nil
}
