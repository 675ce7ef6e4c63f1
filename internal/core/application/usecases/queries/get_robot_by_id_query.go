package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetRobotByIDQueryIsNotConstructed = errors.New(
	"GetRobotByIDQuery must be created via NewGetRobotByIDQuery constructor",
)

// GetRobotByIDQuery retrieves a single robot by its identifier.
type GetRobotByIDQuery struct { //nolint:recvcheck //using for validation
	robotID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRobotByIDQuery creates a query to fetch one robot.
func NewGetRobotByIDQuery(robotID kernel.UUID) (GetRobotByIDQuery, error) {
	q := GetRobotByIDQuery{guard: guard.NewConstructorGuard()}

	if err := q.setRobotID(robotID); err != nil {
		return GetRobotByIDQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRobotByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetRobotByIDQueryIsNotConstructed)
}

// RobotID returns the identifier of the robot to fetch.
func (q GetRobotByIDQuery) RobotID() kernel.UUID {
	return q.robotID
}

func (q *GetRobotByIDQuery) setRobotID(robotID kernel.UUID) error {
	if err := robotID.Validate(); err != nil {
		return err
	}
	q.robotID = robotID
	return nil
}

// GetRobotByIDQueryResponse represents the fetched robot.
type GetRobotByIDQueryResponse struct {
	ID              kernel.UUID
	Status          string
	CurrentOrderID  *kernel.UUID
	CompletedOrders int
	Errors          string
	LastUpdatedAt   time.Time
}
