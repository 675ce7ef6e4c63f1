package robot

import (
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
)

// Status represents the operational state of a warehouse robot.
//
// Unlike the order lifecycle, robot statuses do not form a strict state
// machine: external systems may report any valid status at any time. The only
// rules enforced are the assignment invariants (see Robot.ChangeStatus):
// IN_PROGRESS requires a current order, IDLE and COMPLETED clear it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active means the robot is powered and accepting work.
	Active

	// Inactive means the robot is powered down or out of rotation.
	Inactive

	// InProgress means the robot is executing its current order.
	InProgress

	// Idle means the robot is free and waiting for an assignment.
	Idle

	// Completed means the robot has finished its last order.
	Completed

	// Error means the robot reported a fault; details are in Robot.Errors.
	Error
)

// getStatusStrings returns the canonical uppercase name for every Status
// value, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Active:     "ACTIVE",
		Inactive:   "INACTIVE",
		InProgress: "IN_PROGRESS",
		Idle:       "IDLE",
		Completed:  "COMPLETED",
		Error:      "ERROR",
	}
}

// getValidStatusStrings returns only the valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:     "ACTIVE",
		Inactive:   "INACTIVE",
		InProgress: "IN_PROGRESS",
		Idle:       "IDLE",
		Completed:  "COMPLETED",
		Error:      "ERROR",
	}
}

// StatusFromString parses a robot status name into a Status value.
// Matching is case-insensitive; storage and wire forms are uppercase.
func StatusFromString(s string) (Status, error) {
	if s == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}

	normalized := strings.ToUpper(s)
	for status, name := range getValidStatusStrings() {
		if name == normalized {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%s is not one of ACTIVE, INACTIVE, IN_PROGRESS, IDLE, COMPLETED, ERROR", s))
}

// Validate checks if the Status value is one of the six valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid robot status", s))
	}
	return nil
}

// String returns the canonical uppercase name of the status.
// Returns "UNKNOWN" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// RequiresOrder reports whether the status is valid only while the robot
// holds a current order.
func (s Status) RequiresOrder() bool {
	return s == InProgress
}

// ForbidsOrder reports whether the status is valid only while the robot
// holds no current order.
func (s Status) ForbidsOrder() bool {
	return s == Idle || s == Completed
}
