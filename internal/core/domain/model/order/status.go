package order

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──┬──> InProgress ──┬──> Completed
//	          │                 │
//	          └────> Canceled <─┘
//
// Completed and Canceled are terminal states with no further transitions.
// Status is a value object that validates state transitions and provides
// the canonical uppercase names used on the wire and in storage.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned by the coordinator on admission.
	Pending

	// InProgress indicates the assigned robot is actively picking the order.
	InProgress

	// Completed indicates the order was fulfilled. Terminal.
	Completed

	// Canceled indicates the order was abandoned before completion. Terminal.
	Canceled
)

// Errors surfaced by status parsing. Their messages are returned verbatim
// to HTTP callers, so the exact wording is part of the public contract.
var (
	// ErrStatusIsRequired is returned when a status string is absent or empty.
	ErrStatusIsRequired = errors.New("Status is required")

	// ErrInvalidStatus is returned when a status string does not name one of
	// the four order statuses.
	ErrInvalidStatus = errors.New("Invalid status: must be PENDING, IN_PROGRESS, COMPLETED, or CANCELED")
)

// getStatusStrings returns the canonical uppercase name for every Status
// value, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Canceled:   "CANCELED",
	}
}

// getValidStatusStrings returns only the valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Canceled:   "CANCELED",
	}
}

// StatusFromString parses a status name into a Status value.
// Matching is case-insensitive; the empty string yields ErrStatusIsRequired
// and any unrecognized name yields ErrInvalidStatus. Whitespace is not
// trimmed: " pending" is not a valid status name.
func StatusFromString(s string) (Status, error) {
	if s == "" {
		return Unknown, ErrStatusIsRequired
	}

	normalized := strings.ToUpper(s)
	for status, name := range getValidStatusStrings() {
		if name == normalized {
			return status, nil
		}
	}

	return Unknown, ErrInvalidStatus
}

// Validate checks if the Status value is one of the four valid statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return ErrInvalidStatus
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

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// IsActive reports whether an order in this status still holds its robot
// assignment and inventory debit.
func (s Status) IsActive() bool {
	return s == Pending || s == InProgress
}

// TransitionTo validates the transition from s to target and returns the
// target status on success.
//
// Valid transitions:
//   - Pending -> InProgress, Completed, Canceled
//   - InProgress -> Completed, Canceled
//
// Every other transition is rejected, including re-entering the current
// status and any transition out of a terminal status. Rejections are
// deterministic: repeating an invalid transition always yields the same
// ErrInvalidStatusTransition.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() || target == s {
		return Unknown, NewInvalidStatusTransitionError(s, target)
	}

	switch s {
	case Pending:
		return target, nil
	case InProgress:
		if target == Completed || target == Canceled {
			return target, nil
		}
	}

	return Unknown, NewInvalidStatusTransitionError(s, target)
}

// InvalidStatusTransitionError is returned when a status transition violates
// the order state machine. It unwraps to errs.ErrValueIsInvalid so callers
// can classify it as a validation failure.
type InvalidStatusTransitionError struct {
	From Status
	To   Status
}

// NewInvalidStatusTransitionError creates an InvalidStatusTransitionError
// for the rejected transition.
func NewInvalidStatusTransitionError(from, to Status) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{From: from, To: to}
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return errs.ErrValueIsInvalid
}
