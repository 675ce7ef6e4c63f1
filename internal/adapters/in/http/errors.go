package http

import (
	"errors"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// internalErrorBody is the generic 500 response body. Coordination failure
// details are logged server-side, never returned to the caller.
const internalErrorBody = "Internal server error"

// respondCommandError maps a command failure to an HTTP response. Every
// error kind maps to exactly one status: RobotBusy is 409, a coordination
// failure is a generic 500, the known precondition and validation kinds
// (not-found, quantity, stock, lifecycle) are 400 with the error message
// verbatim. An error outside those families is a store or infrastructure
// failure; its text is logged, not returned.
func (s *Server) respondCommandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrRobotBusy):
		return ctx.String(http.StatusConflict, commands.ErrRobotBusy.Error())
	case errors.Is(err, commands.ErrCoordinatorInternal):
		s.logger.Error("order coordination failed", "error", err)
		return ctx.String(http.StatusInternalServerError, internalErrorBody)
	case isRejectedCommand(err):
		return ctx.String(http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("command failed", "error", err)
		return ctx.String(http.StatusInternalServerError, internalErrorBody)
	}
}

// isRejectedCommand reports whether the error is a caller-addressable
// rejection. Domain validation errors all unwrap to an errs sentinel; the
// coordination sentinels cover the protocol preconditions.
func isRejectedCommand(err error) bool {
	for _, sentinel := range []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsRequired,
		errs.ErrValueIsOutOfRange,
		errs.ErrVersionIsInvalid,
		commands.ErrRobotNotFound,
		commands.ErrItemNotFound,
		commands.ErrInvalidQuantity,
		commands.ErrOrderIsActive,
		commands.ErrRobotHasActiveOrder,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// respondQueryError maps a read-side failure to an HTTP response. A lookup
// miss is a 400 with the not-found message; anything else is a store
// failure, logged and reported as a generic 500.
func (s *Server) respondQueryError(ctx echo.Context, err error, operation string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.String(http.StatusBadRequest, err.Error())
	}
	s.logger.Error(operation+" failed", "error", err)
	return ctx.String(http.StatusInternalServerError, internalErrorBody)
}
