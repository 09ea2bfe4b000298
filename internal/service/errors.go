package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/restauflow/internal/catalog"
	"github.com/mmynk/restauflow/internal/checkout"
	"github.com/mmynk/restauflow/internal/models"
	"github.com/mmynk/restauflow/internal/order"
	"github.com/mmynk/restauflow/internal/pricing"
	"github.com/mmynk/restauflow/internal/session"
	"github.com/mmynk/restauflow/internal/storage"
)

// InvalidFieldHeader names the request field an InvalidArgument error is about.
const InvalidFieldHeader = "X-Invalid-Field"

// ErrItemUnavailable is returned when a guest selects an item that is off the menu.
var ErrItemUnavailable = errors.New("menu item is not available")

var errInternal = errors.New("internal error")

// toConnectError maps domain errors to Connect codes. Unknown errors become
// Internal and keep their message out of the response.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	var selErr *pricing.SelectionError
	if errors.As(err, &selErr) {
		ce := connect.NewError(connect.CodeInvalidArgument, err)
		ce.Meta().Set(InvalidFieldHeader, selErr.Field)
		return ce
	}

	var rejected *checkout.RejectedError
	if errors.As(err, &rejected) || errors.Is(err, session.ErrCheckoutInProgress) {
		return connect.NewError(connect.CodeAborted, err)
	}

	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, order.ErrLineNotFound),
		errors.Is(err, storage.ErrOrderNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, session.ErrNotFound):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, ErrItemUnavailable),
		errors.Is(err, checkout.ErrEmptyOrder),
		errors.Is(err, models.ErrOrderClosed),
		errors.Is(err, models.ErrInvalidTransition):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, checkout.ErrInvalidGuestCount),
		errors.Is(err, models.ErrInvalidMenuItem),
		errors.Is(err, models.ErrInvalidOrderType),
		errors.Is(err, models.ErrInvalidOrderStatus):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, errInternal)
	}
}
