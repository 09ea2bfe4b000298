package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/restauflow/internal/auth"
	"github.com/mmynk/restauflow/internal/catalog"
	"github.com/mmynk/restauflow/internal/checkout"
	"github.com/mmynk/restauflow/internal/metrics"
	"github.com/mmynk/restauflow/internal/middleware"
	"github.com/mmynk/restauflow/internal/models"
	"github.com/mmynk/restauflow/internal/order"
	"github.com/mmynk/restauflow/internal/pricing"
	"github.com/mmynk/restauflow/internal/session"
	"github.com/mmynk/restauflow/internal/storage"
	"github.com/mmynk/restauflow/pkg/api"
	"github.com/mmynk/restauflow/pkg/api/apiconnect"
)

var _ apiconnect.OrderServiceHandler = (*OrderService)(nil)

// OrderService implements the Connect OrderService
type OrderService struct {
	sessions *session.Store
	menu     catalog.Provider
	checkout *checkout.Service
	store    storage.Store
	tokens   *auth.JWTManager
	settings checkout.Settings
	metrics  *metrics.Metrics
}

// OrderServiceDeps are the collaborators of an OrderService. Metrics may be nil.
type OrderServiceDeps struct {
	Sessions *session.Store
	Menu     catalog.Provider
	Checkout *checkout.Service
	Store    storage.Store
	Tokens   *auth.JWTManager
	Settings checkout.Settings
	Metrics  *metrics.Metrics
}

// NewOrderService creates a new OrderService.
func NewOrderService(deps OrderServiceDeps) *OrderService {
	return &OrderService{
		sessions: deps.Sessions,
		menu:     deps.Menu,
		checkout: deps.Checkout,
		store:    deps.Store,
		tokens:   deps.Tokens,
		settings: deps.Settings,
		metrics:  deps.Metrics,
	}
}

// sessionID returns the session bound to the request by the session interceptor.
func sessionID(ctx context.Context) (string, error) {
	id := middleware.GetSessionID(ctx)
	if id == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return id, nil
}

func (s *OrderService) orderResponse(o models.Order) (*api.Order, error) {
	out, err := orderToAPI(o, s.settings.TaxRate(), s.settings.CurrencyCode())
	if err != nil {
		slog.Error("Failed to compute order totals", "order_id", o.ID, "error", err)
		return nil, toConnectError(err)
	}
	return out, nil
}

// StartSession opens an ordering session and returns its bearer token.
func (s *OrderService) StartSession(ctx context.Context, req *connect.Request[api.StartSessionRequest]) (*connect.Response[api.StartSessionResponse], error) {
	guests := req.Msg.GuestCount
	if guests == 0 {
		guests = 1
	}
	if guests < 1 {
		return nil, toConnectError(checkout.ErrInvalidGuestCount)
	}

	sess := s.sessions.Create(req.Msg.TableID, guests)
	token, err := s.tokens.Generate(sess.ID, sess.TableID)
	if err != nil {
		slog.Error("StartSession failed", "error", err)
		s.sessions.Delete(sess.ID)
		return nil, toConnectError(err)
	}

	o, err := s.orderResponse(sess.Order)
	if err != nil {
		return nil, err
	}

	slog.Info("Session started", "session_id", sess.ID, "table_id", sess.TableID, "guests", guests)
	return connect.NewResponse(&api.StartSessionResponse{
		SessionID: sess.ID,
		Token:     token,
		ExpiresAt: sess.ExpiresAt.Unix(),
		Order:     o,
	}), nil
}

// AddItem prices a selection and merges it into the session's order.
func (s *OrderService) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	sel, err := selectionFromAPI(req.Msg.Selection)
	if err != nil {
		s.metrics.SelectionRejected(err)
		return nil, toConnectError(err)
	}

	item, err := s.menu.GetItem(ctx, sel.MenuItemID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if !item.Available {
		return nil, toConnectError(fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name))
	}

	line, err := pricing.Resolve(item, sel)
	if err != nil {
		s.metrics.SelectionRejected(err)
		slog.Debug("AddItem rejected selection", "session_id", id, "menu_item_id", sel.MenuItemID, "error", err)
		return nil, toConnectError(err)
	}
	line.ID = uuid.New().String()
	key := order.KeyOf(line)

	sess, err := s.sessions.Update(id, func(sess *session.Session) error {
		updated, err := order.AddOrUpdate(sess.Order, line)
		if err != nil {
			return err
		}
		sess.Order = updated
		return nil
	})
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidQuantity) {
			s.metrics.SelectionRejected(err)
		}
		return nil, toConnectError(err)
	}
	s.metrics.LineResolved()

	var landed models.OrderLine
	for _, l := range sess.Order.Lines {
		if order.KeyOf(l) == key {
			landed = l
			break
		}
	}

	o, err := s.orderResponse(sess.Order)
	if err != nil {
		return nil, err
	}

	slog.Debug("Line added", "session_id", id, "line_id", landed.ID, "quantity", landed.Quantity)
	return connect.NewResponse(&api.AddItemResponse{
		Line:  lineToAPI(landed),
		Order: o,
	}), nil
}

// SetQuantity changes the quantity of a line; zero or less removes it.
func (s *OrderService) SetQuantity(ctx context.Context, req *connect.Request[api.SetQuantityRequest]) (*connect.Response[api.SetQuantityResponse], error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Update(id, func(sess *session.Session) error {
		line, ok := order.FindLine(sess.Order, req.Msg.LineID)
		if !ok {
			return fmt.Errorf("%w: %s", order.ErrLineNotFound, req.Msg.LineID)
		}
		updated, err := order.SetQuantity(sess.Order, order.KeyOf(line), req.Msg.Quantity)
		if err != nil {
			return err
		}
		sess.Order = updated
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	o, err := s.orderResponse(sess.Order)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.SetQuantityResponse{Order: o}), nil
}

// RemoveLine deletes a line from the order.
func (s *OrderService) RemoveLine(ctx context.Context, req *connect.Request[api.RemoveLineRequest]) (*connect.Response[api.RemoveLineResponse], error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Update(id, func(sess *session.Session) error {
		line, ok := order.FindLine(sess.Order, req.Msg.LineID)
		if !ok {
			return fmt.Errorf("%w: %s", order.ErrLineNotFound, req.Msg.LineID)
		}
		updated, err := order.Remove(sess.Order, order.KeyOf(line))
		if err != nil {
			return err
		}
		sess.Order = updated
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	o, err := s.orderResponse(sess.Order)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.RemoveLineResponse{Order: o}), nil
}

// GetOrder returns the session's order with current totals.
func (s *OrderService) GetOrder(ctx context.Context, req *connect.Request[api.GetOrderRequest]) (*connect.Response[api.GetOrderResponse], error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, toConnectError(err)
	}

	o, err := s.orderResponse(sess.Order)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.GetOrderResponse{Order: o}), nil
}

// ClearOrder empties the session's order.
func (s *OrderService) ClearOrder(ctx context.Context, req *connect.Request[api.ClearOrderRequest]) (*connect.Response[api.ClearOrderResponse], error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Update(id, func(sess *session.Session) error {
		sess.Order = order.Clear(sess.Order)
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	o, err := s.orderResponse(sess.Order)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.ClearOrderResponse{Order: o}), nil
}

// Checkout submits the session's order.
func (s *OrderService) Checkout(ctx context.Context, req *connect.Request[api.CheckoutRequest]) (*connect.Response[api.CheckoutResponse], error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	creq := checkout.Request{
		TableID:    req.Msg.TableID,
		GuestCount: req.Msg.GuestCount,
		Notes:      req.Msg.Notes,
	}
	if req.Msg.Type != "" {
		if creq.Type, err = models.ParseOrderType(req.Msg.Type); err != nil {
			return nil, toConnectError(err)
		}
	}

	submitted, err := s.checkout.Checkout(ctx, id, creq)
	if err != nil {
		var rejected *checkout.RejectedError
		switch {
		case errors.As(err, &rejected):
			s.metrics.Checkout("rejected")
		case errors.Is(err, checkout.ErrEmptyOrder), errors.Is(err, checkout.ErrInvalidGuestCount):
			s.metrics.Checkout("invalid")
		case errors.Is(err, session.ErrCheckoutInProgress):
			s.metrics.Checkout("in_progress")
		default:
			s.metrics.Checkout("failed")
			slog.Error("Checkout failed", "session_id", id, "error", err)
		}
		return nil, toConnectError(err)
	}
	s.metrics.Checkout("submitted")

	return connect.NewResponse(&api.CheckoutResponse{Order: submittedToAPI(submitted)}), nil
}

// GetSubmittedOrder returns an order submitted from this session.
func (s *OrderService) GetSubmittedOrder(ctx context.Context, req *connect.Request[api.GetSubmittedOrderRequest]) (*connect.Response[api.GetSubmittedOrderResponse], error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	submitted, err := s.store.GetOrder(ctx, req.Msg.OrderID)
	if err != nil {
		return nil, toConnectError(err)
	}
	// Orders of other sessions are reported as missing.
	if submitted.SessionID != id {
		return nil, toConnectError(fmt.Errorf("%w: %s", storage.ErrOrderNotFound, req.Msg.OrderID))
	}

	return connect.NewResponse(&api.GetSubmittedOrderResponse{Order: submittedToAPI(submitted)}), nil
}

// ListSubmittedOrders returns the orders submitted from this session, newest first.
func (s *OrderService) ListSubmittedOrders(ctx context.Context, req *connect.Request[api.ListSubmittedOrdersRequest]) (*connect.Response[api.ListSubmittedOrdersResponse], error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.store.ListOrders(ctx, storage.OrderFilter{SessionID: id})
	if err != nil {
		slog.Error("ListSubmittedOrders failed", "session_id", id, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ListSubmittedOrdersResponse{Orders: submittedListToAPI(orders)}), nil
}
