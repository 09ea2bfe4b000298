// Package checkout turns a session's order into a submitted order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/restauflow/internal/models"
	"github.com/mmynk/restauflow/internal/order"
	"github.com/mmynk/restauflow/internal/session"
)

var (
	ErrEmptyOrder        = errors.New("order has no lines")
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
)

// Sink accepts submitted orders, e.g. the kitchen queue or order history.
type Sink interface {
	Submit(ctx context.Context, o *models.SubmittedOrder) error
}

// RejectedError is returned by a Sink that refused an order.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "order rejected: " + e.Reason
}

// Settings supplies the business settings applied at checkout.
type Settings interface {
	TaxRate() decimal.Decimal
	CurrencyCode() string
}

// Request carries the checkout details entered by the guest or waiter.
type Request struct {
	// TableID overrides the session's table when set.
	TableID string

	// GuestCount overrides the session's guest count when positive.
	GuestCount int

	// Type defaults to dine-in when the order has a table and takeaway otherwise.
	Type models.OrderType

	Notes string
}

// Service submits session orders to a Sink.
type Service struct {
	sessions *session.Store
	sink     Sink
	settings Settings
	now      func() time.Time
}

// NewService creates a checkout service.
func NewService(sessions *session.Store, sink Sink, settings Settings) *Service {
	return &Service{
		sessions: sessions,
		sink:     sink,
		settings: settings,
		now:      time.Now,
	}
}

// Checkout snapshots the session's order, submits it and clears the order.
// If the sink fails the order is left untouched so the guest can retry.
//
// The session is marked as checking out while the sink runs, so its order cannot
// change between the snapshot and the clear. Other sessions are not held up.
func (s *Service) Checkout(ctx context.Context, sessionID string, req Request) (*models.SubmittedOrder, error) {
	sess, err := s.sessions.BeginCheckout(sessionID)
	if err != nil {
		return nil, err
	}
	submitted := false
	defer func() {
		if !submitted {
			_, _ = s.sessions.EndCheckout(sessionID, nil)
		}
	}()

	so, err := s.snapshot(sess, req)
	if err != nil {
		return nil, err
	}

	if err := s.sink.Submit(ctx, so); err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			slog.Warn("Checkout rejected", "session_id", sessionID, "reason", rejected.Reason)
		}
		return nil, err
	}
	submitted = true

	_, err = s.sessions.EndCheckout(sessionID, func(sess *session.Session) error {
		sess.Order = order.Clear(sess.Order)
		sess.TableID = so.TableID
		sess.GuestCount = so.GuestCount
		return nil
	})
	if err != nil {
		// The order is already with the sink; only the session is gone.
		slog.Warn("Session ended during checkout", "session_id", sessionID, "order_id", so.ID, "error", err)
	}

	slog.Info("Order submitted",
		"order_id", so.ID,
		"session_id", sessionID,
		"lines", len(so.Lines),
		"total", so.Totals.Total.StringFixed(2),
	)
	return so, nil
}

// snapshot builds the order handed to the sink from the session and the request.
func (s *Service) snapshot(sess *session.Session, req Request) (*models.SubmittedOrder, error) {
	if len(sess.Order.Lines) == 0 {
		return nil, ErrEmptyOrder
	}

	tableID := sess.TableID
	if req.TableID != "" {
		tableID = req.TableID
	}
	guests := sess.GuestCount
	if req.GuestCount != 0 {
		guests = req.GuestCount
	}
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}

	orderType := req.Type
	if orderType == "" {
		orderType = models.OrderTakeaway
		if tableID != "" {
			orderType = models.OrderDineIn
		}
	}

	taxRate := s.settings.TaxRate()
	totals, err := order.Totals(sess.Order, taxRate)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	now := s.now().Unix()
	return &models.SubmittedOrder{
		ID:          uuid.New().String(),
		SessionID:   sess.ID,
		TableID:     tableID,
		GuestCount:  guests,
		Type:        orderType,
		Status:      models.StatusPending,
		Notes:       req.Notes,
		Lines:       append([]models.OrderLine(nil), sess.Order.Lines...),
		Totals:      totals,
		TaxRate:     taxRate,
		Currency:    s.settings.CurrencyCode(),
		SubmittedAt: now,
		UpdatedAt:   now,
	}, nil
}
