package api

type ModifierSelection struct {
	Group   string   `json:"group"`
	Options []string `json:"options"`
}

// OrderLine is one priced line of an order.
type OrderLine struct {
	ID         string              `json:"id"`
	MenuItemID string              `json:"menu_item_id"`
	Name       string              `json:"name"`
	Variant    string              `json:"variant,omitempty"`
	Modifiers  []ModifierSelection `json:"modifiers,omitempty"`
	Notes      string              `json:"notes,omitempty"`
	UnitPrice  string              `json:"unit_price"`
	Quantity   int                 `json:"quantity"`
	LineTotal  string              `json:"line_total"`
}

// Order is the in-progress order of a session with its running totals.
type Order struct {
	ID        string       `json:"id"`
	Lines     []*OrderLine `json:"lines"`
	ItemCount int          `json:"item_count"`
	Subtotal  string       `json:"subtotal"`
	Tax       string       `json:"tax"`
	Total     string       `json:"total"`
	Currency  string       `json:"currency"`
}

// SubmittedOrder is an order after checkout.
type SubmittedOrder struct {
	ID          string       `json:"id"`
	SessionID   string       `json:"session_id"`
	TableID     string       `json:"table_id,omitempty"`
	GuestCount  int          `json:"guest_count"`
	Type        string       `json:"type"`
	Status      string       `json:"status"`
	Notes       string       `json:"notes,omitempty"`
	Lines       []*OrderLine `json:"lines"`
	Subtotal    string       `json:"subtotal"`
	Tax         string       `json:"tax"`
	Total       string       `json:"total"`
	TaxRate     string       `json:"tax_rate"`
	Currency    string       `json:"currency"`
	SubmittedAt int64        `json:"submitted_at"`
	UpdatedAt   int64        `json:"updated_at"`
}

// StartSessionRequest opens an ordering session. Waiters set the table.
type StartSessionRequest struct {
	TableID    string `json:"table_id,omitempty"`
	GuestCount int    `json:"guest_count,omitempty"`
}

// StartSessionResponse carries the bearer token for all other OrderService calls.
type StartSessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Order     *Order `json:"order"`
}

type AddItemRequest struct {
	Selection Selection `json:"selection"`
}

type AddItemResponse struct {
	// Line is the line the selection landed on, merged or new.
	Line  *OrderLine `json:"line"`
	Order *Order     `json:"order"`
}

// SetQuantityRequest changes a line's quantity; zero or less removes the line.
type SetQuantityRequest struct {
	LineID   string `json:"line_id"`
	Quantity int    `json:"quantity"`
}

type SetQuantityResponse struct {
	Order *Order `json:"order"`
}

type RemoveLineRequest struct {
	LineID string `json:"line_id"`
}

type RemoveLineResponse struct {
	Order *Order `json:"order"`
}

type GetOrderRequest struct{}

type GetOrderResponse struct {
	Order *Order `json:"order"`
}

type ClearOrderRequest struct{}

type ClearOrderResponse struct {
	Order *Order `json:"order"`
}

// CheckoutRequest submits the session's order. Type is "dine_in", "takeaway"
// or "delivery"; when empty it follows the table.
type CheckoutRequest struct {
	TableID    string `json:"table_id,omitempty"`
	GuestCount int    `json:"guest_count,omitempty"`
	Type       string `json:"type,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type CheckoutResponse struct {
	Order *SubmittedOrder `json:"order"`
}

type GetSubmittedOrderRequest struct {
	OrderID string `json:"order_id"`
}

type GetSubmittedOrderResponse struct {
	Order *SubmittedOrder `json:"order"`
}

type ListSubmittedOrdersRequest struct{}

type ListSubmittedOrdersResponse struct {
	Orders []*SubmittedOrder `json:"orders"`
}
