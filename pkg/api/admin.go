package api

// SaveMenuItemRequest adds a menu item or replaces the one with the same ID.
type SaveMenuItemRequest struct {
	Item MenuItem `json:"item"`
}

type SaveMenuItemResponse struct {
	Item *MenuItem `json:"item"`
}

type DeleteMenuItemRequest struct {
	ID string `json:"id"`
}

type DeleteMenuItemResponse struct{}

// SetAvailabilityRequest puts an item on or takes it off the menu.
type SetAvailabilityRequest struct {
	ID        string `json:"id"`
	Available bool   `json:"available"`
}

type SetAvailabilityResponse struct {
	Item *MenuItem `json:"item"`
}

// ListOrdersRequest lists submitted orders for staff. Empty fields match everything.
type ListOrdersRequest struct {
	Status  string `json:"status,omitempty"`
	Type    string `json:"type,omitempty"`
	TableID string `json:"table_id,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

type ListOrdersResponse struct {
	Orders []*SubmittedOrder `json:"orders"`
}

// UpdateOrderStatusRequest moves an order along
// pending, confirmed, preparing, ready_for_pickup / out_for_delivery, completed.
// Any open order may be cancelled.
type UpdateOrderStatusRequest struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type UpdateOrderStatusResponse struct {
	Order *SubmittedOrder `json:"order"`
}
