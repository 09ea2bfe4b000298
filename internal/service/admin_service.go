package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/restauflow/internal/models"
	"github.com/mmynk/restauflow/internal/storage"
	"github.com/mmynk/restauflow/pkg/api"
	"github.com/mmynk/restauflow/pkg/api/apiconnect"
)

var _ apiconnect.AdminServiceHandler = (*AdminService)(nil)

// AdminService implements the Connect AdminService used by restaurant staff
// to edit the menu and move submitted orders through the kitchen.
type AdminService struct {
	store storage.Store
}

// NewAdminService creates a new AdminService.
func NewAdminService(store storage.Store) *AdminService {
	return &AdminService{store: store}
}

// SaveMenuItem adds a menu item or replaces the one with the same ID.
func (s *AdminService) SaveMenuItem(ctx context.Context, req *connect.Request[api.SaveMenuItemRequest]) (*connect.Response[api.SaveMenuItemResponse], error) {
	item, err := menuItemFromAPI(req.Msg.Item)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.SaveMenuItem(ctx, item); err != nil {
		return nil, toConnectError(err)
	}

	saved, err := s.store.GetMenuItem(ctx, item.ID)
	if err != nil {
		slog.Error("SaveMenuItem failed", "menu_item_id", item.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Menu item saved", "menu_item_id", saved.ID, "name", saved.Name)
	return connect.NewResponse(&api.SaveMenuItemResponse{Item: menuItemToAPI(saved)}), nil
}

// DeleteMenuItem removes a menu item. Orders already submitted keep their copy.
func (s *AdminService) DeleteMenuItem(ctx context.Context, req *connect.Request[api.DeleteMenuItemRequest]) (*connect.Response[api.DeleteMenuItemResponse], error) {
	if err := s.store.DeleteMenuItem(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Menu item deleted", "menu_item_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteMenuItemResponse{}), nil
}

// SetAvailability puts an item on or takes it off the menu.
func (s *AdminService) SetAvailability(ctx context.Context, req *connect.Request[api.SetAvailabilityRequest]) (*connect.Response[api.SetAvailabilityResponse], error) {
	if err := s.store.SetMenuItemAvailability(ctx, req.Msg.ID, req.Msg.Available); err != nil {
		return nil, toConnectError(err)
	}

	item, err := s.store.GetMenuItem(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Menu item availability changed", "menu_item_id", item.ID, "available", item.Available)
	return connect.NewResponse(&api.SetAvailabilityResponse{Item: menuItemToAPI(item)}), nil
}

// ListOrders returns submitted orders of every session, newest first.
func (s *AdminService) ListOrders(ctx context.Context, req *connect.Request[api.ListOrdersRequest]) (*connect.Response[api.ListOrdersResponse], error) {
	filter := storage.OrderFilter{TableID: req.Msg.TableID, Limit: req.Msg.Limit}
	if req.Msg.Status != "" {
		status, err := models.ParseOrderStatus(req.Msg.Status)
		if err != nil {
			return nil, toConnectError(err)
		}
		filter.Status = status
	}
	if req.Msg.Type != "" {
		orderType, err := models.ParseOrderType(req.Msg.Type)
		if err != nil {
			return nil, toConnectError(err)
		}
		filter.Type = orderType
	}

	orders, err := s.store.ListOrders(ctx, filter)
	if err != nil {
		slog.Error("ListOrders failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ListOrdersResponse{Orders: submittedListToAPI(orders)}), nil
}

// UpdateOrderStatus moves an order along its lifecycle.
func (s *AdminService) UpdateOrderStatus(ctx context.Context, req *connect.Request[api.UpdateOrderStatusRequest]) (*connect.Response[api.UpdateOrderStatusResponse], error) {
	status, err := models.ParseOrderStatus(req.Msg.Status)
	if err != nil {
		return nil, toConnectError(err)
	}

	updated, err := s.store.UpdateOrderStatus(ctx, req.Msg.OrderID, status)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Order status changed", "order_id", updated.ID, "status", updated.Status)
	return connect.NewResponse(&api.UpdateOrderStatusResponse{Order: submittedToAPI(updated)}), nil
}
