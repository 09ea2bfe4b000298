package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/restauflow/internal/catalog"
	"github.com/mmynk/restauflow/internal/checkout"
	"github.com/mmynk/restauflow/internal/metrics"
	"github.com/mmynk/restauflow/internal/pricing"
	"github.com/mmynk/restauflow/pkg/api"
	"github.com/mmynk/restauflow/pkg/api/apiconnect"
)

var _ apiconnect.MenuServiceHandler = (*MenuService)(nil)

// MenuService implements the Connect MenuService
type MenuService struct {
	menu     catalog.Provider
	settings checkout.Settings
	metrics  *metrics.Metrics
}

// NewMenuService creates a new MenuService reading from the given catalog.
// m may be nil.
func NewMenuService(menu catalog.Provider, settings checkout.Settings, m *metrics.Metrics) *MenuService {
	return &MenuService{menu: menu, settings: settings, metrics: m}
}

// ListMenu returns the menu items matching the filter and the categories of the whole menu.
func (s *MenuService) ListMenu(ctx context.Context, req *connect.Request[api.ListMenuRequest]) (*connect.Response[api.ListMenuResponse], error) {
	all, err := s.menu.ListItems(ctx, catalog.Filter{AvailableOnly: req.Msg.AvailableOnly})
	if err != nil {
		slog.Error("ListMenu failed", "error", err)
		return nil, toConnectError(err)
	}

	filter := catalog.Filter{
		Category:      req.Msg.Category,
		Search:        req.Msg.Search,
		AvailableOnly: req.Msg.AvailableOnly,
	}
	items := make([]*api.MenuItem, 0, len(all))
	for _, item := range all {
		if filter.Match(item) {
			items = append(items, menuItemToAPI(item))
		}
	}

	categories := catalog.Categories(all)
	if categories == nil {
		categories = []string{}
	}

	return connect.NewResponse(&api.ListMenuResponse{
		Items:      items,
		Categories: categories,
	}), nil
}

// GetMenuItem returns one menu item with its variants and modifier groups.
func (s *MenuService) GetMenuItem(ctx context.Context, req *connect.Request[api.GetMenuItemRequest]) (*connect.Response[api.GetMenuItemResponse], error) {
	item, err := s.menu.GetItem(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetMenuItemResponse{Item: menuItemToAPI(item)}), nil
}

// QuotePrice prices a selection so the item dialog can show a live price.
func (s *MenuService) QuotePrice(ctx context.Context, req *connect.Request[api.QuotePriceRequest]) (*connect.Response[api.QuotePriceResponse], error) {
	sel, err := selectionFromAPI(req.Msg.Selection)
	if err != nil {
		return nil, toConnectError(err)
	}

	item, err := s.menu.GetItem(ctx, sel.MenuItemID)
	if err != nil {
		return nil, toConnectError(err)
	}

	line, err := pricing.Quote(item, sel)
	if err != nil {
		s.metrics.SelectionRejected(err)
		slog.Debug("QuotePrice rejected selection", "menu_item_id", sel.MenuItemID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.QuotePriceResponse{
		UnitPrice: money(line.UnitPrice),
		LineTotal: money(line.LineTotal),
		Currency:  s.settings.CurrencyCode(),
	}), nil
}
