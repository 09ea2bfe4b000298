package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/restauflow/pkg/api"
)

// MenuServiceName is the fully-qualified name of the MenuService service.
const MenuServiceName = "restauflow.v1.MenuService"

// Procedure names of MenuService.
const (
	MenuServiceListMenuProcedure    = "/restauflow.v1.MenuService/ListMenu"
	MenuServiceGetMenuItemProcedure = "/restauflow.v1.MenuService/GetMenuItem"
	MenuServiceQuotePriceProcedure  = "/restauflow.v1.MenuService/QuotePrice"
)

// MenuServiceClient is a client for the restauflow.v1.MenuService service.
type MenuServiceClient interface {
	ListMenu(context.Context, *connect.Request[api.ListMenuRequest]) (*connect.Response[api.ListMenuResponse], error)
	GetMenuItem(context.Context, *connect.Request[api.GetMenuItemRequest]) (*connect.Response[api.GetMenuItemResponse], error)
	QuotePrice(context.Context, *connect.Request[api.QuotePriceRequest]) (*connect.Response[api.QuotePriceResponse], error)
}

// NewMenuServiceClient constructs a client for the restauflow.v1.MenuService service.
// baseURL is e.g. http://localhost:8080 without a trailing slash.
func NewMenuServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MenuServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &menuServiceClient{
		listMenu: connect.NewClient[api.ListMenuRequest, api.ListMenuResponse](
			httpClient, baseURL+MenuServiceListMenuProcedure, opts...,
		),
		getMenuItem: connect.NewClient[api.GetMenuItemRequest, api.GetMenuItemResponse](
			httpClient, baseURL+MenuServiceGetMenuItemProcedure, opts...,
		),
		quotePrice: connect.NewClient[api.QuotePriceRequest, api.QuotePriceResponse](
			httpClient, baseURL+MenuServiceQuotePriceProcedure, opts...,
		),
	}
}

type menuServiceClient struct {
	listMenu    *connect.Client[api.ListMenuRequest, api.ListMenuResponse]
	getMenuItem *connect.Client[api.GetMenuItemRequest, api.GetMenuItemResponse]
	quotePrice  *connect.Client[api.QuotePriceRequest, api.QuotePriceResponse]
}

func (c *menuServiceClient) ListMenu(ctx context.Context, req *connect.Request[api.ListMenuRequest]) (*connect.Response[api.ListMenuResponse], error) {
	return c.listMenu.CallUnary(ctx, req)
}

func (c *menuServiceClient) GetMenuItem(ctx context.Context, req *connect.Request[api.GetMenuItemRequest]) (*connect.Response[api.GetMenuItemResponse], error) {
	return c.getMenuItem.CallUnary(ctx, req)
}

func (c *menuServiceClient) QuotePrice(ctx context.Context, req *connect.Request[api.QuotePriceRequest]) (*connect.Response[api.QuotePriceResponse], error) {
	return c.quotePrice.CallUnary(ctx, req)
}

// MenuServiceHandler is implemented by the menu service.
type MenuServiceHandler interface {
	ListMenu(context.Context, *connect.Request[api.ListMenuRequest]) (*connect.Response[api.ListMenuResponse], error)
	GetMenuItem(context.Context, *connect.Request[api.GetMenuItemRequest]) (*connect.Response[api.GetMenuItemResponse], error)
	QuotePrice(context.Context, *connect.Request[api.QuotePriceRequest]) (*connect.Response[api.QuotePriceResponse], error)
}

// NewMenuServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewMenuServiceHandler(svc MenuServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	listMenuHandler := connect.NewUnaryHandler(MenuServiceListMenuProcedure, svc.ListMenu, opts...)
	getMenuItemHandler := connect.NewUnaryHandler(MenuServiceGetMenuItemProcedure, svc.GetMenuItem, opts...)
	quotePriceHandler := connect.NewUnaryHandler(MenuServiceQuotePriceProcedure, svc.QuotePrice, opts...)

	return "/" + MenuServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case MenuServiceListMenuProcedure:
			listMenuHandler.ServeHTTP(w, r)
		case MenuServiceGetMenuItemProcedure:
			getMenuItemHandler.ServeHTTP(w, r)
		case MenuServiceQuotePriceProcedure:
			quotePriceHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
