package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/restauflow/pkg/api"
)

// AdminServiceName is the fully-qualified name of the AdminService service.
const AdminServiceName = "restauflow.v1.AdminService"

// Procedure names of AdminService.
const (
	AdminServiceSaveMenuItemProcedure      = "/restauflow.v1.AdminService/SaveMenuItem"
	AdminServiceDeleteMenuItemProcedure    = "/restauflow.v1.AdminService/DeleteMenuItem"
	AdminServiceSetAvailabilityProcedure   = "/restauflow.v1.AdminService/SetAvailability"
	AdminServiceListOrdersProcedure        = "/restauflow.v1.AdminService/ListOrders"
	AdminServiceUpdateOrderStatusProcedure = "/restauflow.v1.AdminService/UpdateOrderStatus"
)

// AdminServiceClient is a client for the restauflow.v1.AdminService service.
type AdminServiceClient interface {
	SaveMenuItem(context.Context, *connect.Request[api.SaveMenuItemRequest]) (*connect.Response[api.SaveMenuItemResponse], error)
	DeleteMenuItem(context.Context, *connect.Request[api.DeleteMenuItemRequest]) (*connect.Response[api.DeleteMenuItemResponse], error)
	SetAvailability(context.Context, *connect.Request[api.SetAvailabilityRequest]) (*connect.Response[api.SetAvailabilityResponse], error)
	ListOrders(context.Context, *connect.Request[api.ListOrdersRequest]) (*connect.Response[api.ListOrdersResponse], error)
	UpdateOrderStatus(context.Context, *connect.Request[api.UpdateOrderStatusRequest]) (*connect.Response[api.UpdateOrderStatusResponse], error)
}

// NewAdminServiceClient constructs a client for the restauflow.v1.AdminService service.
// Every call needs an "Authorization: Bearer <staff key>" header.
func NewAdminServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AdminServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &adminServiceClient{
		saveMenuItem: connect.NewClient[api.SaveMenuItemRequest, api.SaveMenuItemResponse](
			httpClient, baseURL+AdminServiceSaveMenuItemProcedure, opts...,
		),
		deleteMenuItem: connect.NewClient[api.DeleteMenuItemRequest, api.DeleteMenuItemResponse](
			httpClient, baseURL+AdminServiceDeleteMenuItemProcedure, opts...,
		),
		setAvailability: connect.NewClient[api.SetAvailabilityRequest, api.SetAvailabilityResponse](
			httpClient, baseURL+AdminServiceSetAvailabilityProcedure, opts...,
		),
		listOrders: connect.NewClient[api.ListOrdersRequest, api.ListOrdersResponse](
			httpClient, baseURL+AdminServiceListOrdersProcedure, opts...,
		),
		updateOrderStatus: connect.NewClient[api.UpdateOrderStatusRequest, api.UpdateOrderStatusResponse](
			httpClient, baseURL+AdminServiceUpdateOrderStatusProcedure, opts...,
		),
	}
}

type adminServiceClient struct {
	saveMenuItem      *connect.Client[api.SaveMenuItemRequest, api.SaveMenuItemResponse]
	deleteMenuItem    *connect.Client[api.DeleteMenuItemRequest, api.DeleteMenuItemResponse]
	setAvailability   *connect.Client[api.SetAvailabilityRequest, api.SetAvailabilityResponse]
	listOrders        *connect.Client[api.ListOrdersRequest, api.ListOrdersResponse]
	updateOrderStatus *connect.Client[api.UpdateOrderStatusRequest, api.UpdateOrderStatusResponse]
}

func (c *adminServiceClient) SaveMenuItem(ctx context.Context, req *connect.Request[api.SaveMenuItemRequest]) (*connect.Response[api.SaveMenuItemResponse], error) {
	return c.saveMenuItem.CallUnary(ctx, req)
}

func (c *adminServiceClient) DeleteMenuItem(ctx context.Context, req *connect.Request[api.DeleteMenuItemRequest]) (*connect.Response[api.DeleteMenuItemResponse], error) {
	return c.deleteMenuItem.CallUnary(ctx, req)
}

func (c *adminServiceClient) SetAvailability(ctx context.Context, req *connect.Request[api.SetAvailabilityRequest]) (*connect.Response[api.SetAvailabilityResponse], error) {
	return c.setAvailability.CallUnary(ctx, req)
}

func (c *adminServiceClient) ListOrders(ctx context.Context, req *connect.Request[api.ListOrdersRequest]) (*connect.Response[api.ListOrdersResponse], error) {
	return c.listOrders.CallUnary(ctx, req)
}

func (c *adminServiceClient) UpdateOrderStatus(ctx context.Context, req *connect.Request[api.UpdateOrderStatusRequest]) (*connect.Response[api.UpdateOrderStatusResponse], error) {
	return c.updateOrderStatus.CallUnary(ctx, req)
}

// AdminServiceHandler is implemented by the admin service.
type AdminServiceHandler interface {
	SaveMenuItem(context.Context, *connect.Request[api.SaveMenuItemRequest]) (*connect.Response[api.SaveMenuItemResponse], error)
	DeleteMenuItem(context.Context, *connect.Request[api.DeleteMenuItemRequest]) (*connect.Response[api.DeleteMenuItemResponse], error)
	SetAvailability(context.Context, *connect.Request[api.SetAvailabilityRequest]) (*connect.Response[api.SetAvailabilityResponse], error)
	ListOrders(context.Context, *connect.Request[api.ListOrdersRequest]) (*connect.Response[api.ListOrdersResponse], error)
	UpdateOrderStatus(context.Context, *connect.Request[api.UpdateOrderStatusRequest]) (*connect.Response[api.UpdateOrderStatusResponse], error)
}

// NewAdminServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAdminServiceHandler(svc AdminServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	handlers := map[string]http.Handler{
		AdminServiceSaveMenuItemProcedure:      connect.NewUnaryHandler(AdminServiceSaveMenuItemProcedure, svc.SaveMenuItem, opts...),
		AdminServiceDeleteMenuItemProcedure:    connect.NewUnaryHandler(AdminServiceDeleteMenuItemProcedure, svc.DeleteMenuItem, opts...),
		AdminServiceSetAvailabilityProcedure:   connect.NewUnaryHandler(AdminServiceSetAvailabilityProcedure, svc.SetAvailability, opts...),
		AdminServiceListOrdersProcedure:        connect.NewUnaryHandler(AdminServiceListOrdersProcedure, svc.ListOrders, opts...),
		AdminServiceUpdateOrderStatusProcedure: connect.NewUnaryHandler(AdminServiceUpdateOrderStatusProcedure, svc.UpdateOrderStatus, opts...),
	}

	return "/" + AdminServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}
