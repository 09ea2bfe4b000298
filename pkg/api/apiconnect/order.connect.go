package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/restauflow/pkg/api"
)

// OrderServiceName is the fully-qualified name of the OrderService service.
const OrderServiceName = "restauflow.v1.OrderService"

// Procedure names of OrderService.
const (
	OrderServiceStartSessionProcedure        = "/restauflow.v1.OrderService/StartSession"
	OrderServiceAddItemProcedure             = "/restauflow.v1.OrderService/AddItem"
	OrderServiceSetQuantityProcedure         = "/restauflow.v1.OrderService/SetQuantity"
	OrderServiceRemoveLineProcedure          = "/restauflow.v1.OrderService/RemoveLine"
	OrderServiceGetOrderProcedure            = "/restauflow.v1.OrderService/GetOrder"
	OrderServiceClearOrderProcedure          = "/restauflow.v1.OrderService/ClearOrder"
	OrderServiceCheckoutProcedure            = "/restauflow.v1.OrderService/Checkout"
	OrderServiceGetSubmittedOrderProcedure   = "/restauflow.v1.OrderService/GetSubmittedOrder"
	OrderServiceListSubmittedOrdersProcedure = "/restauflow.v1.OrderService/ListSubmittedOrders"
)

// OrderServiceClient is a client for the restauflow.v1.OrderService service.
type OrderServiceClient interface {
	StartSession(context.Context, *connect.Request[api.StartSessionRequest]) (*connect.Response[api.StartSessionResponse], error)
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error)
	SetQuantity(context.Context, *connect.Request[api.SetQuantityRequest]) (*connect.Response[api.SetQuantityResponse], error)
	RemoveLine(context.Context, *connect.Request[api.RemoveLineRequest]) (*connect.Response[api.RemoveLineResponse], error)
	GetOrder(context.Context, *connect.Request[api.GetOrderRequest]) (*connect.Response[api.GetOrderResponse], error)
	ClearOrder(context.Context, *connect.Request[api.ClearOrderRequest]) (*connect.Response[api.ClearOrderResponse], error)
	Checkout(context.Context, *connect.Request[api.CheckoutRequest]) (*connect.Response[api.CheckoutResponse], error)
	GetSubmittedOrder(context.Context, *connect.Request[api.GetSubmittedOrderRequest]) (*connect.Response[api.GetSubmittedOrderResponse], error)
	ListSubmittedOrders(context.Context, *connect.Request[api.ListSubmittedOrdersRequest]) (*connect.Response[api.ListSubmittedOrdersResponse], error)
}

// NewOrderServiceClient constructs a client for the restauflow.v1.OrderService service.
// Calls other than StartSession need an "Authorization: Bearer <token>" header.
func NewOrderServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) OrderServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &orderServiceClient{
		startSession: connect.NewClient[api.StartSessionRequest, api.StartSessionResponse](
			httpClient, baseURL+OrderServiceStartSessionProcedure, opts...,
		),
		addItem: connect.NewClient[api.AddItemRequest, api.AddItemResponse](
			httpClient, baseURL+OrderServiceAddItemProcedure, opts...,
		),
		setQuantity: connect.NewClient[api.SetQuantityRequest, api.SetQuantityResponse](
			httpClient, baseURL+OrderServiceSetQuantityProcedure, opts...,
		),
		removeLine: connect.NewClient[api.RemoveLineRequest, api.RemoveLineResponse](
			httpClient, baseURL+OrderServiceRemoveLineProcedure, opts...,
		),
		getOrder: connect.NewClient[api.GetOrderRequest, api.GetOrderResponse](
			httpClient, baseURL+OrderServiceGetOrderProcedure, opts...,
		),
		clearOrder: connect.NewClient[api.ClearOrderRequest, api.ClearOrderResponse](
			httpClient, baseURL+OrderServiceClearOrderProcedure, opts...,
		),
		checkout: connect.NewClient[api.CheckoutRequest, api.CheckoutResponse](
			httpClient, baseURL+OrderServiceCheckoutProcedure, opts...,
		),
		getSubmittedOrder: connect.NewClient[api.GetSubmittedOrderRequest, api.GetSubmittedOrderResponse](
			httpClient, baseURL+OrderServiceGetSubmittedOrderProcedure, opts...,
		),
		listSubmittedOrders: connect.NewClient[api.ListSubmittedOrdersRequest, api.ListSubmittedOrdersResponse](
			httpClient, baseURL+OrderServiceListSubmittedOrdersProcedure, opts...,
		),
	}
}

type orderServiceClient struct {
	startSession        *connect.Client[api.StartSessionRequest, api.StartSessionResponse]
	addItem             *connect.Client[api.AddItemRequest, api.AddItemResponse]
	setQuantity         *connect.Client[api.SetQuantityRequest, api.SetQuantityResponse]
	removeLine          *connect.Client[api.RemoveLineRequest, api.RemoveLineResponse]
	getOrder            *connect.Client[api.GetOrderRequest, api.GetOrderResponse]
	clearOrder          *connect.Client[api.ClearOrderRequest, api.ClearOrderResponse]
	checkout            *connect.Client[api.CheckoutRequest, api.CheckoutResponse]
	getSubmittedOrder   *connect.Client[api.GetSubmittedOrderRequest, api.GetSubmittedOrderResponse]
	listSubmittedOrders *connect.Client[api.ListSubmittedOrdersRequest, api.ListSubmittedOrdersResponse]
}

func (c *orderServiceClient) StartSession(ctx context.Context, req *connect.Request[api.StartSessionRequest]) (*connect.Response[api.StartSessionResponse], error) {
	return c.startSession.CallUnary(ctx, req)
}

func (c *orderServiceClient) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	return c.addItem.CallUnary(ctx, req)
}

func (c *orderServiceClient) SetQuantity(ctx context.Context, req *connect.Request[api.SetQuantityRequest]) (*connect.Response[api.SetQuantityResponse], error) {
	return c.setQuantity.CallUnary(ctx, req)
}

func (c *orderServiceClient) RemoveLine(ctx context.Context, req *connect.Request[api.RemoveLineRequest]) (*connect.Response[api.RemoveLineResponse], error) {
	return c.removeLine.CallUnary(ctx, req)
}

func (c *orderServiceClient) GetOrder(ctx context.Context, req *connect.Request[api.GetOrderRequest]) (*connect.Response[api.GetOrderResponse], error) {
	return c.getOrder.CallUnary(ctx, req)
}

func (c *orderServiceClient) ClearOrder(ctx context.Context, req *connect.Request[api.ClearOrderRequest]) (*connect.Response[api.ClearOrderResponse], error) {
	return c.clearOrder.CallUnary(ctx, req)
}

func (c *orderServiceClient) Checkout(ctx context.Context, req *connect.Request[api.CheckoutRequest]) (*connect.Response[api.CheckoutResponse], error) {
	return c.checkout.CallUnary(ctx, req)
}

func (c *orderServiceClient) GetSubmittedOrder(ctx context.Context, req *connect.Request[api.GetSubmittedOrderRequest]) (*connect.Response[api.GetSubmittedOrderResponse], error) {
	return c.getSubmittedOrder.CallUnary(ctx, req)
}

func (c *orderServiceClient) ListSubmittedOrders(ctx context.Context, req *connect.Request[api.ListSubmittedOrdersRequest]) (*connect.Response[api.ListSubmittedOrdersResponse], error) {
	return c.listSubmittedOrders.CallUnary(ctx, req)
}

// OrderServiceHandler is implemented by the order service.
type OrderServiceHandler interface {
	StartSession(context.Context, *connect.Request[api.StartSessionRequest]) (*connect.Response[api.StartSessionResponse], error)
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error)
	SetQuantity(context.Context, *connect.Request[api.SetQuantityRequest]) (*connect.Response[api.SetQuantityResponse], error)
	RemoveLine(context.Context, *connect.Request[api.RemoveLineRequest]) (*connect.Response[api.RemoveLineResponse], error)
	GetOrder(context.Context, *connect.Request[api.GetOrderRequest]) (*connect.Response[api.GetOrderResponse], error)
	ClearOrder(context.Context, *connect.Request[api.ClearOrderRequest]) (*connect.Response[api.ClearOrderResponse], error)
	Checkout(context.Context, *connect.Request[api.CheckoutRequest]) (*connect.Response[api.CheckoutResponse], error)
	GetSubmittedOrder(context.Context, *connect.Request[api.GetSubmittedOrderRequest]) (*connect.Response[api.GetSubmittedOrderResponse], error)
	ListSubmittedOrders(context.Context, *connect.Request[api.ListSubmittedOrdersRequest]) (*connect.Response[api.ListSubmittedOrdersResponse], error)
}

// NewOrderServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewOrderServiceHandler(svc OrderServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	handlers := map[string]http.Handler{
		OrderServiceStartSessionProcedure:        connect.NewUnaryHandler(OrderServiceStartSessionProcedure, svc.StartSession, opts...),
		OrderServiceAddItemProcedure:             connect.NewUnaryHandler(OrderServiceAddItemProcedure, svc.AddItem, opts...),
		OrderServiceSetQuantityProcedure:         connect.NewUnaryHandler(OrderServiceSetQuantityProcedure, svc.SetQuantity, opts...),
		OrderServiceRemoveLineProcedure:          connect.NewUnaryHandler(OrderServiceRemoveLineProcedure, svc.RemoveLine, opts...),
		OrderServiceGetOrderProcedure:            connect.NewUnaryHandler(OrderServiceGetOrderProcedure, svc.GetOrder, opts...),
		OrderServiceClearOrderProcedure:          connect.NewUnaryHandler(OrderServiceClearOrderProcedure, svc.ClearOrder, opts...),
		OrderServiceCheckoutProcedure:            connect.NewUnaryHandler(OrderServiceCheckoutProcedure, svc.Checkout, opts...),
		OrderServiceGetSubmittedOrderProcedure:   connect.NewUnaryHandler(OrderServiceGetSubmittedOrderProcedure, svc.GetSubmittedOrder, opts...),
		OrderServiceListSubmittedOrdersProcedure: connect.NewUnaryHandler(OrderServiceListSubmittedOrdersProcedure, svc.ListSubmittedOrders, opts...),
	}

	return "/" + OrderServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}
