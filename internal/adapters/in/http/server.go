// Package http is the echo adapter exposing the use cases under /api/v1. The caller is
// identified by the X-Actor-Role and X-Actor-ID headers set by the upstream gateway.
// X-Actor-ID is always a user id; courier callers are resolved to their courier profile
// before a courier use case runs.
// Requests are validated against the embedded OpenAPI document before they reach a
// handler, and domain errors are mapped to status codes in one place.
package http

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/adapters/out/realtime"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// CommandHandler is satisfied by every command handler in usecases/commands.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by every query handler in usecases/queries.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// OrderLister serves the customer and restaurant order lists.
type OrderLister interface {
	HandleCustomer(ctx context.Context, query queries.ListCustomerOrdersQuery) (ports.PagedResult[*order.Order], error)
	HandleRestaurant(ctx context.Context, query queries.ListRestaurantOrdersQuery) (ports.PagedResult[*order.Order], error)
}

// NotificationReader reads a user's inbox.
type NotificationReader interface {
	List(ctx context.Context, query queries.NotificationsQuery) (ports.PagedResult[*notification.Notification], error)
	CountUnread(ctx context.Context, query queries.NotificationsQuery) (int64, error)
}

// Handlers are the use cases the server dispatches to.
type Handlers struct {
	CreateOrder            CommandHandler[commands.CreateOrderCommand]
	UpdateOrderStatus      CommandHandler[commands.UpdateOrderStatusCommand]
	CancelOrder            CommandHandler[commands.CancelOrderCommand]
	CreateDelivery         CommandHandler[commands.CreateDeliveryCommand]
	AcceptDelivery         CommandHandler[commands.AcceptDeliveryCommand]
	UpdateDeliveryStatus   CommandHandler[commands.UpdateDeliveryStatusCommand]
	UpdateDeliveryLocation CommandHandler[commands.UpdateDeliveryLocationCommand]
	CreateCourier          CommandHandler[commands.CreateCourierCommand]
	SetCourierAvailability CommandHandler[commands.SetCourierAvailabilityCommand]
	MarkNotificationsRead  QueryHandler[commands.MarkNotificationsReadCommand, int64]

	GetOrder              QueryHandler[queries.GetOrderQuery, *order.Order]
	ListOrders            OrderLister
	GetDelivery           QueryHandler[queries.GetDeliveryQuery, *delivery.Delivery]
	GetCourierByUser      QueryHandler[queries.GetCourierByUserQuery, *courier.Courier]
	GetDeliveryEstimate   QueryHandler[queries.GetDeliveryEstimateQuery, queries.DeliveryEstimate]
	ListPendingDeliveries QueryHandler[queries.ListPendingDeliveriesQuery, queries.ListPendingDeliveriesQueryResponse]
	FindAvailableCouriers QueryHandler[queries.FindAvailableCouriersQuery, []services.NearbyCourier]
	GetPixPaymentStatus   QueryHandler[queries.GetPixPaymentStatusQuery, queries.PixPaymentStatus]
	Notifications         NotificationReader
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers  Handlers
	hub       *realtime.Hub
	logger    *slog.Logger
	keepAlive time.Duration
}

const defaultKeepAlive = 25 * time.Second

// NewServer creates a Server. A nil logger falls back to slog.Default.
//
// Example:
//
//	hub := realtime.NewHub(realtime.DefaultBufferSize, logger)
//	server := http.NewServer(handlers, hub, logger)
//	e, err := http.NewRouter(ctx, server)
func NewServer(handlers Handlers, hub *realtime.Hub, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers:  handlers,
		hub:       hub,
		logger:    logger.With("component", "http"),
		keepAlive: defaultKeepAlive,
	}
}
