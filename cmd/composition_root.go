package cmd

import (
	"log/slog"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/pix"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/adapters/out/postgres/deliveryrepo"
	"fooddelivery/internal/adapters/out/postgres/notificationrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/realtime"
	"fooddelivery/internal/core/application/notifications"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, repositories and use case handlers.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory

	hub           *realtime.Hub
	pix           *pix.MockProvider
	catalog       ports.CatalogReader
	orders        ports.OrderRepository
	deliveries    ports.DeliveryRepository
	couriers      ports.CourierRepository
	notifications ports.NotificationRepository
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	catalog := catalogrepo.NewGormCatalogReader(gormDB)
	notificationRepo := notificationrepo.NewGormNotificationRepository(gormDB)
	hub := realtime.NewHub(config.RealtimeBufferSize, logger)
	fanout := notifications.NewFanout(notificationRepo, catalog, hub, logger)

	return &CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		logger:        logger,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB, fanout, logger),
		hub:           hub,
		pix:           pix.NewMockProvider(config.PixKey),
		catalog:       catalog,
		orders:        orderrepo.NewGormOrderRepository(gormDB, postgres.NoTracking{}),
		deliveries:    deliveryrepo.NewGormDeliveryRepository(gormDB, postgres.NoTracking{}),
		couriers:      courierrepo.NewGormCourierRepository(gormDB, postgres.NoTracking{}),
		notifications: notificationRepo,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoW() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoW(), c.catalog, c.pix)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.uow(), c.catalog)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateUpdateDeliveryLocationCommandHandler() commands.UpdateDeliveryLocationCommandHandler {
	return commands.NewUpdateDeliveryLocationCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoW())
}

func (c *CompositionRoot) CreateSetCourierAvailabilityCommandHandler() commands.SetCourierAvailabilityCommandHandler {
	return commands.NewSetCourierAvailabilityCommandHandler(c.courierUoW())
}

func (c *CompositionRoot) CreateMarkNotificationsReadCommandHandler() commands.MarkNotificationsReadCommandHandler {
	return commands.NewMarkNotificationsReadCommandHandler(c.notifications)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders, c.deliveries, c.catalog)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders, c.catalog)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.deliveries)
}

func (c *CompositionRoot) CreateGetCourierByUserQueryHandler() queries.GetCourierByUserQueryHandler {
	return queries.NewGetCourierByUserQueryHandler(c.couriers)
}

func (c *CompositionRoot) CreateGetDeliveryEstimateQueryHandler() queries.GetDeliveryEstimateQueryHandler {
	return queries.NewGetDeliveryEstimateQueryHandler(c.deliveries, c.orders, c.couriers, c.catalog)
}

func (c *CompositionRoot) CreateListPendingDeliveriesQueryHandler() queries.ListPendingDeliveriesQueryHandler {
	return queries.NewListPendingDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindAvailableCouriersQueryHandler() queries.FindAvailableCouriersQueryHandler {
	return queries.NewFindAvailableCouriersQueryHandler(c.couriers, c.catalog).
		WithDefaultRadius(c.config.NearbyRadiusKm)
}

func (c *CompositionRoot) CreateGetPixPaymentStatusQueryHandler() queries.GetPixPaymentStatusQueryHandler {
	return queries.NewGetPixPaymentStatusQueryHandler(c.orders, c.pix)
}

func (c *CompositionRoot) CreateNotificationsQueryHandler() queries.NotificationsQueryHandler {
	return queries.NewNotificationsQueryHandler(c.notifications)
}

// CreateHTTPServer assembles the echo adapter over every use case.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:      c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:            c.CreateCancelOrderCommandHandler(),
		CreateDelivery:         c.CreateCreateDeliveryCommandHandler(),
		AcceptDelivery:         c.CreateAcceptDeliveryCommandHandler(),
		UpdateDeliveryStatus:   c.CreateUpdateDeliveryStatusCommandHandler(),
		UpdateDeliveryLocation: c.CreateUpdateDeliveryLocationCommandHandler(),
		CreateCourier:          c.CreateCreateCourierCommandHandler(),
		SetCourierAvailability: c.CreateSetCourierAvailabilityCommandHandler(),
		MarkNotificationsRead:  c.CreateMarkNotificationsReadCommandHandler(),
		GetOrder:               c.CreateGetOrderQueryHandler(),
		ListOrders:             c.CreateListOrdersQueryHandler(),
		GetDelivery:            c.CreateGetDeliveryQueryHandler(),
		GetCourierByUser:       c.CreateGetCourierByUserQueryHandler(),
		GetDeliveryEstimate:    c.CreateGetDeliveryEstimateQueryHandler(),
		ListPendingDeliveries:  c.CreateListPendingDeliveriesQueryHandler(),
		FindAvailableCouriers:  c.CreateFindAvailableCouriersQueryHandler(),
		GetPixPaymentStatus:    c.CreateGetPixPaymentStatusQueryHandler(),
		Notifications:          c.CreateNotificationsQueryHandler(),
	}, c.hub, c.logger)
}

// CreateJobManager schedules the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	monitor := jobs.NewPendingDeliveryMonitorJob(
		c.deliveries,
		c.config.MonitorSchedule,
		c.config.MonitorStaleAfter,
		c.logger,
	)
	return jobs.NewJobManager(monitor)
}

// CloseRealtime ends the open event streams.
func (c *CompositionRoot) CloseRealtime() {
	c.hub.Close()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
