package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	postgres_adapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

type pgUoWFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f pgUoWFactory) Create() commands.UoW { return f.factory.Create() }

type pgOrderUoWFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f pgOrderUoWFactory) Create() commands.OrderUoW { return f.factory.Create() }

type pgCourierUoWFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f pgCourierUoWFactory) Create() commands.CourierUoW { return f.factory.Create() }

// LifecycleIntegrationTestSuite drives the command handlers against a real PostgreSQL.
type LifecycleIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  *postgres_adapter.GormUnitOfWorkFactory
	catalog  pgtest.Catalog

	createOrder    commands.CreateOrderCommandHandler
	updateOrder    commands.UpdateOrderStatusCommandHandler
	acceptDelivery commands.AcceptDeliveryCommandHandler
	advance        commands.UpdateDeliveryStatusCommandHandler
	createCourier  commands.CreateCourierCommandHandler
	setOnline      commands.SetCourierAvailabilityCommandHandler
}

func TestLifecycleIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(LifecycleIntegrationTestSuite))
}

func (s *LifecycleIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), "")
	s.Require().NoError(err)
	s.database = database

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB, nil, logger)
	reader := catalogrepo.NewGormCatalogReader(database.DB)

	s.createOrder = commands.NewCreateOrderCommandHandler(pgOrderUoWFactory{s.factory}, reader, nil)
	s.updateOrder = commands.NewUpdateOrderStatusCommandHandler(pgUoWFactory{s.factory}, reader)
	s.acceptDelivery = commands.NewAcceptDeliveryCommandHandler(pgUoWFactory{s.factory})
	s.advance = commands.NewUpdateDeliveryStatusCommandHandler(pgUoWFactory{s.factory})
	s.createCourier = commands.NewCreateCourierCommandHandler(pgCourierUoWFactory{s.factory})
	s.setOnline = commands.NewSetCourierAvailabilityCommandHandler(pgCourierUoWFactory{s.factory})
}

func (s *LifecycleIntegrationTestSuite) TearDownSuite() {
	s.Require().NoError(s.database.Terminate(context.Background()))
}

func (s *LifecycleIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.database.Truncate())
	catalog, err := pgtest.SeedCatalog(s.database.DB)
	s.Require().NoError(err)
	s.catalog = catalog
}

func (s *LifecycleIntegrationTestSuite) restaurant() kernel.Actor {
	return kernel.Actor{Role: kernel.RoleRestaurant, ID: s.catalog.OwnerUserID}
}

// readyOrder places an order and lets the restaurant prepare it, which opens its delivery.
func (s *LifecycleIntegrationTestSuite) readyOrder(ctx context.Context) (kernel.UUID, *delivery.Delivery) {
	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderParams{
		OrderID:           kernel.NewUUID(),
		CustomerID:        s.catalog.CustomerID,
		RestaurantID:      s.catalog.RestaurantID,
		DeliveryAddressID: s.catalog.AddressID,
		Lines: []commands.CreateOrderLine{
			{MenuItemID: s.catalog.PizzaID, Quantity: 2},
			{MenuItemID: s.catalog.SodaID, Quantity: 1},
		},
		PaymentType: order.PaymentCash,
	})
	s.Require().NoError(err)
	s.Require().NoError(s.createOrder.Handle(ctx, cmd))

	for _, to := range []order.Status{order.Preparing, order.Ready} {
		update, err := commands.NewUpdateOrderStatusCommand(cmd.OrderID(), s.restaurant(), to, "")
		s.Require().NoError(err)
		s.Require().NoError(s.updateOrder.Handle(ctx, update))
	}

	d, err := s.factory.Create().DeliveryRepository().GetByOrderID(ctx, cmd.OrderID())
	s.Require().NoError(err)
	return cmd.OrderID(), d
}

func (s *LifecycleIntegrationTestSuite) onlineCourier(ctx context.Context) kernel.UUID {
	id := kernel.NewUUID()
	create, err := commands.NewCreateCourierCommand(id, kernel.NewUUID(), courier.Motorcycle, 0)
	s.Require().NoError(err)
	s.Require().NoError(s.createCourier.Handle(ctx, create))

	online, err := commands.NewSetCourierAvailabilityCommand(id, true)
	s.Require().NoError(err)
	s.Require().NoError(s.setOnline.Handle(ctx, online))
	return id
}

func (s *LifecycleIntegrationTestSuite) TestConcurrentAcceptsHaveExactlyOneWinner() {
	ctx := context.Background()
	_, d := s.readyOrder(ctx)

	const contenders = 8
	couriers := make([]kernel.UUID, contenders)
	for i := range couriers {
		couriers[i] = s.onlineCourier(ctx)
	}

	results := make([]error, contenders)
	var g errgroup.Group
	for i, courierID := range couriers {
		g.Go(func() error {
			cmd, err := commands.NewAcceptDeliveryCommand(d.ID(), courierID)
			if err != nil {
				return err
			}
			results[i] = s.acceptDelivery.Handle(ctx, cmd)
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	var winner kernel.UUID
	wins := 0
	for i, err := range results {
		if err == nil {
			wins++
			winner = couriers[i]
			continue
		}
		s.Require().ErrorIs(err, delivery.ErrNoLongerAvailable)
	}
	s.Require().Equal(1, wins)

	repo := s.factory.Create().CourierRepository()
	for _, courierID := range couriers {
		c, err := repo.Get(ctx, courierID)
		s.Require().NoError(err)
		if courierID.IsEqual(winner) {
			s.Equal(courier.Busy, c.Availability())
		} else {
			s.Equal(courier.Available, c.Availability())
		}
	}

	accepted, err := s.factory.Create().DeliveryRepository().Get(ctx, d.ID())
	s.Require().NoError(err)
	s.True(accepted.IsAssignedTo(winner))
}

func (s *LifecycleIntegrationTestSuite) TestHappyPathFreesCourierAtTheEnd() {
	ctx := context.Background()
	orderID, d := s.readyOrder(ctx)
	s.Equal(delivery.Pending, d.Status())
	s.Nil(d.CourierID())

	courierID := s.onlineCourier(ctx)
	accept, err := commands.NewAcceptDeliveryCommand(d.ID(), courierID)
	s.Require().NoError(err)
	s.Require().NoError(s.acceptDelivery.Handle(ctx, accept))

	c, err := s.factory.Create().CourierRepository().Get(ctx, courierID)
	s.Require().NoError(err)
	s.Equal(courier.Busy, c.Availability())

	// The courier may drive the order status directly; the delivery follows.
	pickUp, err := commands.NewUpdateOrderStatusCommand(orderID,
		kernel.Actor{Role: kernel.RoleCourier, ID: courierID}, order.OutForDelivery, "")
	s.Require().NoError(err)
	s.Require().NoError(s.updateOrder.Handle(ctx, pickUp))

	drop, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), courierID, delivery.Delivered)
	s.Require().NoError(err)
	s.Require().NoError(s.advance.Handle(ctx, drop))

	uow := s.factory.Create()
	o, err := uow.OrderRepository().Get(ctx, orderID)
	s.Require().NoError(err)
	s.Equal(order.Delivered, o.Status())
	s.Equal(int64(7000), o.TotalAmount())

	finished, err := uow.DeliveryRepository().Get(ctx, d.ID())
	s.Require().NoError(err)
	s.Equal(delivery.Delivered, finished.Status())

	c, err = uow.CourierRepository().Get(ctx, courierID)
	s.Require().NoError(err)
	s.Equal(courier.Available, c.Availability())
	s.Equal(1, c.TotalDeliveries())
}
