// Package postgres provides the GORM-based unit of work, schema migration and connection
// setup for the PostgreSQL store.
//
// A unit of work scopes every repository it hands out to one transaction and remembers
// the aggregates they persisted. After a successful Commit the domain events recorded by
// those aggregates are handed to the configured ports.EventPublisher, in the order the
// aggregates were tracked. A Rollback discards them.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().UpdateStatus(ctx, o, order.Pending); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance must be used by a single goroutine.
package postgres

import (
	"context"
	"log/slog"

	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/adapters/out/postgres/deliveryrepo"
	"fooddelivery/internal/adapters/out/postgres/notificationrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate persisted during the unit of work. Aggregates that
// implement kernel.EventRecorder have their events pulled after commit.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates units of work sharing one connection pool and publisher.
// Every business operation asks the factory for a fresh instance, so concurrent requests
// never share transaction state.
//
// Example:
//
//	factory := NewGormUnitOfWorkFactory(db, fanout, logger)
//	handler := commands.NewAcceptDeliveryCommandHandler(factory, assigner)
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory builds a factory over an open GORM connection.
//
// Parameters:
//   - db: connection pool shared by every unit of work
//   - publisher: receives domain events after commit; nil drops them
//   - logger: base logger; nil falls back to slog.Default()
//
// Example:
//
//	db, err := postgres.Open(postgres.ConnectionConfig{DSN: cfg.DSN()})
//	if err != nil {
//	    log.Fatalf("open database: %v", err)
//	}
//	factory := NewGormUnitOfWorkFactory(db, nil, slog.Default())
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

// Create produces a new unit of work with its own transaction state and aggregate list.
// The instance is idle until Begin is called.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	d, err := uow.DeliveryRepository().Get(ctx, deliveryID)
//	if err != nil {
//	    return err
//	}
//	// mutate d, then persist it through the same repository
//	return uow.Commit(ctx)
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork implements ports.UnitOfWork on a single GORM transaction.
//
// Lifecycle:
//
//	Create ──> Begin ──┬──> Commit   (events published)
//	                   └──> Rollback (events discarded)
//
// Repositories returned before Begin run on the bare connection; repositories returned
// after Begin share the transaction. Obtain repositories after Begin.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.DeliveryRepository().Add(ctx, d); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().UpdateStatus(ctx, o, order.Preparing); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin twice keeps the first transaction.
//
// Returns:
//   - error: the driver error when the transaction cannot be opened
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then publishes the recorded domain events.
// A publishing failure is logged; it cannot undo the committed state change.
//
// Returns:
//   - gorm.ErrInvalidTransaction if Begin was not called
//   - the commit error otherwise; tracked aggregates are dropped in that case
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishEvents(ctx)
	return nil
}

// Rollback discards the transaction and the tracked aggregates. Rolling back after a
// Commit is a no-op that returns gorm.ErrInvalidTransaction, so it is safe to defer.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns an order repository bound to the current transaction.
//
// Example:
//
//	o, err := uow.OrderRepository().Get(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	from := o.Status()
//	if err = o.Transition(actor, order.Preparing, order.TransitionParams{At: now}); err != nil {
//	    return err
//	}
//	return uow.OrderRepository().UpdateStatus(ctx, o, from)
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// DeliveryRepository returns a delivery repository bound to the current transaction.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

// CourierRepository returns a courier repository bound to the current transaction.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn(), uow)
}

// NotificationRepository returns a notification repository bound to the current
// transaction. Notifications record no events, so nothing is tracked.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}

// TrackAggregate registers an aggregate persisted within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishEvents(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	var events []kernel.DomainEvent
	for _, t := range tracked {
		if recorder, ok := t.Aggregate.(kernel.EventRecorder); ok {
			events = append(events, recorder.PullEvents()...)
		}
	}

	if len(events) == 0 || uow.publisher == nil {
		return
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.ErrorContext(ctx, "failed to publish domain events",
			"events", len(events),
			"error", err,
		)
	}
}

// NoTracking is the aggregate tracker for repositories used outside a unit of work,
// such as the read side. Events recorded by aggregates they load are never published.
type NoTracking struct{}

func (NoTracking) TrackAggregate(kernel.UUID, any) {}
