package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per business operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes repositories to one transaction. Domain events recorded by the
// aggregates it persisted are published after a successful Commit.
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
//	return uow.Commit(ctx)
type UnitOfWork interface {
	// Begin opens the transaction. Repositories must be obtained after Begin.
	Begin(ctx context.Context) error

	// Commit makes the changes durable and then publishes the recorded events.
	Commit(ctx context.Context) error

	// Rollback discards the changes. After Commit it is a harmless error, so it can be
	// deferred unconditionally.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	DeliveryRepository() DeliveryRepository

	CourierRepository() CourierRepository

	NotificationRepository() NotificationRepository
}
