package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/pkg/errs"
)

// CreateCourierCommandHandler registers a courier. New couriers start OFFLINE.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates the handler over a courier-only unit of work.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{uowFactory: uowFactory}
}

// Handle persists the new OFFLINE courier.
//
// Returns:
//   - ErrConflict if the user already has a courier profile
func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := courier.NewCourier(cmd.CourierID(), cmd.UserID(), cmd.Vehicle(), cmd.DeliveryRadiusKm())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CourierRepository()
	_, err = repo.GetByUserID(ctx, cmd.UserID())
	if err == nil {
		return errs.NewConflictError("courier", "already registered for user "+cmd.UserID().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = repo.Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
