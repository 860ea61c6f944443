package commands

import (
	"context"
)

// SetCourierAvailabilityCommandHandler toggles OFFLINE and AVAILABLE. A BUSY courier
// cannot change its availability until the delivery is done.
type SetCourierAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierAvailabilityCommandHandler creates the handler over a courier-only unit of work.
func NewSetCourierAvailabilityCommandHandler(uowFactory CourierUoWFactory) SetCourierAvailabilityCommandHandler {
	return SetCourierAvailabilityCommandHandler{uowFactory: uowFactory}
}

// Handle switches the courier on or off shift.
//
// Returns:
//   - ErrPreconditionFailed while the courier is BUSY or when a concurrent change won
func (h SetCourierAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetCourierAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CourierRepository()
	c, err := repo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	was := c.Availability()
	if cmd.Online() {
		err = c.GoOnline()
	} else {
		err = c.GoOffline()
	}
	if err != nil {
		return err
	}

	if err = repo.UpdateAvailability(ctx, c, was); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
