package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetCourierAvailabilityCommandIsNotConstructed = errors.New(
	"SetCourierAvailabilityCommand must be created via NewSetCourierAvailabilityCommand constructor",
)

// SetCourierAvailabilityCommand starts (online) or ends a courier's shift.
type SetCourierAvailabilityCommand struct {
	courierID kernel.UUID
	online    bool

	guard guard.ConstructorGuard
}

func NewSetCourierAvailabilityCommand(courierID kernel.UUID, online bool) (SetCourierAvailabilityCommand, error) {
	if err := courierID.Validate(); err != nil {
		return SetCourierAvailabilityCommand{}, err
	}
	return SetCourierAvailabilityCommand{courierID: courierID, online: online, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the command was built by its constructor.
func (c SetCourierAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierAvailabilityCommandIsNotConstructed)
}

func (c SetCourierAvailabilityCommand) CourierID() kernel.UUID { return c.courierID }
func (c SetCourierAvailabilityCommand) Online() bool           { return c.online }
