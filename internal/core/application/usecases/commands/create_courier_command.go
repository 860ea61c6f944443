package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand registers a user as a delivery person. A zero radius selects the
// default delivery radius.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID        kernel.UUID
	userID           kernel.UUID
	vehicle          courier.VehicleType
	deliveryRadiusKm float64

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand validates the registration.
//
// Parameters:
//   - courierID: id of the profile to create
//   - userID: the user registering; one profile per user
//   - vehicle: BICYCLE, MOTORCYCLE or CAR
//   - deliveryRadiusKm: zero selects the default, negative is out of range
func NewCreateCourierCommand(
	courierID, userID kernel.UUID,
	vehicle courier.VehicleType,
	deliveryRadiusKm float64,
) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		courierID.Validate(),
		userID.Validate(),
		cmd.setVehicle(vehicle),
		cmd.setDeliveryRadius(deliveryRadiusKm),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	cmd.courierID, cmd.userID = courierID, userID
	return cmd, nil
}

// Validate reports whether the command was built by its constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) CourierID() kernel.UUID       { return c.courierID }
func (c CreateCourierCommand) UserID() kernel.UUID          { return c.userID }
func (c CreateCourierCommand) Vehicle() courier.VehicleType { return c.vehicle }
func (c CreateCourierCommand) DeliveryRadiusKm() float64    { return c.deliveryRadiusKm }

func (c *CreateCourierCommand) setVehicle(v courier.VehicleType) error {
	if err := v.Validate(); err != nil {
		return err
	}
	c.vehicle = v
	return nil
}

func (c *CreateCourierCommand) setDeliveryRadius(km float64) error {
	if km < 0 {
		return errs.NewValueIsOutOfRangeError("deliveryRadiusKm", km, 0, nil)
	}
	c.deliveryRadiusKm = km
	return nil
}
