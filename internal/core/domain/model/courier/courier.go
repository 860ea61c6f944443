package courier

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	// DefaultDeliveryRadiusKm applies when a courier registers without a radius.
	DefaultDeliveryRadiusKm = 10.0

	// etaHandlingMinutes is added to every travel estimate for pickup and handover.
	etaHandlingMinutes = 10
)

var (
	// ErrCourierIsNotConstructed is returned by Validate for a zero-value Courier.
	ErrCourierIsNotConstructed = errors.New("courier must be created via NewCourier constructor")

	// ErrCourierNotAvailable is the reason reported when a courier cannot take a delivery.
	ErrCourierNotAvailable = errs.NewPreconditionFailedError("courier", "is not available")
)

// Courier is a delivery person. Availability changes are persisted with a
// compare-and-swap on the previous value, see ports.CourierRepository.
//
// Availability transitions:
//
//	OFFLINE <──> AVAILABLE <──> BUSY
//
// A courier becomes BUSY only by accepting a delivery and returns to AVAILABLE when
// it is delivered.
//
// Example:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), userID, courier.Motorcycle, 0)
//	if err != nil {
//	    return err
//	}
//	_ = c.GoOnline() // AVAILABLE
//	_ = c.Occupy()   // BUSY
//	_ = c.Release()  // AVAILABLE, TotalDeliveries()+1
type Courier struct {
	id              kernel.UUID
	userID          kernel.UUID
	availability    Availability
	vehicle         VehicleType
	location        *kernel.Location
	deliveryRadius  float64
	totalDeliveries int
	rating          float64

	guard guard.ConstructorGuard
}

// NewCourier registers an OFFLINE courier without a known position. A zero radius
// falls back to DefaultDeliveryRadiusKm.
//
// Parameters:
//   - id: courier id
//   - userID: the user owning the profile; one profile per user
//   - vehicle: decides the speed used for estimates
//   - deliveryRadiusKm: how far the courier is willing to ride; must not be negative
//
// Returns:
//   - *Courier: the OFFLINE courier
//   - error: joined validation errors
func NewCourier(id, userID kernel.UUID, vehicle VehicleType, deliveryRadiusKm float64) (*Courier, error) {
	if deliveryRadiusKm == 0 {
		deliveryRadiusKm = DefaultDeliveryRadiusKm
	}

	c := &Courier{
		availability: Offline,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setVehicle(vehicle),
		c.setDeliveryRadius(deliveryRadiusKm),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreParams carries the persisted state of a courier for RestoreCourier.
type RestoreParams struct {
	ID               kernel.UUID
	UserID           kernel.UUID
	Availability     Availability
	Vehicle          VehicleType
	Location         *kernel.Location
	DeliveryRadiusKm float64
	TotalDeliveries  int
	Rating           float64
}

// RestoreCourier rebuilds a persisted courier.
func RestoreCourier(p RestoreParams) (*Courier, error) {
	c := &Courier{
		location: p.Location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(p.ID),
		c.setUserID(p.UserID),
		c.setVehicle(p.Vehicle),
		c.setDeliveryRadius(p.DeliveryRadiusKm),
		c.setAvailability(p.Availability),
		c.setStatistics(p.TotalDeliveries, p.Rating),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate reports whether c was built by NewCourier or RestoreCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares couriers by id.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Courier) ID() kernel.UUID            { return c.id }
func (c *Courier) UserID() kernel.UUID        { return c.userID }
func (c *Courier) Availability() Availability { return c.availability }
func (c *Courier) Vehicle() VehicleType       { return c.vehicle }
func (c *Courier) Location() *kernel.Location { return c.location }
func (c *Courier) DeliveryRadiusKm() float64  { return c.deliveryRadius }
func (c *Courier) TotalDeliveries() int       { return c.totalDeliveries }
func (c *Courier) Rating() float64            { return c.rating }
func (c *Courier) IsAvailable() bool          { return c.availability == Available }

// Occupy marks an AVAILABLE courier BUSY when it accepts a delivery.
func (c *Courier) Occupy() error {
	if c.availability != Available {
		return ErrCourierNotAvailable
	}
	c.availability = Busy
	return nil
}

// Release frees a BUSY courier after a delivery and counts it.
func (c *Courier) Release() error {
	if c.availability != Busy {
		return errs.NewPreconditionFailedError("courier", "is not busy, current availability is "+c.availability.String())
	}
	c.availability = Available
	c.totalDeliveries++
	return nil
}

// GoOnline makes an OFFLINE courier AVAILABLE. Going online twice is a no-op.
func (c *Courier) GoOnline() error {
	switch c.availability {
	case Available:
		return nil
	case Offline:
		c.availability = Available
		return nil
	case AvailabilityUnknown, Busy:
	}
	return errs.NewPreconditionFailedError("courier", "cannot go online while "+c.availability.String())
}

// GoOffline takes an AVAILABLE courier off shift. A BUSY courier must finish first.
func (c *Courier) GoOffline() error {
	switch c.availability {
	case Offline:
		return nil
	case Available:
		c.availability = Offline
		return nil
	case AvailabilityUnknown, Busy:
	}
	return errs.NewPreconditionFailedError("courier", "cannot go offline while "+c.availability.String())
}

// MoveTo records the courier's current position.
func (c *Courier) MoveTo(loc kernel.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	c.location = &loc
	return nil
}

// DistanceKmTo returns the distance from the courier's position to target. The second
// result is false when the courier's position is unknown.
func (c *Courier) DistanceKmTo(target kernel.Location) (float64, bool, error) {
	if c.location == nil {
		return 0, false, nil
	}
	d, err := c.location.DistanceKm(target)
	if err != nil {
		return 0, false, err
	}
	return d, true, nil
}

// MinutesToCover converts a travel distance into whole minutes at the vehicle's speed,
// including a fixed handling allowance.
func (c *Courier) MinutesToCover(distanceKm float64) (int, error) {
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		return 0, errs.NewValueIsOutOfRangeError("distanceKm", distanceKm, 0, nil)
	}
	speed := c.vehicle.SpeedKmh()
	if speed <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("vehicleType", fmt.Errorf("%s has no speed", c.vehicle))
	}
	return int(math.Round(distanceKm/speed*60 + etaHandlingMinutes)), nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	c.userID = id
	return nil
}

func (c *Courier) setVehicle(v VehicleType) error {
	if err := v.Validate(); err != nil {
		return err
	}
	c.vehicle = v
	return nil
}

func (c *Courier) setDeliveryRadius(radius float64) error {
	if radius <= 0 || math.IsNaN(radius) {
		return errs.NewValueIsOutOfRangeError("deliveryRadius", radius, 0, nil)
	}
	c.deliveryRadius = radius
	return nil
}

func (c *Courier) setAvailability(a Availability) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.availability = a
	return nil
}

func (c *Courier) setStatistics(totalDeliveries int, rating float64) error {
	if totalDeliveries < 0 {
		return errs.NewValueIsOutOfRangeError("totalDeliveries", totalDeliveries, 0, nil)
	}
	if rating < 0 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 0, 5)
	}
	c.totalDeliveries = totalDeliveries
	c.rating = rating
	return nil
}
