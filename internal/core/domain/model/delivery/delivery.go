package delivery

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned by Validate for a zero-value Delivery.
	ErrDeliveryIsNotConstructed = errors.New("delivery must be created via NewDelivery constructor")

	// ErrNoLongerAvailable is the reason reported when a delivery has already been accepted.
	ErrNoLongerAvailable = errs.NewPreconditionFailedError("delivery", "is no longer available")

	_ kernel.EventRecorder = (*Delivery)(nil)
)

// Delivery tracks the courier side of a READY order.
//
// Invariants:
//   - at most one courier is ever bound, and only on the PENDING -> ACCEPTED transition
//   - only the bound courier may advance the status or report a position
//
// Every status change records a DeliveryStatusUpdated event; creation records
// DeliveryCreated. Events are pulled by the unit of work after commit.
//
// Example:
//
//	d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, now)
//	if err != nil {
//	    return err
//	}
//	if err = d.Accept(courierID, now); err != nil {
//	    return err // ErrNoLongerAvailable if already taken
//	}
//	err = d.Advance(courierID, delivery.PickedUp, now)
type Delivery struct {
	id        kernel.UUID
	orderID   kernel.UUID
	courierID *kernel.UUID
	status    Status
	location  *kernel.Location

	acceptedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	events        []kernel.DomainEvent
	isConstructed bool
}

// NewDelivery creates a PENDING delivery for orderID without a courier.
//
// Parameters:
//   - id: identifier of the new delivery
//   - orderID: the READY order being delivered
//   - at: creation time; zero means now
//
// Returns:
//   - *Delivery: the pending delivery with a DeliveryCreated event recorded
//   - error: joined validation errors for invalid ids
func NewDelivery(id, orderID kernel.UUID, at time.Time) (*Delivery, error) {
	if at.IsZero() {
		at = time.Now().UTC()
	}

	d := &Delivery{
		status:        Pending,
		createdAt:     at,
		updatedAt:     at,
		isConstructed: true,
	}

	if err := errors.Join(d.setID(id), d.setOrderID(orderID)); err != nil {
		return nil, err
	}

	d.record(DeliveryCreated{DeliveryID: d.id, OrderID: d.orderID, OccurredAt: at})
	return d, nil
}

// RestoreParams carries the persisted state of a delivery for RestoreDelivery.
// CourierID must be nil exactly when Status is Pending.
//
// Example:
//
//	d, err := delivery.RestoreDelivery(delivery.RestoreParams{
//	    ID:        dto.ID,
//	    OrderID:   dto.OrderID,
//	    CourierID: &courierID,
//	    Status:    delivery.Accepted,
//	    CreatedAt: dto.CreatedAt,
//	    UpdatedAt: dto.UpdatedAt,
//	})
type RestoreParams struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	CourierID   *kernel.UUID
	Status      Status
	Location    *kernel.Location
	AcceptedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestoreDelivery rebuilds a delivery from storage without recording events.
//
// Returns:
//   - *Delivery: the restored aggregate
//   - error: ErrValueIsInvalid when the status is unknown or the courier binding
//     contradicts the status
func RestoreDelivery(p RestoreParams) (*Delivery, error) {
	d := &Delivery{
		courierID:     p.CourierID,
		location:      p.Location,
		acceptedAt:    p.AcceptedAt,
		pickedUpAt:    p.PickedUpAt,
		deliveredAt:   p.DeliveredAt,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(d.setID(p.ID), d.setOrderID(p.OrderID), d.setStatus(p.Status)); err != nil {
		return nil, err
	}

	if (d.courierID == nil) != (d.status == Pending) {
		return nil, errs.NewValueIsInvalidError("courierId must be set exactly when the delivery is not PENDING")
	}

	return d, nil
}

// Validate reports whether d was built by NewDelivery or RestoreDelivery.
//
// Returns:
//   - nil for a constructed delivery
//   - ErrDeliveryIsNotConstructed for nil or zero-value deliveries
//
// Example:
//
//	var d delivery.Delivery
//	err := d.Validate() // ErrDeliveryIsNotConstructed
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID            { return d.id }
func (d *Delivery) OrderID() kernel.UUID       { return d.orderID }
func (d *Delivery) CourierID() *kernel.UUID    { return d.courierID }
func (d *Delivery) Status() Status             { return d.status }
func (d *Delivery) Location() *kernel.Location { return d.location }
func (d *Delivery) AcceptedAt() *time.Time     { return d.acceptedAt }
func (d *Delivery) PickedUpAt() *time.Time     { return d.pickedUpAt }
func (d *Delivery) DeliveredAt() *time.Time    { return d.deliveredAt }
func (d *Delivery) CreatedAt() time.Time       { return d.createdAt }
func (d *Delivery) UpdatedAt() time.Time       { return d.updatedAt }

// IsAssignedTo reports whether courierID is the bound courier.
func (d *Delivery) IsAssignedTo(courierID kernel.UUID) bool {
	return d.courierID != nil && d.courierID.IsEqual(courierID)
}

// Accept binds courierID to a PENDING delivery and moves it to ACCEPTED.
//
// Returns:
//   - ErrNoLongerAvailable if the delivery is not PENDING
//   - the id validation error for a zero courierID
func (d *Delivery) Accept(courierID kernel.UUID, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if d.status != Pending {
		return ErrNoLongerAvailable
	}

	at = orNow(at)
	d.courierID = &courierID
	d.acceptedAt = &at
	d.changeStatus(Accepted, at)
	return nil
}

// Advance moves an accepted delivery forward on behalf of its courier. Only
// ACCEPTED -> PICKED_UP and PICKED_UP -> DELIVERED are possible here.
func (d *Delivery) Advance(courierID kernel.UUID, to Status, at time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if !d.IsAssignedTo(courierID) {
		return errs.NewForbiddenError("courier "+courierID.String(), "update a delivery it is not assigned to")
	}
	if to == Accepted || !d.status.CanTransitionTo(to) {
		return errs.NewInvalidTransitionError("delivery", d.status.String(), to.String())
	}

	at = orNow(at)
	switch to {
	case PickedUp:
		d.pickedUpAt = &at
	case Delivered:
		d.deliveredAt = &at
	case Unknown, Pending, Accepted:
	}
	d.changeStatus(to, at)
	return nil
}

// UpdateLocation records the bound courier's position while the delivery is active.
func (d *Delivery) UpdateLocation(courierID kernel.UUID, loc kernel.Location, at time.Time) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	if !d.status.IsActive() {
		return errs.NewPreconditionFailedError("delivery",
			"location can only be updated while ACCEPTED or PICKED_UP, current status is "+d.status.String())
	}
	if !d.IsAssignedTo(courierID) {
		return errs.NewForbiddenError("courier "+courierID.String(), "report a position for a delivery it is not assigned to")
	}

	d.location = &loc
	d.updatedAt = orNow(at)
	return nil
}

// PullEvents returns the recorded events and clears them.
func (d *Delivery) PullEvents() []kernel.DomainEvent {
	events := d.events
	d.events = nil
	return events
}

func (d *Delivery) changeStatus(to Status, at time.Time) {
	from := d.status
	d.status = to
	d.updatedAt = at
	d.record(DeliveryStatusUpdated{
		DeliveryID: d.id,
		OrderID:    d.orderID,
		CourierID:  *d.courierID,
		From:       from,
		To:         to,
		OccurredAt: at,
	})
}

func (d *Delivery) record(e kernel.DomainEvent) {
	d.events = append(d.events, e)
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	d.orderID = id
	return nil
}

func (d *Delivery) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	d.status = s
	return nil
}

func orNow(at time.Time) time.Time {
	if at.IsZero() {
		return time.Now().UTC()
	}
	return at
}
