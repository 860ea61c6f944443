package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder
	// or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder constructor")

	_ kernel.EventRecorder = (*Order)(nil)
)

// Order is the aggregate root of the order lifecycle. It owns the item snapshot, the
// payment, the price breakdown and one timestamp per lifecycle milestone.
//
// Invariants:
//   - totalAmount == subtotal + deliveryFee
//   - subtotal == sum of item total prices
//   - status only changes through Transition
//
// Example:
//
//	o, err := uow.OrderRepository().Get(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	from := o.Status()
//	if err = o.Transition(actor, order.Preparing, order.TransitionParams{DeliveryTimeMax: 40}); err != nil {
//	    return err
//	}
//	err = uow.OrderRepository().UpdateStatus(ctx, o, from)
type Order struct {
	id                kernel.UUID
	customerID        kernel.UUID
	restaurantID      kernel.UUID
	deliveryAddressID kernel.UUID
	payment           Payment
	status            Status

	subtotal    int64
	deliveryFee int64
	totalAmount int64

	notes              string
	cancellationReason string

	estimatedDeliveryTime *time.Time
	acceptedAt            *time.Time
	readyAt               *time.Time
	pickedUpAt            *time.Time
	deliveredAt           *time.Time
	cancelledAt           *time.Time
	createdAt             time.Time
	updatedAt             time.Time

	items  []Item
	events []kernel.DomainEvent

	isConstructed bool
}

// NewOrderParams carries the already priced order. Subtotal and TotalAmount are
// cross-checked against the items and the delivery fee.
type NewOrderParams struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	RestaurantID      kernel.UUID
	DeliveryAddressID kernel.UUID
	Payment           Payment
	Items             []Item
	Subtotal          int64
	DeliveryFee       int64
	TotalAmount       int64
	Notes             string
	CreatedAt         time.Time
}

// NewOrder creates a PENDING order and records OrderCreated.
//
// Example:
//
//	o, err := order.NewOrder(order.NewOrderParams{
//		ID: kernel.NewUUID(), CustomerID: customerID, RestaurantID: restaurantID,
//		DeliveryAddressID: addressID, Payment: order.CashPayment{},
//		Items: items, Subtotal: 6500, DeliveryFee: 500, TotalAmount: 7000,
//	})
func NewOrder(p NewOrderParams) (*Order, error) {
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	o := &Order{
		status:        Pending,
		notes:         strings.TrimSpace(p.Notes),
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setParticipants(p.CustomerID, p.RestaurantID, p.DeliveryAddressID),
		o.setItems(p.Items),
		o.setAmounts(p.Subtotal, p.DeliveryFee, p.TotalAmount),
	); err != nil {
		return nil, err
	}

	if err := o.setPayment(p.Payment); err != nil {
		return nil, err
	}

	o.record(OrderCreated{
		OrderID:      o.id,
		CustomerID:   o.customerID,
		RestaurantID: o.restaurantID,
		TotalAmount:  o.totalAmount,
		Status:       o.status,
		OccurredAt:   createdAt,
	})
	return o, nil
}

// RestoreOrderParams is the persisted state of an order.
type RestoreOrderParams struct {
	NewOrderParams

	Status                Status
	CancellationReason    string
	EstimatedDeliveryTime *time.Time
	AcceptedAt            *time.Time
	ReadyAt               *time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	CancelledAt           *time.Time
	UpdatedAt             time.Time
}

// RestoreOrder rebuilds an order from storage. No events are recorded.
//
// Returns:
//   - *Order: the restored aggregate
//   - error: joined validation errors when the stored row breaks an invariant,
//     e.g. a total that no longer matches subtotal plus fee
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{
		notes:                 p.Notes,
		cancellationReason:    p.CancellationReason,
		estimatedDeliveryTime: p.EstimatedDeliveryTime,
		acceptedAt:            p.AcceptedAt,
		readyAt:               p.ReadyAt,
		pickedUpAt:            p.PickedUpAt,
		deliveredAt:           p.DeliveredAt,
		cancelledAt:           p.CancelledAt,
		createdAt:             p.CreatedAt,
		updatedAt:             p.UpdatedAt,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setParticipants(p.CustomerID, p.RestaurantID, p.DeliveryAddressID),
		o.setItems(p.Items),
		o.setAmounts(p.Subtotal, p.DeliveryFee, p.TotalAmount),
		o.setStatus(p.Status),
	); err != nil {
		return nil, err
	}

	if err := o.setPayment(p.Payment); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate reports whether o was built by NewOrder or RestoreOrder.
//
// Returns:
//   - nil for a constructed order
//   - ErrOrderIsNotConstructed for nil or zero-value orders
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                { return o.id }
func (o *Order) CustomerID() kernel.UUID        { return o.customerID }
func (o *Order) RestaurantID() kernel.UUID      { return o.restaurantID }
func (o *Order) DeliveryAddressID() kernel.UUID { return o.deliveryAddressID }
func (o *Order) Payment() Payment               { return o.payment }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) Subtotal() int64                { return o.subtotal }
func (o *Order) DeliveryFee() int64             { return o.deliveryFee }
func (o *Order) TotalAmount() int64             { return o.totalAmount }
func (o *Order) Notes() string                  { return o.notes }
func (o *Order) CancellationReason() string     { return o.cancellationReason }
func (o *Order) EstimatedDeliveryTime() *time.Time {
	return o.estimatedDeliveryTime
}
func (o *Order) AcceptedAt() *time.Time  { return o.acceptedAt }
func (o *Order) ReadyAt() *time.Time     { return o.readyAt }
func (o *Order) PickedUpAt() *time.Time  { return o.pickedUpAt }
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) UpdatedAt() time.Time    { return o.updatedAt }

// Items returns a copy of the item snapshot.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// IsOwnedBy reports whether customerID placed the order.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// TransitionParams carries the inputs of a status change. At defaults to now,
// Reason is only used for CANCELLED and DeliveryTimeMax (minutes) only for PREPARING.
type TransitionParams struct {
	At              time.Time
	Reason          string
	DeliveryTimeMax int
}

// Transition moves the order to status to on behalf of actor.
//
// Checks, in order:
//   - the actor's role may request to (Forbidden)
//   - a customer may only act on their own order (Forbidden)
//   - the transition table allows status -> to (InvalidTransition)
//
// Restaurant ownership and courier binding are checked by the caller, which has access
// to the catalog and to the delivery.
//
// Side effects: PREPARING sets acceptedAt and the estimated delivery time, READY sets
// readyAt, OUT_FOR_DELIVERY sets pickedUpAt, DELIVERED sets deliveredAt and CANCELLED
// sets cancelledAt and the cancellation reason. OrderStatusUpdated is recorded.
//
// Example:
//
//	actor := kernel.Actor{Role: kernel.RoleCustomer, ID: customerID}
//	err := o.Transition(actor, order.Cancelled, order.TransitionParams{Reason: "changed my mind"})
func (o *Order) Transition(actor kernel.Actor, to Status, p TransitionParams) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if !RoleMayRequest(actor.Role, to) {
		return errs.NewForbiddenError(actor.Role.String(), "move an order to "+to.String())
	}

	if actor.Role == kernel.RoleCustomer && !o.IsOwnedBy(actor.ID) {
		return errs.NewForbiddenError(actor.Role.String(), "change another customer's order")
	}

	if !o.status.CanTransitionTo(to) {
		return errs.NewInvalidTransitionError("order", o.status.String(), to.String())
	}

	if to == Preparing && p.DeliveryTimeMax < 0 {
		return errs.NewValueIsOutOfRangeError("deliveryTimeMax", p.DeliveryTimeMax, 0, nil)
	}

	at := p.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	switch to {
	case Preparing:
		eta := at.Add(time.Duration(p.DeliveryTimeMax) * time.Minute)
		o.acceptedAt = &at
		o.estimatedDeliveryTime = &eta
	case Ready:
		o.readyAt = &at
	case OutForDelivery:
		o.pickedUpAt = &at
	case Delivered:
		o.deliveredAt = &at
	case Cancelled:
		o.cancelledAt = &at
		o.cancellationReason = strings.TrimSpace(p.Reason)
		if o.cancellationReason == "" {
			o.cancellationReason = defaultCancellationReason(actor.Role)
		}
	case Unknown, Pending:
	}

	from := o.status
	o.status = to
	o.updatedAt = at

	o.record(OrderStatusUpdated{
		OrderID:      o.id,
		CustomerID:   o.customerID,
		RestaurantID: o.restaurantID,
		From:         from,
		To:           to,
		Actor:        actor,
		OccurredAt:   at,
	})
	return nil
}

// PullEvents returns the events recorded since the last call and clears them.
func (o *Order) PullEvents() []kernel.DomainEvent {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) record(e kernel.DomainEvent) {
	o.events = append(o.events, e)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParticipants(customerID, restaurantID, addressID kernel.UUID) error {
	var errList []error
	if customerID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("customerId"))
	}
	if restaurantID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("restaurantId"))
	}
	if addressID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("deliveryAddressId"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	o.customerID = customerID
	o.restaurantID = restaurantID
	o.deliveryAddressID = addressID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setAmounts must run after setItems.
func (o *Order) setAmounts(subtotal, deliveryFee, total int64) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee", fmt.Errorf("%d is negative", deliveryFee))
	}

	var sum int64
	for _, item := range o.items {
		sum += item.TotalPrice()
	}
	if len(o.items) > 0 && sum != subtotal {
		return errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("%d does not match the item total %d", subtotal, sum))
	}
	if subtotal+deliveryFee != total {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%d != %d + %d", total, subtotal, deliveryFee))
	}

	o.subtotal = subtotal
	o.deliveryFee = deliveryFee
	o.totalAmount = total
	return nil
}

func (o *Order) setPayment(p Payment) error {
	if p == nil {
		return errs.NewValueIsRequiredError("payment")
	}
	if err := p.validate(o.totalAmount); err != nil {
		return err
	}
	o.payment = p
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}
