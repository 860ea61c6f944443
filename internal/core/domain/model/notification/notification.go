// Package notification holds the in-app notification entity shown to customers.
package notification

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned by methods called on a zero Notification.
var ErrNotificationIsNotConstructed = errors.New("notification must be created via NewNotification constructor")

// Type names the order event a notification reports.
type Type string

const (
	OrderCreated        Type = "ORDER_CREATED"
	OrderAccepted       Type = "ORDER_ACCEPTED"
	OrderReady          Type = "ORDER_READY"
	OrderOutForDelivery Type = "ORDER_OUT_FOR_DELIVERY"
	OrderDelivered      Type = "ORDER_DELIVERED"
	OrderCancelled      Type = "ORDER_CANCELLED"
)

// Validate returns ErrValueIsInvalid for an unknown type.
func (t Type) Validate() error {
	switch t {
	case OrderCreated, OrderAccepted, OrderReady, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return nil
	}
	return errs.NewValueIsInvalidError("notification type " + string(t))
}

// Notification is an inbox entry for one user. It starts unread and can only be marked
// read.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	orderID   *kernel.UUID
	kind      Type
	title     string
	message   string
	isRead    bool
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// Params carries the fields of a Notification. OrderID is optional.
type Params struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	OrderID   *kernel.UUID
	Type      Type
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNotification creates an unread notification. IsRead is ignored. CreatedAt defaults
// to the current time and UpdatedAt follows it.
func NewNotification(p Params) (*Notification, error) {
	now := p.CreatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}
	p.IsRead = false
	p.CreatedAt, p.UpdatedAt = now, now
	return RestoreNotification(p)
}

// RestoreNotification rebuilds a notification read from storage.
//
// Returns:
//   - *Notification: the notification
//   - error: joined validation errors of the ids, the type and the title
func RestoreNotification(p Params) (*Notification, error) {
	n := &Notification{
		orderID:   p.OrderID,
		isRead:    p.IsRead,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	var errList []error
	if err := p.ID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if p.UserID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("userId"))
	}
	if err := p.Type.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(p.Title) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("title"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	n.id, n.userID, n.kind, n.title, n.message = p.ID, p.UserID, p.Type, p.Title, p.Message
	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID       { return n.id }
func (n *Notification) UserID() kernel.UUID   { return n.userID }
func (n *Notification) OrderID() *kernel.UUID { return n.orderID }
func (n *Notification) Type() Type            { return n.kind }
func (n *Notification) Title() string         { return n.title }
func (n *Notification) Message() string       { return n.message }
func (n *Notification) IsRead() bool          { return n.isRead }
func (n *Notification) CreatedAt() time.Time  { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time  { return n.updatedAt }
