package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/guard"
)

var ErrListPendingDeliveriesQueryIsNotConstructed = errors.New(
	"ListPendingDeliveriesQuery must be created via NewListPendingDeliveriesQuery constructor",
)

//nolint:recvcheck //using for validation
type ListPendingDeliveriesQuery struct {
	page ports.Page

	guard guard.ConstructorGuard
}

func NewListPendingDeliveriesQuery(page ports.Page) ListPendingDeliveriesQuery {
	return ListPendingDeliveriesQuery{
		page:  ports.NewPage(page.Number, page.Size),
		guard: guard.NewConstructorGuard(),
	}
}

func (q ListPendingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListPendingDeliveriesQueryIsNotConstructed)
}

func (q ListPendingDeliveriesQuery) Page() ports.Page { return q.page }

// PendingDelivery is one entry on the couriers' board: where to pick up, where to drop off
// and what the order is worth.
type PendingDelivery struct {
	DeliveryID         kernel.UUID
	OrderID            kernel.UUID
	RestaurantName     string
	RestaurantLocation kernel.Location
	DeliveryStreet     string
	DeliveryLocation   kernel.Location
	TotalAmount        int64
	DeliveryFee        int64
	CreatedAt          time.Time
}

type ListPendingDeliveriesQueryResponse = ports.PagedResult[PendingDelivery]
