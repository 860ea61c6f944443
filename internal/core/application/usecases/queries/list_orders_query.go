package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
		"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
	)
	ErrListRestaurantOrdersQueryIsNotConstructed = errors.New(
		"ListRestaurantOrdersQuery must be created via NewListRestaurantOrdersQuery constructor",
	)
)

// ListCustomerOrdersQuery pages through a customer's own orders, newest first.
type ListCustomerOrdersQuery struct {
	customerID kernel.UUID
	page       ports.Page

	guard guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(customerID kernel.UUID, page ports.Page) (ListCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, err
	}
	return ListCustomerOrdersQuery{
		customerID: customerID,
		page:       ports.NewPage(page.Number, page.Size),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

// ListRestaurantOrdersQuery pages through a restaurant's orders for its owner, optionally
// filtered by status.
type ListRestaurantOrdersQuery struct {
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	status       *order.Status
	page         ports.Page

	guard guard.ConstructorGuard
}

func NewListRestaurantOrdersQuery(
	restaurantID, ownerID kernel.UUID,
	status *order.Status,
	page ports.Page,
) (ListRestaurantOrdersQuery, error) {
	var statusErr error
	if status != nil {
		statusErr = status.Validate()
	}
	if err := errors.Join(restaurantID.Validate(), ownerID.Validate(), statusErr); err != nil {
		return ListRestaurantOrdersQuery{}, err
	}
	return ListRestaurantOrdersQuery{
		restaurantID: restaurantID,
		ownerID:      ownerID,
		status:       status,
		page:         ports.NewPage(page.Number, page.Size),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantOrdersQueryIsNotConstructed)
}

// ListOrdersQueryHandler serves both order lists.
type ListOrdersQueryHandler struct {
	orders  ports.OrderRepository
	catalog ports.CatalogReader
}

func NewListOrdersQueryHandler(orders ports.OrderRepository, catalogReader ports.CatalogReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders, catalog: catalogReader}
}

// HandleCustomer lists the customer's orders.
func (h ListOrdersQueryHandler) HandleCustomer(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) (ports.PagedResult[*order.Order], error) {
	if err := query.Validate(); err != nil {
		return ports.PagedResult[*order.Order]{}, err
	}
	return h.orders.ListByCustomer(ctx, query.customerID, query.page)
}

// HandleRestaurant only lists orders to the restaurant's owner.
func (h ListOrdersQueryHandler) HandleRestaurant(
	ctx context.Context,
	query ListRestaurantOrdersQuery,
) (ports.PagedResult[*order.Order], error) {
	if err := query.Validate(); err != nil {
		return ports.PagedResult[*order.Order]{}, err
	}

	restaurant, err := h.catalog.GetRestaurant(ctx, query.restaurantID)
	if err != nil {
		return ports.PagedResult[*order.Order]{}, err
	}
	if !restaurant.IsOwnedBy(query.ownerID) {
		return ports.PagedResult[*order.Order]{}, errs.NewForbiddenError("restaurant", "list another restaurant's orders")
	}

	return h.orders.ListByRestaurant(ctx, query.restaurantID, query.status, query.page)
}
