// Package queries contains read operations. Queries never change state; most of them
// read aggregates through the repository ports, the pending-delivery board is a raw SQL
// read model.
package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// orderAccess decides who may read an order: its customer, the owner of its restaurant
// and the courier bound to its delivery.
type orderAccess struct {
	catalog    ports.CatalogReader
	deliveries ports.DeliveryRepository
}

func (a orderAccess) check(ctx context.Context, actor kernel.Actor, o *order.Order) error {
	switch actor.Role {
	case kernel.RoleCustomer:
		if o.IsOwnedBy(actor.ID) {
			return nil
		}
	case kernel.RoleRestaurant:
		restaurant, err := a.catalog.GetRestaurant(ctx, o.RestaurantID())
		if err != nil {
			return err
		}
		if restaurant.IsOwnedBy(actor.ID) {
			return nil
		}
	case kernel.RoleCourier:
		d, err := a.deliveries.GetByOrderID(ctx, o.ID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		if err == nil && d.IsAssignedTo(actor.ID) {
			return nil
		}
	case kernel.RoleUnknown:
	}
	return errs.NewForbiddenError(actor.String(), "view order "+o.ID().String())
}
