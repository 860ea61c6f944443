package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPendingDeliveriesQueryHandler reads the PENDING deliveries couriers can accept,
// oldest first, joined with their restaurant and drop-off address.
type ListPendingDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListPendingDeliveriesQueryHandler(db *gorm.DB) ListPendingDeliveriesQueryHandler {
	return ListPendingDeliveriesQueryHandler{db: db}
}

// Handle runs one COUNT and one page query. An empty board skips the page query.
func (h ListPendingDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListPendingDeliveriesQuery,
) (ListPendingDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListPendingDeliveriesQueryResponse{}, err
	}

	page := query.Page()
	response := ListPendingDeliveriesQueryResponse{Items: make([]PendingDelivery, 0), Page: page}

	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM deliveries WHERE status = ?`, delivery.Pending.String()).
		Scan(&response.Total).Error
	if err != nil {
		return ListPendingDeliveriesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			o.id,
			r.name,
			r.latitude,
			r.longitude,
			a.street,
			a.latitude,
			a.longitude,
			o.total_amount,
			o.delivery_fee,
			d.created_at
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		JOIN restaurants r ON r.id = o.restaurant_id
		JOIN addresses a ON a.id = o.delivery_address_id
		WHERE d.status = ?
		ORDER BY d.created_at, d.id
		LIMIT ? OFFSET ?
	`, delivery.Pending.String(), page.Size, page.Offset()).Rows()
	if err != nil {
		return ListPendingDeliveriesQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			deliveryID, orderID          uuid.UUID
			restaurantLat, restaurantLon float64
			addressLat, addressLon       float64
			item                         PendingDelivery
			createdAt                    time.Time
		)

		err = rows.Scan(
			&deliveryID,
			&orderID,
			&item.RestaurantName,
			&restaurantLat,
			&restaurantLon,
			&item.DeliveryStreet,
			&addressLat,
			&addressLon,
			&item.TotalAmount,
			&item.DeliveryFee,
			&createdAt,
		)
		if err != nil {
			return ListPendingDeliveriesQueryResponse{}, err
		}

		if item.DeliveryID, err = kernel.UUIDFromBytes(deliveryID[:]); err != nil {
			return ListPendingDeliveriesQueryResponse{}, err
		}
		if item.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return ListPendingDeliveriesQueryResponse{}, err
		}
		if item.RestaurantLocation, err = kernel.NewLocation(restaurantLat, restaurantLon); err != nil {
			return ListPendingDeliveriesQueryResponse{}, err
		}
		if item.DeliveryLocation, err = kernel.NewLocation(addressLat, addressLon); err != nil {
			return ListPendingDeliveriesQueryResponse{}, err
		}
		item.CreatedAt = createdAt.UTC()

		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return ListPendingDeliveriesQueryResponse{}, err
	}

	return response, nil
}
