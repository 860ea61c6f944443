package http

import (
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type CreateOrderItemRequest struct {
	MenuItemID openapi_types.UUID `json:"menuItemId"`
	Quantity   int                `json:"quantity"`
	Notes      string             `json:"notes"`
}

type CreateOrderRequest struct {
	RestaurantID      openapi_types.UUID       `json:"restaurantId"`
	DeliveryAddressID openapi_types.UUID       `json:"deliveryAddressId"`
	Items             []CreateOrderItemRequest `json:"items"`
	PaymentMethod     string                   `json:"paymentMethod"`
	PaymentMethodID   *openapi_types.UUID      `json:"paymentMethodId"`
	ChangeFor         *int64                   `json:"changeFor"`
	Notes             string                   `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

type LocationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateCourierRequest registers the calling user as a courier.
type CreateCourierRequest struct {
	VehicleType      string  `json:"vehicleType"`
	DeliveryRadiusKm float64 `json:"deliveryRadiusKm"`
}

type CreatedCourierResponse struct {
	ID kernel.UUID `json:"id"`
}

type AvailabilityRequest struct {
	Online bool `json:"online"`
}

type PaymentResponse struct {
	Type            string       `json:"type"`
	PaymentMethodID *kernel.UUID `json:"paymentMethodId,omitempty"`
	PixCode         string       `json:"pixCode,omitempty"`
	PixQRCodeImage  string       `json:"pixQrCodeImage,omitempty"`
	PixKey          string       `json:"pixKey,omitempty"`
	PixExpiresAt    *time.Time   `json:"pixExpiresAt,omitempty"`
	ChangeFor       *int64       `json:"changeFor,omitempty"`
}

type OrderItemResponse struct {
	ID          kernel.UUID `json:"id"`
	MenuItemID  kernel.UUID `json:"menuItemId"`
	ProductName string      `json:"productName"`
	Description string      `json:"description,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Quantity    int         `json:"quantity"`
	UnitPrice   int64       `json:"unitPrice"`
	TotalPrice  int64       `json:"totalPrice"`
	Notes       string      `json:"notes,omitempty"`
}

type OrderResponse struct {
	ID                    kernel.UUID         `json:"id"`
	CustomerID            kernel.UUID         `json:"customerId"`
	RestaurantID          kernel.UUID         `json:"restaurantId"`
	DeliveryAddressID     kernel.UUID         `json:"deliveryAddressId"`
	Status                string              `json:"status"`
	Payment               PaymentResponse     `json:"payment"`
	Items                 []OrderItemResponse `json:"items"`
	Subtotal              int64               `json:"subtotal"`
	DeliveryFee           int64               `json:"deliveryFee"`
	TotalAmount           int64               `json:"totalAmount"`
	Notes                 string              `json:"notes,omitempty"`
	CancellationReason    string              `json:"cancellationReason,omitempty"`
	EstimatedDeliveryTime *time.Time          `json:"estimatedDeliveryTime,omitempty"`
	AcceptedAt            *time.Time          `json:"acceptedAt,omitempty"`
	ReadyAt               *time.Time          `json:"readyAt,omitempty"`
	PickedUpAt            *time.Time          `json:"pickedUpAt,omitempty"`
	DeliveredAt           *time.Time          `json:"deliveredAt,omitempty"`
	CancelledAt           *time.Time          `json:"cancelledAt,omitempty"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type PageResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type DeliveryResponse struct {
	ID               kernel.UUID  `json:"id"`
	OrderID          kernel.UUID  `json:"orderId"`
	DeliveryPersonID *kernel.UUID `json:"deliveryPersonId,omitempty"`
	Status           string       `json:"status"`
	CurrentLocation  *LocationDTO `json:"currentLocation,omitempty"`
	AcceptedAt       *time.Time   `json:"acceptedAt,omitempty"`
	PickedUpAt       *time.Time   `json:"pickedUpAt,omitempty"`
	DeliveredAt      *time.Time   `json:"deliveredAt,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
}

type DeliveryEstimateResponse struct {
	DeliveryID kernel.UUID `json:"deliveryId"`
	Known      bool        `json:"known"`
	Minutes    *int        `json:"minutes,omitempty"`
}

type PendingDeliveryResponse struct {
	DeliveryID         kernel.UUID `json:"deliveryId"`
	OrderID            kernel.UUID `json:"orderId"`
	RestaurantName     string      `json:"restaurantName"`
	RestaurantLocation LocationDTO `json:"restaurantLocation"`
	DeliveryStreet     string      `json:"deliveryStreet"`
	DeliveryLocation   LocationDTO `json:"deliveryLocation"`
	TotalAmount        int64       `json:"totalAmount"`
	DeliveryFee        int64       `json:"deliveryFee"`
	CreatedAt          time.Time   `json:"createdAt"`
}

type NearbyCourierResponse struct {
	ID              kernel.UUID `json:"id"`
	VehicleType     string      `json:"vehicleType"`
	Location        LocationDTO `json:"location"`
	DistanceKm      float64     `json:"distanceKm"`
	Rating          float64     `json:"rating"`
	TotalDeliveries int         `json:"totalDeliveries"`
}

type NotificationResponse struct {
	ID        kernel.UUID  `json:"id"`
	OrderID   *kernel.UUID `json:"orderId,omitempty"`
	Type      string       `json:"type"`
	Title     string       `json:"title"`
	Message   string       `json:"message"`
	IsRead    bool         `json:"isRead"`
	CreatedAt time.Time    `json:"createdAt"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type PixPaymentStatusResponse struct {
	OrderID kernel.UUID `json:"orderId"`
	PixCode string      `json:"pixCode"`
	Status  string      `json:"status"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:          item.ID(),
			MenuItemID:  item.MenuItemID(),
			ProductName: item.ProductName(),
			Description: item.Description(),
			ImageURL:    item.ImageURL(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			TotalPrice:  item.TotalPrice(),
			Notes:       item.Notes(),
		})
	}

	return OrderResponse{
		ID:                    o.ID(),
		CustomerID:            o.CustomerID(),
		RestaurantID:          o.RestaurantID(),
		DeliveryAddressID:     o.DeliveryAddressID(),
		Status:                o.Status().String(),
		Payment:               toPaymentResponse(o.Payment()),
		Items:                 items,
		Subtotal:              o.Subtotal(),
		DeliveryFee:           o.DeliveryFee(),
		TotalAmount:           o.TotalAmount(),
		Notes:                 o.Notes(),
		CancellationReason:    o.CancellationReason(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		AcceptedAt:            o.AcceptedAt(),
		ReadyAt:               o.ReadyAt(),
		PickedUpAt:            o.PickedUpAt(),
		DeliveredAt:           o.DeliveredAt(),
		CancelledAt:           o.CancelledAt(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}

func toPaymentResponse(p order.Payment) PaymentResponse {
	resp := PaymentResponse{Type: p.Type().String()}
	switch v := p.(type) {
	case order.StoredCardPayment:
		id := v.PaymentMethodID
		resp.PaymentMethodID = &id
	case order.PixPayment:
		expiresAt := v.ExpiresAt
		resp.PixCode = v.Code
		resp.PixQRCodeImage = v.QRCodeImage
		resp.PixKey = v.PixKey
		resp.PixExpiresAt = &expiresAt
	case order.CashPayment:
		resp.ChangeFor = v.ChangeFor
	}
	return resp
}

func toDeliveryResponse(d *delivery.Delivery) DeliveryResponse {
	resp := DeliveryResponse{
		ID:               d.ID(),
		OrderID:          d.OrderID(),
		DeliveryPersonID: d.CourierID(),
		Status:           d.Status().String(),
		AcceptedAt:       d.AcceptedAt(),
		PickedUpAt:       d.PickedUpAt(),
		DeliveredAt:      d.DeliveredAt(),
		CreatedAt:        d.CreatedAt(),
	}
	if loc := d.Location(); loc != nil {
		dto := toLocationDTO(*loc)
		resp.CurrentLocation = &dto
	}
	return resp
}

func toLocationDTO(l kernel.Location) LocationDTO {
	return LocationDTO{Latitude: l.Latitude(), Longitude: l.Longitude()}
}

func toEstimateResponse(e queries.DeliveryEstimate) DeliveryEstimateResponse {
	resp := DeliveryEstimateResponse{DeliveryID: e.DeliveryID, Known: e.Known}
	if e.Known {
		minutes := e.Minutes
		resp.Minutes = &minutes
	}
	return resp
}

func toPendingDeliveryResponse(p queries.PendingDelivery) PendingDeliveryResponse {
	return PendingDeliveryResponse{
		DeliveryID:         p.DeliveryID,
		OrderID:            p.OrderID,
		RestaurantName:     p.RestaurantName,
		RestaurantLocation: toLocationDTO(p.RestaurantLocation),
		DeliveryStreet:     p.DeliveryStreet,
		DeliveryLocation:   toLocationDTO(p.DeliveryLocation),
		TotalAmount:        p.TotalAmount,
		DeliveryFee:        p.DeliveryFee,
		CreatedAt:          p.CreatedAt,
	}
}

func toNearbyCourierResponse(n services.NearbyCourier) NearbyCourierResponse {
	resp := NearbyCourierResponse{
		ID:              n.Courier.ID(),
		VehicleType:     n.Courier.Vehicle().String(),
		DistanceKm:      n.DistanceKm,
		Rating:          n.Courier.Rating(),
		TotalDeliveries: n.Courier.TotalDeliveries(),
	}
	if loc := n.Courier.Location(); loc != nil {
		resp.Location = toLocationDTO(*loc)
	}
	return resp
}

func toNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID(),
		OrderID:   n.OrderID(),
		Type:      string(n.Type()),
		Title:     n.Title(),
		Message:   n.Message(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func toPage[T, R any](result ports.PagedResult[T], convert func(T) R) PageResponse[R] {
	data := make([]R, 0, len(result.Items))
	for _, item := range result.Items {
		data = append(data, convert(item))
	}
	return PageResponse[R]{
		Data: data,
		Pagination: Pagination{
			Page:       result.Page.Number,
			Limit:      result.Page.Size,
			Total:      result.Total,
			TotalPages: result.TotalPages(),
		},
	}
}
