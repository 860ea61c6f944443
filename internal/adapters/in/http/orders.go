package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// CreateOrder handles POST /api/v1/orders. Prices come from the catalog, never from the body.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFrom(c, kernel.RoleCustomer)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	params, err := req.toParams(actor.ID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateOrderCommand(params)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(c, http.StatusCreated, cmd.OrderID(), actor)
}

func (req CreateOrderRequest) toParams(customerID kernel.UUID) (commands.CreateOrderParams, error) {
	paymentType, err := order.ParsePaymentType(req.PaymentMethod)
	if err != nil {
		return commands.CreateOrderParams{}, err
	}
	restaurantID, err := toUUID("restaurantId", req.RestaurantID)
	if err != nil {
		return commands.CreateOrderParams{}, err
	}
	addressID, err := toUUID("deliveryAddressId", req.DeliveryAddressID)
	if err != nil {
		return commands.CreateOrderParams{}, err
	}

	lines := make([]commands.CreateOrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, idErr := toUUID("menuItemId", item.MenuItemID)
		if idErr != nil {
			return commands.CreateOrderParams{}, idErr
		}
		lines = append(lines, commands.CreateOrderLine{MenuItemID: menuItemID, Quantity: item.Quantity, Notes: item.Notes})
	}

	params := commands.CreateOrderParams{
		OrderID:           kernel.NewUUID(),
		CustomerID:        customerID,
		RestaurantID:      restaurantID,
		DeliveryAddressID: addressID,
		Lines:             lines,
		PaymentType:       paymentType,
		ChangeFor:         req.ChangeFor,
		Notes:             req.Notes,
	}
	if req.PaymentMethodID != nil {
		methodID, idErr := toUUID("paymentMethodId", *req.PaymentMethodID)
		if idErr != nil {
			return commands.CreateOrderParams{}, idErr
		}
		params.PaymentMethodID = &methodID
	}
	return params, nil
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := s.participantActor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	return s.respondWithOrder(c, http.StatusOK, orderID, actor)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	actor, err := s.participantActor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actor, status, req.Reason)
	if err != nil {
		return err
	}
	if err = s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(c, http.StatusOK, orderID, actor)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	actor, err := actorFrom(c, kernel.RoleCustomer)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	var req CancelOrderRequest
	if c.Request().ContentLength != 0 {
		if err = bindBody(c, &req); err != nil {
			return err
		}
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor.ID, req.Reason)
	if err != nil {
		return err
	}
	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(c, http.StatusOK, orderID, actor)
}

// GetPixPaymentStatus handles GET /api/v1/orders/{orderId}/payment/pix.
func (s *Server) GetPixPaymentStatus(c echo.Context) error {
	actor, err := actorFrom(c, kernel.RoleCustomer)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetPixPaymentStatusQuery(orderID, actor.ID)
	if err != nil {
		return err
	}
	status, err := s.handlers.GetPixPaymentStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, PixPaymentStatusResponse{
		OrderID: status.OrderID,
		PixCode: status.Code,
		Status:  string(status.Status),
	})
}

// ListCustomerOrders handles GET /api/v1/customers/me/orders.
func (s *Server) ListCustomerOrders(c echo.Context) error {
	actor, err := actorFrom(c, kernel.RoleCustomer)
	if err != nil {
		return err
	}
	page, err := queryPage(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListCustomerOrdersQuery(actor.ID, page)
	if err != nil {
		return err
	}
	result, err := s.handlers.ListOrders.HandleCustomer(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPage(result, toOrderResponse))
}

// ListRestaurantOrders handles GET /api/v1/restaurants/{restaurantId}/orders.
func (s *Server) ListRestaurantOrders(c echo.Context) error {
	actor, err := actorFrom(c, kernel.RoleRestaurant)
	if err != nil {
		return err
	}
	restaurantID, err := pathUUID(c, "restaurantId")
	if err != nil {
		return err
	}
	page, err := queryPage(c)
	if err != nil {
		return err
	}

	var rawStatus *string
	if err = runtime.BindQueryParameter("form", true, false, "status", c.QueryParams(), &rawStatus); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	var status *order.Status
	if rawStatus != nil {
		parsed, parseErr := order.ParseStatus(*rawStatus)
		if parseErr != nil {
			return parseErr
		}
		status = &parsed
	}

	query, err := queries.NewListRestaurantOrdersQuery(restaurantID, actor.ID, status, page)
	if err != nil {
		return err
	}
	result, err := s.handlers.ListOrders.HandleRestaurant(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPage(result, toOrderResponse))
}

func (s *Server) respondWithOrder(c echo.Context, code int, orderID kernel.UUID, actor kernel.Actor) error {
	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return err
	}
	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(code, toOrderResponse(o))
}
