package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListPendingDeliveries handles GET /api/v1/deliveries/pending.
func (s *Server) ListPendingDeliveries(c echo.Context) error {
	page, err := queryPage(c)
	if err != nil {
		return err
	}

	result, err := s.handlers.ListPendingDeliveries.Handle(
		c.Request().Context(),
		queries.NewListPendingDeliveriesQuery(page),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPage(result, toPendingDeliveryResponse))
}

// CreateDelivery handles POST /api/v1/orders/{orderId}/delivery. Only a READY order gets a
// delivery, and only one.
func (s *Server) CreateDelivery(c echo.Context) error {
	if _, err := actorFrom(c, kernel.RoleRestaurant); err != nil {
		return err
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateDeliveryCommand(orderID)
	if err != nil {
		return err
	}
	if err = s.handlers.CreateDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}

// AcceptDelivery handles POST /api/v1/deliveries/{deliveryId}/accept. Of several couriers
// racing for one delivery exactly one gets 200; the others get 412.
func (s *Server) AcceptDelivery(c echo.Context) error {
	actor, err := s.courierActor(c)
	if err != nil {
		return err
	}
	deliveryID, err := pathUUID(c, "deliveryId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, actor.ID)
	if err != nil {
		return err
	}
	if err = s.handlers.AcceptDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithDelivery(c, deliveryID)
}

// UpdateDeliveryStatus handles PATCH /api/v1/deliveries/{deliveryId}/status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	actor, err := s.courierActor(c)
	if err != nil {
		return err
	}
	deliveryID, err := pathUUID(c, "deliveryId")
	if err != nil {
		return err
	}

	var req UpdateDeliveryStatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	status, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, actor.ID, status)
	if err != nil {
		return err
	}
	if err = s.handlers.UpdateDeliveryStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithDelivery(c, deliveryID)
}

// UpdateDeliveryLocation handles PUT /api/v1/deliveries/{deliveryId}/location.
func (s *Server) UpdateDeliveryLocation(c echo.Context) error {
	actor, err := s.courierActor(c)
	if err != nil {
		return err
	}
	deliveryID, err := pathUUID(c, "deliveryId")
	if err != nil {
		return err
	}

	var req LocationDTO
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDeliveryLocationCommand(deliveryID, actor.ID, req.Latitude, req.Longitude)
	if err != nil {
		return err
	}
	if err = s.handlers.UpdateDeliveryLocation.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetDeliveryEstimate handles GET /api/v1/deliveries/{deliveryId}/eta.
func (s *Server) GetDeliveryEstimate(c echo.Context) error {
	deliveryID, err := pathUUID(c, "deliveryId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetDeliveryEstimateQuery(deliveryID)
	if err != nil {
		return err
	}
	estimate, err := s.handlers.GetDeliveryEstimate.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEstimateResponse(estimate))
}

func (s *Server) respondWithDelivery(c echo.Context, deliveryID kernel.UUID) error {
	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return err
	}
	d, err := s.handlers.GetDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeliveryResponse(d))
}
