package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// CreateCourier handles POST /api/v1/couriers. The calling courier-role user becomes the
// owner of the new profile; registering the same user twice is a 409.
func (s *Server) CreateCourier(c echo.Context) error {
	actor, err := actorFrom(c, kernel.RoleCourier)
	if err != nil {
		return err
	}

	var req CreateCourierRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	vehicle, err := courier.ParseVehicleType(req.VehicleType)
	if err != nil {
		return err
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, actor.ID, vehicle, req.DeliveryRadiusKm)
	if err != nil {
		return err
	}
	if err = s.handlers.CreateCourier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedCourierResponse{ID: courierID})
}

// SetCourierAvailability handles PUT /api/v1/couriers/me/availability.
func (s *Server) SetCourierAvailability(c echo.Context) error {
	actor, err := s.courierActor(c)
	if err != nil {
		return err
	}

	var req AvailabilityRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetCourierAvailabilityCommand(actor.ID, req.Online)
	if err != nil {
		return err
	}
	if err = s.handlers.SetCourierAvailability.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// FindAvailableCouriers handles GET /api/v1/restaurants/{restaurantId}/couriers/nearby.
func (s *Server) FindAvailableCouriers(c echo.Context) error {
	restaurantID, err := pathUUID(c, "restaurantId")
	if err != nil {
		return err
	}

	var radius *float64
	if err = runtime.BindQueryParameter("form", true, false, "radiusKm", c.QueryParams(), &radius); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("radiusKm", err)
	}
	var radiusKm float64
	if radius != nil {
		radiusKm = *radius
	}

	query, err := queries.NewFindAvailableCouriersQuery(restaurantID, radiusKm)
	if err != nil {
		return err
	}
	nearby, err := s.handlers.FindAvailableCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]NearbyCourierResponse, 0, len(nearby))
	for _, n := range nearby {
		response = append(response, toNearbyCourierResponse(n))
	}
	return c.JSON(http.StatusOK, response)
}
