package http

import (
	"errors"
	"net/http"
	"strings"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	HeaderActorRole = "X-Actor-Role"
	HeaderActorID   = "X-Actor-ID"
)

// actorFrom reads the caller identity. Missing headers are 401, a role outside roles is 403.
func actorFrom(c echo.Context, roles ...kernel.Role) (kernel.Actor, error) {
	rawRole := strings.TrimSpace(c.Request().Header.Get(HeaderActorRole))
	rawID := strings.TrimSpace(c.Request().Header.Get(HeaderActorID))
	if rawRole == "" || rawID == "" {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing actor identity headers")
	}

	role, err := kernel.ParseRole(rawRole)
	if err != nil {
		return kernel.Actor{}, err
	}
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.Actor{}, err
	}
	actor, err := kernel.NewActor(role, id)
	if err != nil {
		return kernel.Actor{}, err
	}

	if len(roles) == 0 {
		return actor, nil
	}
	for _, allowed := range roles {
		if actor.Role == allowed {
			return actor, nil
		}
	}
	return kernel.Actor{}, errs.NewForbiddenError(actor.Role.String(), c.Request().Method+" "+c.Path())
}

// courierActor reads a courier-role caller and swaps the gateway user id for the id of
// the courier profile the user registered.
func (s *Server) courierActor(c echo.Context) (kernel.Actor, error) {
	actor, err := actorFrom(c, kernel.RoleCourier)
	if err != nil {
		return kernel.Actor{}, err
	}
	return s.resolveCourier(c, actor)
}

// participantActor reads a caller of any role. Couriers are resolved as in courierActor.
func (s *Server) participantActor(c echo.Context) (kernel.Actor, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return kernel.Actor{}, err
	}
	if actor.Role != kernel.RoleCourier {
		return actor, nil
	}
	return s.resolveCourier(c, actor)
}

// resolveCourier maps a courier user to their courier profile. A user without a profile
// is 403.
func (s *Server) resolveCourier(c echo.Context, actor kernel.Actor) (kernel.Actor, error) {
	query, err := queries.NewGetCourierByUserQuery(actor.ID)
	if err != nil {
		return kernel.Actor{}, err
	}
	profile, err := s.handlers.GetCourierByUser.Handle(c.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.Actor{}, errs.NewForbiddenError(actor.String(), "act as an unregistered courier")
	}
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.Actor{Role: kernel.RoleCourier, ID: profile.ID()}, nil
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(id[:])
}

func toUUID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return parsed, nil
}

func queryPage(c echo.Context) (ports.Page, error) {
	var page, limit *int
	if err := runtime.BindQueryParameter("form", true, false, "page", c.QueryParams(), &page); err != nil {
		return ports.Page{}, errs.NewValueIsInvalidErrorWithCause("page", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", c.QueryParams(), &limit); err != nil {
		return ports.Page{}, errs.NewValueIsInvalidErrorWithCause("limit", err)
	}

	p := ports.Page{}
	if page != nil {
		p.Number = *page
	}
	if limit != nil {
		p.Size = *limit
	}
	return ports.NewPage(p.Number, p.Size), nil
}

func bindBody(c echo.Context, dest any) error {
	if err := c.Bind(dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}
