package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	page, err := queryPage(c)
	if err != nil {
		return err
	}

	query, err := queries.NewNotificationsQuery(actor.ID, page)
	if err != nil {
		return err
	}
	result, err := s.handlers.Notifications.List(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPage(result, toNotificationResponse))
}

// CountUnreadNotifications handles GET /api/v1/notifications/unread-count.
func (s *Server) CountUnreadNotifications(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewNotificationsQuery(actor.ID, ports.Page{})
	if err != nil {
		return err
	}
	count, err := s.handlers.Notifications.CountUnread(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CountResponse{Count: count})
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkNotificationsReadCommand(actor.ID)
	if err != nil {
		return err
	}
	count, err := s.handlers.MarkNotificationsRead.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CountResponse{Count: count})
}
