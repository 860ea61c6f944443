package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Events handles GET /api/v1/events, a server-sent events stream of the real-time pushes
// addressed to the caller. Repeated room query parameters join extra rooms, for example
// room=order:<id>.
func (s *Server) Events(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	sub := s.hub.Subscribe(actor.ID, c.QueryParams()["room"]...)
	defer s.hub.Unsubscribe(sub)

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	keepAlive := time.NewTicker(s.keepAlive)
	defer keepAlive.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-sub.Messages():
			if !ok {
				return nil
			}
			if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data); err != nil {
				return nil
			}
			w.Flush()
		case <-keepAlive.C:
			if _, err = fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
