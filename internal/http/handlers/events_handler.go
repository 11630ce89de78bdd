package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"depotlog/internal/domain"
	"depotlog/internal/services"
	"depotlog/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// EventsHandler is the browser-facing end of the reconciler: one SSE stream
// carrying a named event per collection, each with the full replacement
// snapshot as JSON. Clients swap their local list wholesale on every event,
// exactly like the in-process subscribers do.
type EventsHandler struct {
	Store *store.Store
	Auth  *services.AuthService
	Ping  time.Duration // keepalive interval, 15s when zero
}

type event struct {
	name    string
	payload any
}

func (h *EventsHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	// The fiber context is gone once the stream writer runs, so the session
	// id is captured here and re-resolved on every ping below.
	sid := c.Cookies("sid")
	interval := h.Ping
	if interval <= 0 {
		interval = 15 * time.Second
	}

	st := h.Store
	auth := h.Auth
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		events := make(chan event, 32)
		unsubs := []func(){
			st.Users.Subscribe(func(items []string) { queueEvent(events, "users", items) }),
			st.Locations.Subscribe(func(items []string) { queueEvent(events, "locations", items) }),
			st.Purposes.Subscribe(func(items []string) { queueEvent(events, "purposes", items) }),
			st.Categories.Subscribe(func(items []domain.Category) { queueEvent(events, "categories", items) }),
			st.Products.Subscribe(func(items []domain.Product) { queueEvent(events, "products", items) }),
			st.Registrations.Subscribe(func(items []domain.RegistrationEntry) { queueEvent(events, "registrations", items) }),
		}
		defer func() {
			for _, unsub := range unsubs {
				unsub()
			}
		}()

		// Full state up front so a fresh client needs no extra fetches.
		initial := []event{
			{"users", st.Users.Items()},
			{"locations", st.Locations.Items()},
			{"purposes", st.Purposes.Items()},
			{"categories", st.Categories.Items()},
			{"products", st.Products.Items()},
			{"registrations", st.Registrations.Items()},
		}
		for _, ev := range initial {
			if writeEvent(w, ev) != nil {
				return
			}
		}

		// The ping doubles as liveness: the first failed flush ends the
		// loop (client gone), and a session that no longer resolves ends
		// it too (signed out), so sign-out tears the stream down within
		// one interval. The deferred unsubscribes release the channels.
		ping := time.NewTicker(interval)
		defer ping.Stop()
		for {
			select {
			case ev := <-events:
				if writeEvent(w, ev) != nil {
					return
				}
			case <-ping.C:
				if auth != nil {
					if _, err := auth.CurrentUser(sid); err != nil {
						return
					}
				}
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))
	return nil
}

// queueEvent never blocks the reconciler. Dropping is safe: every event
// carries full state, so the next one makes the client whole again.
func queueEvent(ch chan event, name string, payload any) {
	select {
	case ch <- event{name: name, payload: payload}:
	default:
	}
}

func writeEvent(w *bufio.Writer, ev event) error {
	b, err := json.Marshal(ev.payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.name, b); err != nil {
		return err
	}
	return w.Flush()
}
