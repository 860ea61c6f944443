// Package realtime implements ports.RealtimePusher with an in-process hub. Clients
// subscribe through the server-sent events endpoint of the HTTP adapter; each
// subscription receives messages for its user, for the rooms it joined and broadcasts.
//
// Delivery is best effort. A subscriber whose buffer is full misses the message.
package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
)

// DefaultBufferSize is the per-subscription queue length used when NewHub gets zero.
const DefaultBufferSize = 16

// Message is one event ready to be written to a stream.
type Message struct {
	Event string
	Data  []byte
}

// Subscription is one open stream. It is addressed by its user id and by every room
// it joined at Subscribe time.
//
// Example:
//
//	sub := hub.Subscribe(userID, "order:"+orderID.String())
//	defer hub.Unsubscribe(sub)
//
//	for msg := range sub.Messages() {
//	    fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
//	}
type Subscription struct {
	id     uint64
	userID kernel.UUID
	rooms  []string
	ch     chan Message
}

// Messages is closed when the subscription is cancelled.
func (s *Subscription) Messages() <-chan Message {
	return s.ch
}

// Hub fans pushes out to open subscriptions. It indexes subscriptions by user and by
// room, so an emit only touches the addressed streams. Emits never block; a full
// subscription drops the message and the drop is logged.
//
// Example:
//
//	hub := realtime.NewHub(realtime.DefaultBufferSize, logger)
//	defer hub.Close()
//
//	sub := hub.Subscribe(courierUserID)
//	hub.EmitToUser(courierUserID, ports.RealtimeNotificationNew, payload)
//	msg := <-sub.Messages()
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	byUser map[kernel.UUID]map[uint64]*Subscription
	byRoom map[string]map[uint64]*Subscription
	all    map[uint64]*Subscription
	buffer int
	closed bool
	logger *slog.Logger
}

var _ ports.RealtimePusher = (*Hub)(nil)

// NewHub creates an empty hub.
//
// Parameters:
//   - bufferSize: queue length of each subscription; zero or less uses DefaultBufferSize
//   - logger: base logger; nil falls back to slog.Default()
func NewHub(bufferSize int, logger *slog.Logger) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		byUser: make(map[kernel.UUID]map[uint64]*Subscription),
		byRoom: make(map[string]map[uint64]*Subscription),
		all:    make(map[uint64]*Subscription),
		buffer: bufferSize,
		logger: logger.With("component", "realtime_hub"),
	}
}

// Subscribe opens a subscription for userID that also receives messages for rooms.
// Room names are opaque; the notification fanout uses "order:<id>" and
// "restaurant:<id>".
//
// Returns:
//   - *Subscription: the open subscription; already closed if the hub was closed
//
// Example:
//
//	sub := hub.Subscribe(actor.ID, c.QueryParams()["room"]...)
//	defer hub.Unsubscribe(sub)
func (h *Hub) Subscribe(userID kernel.UUID, rooms ...string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription{
		id:     h.nextID,
		userID: userID,
		rooms:  rooms,
		ch:     make(chan Message, h.buffer),
	}
	if h.closed {
		close(sub.ch)
		return sub
	}

	h.all[sub.id] = sub
	addTo(h.byUser, userID, sub)
	for _, room := range rooms {
		addTo(h.byRoom, room, sub)
	}
	return sub
}

// Unsubscribe removes sub from every index and closes its channel. It is idempotent.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.all[sub.id]; !ok {
		return
	}
	delete(h.all, sub.id)
	removeFrom(h.byUser, sub.userID, sub.id)
	for _, room := range sub.rooms {
		removeFrom(h.byRoom, room, sub.id)
	}
	close(sub.ch)
}

// EmitToUser pushes payload, JSON encoded, to every subscription of userID.
//
// Example:
//
//	hub.EmitToUser(customerID, ports.RealtimeNotificationNew, notifications.NotificationMessage{
//	    Type:  "ORDER_READY",
//	    Title: "Order ready",
//	})
func (h *Hub) EmitToUser(userID kernel.UUID, event string, payload any) {
	msg, ok := h.encode(event, payload)
	if !ok {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	h.deliver(h.byUser[userID], msg)
}

// EmitToRoom pushes payload to every subscription that joined room.
//
// Example:
//
//	hub.EmitToRoom(notifications.OrderRoom(orderID), ports.RealtimeOrderStatusUpdated, update)
func (h *Hub) EmitToRoom(room string, event string, payload any) {
	msg, ok := h.encode(event, payload)
	if !ok {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	h.deliver(h.byRoom[room], msg)
}

// EmitToAll pushes payload to every open subscription.
func (h *Hub) EmitToAll(event string, payload any) {
	msg, ok := h.encode(event, payload)
	if !ok {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	h.deliver(h.all, msg)
}

// Close ends every open subscription, which lets streaming handlers return before the HTTP
// server shuts down. Subscriptions made afterwards are closed immediately.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for _, sub := range h.all {
		close(sub.ch)
	}
	h.all = make(map[uint64]*Subscription)
	h.byUser = make(map[kernel.UUID]map[uint64]*Subscription)
	h.byRoom = make(map[string]map[uint64]*Subscription)
}

// Subscribers counts open subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.all)
}

// deliver must be called with at least the read lock held, which keeps Unsubscribe from
// closing a channel mid-send.
func (h *Hub) deliver(subs map[uint64]*Subscription, msg Message) {
	for _, sub := range subs {
		select {
		case sub.ch <- msg:
		default:
			h.logger.Warn("dropping realtime message for slow subscriber",
				"event", msg.Event,
				"user_id", sub.userID.String(),
			)
		}
	}
}

func (h *Hub) encode(event string, payload any) (Message, bool) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to encode realtime payload", "event", event, "error", err)
		return Message{}, false
	}
	return Message{Event: event, Data: data}, true
}

func addTo[K comparable](index map[K]map[uint64]*Subscription, key K, sub *Subscription) {
	subs, ok := index[key]
	if !ok {
		subs = make(map[uint64]*Subscription)
		index[key] = subs
	}
	subs[sub.id] = sub
}

func removeFrom[K comparable](index map[K]map[uint64]*Subscription, key K, id uint64) {
	subs := index[key]
	delete(subs, id)
	if len(subs) == 0 {
		delete(index, key)
	}
}
