// Package realtime pushes notifications to the live websocket connections of
// their recipients. Delivery is best effort, the notification list stays the
// source of truth and clients reconcile against it after a reconnect.
package realtime

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/exchange-api/consts"
	"github.com/bitmark-inc/exchange-api/schema"
	"github.com/bitmark-inc/exchange-api/store"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
	sendBuffer     = 32
)

const (
	EventNotification = "notification"
)

// Event is the frame written to a connection
type Event struct {
	Type string              `json:"type"`
	Data schema.Notification `json:"data"`
}

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "realtime")
}

// NotificationReader reads back the stored notifications of an account
type NotificationReader interface {
	ListNotifications(ctx context.Context, accountID string, q store.NotificationQuery) ([]schema.Notification, error)
}

type client struct {
	accountID string
	conn      *websocket.Conn
	send      chan schema.Notification
}

// Hub keeps the live connections grouped by account
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]map[*client]struct{}
	history  NotificationReader
	upgrader websocket.Upgrader
	closed   bool
}

func NewHub(history NotificationReader) *Hub {
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		history: history,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Publish hands a notification to every connection of its recipient. A
// connection whose buffer is full misses the notification.
func (h *Hub) Publish(n schema.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[n.AccountID] {
		select {
		case c.send <- n:
		default:
			log.WithField("account", n.AccountID).WithField("notification", n.ID).Warn("drop notification for a slow connection")
		}
	}
}

// Connections counts the live connections of an account
func (h *Hub) Connections(accountID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[accountID])
}

// Serve upgrades an authenticated request to a websocket. Notifications
// created after since are replayed before the live ones.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, accountID string, since time.Time) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	var replay []schema.Notification
	if !since.IsZero() && h.history != nil {
		ctx, cancel := context.WithTimeout(r.Context(), writeWait)
		replay, err = h.history.ListNotifications(ctx, accountID, store.NotificationQuery{
			Since: since,
			Limit: consts.NotificationWindow,
		})
		cancel()
		if err != nil {
			log.WithError(err).WithField("account", accountID).Error("fail to load notifications for replay")
		}
	}

	c := &client{
		accountID: accountID,
		conn:      conn,
		send:      make(chan schema.Notification, sendBuffer),
	}
	if !h.register(c) {
		conn.Close()
		return nil
	}

	go h.writePump(c, replay)
	go h.readPump(c)
	return nil
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	if h.clients[c.accountID] == nil {
		h.clients[c.accountID] = make(map[*client]struct{})
	}
	h.clients[c.accountID][c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group, ok := h.clients[c.accountID]
	if !ok {
		return
	}
	if _, ok := group[c]; !ok {
		return
	}
	delete(group, c)
	close(c.send)
	if len(group) == 0 {
		delete(h.clients, c.accountID)
	}
}

// Close drops every connection and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for accountID, group := range h.clients {
		for c := range group {
			close(c.send)
		}
		delete(h.clients, accountID)
	}
}

// readPump only serves the pong handler, clients are not expected to talk
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).WithField("account", c.accountID).Debug("connection closed")
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client, replay []schema.Notification) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	// stored notifications come newest first
	for i := len(replay) - 1; i >= 0; i-- {
		if err := c.write(replay[i]); err != nil {
			return
		}
	}

	for {
		select {
		case n, ok := <-c.send:
			if !ok {
				c.conn.SetWriteDeadline(time.Now().Add(writeWait))
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := c.write(n); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *client) write(n schema.Notification) error {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(Event{Type: EventNotification, Data: n})
}
