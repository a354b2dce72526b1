package client

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bitmark-inc/exchange-api/realtime"
	"github.com/bitmark-inc/exchange-api/schema"
)

const (
	minBackoff = time.Second
	maxBackoff = 30 * time.Second

	// seenLimit bounds the ids remembered for de-duplication
	seenLimit = 1024
)

// Handler receives every notification once, whether it came from the live
// stream or from reconciliation against the durable list
type Handler func(n schema.Notification)

// Subscriber follows the realtime stream of the session account. The stream
// is a latency optimization only: on every (re)connect the durable list is
// read back from the newest notification seen so far.
type Subscriber struct {
	client  *Client
	handler Handler
	dialer  *websocket.Dialer

	minBackoff time.Duration
	maxBackoff time.Duration

	mu     sync.Mutex
	latest time.Time
	seen   map[string]struct{}
	order  []string
}

func NewSubscriber(c *Client, handler Handler) *Subscriber {
	return &Subscriber{
		client:  c,
		handler: handler,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
		minBackoff: minBackoff,
		maxBackoff: maxBackoff,
		seen:       make(map[string]struct{}),
	}
}

// Run keeps the subscription alive until ctx is done or the session ends
func (s *Subscriber) Run(ctx context.Context) error {
	backoff := s.minBackoff
	for {
		connected, err := s.session(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, ErrReauthenticate) || errors.Is(err, ErrNoSession) {
			return err
		}
		if connected {
			backoff = s.minBackoff
		}
		log.WithError(err).WithField("retry_in", backoff).Info("notification stream dropped")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(jitter(backoff)):
		}

		backoff *= 2
		if backoff > s.maxBackoff {
			backoff = s.maxBackoff
		}
	}
}

// session runs one connection. It reports whether the stream was joined.
func (s *Subscriber) session(ctx context.Context) (bool, error) {
	if err := s.reconcile(ctx); err != nil {
		return false, err
	}

	conn, err := s.dial(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	// unblock the read below on cancellation
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	// events published between the reconciliation and the join
	if err := s.reconcile(ctx); err != nil {
		return true, err
	}

	for {
		var event realtime.Event
		if err := conn.ReadJSON(&event); err != nil {
			return true, err
		}
		if event.Type != realtime.EventNotification {
			continue
		}
		s.deliver(event.Data)
	}
}

func (s *Subscriber) dial(ctx context.Context) (*websocket.Conn, error) {
	target, err := streamURL(s.client.endpoint)
	if err != nil {
		return nil, err
	}

	var conn *websocket.Conn
	err = s.client.authorized(ctx, func(accessToken string) error {
		c, resp, err := s.dialer.DialContext(ctx, target, s.header(accessToken))
		if err != nil {
			if resp != nil && resp.StatusCode != http.StatusSwitchingProtocols {
				return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
			}
			return fmt.Errorf("%w: dial notification stream: %v", schema.ErrNetwork, err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// reconcile replays what the durable list holds after the newest
// notification delivered so far
func (s *Subscriber) reconcile(ctx context.Context) error {
	s.mu.Lock()
	since := s.latest
	s.mu.Unlock()

	// notifications sharing the newest timestamp are filtered by id
	if !since.IsZero() {
		since = since.Add(-time.Second)
	}

	page, err := s.client.ListNotifications(ctx, since, time.Time{}, 0)
	if err != nil {
		return err
	}

	// the list is newest first
	for i := len(page.Notifications) - 1; i >= 0; i-- {
		s.deliver(page.Notifications[i])
	}
	return nil
}

func (s *Subscriber) deliver(n schema.Notification) {
	s.mu.Lock()
	if _, ok := s.seen[n.ID]; ok {
		s.mu.Unlock()
		return
	}
	s.seen[n.ID] = struct{}{}
	s.order = append(s.order, n.ID)
	if len(s.order) > seenLimit {
		delete(s.seen, s.order[0])
		s.order = s.order[1:]
	}
	if n.CreatedAt.After(s.latest) {
		s.latest = n.CreatedAt
	}
	s.mu.Unlock()

	s.handler(n)
}

func streamURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint + "/api/notifications/ws")
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	return u.String(), nil
}

func (s *Subscriber) header(accessToken string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+accessToken)
	h.Set("Client-Type", s.client.clientType)
	h.Set("Client-Version", strconv.Itoa(s.client.clientVersion))
	return h
}

func jitter(d time.Duration) time.Duration {
	half := int64(d / 2)
	if half <= 0 {
		return d
	}
	return time.Duration(half + rand.Int63n(half+1))
}
