package services

import (
	"encoding/json"
	"sync"
	"time"

	"boystrip/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	TopicItinerary = "itinerary"
	TopicProfiles  = "profiles"
	TopicRooms     = "rooms"
	TopicPayments  = "payments"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = (livePongWait * 9) / 10
	liveSendBuffer = 16
)

// ChangeNotifier is told after every successful mutation which topic
// changed. Subscribers re-read; nothing else is pushed.
type ChangeNotifier interface {
	Notify(topic string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

// NopNotifier drops every notification.
var NopNotifier ChangeNotifier = nopNotifier{}

type LiveMessage struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

type liveClient struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *liveClient) close() {
	c.once.Do(func() { close(c.send) })
}

// LiveHub fans change notifications out to every connected websocket.
type LiveHub struct {
	mu      sync.RWMutex
	clients map[string]*liveClient
	log     *logger.Logger
}

func NewLiveHub(log *logger.Logger) *LiveHub {
	return &LiveHub{
		clients: make(map[string]*liveClient),
		log:     log,
	}
}

// Serve owns conn until the peer goes away. Incoming frames are read only to
// process control messages and are otherwise ignored.
func (h *LiveHub) Serve(conn *websocket.Conn) {
	id := uuid.NewString()
	client := &liveClient{conn: conn, send: make(chan []byte, liveSendBuffer)}

	h.mu.Lock()
	h.clients[id] = client
	h.mu.Unlock()
	h.log.Info().Str("conn_id", id).Msg("live connection registered")

	go h.writePump(client)

	defer func() {
		h.unregister(id)
		_ = conn.Close()
	}()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Str("conn_id", id).Msg("live connection dropped")
			}
			return
		}
	}
}

func (h *LiveHub) writePump(c *liveClient) {
	ticker := time.NewTicker(livePingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *LiveHub) unregister(id string) {
	h.mu.Lock()
	client, ok := h.clients[id]
	delete(h.clients, id)
	h.mu.Unlock()

	if ok {
		client.close()
		h.log.Info().Str("conn_id", id).Msg("live connection unregistered")
	}
}

// Notify never blocks: a subscriber whose buffer is full is disconnected and
// will resync on reconnect.
func (h *LiveHub) Notify(topic string) {
	data, err := json.Marshal(LiveMessage{Type: topic + "_changed", Timestamp: time.Now().UnixMilli()})
	if err != nil {
		h.log.Error().Err(err).Msg("marshal live message")
		return
	}

	var slow []string
	h.mu.RLock()
	for id, c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, id)
		}
	}
	h.mu.RUnlock()

	for _, id := range slow {
		h.unregister(id)
	}
}

func (h *LiveHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close drops every subscriber, used on shutdown.
func (h *LiveHub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[string]*liveClient)
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}
