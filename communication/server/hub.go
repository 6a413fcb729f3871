package server

import (
	"sync"
	"time"

	"dicegrid/communication"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	sendBuffer   = 64
	writeTimeout = 5 * time.Second
)

// observer is one event feed connection. Only its writer goroutine writes to conn.
type observer struct {
	conn *websocket.Conn
	send chan communication.Event
}

// hub fans events out to every connected observer without ever blocking on a
// socket: an observer whose buffer is full is dropped.
type hub struct {
	mu        sync.Mutex
	buffer    int
	observers map[*websocket.Conn]*observer
}

func newHub() *hub {
	return &hub{
		buffer:    sendBuffer,
		observers: make(map[*websocket.Conn]*observer),
	}
}

func (h *hub) add(conn *websocket.Conn) {
	o := &observer{conn: conn, send: make(chan communication.Event, h.buffer)}
	h.mu.Lock()
	h.observers[conn] = o
	h.mu.Unlock()
	go h.writeLoop(o)
}

func (h *hub) writeLoop(o *observer) {
	for event := range o.send {
		o.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := o.conn.WriteJSON(event); err != nil {
			log.Debug().Err(err).Msg("dropping event observer")
			h.remove(o.conn)
			return
		}
	}
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(conn)
}

// drop must be called with mu held.
func (h *hub) drop(conn *websocket.Conn) {
	o, ok := h.observers[conn]
	if !ok {
		return
	}
	delete(h.observers, conn)
	close(o.send)
	conn.Close()
}

func (h *hub) size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

func (h *hub) broadcast(event communication.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, o := range h.observers {
		select {
		case o.send <- event:
		default:
			log.Info().Str("remote", conn.RemoteAddr().String()).Msg("event observer too slow, dropping it")
			h.drop(conn)
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.observers {
		h.drop(conn)
	}
}
