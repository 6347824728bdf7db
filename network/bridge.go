package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Bridge is one connected tracker bridge
// gorilla/websocket allows a single concurrent writer, so every write goes through writeLoop
type Bridge struct {
	ID       uuid.UUID
	Addr     string
	LastSeen atomic.Int64 // UnixNano

	name atomic.Pointer[string]

	conn   *websocket.Conn
	cfg    *Config
	sendCh chan []byte

	closeCh   chan struct{}
	closeOnce sync.Once
}

func newBridge(conn *websocket.Conn, cfg *Config) *Bridge {
	b := &Bridge{
		ID:      uuid.New(),
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		cfg:     cfg,
		sendCh:  make(chan []byte, cfg.SendQueueSize),
		closeCh: make(chan struct{}),
	}
	b.SetName(b.Addr)
	b.LastSeen.Store(time.Now().UnixNano())
	return b
}

// Name returns the bridge's announced name, or its address before hello
func (b *Bridge) Name() string {
	return *b.name.Load()
}

func (b *Bridge) SetName(name string) {
	b.name.Store(&name)
}

// Send queues an encoded message
// Returns false if the bridge is closing or the queue is full
func (b *Bridge) Send(msg []byte) bool {
	select {
	case <-b.closeCh:
		return false
	default:
	}

	select {
	case b.sendCh <- msg:
		return true
	default:
		return false
	}
}

// Close initiates shutdown, safe to call repeatedly
func (b *Bridge) Close() {
	b.closeOnce.Do(func() {
		close(b.closeCh)
		b.conn.Close()
	})
}

// Done is closed once the bridge shuts down
func (b *Bridge) Done() <-chan struct{} {
	return b.closeCh
}

// readLoop reads text messages until the connection fails
func (b *Bridge) readLoop(handler func(*Bridge, []byte)) {
	defer b.Close()

	b.conn.SetReadLimit(b.cfg.ReadLimit)
	_ = b.conn.SetReadDeadline(time.Now().Add(b.cfg.ReadTimeout))
	b.conn.SetPongHandler(func(string) error {
		b.LastSeen.Store(time.Now().UnixNano())
		return b.conn.SetReadDeadline(time.Now().Add(b.cfg.ReadTimeout))
	})

	for {
		_, msg, err := b.conn.ReadMessage()
		if err != nil {
			return
		}
		b.LastSeen.Store(time.Now().UnixNano())
		_ = b.conn.SetReadDeadline(time.Now().Add(b.cfg.ReadTimeout))
		handler(b, msg)
	}
}

// writeLoop sends queued messages and keepalive pings
func (b *Bridge) writeLoop() {
	defer b.Close()

	ticker := time.NewTicker(b.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.closeCh:
			return
		case msg := <-b.sendCh:
			_ = b.conn.SetWriteDeadline(time.Now().Add(b.cfg.WriteTimeout))
			if err := b.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = b.conn.SetWriteDeadline(time.Now().Add(b.cfg.WriteTimeout))
			if err := b.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
