package network

import (
	"context"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/lixenwraith/kickball/engine"
	"github.com/lixenwraith/kickball/protocol"
	"github.com/lixenwraith/kickball/status"
	"github.com/lixenwraith/kickball/tracking"
)

// Controller is the slice of engine.Loop the server drives
type Controller interface {
	SubmitReset()
	SubmitDeviceStatus(connected bool, msg string)
	Snapshot() engine.Snapshot
}

// FrameHandler consumes decoded sensor frames, satisfied by *tracking.Source
type FrameHandler interface {
	HandleFrame(skeletons []tracking.Skeleton) bool
}

const msgBridgeLost = "tracker bridge disconnected"

// Server accepts the tracker bridge socket and serves the HTTP control routes
// At most one bridge is attached; a newer connection replaces the older one
type Server struct {
	cfg    *Config
	ctl    Controller
	frames FrameHandler
	reg    *status.Registry

	upgrader websocket.Upgrader
	router   *mux.Router

	mu     sync.Mutex
	bridge *Bridge

	statConnected *atomic.Bool
	statName      *status.AtomicString
}

// NewServer creates a server; cfg nil uses DefaultConfig
func NewServer(cfg *Config, ctl Controller, frames FrameHandler, reg *status.Registry) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Server{
		cfg:    cfg,
		ctl:    ctl,
		frames: frames,
		reg:    reg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return !fromBrowser(r) },
		},
		statConnected: reg.Bools.Get(status.BridgeConnected),
		statName:      reg.Strings.Get(status.BridgeName),
	}

	s.router = mux.NewRouter()
	s.router.Use(rejectBrowsers)
	s.router.HandleFunc("/ws", s.handleBridge).Methods(http.MethodGet)
	s.router.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	s.router.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
	return s
}

// Handler returns the route table
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return errors.Wrapf(err, "listen %s", s.cfg.Address)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts on ln until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.WriteTimeout,
	}

	served := make(chan struct{})
	defer close(served)
	go func() {
		select {
		case <-ctx.Done():
		case <-served:
			return
		}
		s.mu.Lock()
		if s.bridge != nil {
			s.bridge.Close()
		}
		s.mu.Unlock()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.WriteTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[network] listening on %s", ln.Addr())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve")
	}
	return nil
}

// fromBrowser reports whether r carries an Origin header
// Bridges and tools never send one; browsers do on websocket handshakes and cross-site POSTs
func fromBrowser(r *http.Request) bool {
	return r.Header.Get("Origin") != ""
}

// rejectBrowsers keeps web pages from attaching a bridge or resetting the game
func rejectBrowsers(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fromBrowser(r) {
			log.Printf("[network] refused %s %s from origin %q", r.Method, r.URL.Path, r.Header.Get("Origin"))
			http.Error(w, "browser origins are not accepted", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Connected reports whether a bridge is attached
func (s *Server) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bridge != nil
}

// Send encodes and queues a message to the attached bridge
func (s *Server) Send(t string, payload any) error {
	s.mu.Lock()
	b := s.bridge
	s.mu.Unlock()
	if b == nil {
		return engine.ErrElevatorNotReady
	}

	msg, err := protocol.Encode(t, payload)
	if err != nil {
		return err
	}
	if !b.Send(msg) {
		return errors.Errorf("bridge %s: send queue full or closing", b.Name())
	}
	return nil
}

func (s *Server) handleBridge(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[network] upgrade: %v", err)
		return
	}

	b := newBridge(conn, s.cfg)
	s.attach(b)
	defer s.detach(b)

	go b.writeLoop()
	b.readLoop(s.handleMessage)
}

func (s *Server) attach(b *Bridge) {
	s.mu.Lock()
	old := s.bridge
	s.bridge = b
	s.mu.Unlock()

	if old != nil {
		log.Printf("[network] bridge %s replaced by %s", old.Name(), b.Addr)
		old.Close()
	}
	s.statConnected.Store(true)
	s.statName.Store(b.Name())
	log.Printf("[network] bridge connected from %s", b.Addr)
}

func (s *Server) detach(b *Bridge) {
	b.Close()

	s.mu.Lock()
	current := s.bridge == b
	if current {
		s.bridge = nil
	}
	s.mu.Unlock()

	if !current {
		return
	}
	s.statConnected.Store(false)
	s.statName.Store("")
	s.ctl.SubmitDeviceStatus(false, msgBridgeLost)
	log.Printf("[network] bridge %s disconnected", b.Name())
}

// handleMessage runs on the bridge's read goroutine; malformed input is logged and dropped
func (s *Server) handleMessage(b *Bridge, data []byte) {
	env, err := protocol.DecodeEnvelope(data)
	if err != nil {
		log.Printf("[network] %s: %v", b.Name(), err)
		return
	}

	switch env.T {
	case protocol.MsgHello:
		hello, err := protocol.DecodePayload[protocol.Hello](env)
		if err != nil {
			log.Printf("[network] %s: %v", b.Name(), err)
			return
		}
		if hello.Name != "" {
			b.SetName(hello.Name)
			s.statName.Store(hello.Name)
		}
		log.Printf("[network] hello from %s (protocol v%d)", b.Name(), hello.V)

	case protocol.MsgSkeletons:
		frame, err := protocol.DecodePayload[protocol.SkeletonFrame](env)
		if err != nil {
			log.Printf("[network] %s: %v", b.Name(), err)
			return
		}
		s.frames.HandleFrame(frame.ToSkeletons())

	case protocol.MsgDevice:
		dev, err := protocol.DecodePayload[protocol.DeviceStatus](env)
		if err != nil {
			log.Printf("[network] %s: %v", b.Name(), err)
			return
		}
		s.ctl.SubmitDeviceStatus(dev.Connected, dev.Message)

	default:
		log.Printf("[network] %s: unknown message type %q", b.Name(), env.T)
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	st := protocol.StateFromSnapshot(s.ctl.Snapshot(), s.reg.IntSnapshot())
	body, err := protocol.Encode(protocol.MsgState, st)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(body)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.ctl.SubmitReset()
	w.WriteHeader(http.StatusAccepted)
}
