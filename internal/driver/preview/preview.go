// Package preview broadcasts frames to browser clients over websockets.
package preview

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/coreman2200/opcstrip/internal/driver"
	"github.com/coreman2200/opcstrip/internal/render"
)

const writeTimeout = 200 * time.Millisecond

type frameMessage struct {
	Frame uint64 `json:"frame"`
	N     int    `json:"n"`
	RGB   []byte `json:"rgb"`
}

// Server is a Sink that fans every frame out to connected websocket clients.
type Server struct {
	log       zerolog.Logger
	upgrader  websocket.Upgrader
	startTime time.Time

	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
	frameID uint64
	n       int
}

func New(log zerolog.Logger) *Server {
	return &Server{
		log:       log,
		upgrader:  websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		startTime: time.Now(),
		clients:   map[*websocket.Conn]bool{},
	}
}

// Handler routes /ws to the frame stream and /health to a status document.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleFramesWS)
	mux.HandleFunc("/health", s.HandleHealth)
	return mux
}

func (s *Server) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug().Err(err).Msg("upgrade")
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	go func() {
		defer s.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	resp := map[string]any{
		"frame_id": s.frameID,
		"uptime_s": time.Since(s.startTime).Seconds(),
		"count":    s.n,
		"clients":  len(s.clients),
	}
	s.mu.RUnlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// Clients reports how many websocket clients are connected.
func (s *Server) Clients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// PutPixels never fails: a client that cannot keep up is disconnected.
func (s *Server) PutPixels(frame render.Frame) error {
	s.mu.Lock()
	s.frameID++
	s.n = len(frame)
	b, err := json.Marshal(frameMessage{Frame: s.frameID, N: len(frame), RGB: driver.Encode(frame)})
	if err != nil {
		s.mu.Unlock()
		return err
	}
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		_ = c.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			s.log.Debug().Err(err).Str("remote", c.RemoteAddr().String()).Msg("write frame")
			s.drop(c)
		}
	}
	return nil
}

// Close disconnects every client.
func (s *Server) Close() error {
	s.mu.Lock()
	conns := s.clients
	s.clients = map[*websocket.Conn]bool{}
	s.mu.Unlock()
	for c := range conns {
		_ = c.Close()
	}
	return nil
}

func (s *Server) drop(c *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
	_ = c.Close()
}
