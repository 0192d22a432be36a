// Package preview streams finished frames to websocket clients. It only
// ever sees copies of frames; messages from clients are read and dropped.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-ledstar/model"
)

const (
	writeWait = 200 * time.Millisecond
	queueLen  = 4
)

type frame struct {
	T       int64  `json:"t"`
	FrameID uint64 `json:"frame_id"`
	RGB     []byte `json:"rgb"`
}

type Server struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
	frames  chan frame
	frameID uint64
	dropped uint64
	start   time.Time

	LEDs       int
	FPS        int
	Brightness uint8
	Driver     string
}

func NewServer(leds, fps int, brightness uint8, driver string) *Server {
	return &Server{
		clients:    map[*websocket.Conn]bool{},
		frames:     make(chan frame, queueLen),
		start:      time.Now(),
		LEDs:       leds,
		FPS:        fps,
		Brightness: brightness,
		Driver:     driver,
	}
}

// Publish queues a copy of the frame for broadcast. It never blocks; when
// clients fall behind the frame is dropped.
func (s *Server) Publish(hsv []model.HSV) {
	rgb := make([]byte, 0, len(hsv)*3)
	for _, c := range hsv {
		rgb = c.RGB(s.Brightness).Serialize(rgb)
	}
	s.mu.Lock()
	s.frameID++
	f := frame{T: time.Now().UnixNano(), FrameID: s.frameID, RGB: rgb}
	s.mu.Unlock()

	select {
	case s.frames <- f:
	default:
		s.mu.Lock()
		s.dropped++
		s.mu.Unlock()
	}
}

// Run broadcasts queued frames until ctx is done.
func (s *Server) Run(ctx context.Context) {
	for {
		select {
		case f := <-s.frames:
			s.broadcast(f)
		case <-ctx.Done():
			s.closeAll()
			return
		}
	}
}

func (s *Server) Clients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Msg("preview upgrade")
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	log.Info().Str("remote", r.RemoteAddr).Msg("preview client connected")

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
			log.Info().Str("remote", r.RemoteAddr).Msg("preview client disconnected")
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resp := map[string]any{
		"frame_id":   s.frameID,
		"dropped":    s.dropped,
		"uptime_s":   time.Since(s.start).Seconds(),
		"count":      s.LEDs,
		"fps":        s.FPS,
		"brightness": s.Brightness,
		"driver":     s.Driver,
		"clients":    len(s.clients),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleFramesWS)
	mux.HandleFunc("/health", s.HandleHealth)
	return withCORS(mux)
}

// ListenAndServe serves the preview on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go s.Run(ctx)
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	log.Info().Str("addr", addr).Msg("preview server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) broadcast(f frame) {
	b, err := json.Marshal(f)
	if err != nil {
		log.Error().Err(err).Msg("encode frame")
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for c := range s.clients {
		c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Debug().Err(err).Msg("write frame")
		}
	}
}

func (s *Server) closeAll() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for c := range s.clients {
		_ = c.Close()
	}
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		h.ServeHTTP(w, r)
	})
}
