// Package observer exposes a read-only websocket feed of controller status
// for local tooling (overlay UIs, debugging dashboards). Connections are
// restricted to loopback.
package observer

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const statusInterval = time.Second

// Status is one snapshot pushed to every connected observer.
type Status struct {
	State        string  `json:"state"`
	Enabled      bool    `json:"enabled"`
	AutoHunting  bool    `json:"auto_hunting"`
	HPPercent    float32 `json:"hp_percent"`
	ManaPercent  float32 `json:"mana_percent"`
	TargetID     uint16  `json:"target_id"`
	TargetName   string  `json:"target_name,omitempty"`
	TrackedCount int     `json:"tracked_count"`
	Tick         uint64  `json:"tick"`
}

// StatusFunc produces the current snapshot. It must be safe to call from
// the observer's goroutines.
type StatusFunc func() Status

// Server serves the status feed over websocket.
type Server struct {
	status StatusFunc
	log    *slog.Logger

	upgrader websocket.Upgrader
	nextID   atomic.Uint64
}

func NewServer(status StatusFunc, logger *slog.Logger) *Server {
	return &Server{
		status: status,
		log:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ListenAndServe runs an HTTP server with the status handler mounted on
// /status until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", s.WSHandler())

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("observer listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) WSHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}

		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		sid := s.nextID.Add(1)
		s.log.Debug("observer connected", "session", sid, "remote", r.RemoteAddr)

		// Reader goroutine: we never expect payloads, but reading drains
		// control frames and detects the peer closing.
		readErr := make(chan error, 1)
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					readErr <- err
					return
				}
			}
		}()

		ticker := time.NewTicker(statusInterval)
		defer ticker.Stop()
		for {
			select {
			case <-readErr:
				s.log.Debug("observer disconnected", "session", sid)
				return
			case <-ticker.C:
				payload, err := json.Marshal(s.status())
				if err != nil {
					s.log.Warn("marshaling observer status", "error", err)
					continue
				}
				_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					s.log.Debug("observer write failed", "session", sid, "error", err)
					return
				}
			}
		}
	}
}

func isLoopbackRemote(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
