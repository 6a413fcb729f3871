package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dicegrid/communication"
	"dicegrid/gamemaster"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type Option func(s *Server)

// WithCheckOrigin decides which origins may open the event feed. All origins are
// accepted by default.
func WithCheckOrigin(check func(r *http.Request) bool) Option {
	return func(s *Server) {
		if check != nil {
			s.upgrader.CheckOrigin = check
		}
	}
}

// Server exposes a game master over HTTP with JSON bodies, plus a websocket feed of
// game events on /events.
type Server struct {
	gm         *gamemaster.GameMaster
	hub        *hub
	upgrader   websocket.Upgrader
	mux        *http.ServeMux
	httpServer *http.Server
}

// NewServer initializes and returns a new Server.
func NewServer(gm *gamemaster.GameMaster, options ...Option) *Server {
	s := &Server{
		gm:       gm,
		hub:      newHub(),
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		mux:      http.NewServeMux(),
	}
	for _, option := range options {
		option(s)
	}

	s.mux.HandleFunc("POST /rounds", s.handleStartRound)
	s.mux.HandleFunc("POST /draw", s.handleDraw)
	s.mux.HandleFunc("POST /place", s.handlePlace)
	s.mux.HandleFunc("GET /state", s.handleState)
	s.mux.HandleFunc("GET /finalize", s.handleFinalize)
	s.mux.HandleFunc("GET /events", s.handleEvents)

	gm.Subscribe(s.publish)
	return s
}

func (s *Server) Handler() http.Handler {
	return logRequests(s.mux)
}

// ListenAndServe blocks until the server stops. http.ErrServerClosed is returned
// after Shutdown.
func (s *Server) ListenAndServe(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info().Msgf("game %s listening on %s", s.gm.GameID(), addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.closeAll()
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// publish turns committed game changes into events. It runs under the game master
// lock and only queues.
func (s *Server) publish(c gamemaster.Change) {
	event := communication.Event{
		GameID:       s.gm.GameID(),
		Round:        c.Round,
		Player:       c.Player,
		ActivePlayer: c.ActivePlayer,
	}
	die, pos := c.Die, c.Position
	switch c.Kind {
	case gamemaster.RoundStarted:
		event.Type = communication.RoundStarted
		event.Reserve = c.Reserve
	case gamemaster.DieDrawn:
		event.Type = communication.DieDrawn
		event.Die = &die
	case gamemaster.DiePlaced:
		event.Type = communication.DiePlaced
		event.Die = &die
		event.Position = &pos
	}
	s.hub.broadcast(event)
}

func (s *Server) handleStartRound(w http.ResponseWriter, r *http.Request) {
	start, err := s.gm.StartRound()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, start)
}

func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	var req communication.DrawRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	hand, err := s.gm.Draw(req.PlayerID, req.Die)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, communication.DrawResponse{Hand: hand})
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	var req communication.PlaceRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	placement, err := s.gm.Place(req.PlayerID, req.Die, req.Position)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, placement)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.gm.State())
}

func (s *Server) handleFinalize(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.gm.Finalize())
}

// handleEvents upgrades to a websocket and keeps the observer registered until it
// disconnects. Observers only receive; anything they send is discarded.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Info().Err(err).Msg("failed to upgrade event connection")
		return
	}
	s.hub.add(conn)
	defer s.hub.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Msg("event observer disconnected")
			}
			return
		}
	}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", communication.ErrBadRequest, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	code, status := communication.ErrorCode(err)
	writeJSON(w, status, communication.ErrorResponse{Code: code, Message: err.Error()})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/events" {
			// the upgrader needs the raw ResponseWriter for hijacking
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
