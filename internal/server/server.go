package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"

	"github.com/gravitas-games/hexpaint/internal/config"
	"github.com/gravitas-games/hexpaint/internal/network"
)

// Server serves one editing session to websocket hosts and HTTP clients
type Server struct {
	config   *config.Config
	session  *Session
	metrics  *Metrics
	auth     Authenticator
	upgrader websocket.Upgrader
	httpSrv  *http.Server
	redis    *redis.Client
	handler  http.Handler

	// Connection tracking
	connections map[*Connection]bool
	connMu      sync.RWMutex

	// Shutdown
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option customizes a Server.
type Option func(*Server)

// WithAuthenticator replaces the authenticator chosen from the config.
func WithAuthenticator(a Authenticator) Option {
	return func(s *Server) { s.auth = a }
}

// New creates a new server instance
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	log.Println("Initializing server...")

	ctx, cancel := context.WithCancel(context.Background())
	metrics := NewMetrics()

	srv := &Server{
		config:      cfg,
		metrics:     metrics,
		session:     NewSession("main", cfg, metrics),
		connections: make(map[*Connection]bool),
		ctx:         ctx,
		cancel:      cancel,
	}
	srv.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     srv.checkOrigin,
		Subprotocols:    []string{"access_token"},
	}
	for _, opt := range opts {
		opt(srv)
	}

	if srv.auth == nil {
		auth, err := srv.newAuthenticator(ctx)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to initialize authentication: %w", err)
		}
		srv.auth = auth
	}

	srv.handler = srv.routes()
	log.Println("Server initialized successfully")
	return srv, nil
}

func (s *Server) newAuthenticator(ctx context.Context) (Authenticator, error) {
	if !s.config.JWT.Enabled {
		log.Println("JWT disabled, hosts connect anonymously")
		return AnonymousAuth{}, nil
	}

	var blacklist Blacklist
	if s.config.Redis.Address != "" {
		s.redis = redis.NewClient(&redis.Options{
			Addr:     s.config.Redis.Address,
			Password: s.config.Redis.Password,
			DB:       s.config.Redis.DB,
		})
		if err := s.redis.Ping(ctx).Err(); err != nil {
			log.Printf("Warning: Redis unavailable, blacklist checks will fail open: %v", err)
		} else {
			log.Println("Connected to Redis")
		}
		blacklist = NewRedisBlacklist(s.redis, s.config.Redis.BlacklistPrefix)
	}

	validator := NewJWTValidator(s.config.JWT, blacklist)
	if err := validator.Start(ctx); err != nil {
		return nil, err
	}
	return validator, nil
}

// Session returns the editing session
func (s *Server) Session() *Session { return s.session }

// Handler returns the HTTP handler serving every route
func (s *Server) Handler() http.Handler { return s.handler }

// Start runs the tick loop and listens for connections until Shutdown
func (s *Server) Start(addr string) error {
	log.Printf("Starting server on %s", addr)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.session.Run(s.ctx)
	}()

	s.httpSrv = &http.Server{
		Addr:        addr,
		Handler:     s.handler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	log.Printf("WebSocket endpoint: ws://%s/ws", addr)
	log.Printf("Health endpoint: http://%s/health", addr)

	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	log.Println("Shutting down server...")

	s.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.httpSrv != nil {
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
	}

	s.connMu.Lock()
	for conn := range s.connections {
		conn.Close()
	}
	s.connMu.Unlock()

	s.wg.Wait()

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Printf("Redis close error: %v", err)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	for _, allowed := range s.config.Host.AllowedOrigins {
		if allowed == "*" || allowed == origin || allowed == u.Host {
			return true
		}
	}
	return false
}

// handleWebSocket handles WebSocket connection requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	log.Printf("New WebSocket connection request from %s", r.RemoteAddr)

	host, err := s.auth.Authenticate(r)
	if err != nil {
		log.Printf("Authentication failed for %s: %v", r.RemoteAddr, err)
		s.metrics.MessagesRejected.WithLabelValues("unauthorized").Inc()
		http.Error(w, fmt.Sprintf("Invalid token: %v", err), http.StatusUnauthorized)
		return
	}
	if host.IsBanned() || !host.IsActive() {
		http.Error(w, "Account not active", http.StatusForbidden)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn := NewConnection(ws, s, host)
	if err := s.session.AddHost(conn); err != nil {
		log.Printf("Rejecting %s: %v", host.Username, err)
		s.metrics.MessagesRejected.WithLabelValues(network.ErrCodeSessionFull).Inc()
		ws.SetWriteDeadline(time.Now().Add(writeWait))
		ws.WriteJSON(network.ServerMessage{
			Type:    network.MsgTypeError,
			Payload: network.ErrorPayload{Code: network.ErrCodeSessionFull, Message: err.Error()},
		})
		ws.Close()
		return
	}

	s.connMu.Lock()
	s.connections[conn] = true
	s.connMu.Unlock()

	conn.SendMessage(&network.ServerMessage{
		Type: network.MsgTypeWelcome,
		Payload: network.WelcomePayload{
			HostID:    host.ID,
			Username:  host.Username,
			SessionID: s.session.ID,
			TickRate:  s.config.Server.TickRate,
			Tools:     ToolInfos(s.config.Grid.AssetDir),
			Status:    s.session.Status(),
		},
	})
	log.Printf("WebSocket connection established: %s (%s)", host.Username, r.RemoteAddr)

	conn.Handle()

	s.connMu.Lock()
	delete(s.connections, conn)
	s.connMu.Unlock()

	log.Printf("WebSocket connection closed: %s (%s)", host.Username, r.RemoteAddr)
}
