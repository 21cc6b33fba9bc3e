// Package console hosts the browser-facing staffing console.
package console

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/staffdesk/internal/platform/timeouts"
	"github.com/louisbranch/staffdesk/internal/services/console/api"
	"github.com/louisbranch/staffdesk/internal/services/console/app"
	"github.com/louisbranch/staffdesk/internal/services/console/cache"
	"github.com/louisbranch/staffdesk/internal/services/console/modules/employees"
	"github.com/louisbranch/staffdesk/internal/services/console/modules/home"
	"github.com/louisbranch/staffdesk/internal/services/console/modules/modals"
	"github.com/louisbranch/staffdesk/internal/services/console/modules/projects"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/httpx"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/pagerender"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/requestmeta"
	"github.com/louisbranch/staffdesk/internal/services/console/storage"
	"github.com/louisbranch/staffdesk/internal/services/console/storage/sqlite"
	"github.com/louisbranch/staffdesk/internal/services/console/workflow"
)

// Config defines startup inputs for the console.
type Config struct {
	HTTPAddr   string
	APIBaseURL string
	// CacheDBPath is the sqlite file backing the query cache. Empty disables
	// caching so every read goes to the backend.
	CacheDBPath         string
	CacheTTL            time.Duration
	APITimeout          time.Duration
	SessionIdleTTL      time.Duration
	TrustForwardedProto bool
}

// Server hosts the console HTTP surface and its background loops.
type Server struct {
	httpAddr    string
	httpServer  *http.Server
	cacheStore  storage.Store
	cache       *cache.Cache
	sessions    *workflow.Sessions
	stopSweeper context.CancelFunc
	sweeperDone <-chan struct{}
}

// Backend is the staffing API surface the console needs.
type Backend interface {
	cache.Backend
	workflow.Mutator
}

// Dependencies are the collaborators NewHandler wires into modules.
type Dependencies struct {
	Backend  Backend
	Cache    *cache.Cache
	Sessions *workflow.Sessions
	Policy   requestmeta.SchemePolicy
}

// NewHandler builds the root handler over deps.
func NewHandler(deps Dependencies) (http.Handler, error) {
	if deps.Sessions == nil {
		deps.Sessions = workflow.NewSessions(0)
	}

	var (
		reader modals.Gateway
		runner *workflow.Runner
	)
	if deps.Backend != nil {
		cached := cache.NewReader(deps.Backend, deps.Cache)
		reader = cached
		var invalidator workflow.Invalidator
		if deps.Cache != nil {
			invalidator = deps.Cache
		}
		runner = workflow.NewRunner(deps.Backend, invalidator)
	}

	modalModule := modals.New(
		modals.WithGateway(reader),
		modals.WithRunner(runner),
		modals.WithSessions(deps.Sessions),
		modals.WithSchemePolicy(deps.Policy),
	)
	renderer := pagerender.New(deps.Policy, modalModule.RenderOpen)
	modalModule.SetRenderer(renderer)

	handler, err := app.Compose(
		home.New(renderer),
		employees.New(employees.WithGateway(reader), employees.WithRenderer(renderer)),
		projects.New(projects.WithGateway(reader), projects.WithRenderer(renderer)),
		modalModule,
	)
	if err != nil {
		return nil, fmt.Errorf("compose console handler: %w", err)
	}
	return httpx.Chain(handler,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.RequestLogger(),
		httpx.RequireSameOrigin(deps.Policy),
	), nil
}

// NewServer validates config and constructs a console server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	client, err := api.New(cfg.APIBaseURL, api.WithTimeout(cfg.APITimeout))
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}

	s := &Server{httpAddr: httpAddr, sessions: workflow.NewSessions(cfg.SessionIdleTTL)}
	if path := strings.TrimSpace(cfg.CacheDBPath); path != "" {
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open cache store: %w", err)
		}
		s.cacheStore = store
	}
	s.cache = cache.New(s.cacheStore, cache.WithTTL(cfg.CacheTTL))

	handler, err := NewHandler(Dependencies{
		Backend:  client,
		Cache:    s.cache,
		Sessions: s.sessions,
		Policy:   requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
	})
	if err != nil {
		s.Close()
		return nil, err
	}
	s.httpServer = &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	log.Printf("console backend=%s cache=%t", client.BaseURL(), s.cacheStore != nil)
	return s, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("console server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	s.stopSweeper, s.sweeperDone = s.cache.StartSweeper(timeouts.CacheSweep)
	go s.evictSessions(ctx)

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("console listening on %s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown console http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve console http: %w", err)
	}
}

func (s *Server) evictSessions(ctx context.Context) {
	ticker := time.NewTicker(timeouts.CacheSweep)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.sessions.Evict(); removed > 0 {
				log.Printf("evicted %d idle console sessions", removed)
			}
		}
	}
}

// Close stops background loops and releases the cache store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.stopSweeper != nil {
		s.stopSweeper()
		<-s.sweeperDone
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.cacheStore != nil {
		if err := s.cacheStore.Close(); err != nil {
			log.Printf("close cache store: %v", err)
		}
	}
}
