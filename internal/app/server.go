package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/heartmarshall/termstamps/internal/adapter/postgres"
	"github.com/heartmarshall/termstamps/internal/adapter/postgres/taxonomy"
	"github.com/heartmarshall/termstamps/internal/adapter/postgres/term"
	"github.com/heartmarshall/termstamps/internal/adapter/postgres/termmeta"
	"github.com/heartmarshall/termstamps/internal/adapter/postgres/user"
	"github.com/heartmarshall/termstamps/internal/adapter/redis/usercache"
	"github.com/heartmarshall/termstamps/internal/auth"
	"github.com/heartmarshall/termstamps/internal/config"
	"github.com/heartmarshall/termstamps/internal/domain"
	"github.com/heartmarshall/termstamps/internal/service/history"
	termsvc "github.com/heartmarshall/termstamps/internal/service/term"
	"github.com/heartmarshall/termstamps/internal/service/timestamps"
	gql "github.com/heartmarshall/termstamps/internal/transport/graphql"
	"github.com/heartmarshall/termstamps/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/termstamps/internal/transport/graphql/resolver"
	"github.com/heartmarshall/termstamps/internal/transport/graphql/schema"
	"github.com/heartmarshall/termstamps/internal/transport/middleware"
	"github.com/heartmarshall/termstamps/internal/transport/rest"
)

// SchemaPath serves the generated SDL next to the GraphQL endpoint.
const SchemaPath = "/graphql/schema"

type userStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
}

// Server is the assembled HTTP surface.
type Server struct {
	Handler http.Handler
	Schema  *schema.Schema

	limiter *middleware.RateLimiter
}

// Close stops background helpers. It does not close the pool or Redis
// client; their owner does.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// NewServer wires repositories, services and transports. rdb may be nil,
// in which case user lookups go straight to Postgres. Metrics are
// registered on reg and exposed on the configured path.
func NewServer(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
	pool *pgxpool.Pool,
	rdb *redis.Client,
	reg *prometheus.Registry,
) (*Server, error) {
	// Repositories
	termRepo := term.New(pool)
	taxonomyRepo := taxonomy.New(pool)
	metaRepo := termmeta.New(pool)
	txm := postgres.NewTxManager(pool)

	var users userStore = user.New(pool)
	var cache *usercache.Cache
	if rdb != nil {
		cache = usercache.New(rdb, users, cfg.Redis.UserTTL, log)
		users = cache
	}

	// Services
	keys := cfg.Timestamps.MetaKeys()
	metrics := timestamps.NewMetrics()
	if err := metrics.Register(reg); err != nil {
		return nil, fmt.Errorf("register timestamps metrics: %w", err)
	}
	recorder := timestamps.NewRecorder(log, metaRepo, txm, keys,
		timestamps.WithLocation(cfg.Timestamps.Location),
		timestamps.WithMetrics(metrics),
	)
	historySvc := history.NewService(log, metaRepo, dataloader.NewUserLookup(users), keys, cfg.Timestamps.Location)
	termService := termsvc.NewService(log, termRepo, taxonomyRepo, recorder)

	// GraphQL schema
	taxonomies, err := taxonomyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load taxonomies: %w", err)
	}
	registry := schema.NewRegistry()
	res := resolver.NewResolver(log, termService, historySvc)
	if err := res.RegisterSchema(registry, taxonomies, auditFieldNames(cfg.Timestamps)); err != nil {
		return nil, fmt.Errorf("register schema: %w", err)
	}
	sch, err := registry.Build(schema.WithConcurrency(cfg.GraphQL.Concurrency))
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}

	// HTTP
	health := rest.NewHealthHandler(pool, BuildVersion())
	if cache != nil {
		health.WithComponent("redis", cache)
	}
	admin := rest.NewAdminHandler(termService, historySvc, log)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	limiter := middleware.NewRateLimiter(time.Minute)

	graphqlHandler := middleware.Chain(
		middleware.When(cfg.GraphQL.RateLimit > 0, limiter.Limit(cfg.GraphQL.RateLimit)),
		dataloader.Middleware(&dataloader.Repos{User: users}),
	)(gql.NewHandler(sch, log, cfg.GraphQL.ComplexityLimit))

	mux := http.NewServeMux()
	mux.Handle("GET "+cfg.GraphQL.Path, graphqlHandler)
	mux.Handle("POST "+cfg.GraphQL.Path, graphqlHandler)
	mux.Handle("GET "+SchemaPath, gql.SDLHandler(sch.SDL()))
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /admin/terms", admin.TermColumns)
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	handler := middleware.Chain(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.When(cfg.CORS.AllowedOrigins != "", middleware.CORS(cfg.CORS)),
		middleware.Auth(jwtManager),
		middleware.Logger(log),
	)(mux)

	return &Server{
		Handler: otelhttp.NewHandler(handler, "termstamps"),
		Schema:  sch,
		limiter: limiter,
	}, nil
}

// NewRegistry returns a Prometheus registry with the Go runtime and
// process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func auditFieldNames(c config.TimestampsConfig) resolver.AuditFieldNames {
	return resolver.AuditFieldNames{
		Created:       c.CreatedField,
		Modifications: c.ModificationsField,
		LastModified:  c.LastModifiedField,
	}
}
