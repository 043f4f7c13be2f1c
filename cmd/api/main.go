package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "reviewboard/internal/adapters/http_server"
	"reviewboard/internal/adapters/observability"
	redisad "reviewboard/internal/adapters/redis"
	"reviewboard/internal/app"
	"reviewboard/internal/catalog"
	"reviewboard/internal/domain"
	"reviewboard/internal/shared"
)

func main() {
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := catalog.Lookup(cfg.Catalog)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog lookup failed")
	}

	// optional cache; the catalog is served directly when REDIS_ADDR is unset
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, serving without cache")
		} else {
			cache = rc
		}
	}
	q := app.NewQueryService(src, cache, cfg.CacheTTL)

	reg := observability.InitRegistry()
	if rs, err := src.List(ctx); err == nil {
		observability.SetCatalogSize(src.Name(), len(rs))
	}

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	servers := []*http.Server{{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}}
	if ms := observability.NewServer(cfg.MetricsAddr, reg); ms != nil {
		servers = append(servers, ms)
	}

	// bind every port before announcing anything
	listeners := make([]net.Listener, 0, len(servers))
	for _, hs := range servers {
		ln, err := net.Listen("tcp", hs.Addr)
		if err != nil {
			log.Fatal().Err(err).Str("addr", hs.Addr).Msg("listen failed")
		}
		listeners = append(listeners, ln)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, hs := range servers {
		server.Run(gctx, g, hs, listeners[i], cfg.ShutdownTimeout)
	}

	apiAddr := listeners[0].Addr().String()
	log.Info().Str("addr", apiAddr).Str("catalog", src.Name()).Msg(src.Banner(apiAddr))

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("server stopped")
}
