package cmd

import (
	"context"
	"time"

	"github.com/rpgo/savings-projector/internal/cache"
	"github.com/rpgo/savings-projector/internal/config"
	"github.com/rpgo/savings-projector/internal/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagAddr      string
	flagRedisAddr string
	flagCacheTTL  time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the projection HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from prefs, :8080)")
	serveCmd.Flags().StringVar(&flagRedisAddr, "redis-addr", "", "Redis address for a shared result cache (default: in-memory)")
	serveCmd.Flags().DurationVar(&flagCacheTTL, "cache-ttl", 0, "How long computed projections stay re-renderable (default from prefs, 15m)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	prefs, err := loadPrefs(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		prefs.Server.Addr = flagAddr
	}
	if cmd.Flags().Changed("redis-addr") {
		prefs.Server.RedisAddr = flagRedisAddr
	}
	if cmd.Flags().Changed("cache-ttl") {
		prefs.Server.CacheTTL = config.Duration{Duration: flagCacheTTL}
	}

	logger := newLogger(prefs)
	resultCache, closeCache := newResultCache(cmd.Context(), logger, prefs.Server)
	defer closeCache()

	api := server.NewWebAPI(logger, server.Config{
		Addr: prefs.Server.Addr,
		Dependencies: server.Dependencies{
			Engine: newEngine(logger),
			Cache:  resultCache,
		},
	})
	return api.Start()
}

// newResultCache prefers redis when configured and reachable, else an in-memory cache.
func newResultCache(ctx context.Context, logger zerolog.Logger, sp config.ServerPreferences) (cache.ResultCache, func()) {
	ttl := sp.CacheTTL.Duration
	if sp.RedisAddr != "" {
		rc := cache.NewRedisCache(sp.RedisAddr, ttl)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		err := rc.Ping(pingCtx)
		if err == nil {
			logger.Info().Str("redis_addr", sp.RedisAddr).Dur("ttl", ttl).Msg("using redis result cache")
			return rc, func() { _ = rc.Close() }
		}
		logger.Warn().Err(err).Str("redis_addr", sp.RedisAddr).Msg("redis unavailable, falling back to in-memory cache")
		_ = rc.Close()
	}
	logger.Info().Dur("ttl", ttl).Msg("using in-memory result cache")
	return cache.NewMemoryCache(ttl), func() {}
}
