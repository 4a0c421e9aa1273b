package cli

import (
	"io"
	"log/slog"
	"net/http"

	httpadapter "github.com/notatehq/notate/internal/adapters/http"
	"github.com/notatehq/notate/internal/adapters/redis"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewHandler assembles the rendering service from a serve config:
// engine with packs, optional Redis render cache, HTTP routes. The
// returned closer releases the cache connection.
func NewHandler(cfg *ServeConfig, logger *slog.Logger) (http.Handler, io.Closer, error) {
	eng, err := buildEngine(cfg.Packs)
	if err != nil {
		return nil, nil, err
	}

	opts := []httpadapter.Option{httpadapter.WithLogger(logger)}
	var closer io.Closer = nopCloser{}

	if cfg.Redis.Addr != "" {
		cacheOpts := []redis.Option{redis.WithTTL(cfg.Redis.TTL)}
		if cfg.Redis.Prefix != "" {
			cacheOpts = append(cacheOpts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cacheOpts...)
		opts = append(opts, httpadapter.WithCache(cache))
		closer = cache
		logger.Info("render cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	}

	return httpadapter.NewServer(eng, opts...).Handler(), closer, nil
}
