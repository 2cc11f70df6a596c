package redis

import (
	"context"
	"net"
	"time"

	"lodgehub/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Options maps the cache section of the configuration onto client options.
func Options(cfg *config.Config) *goRedis.Options {
	redisCfg := cfg.Cache.Redis
	dialTimeout := time.Duration(redisCfg.DialTimeoutSeconds) * time.Second

	return &goRedis.Options{
		Addr:        net.JoinHostPort(redisCfg.Primary.Host, redisCfg.Primary.Port),
		Password:    redisCfg.Primary.Password,
		DB:          redisCfg.Primary.DB,
		PoolSize:    redisCfg.PoolSize,
		DialTimeout: dialTimeout,
	}
}

// New connects to the primary and exits when it cannot be reached. The rate
// limiter and every read cache depend on it.
func New(cfg *config.Config) *goRedis.Client {
	opts := Options(cfg)
	client := goRedis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout+time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", opts.Addr).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", opts.DB).
		Str("addr", opts.Addr).
		Int("poolSize", opts.PoolSize).
		Msg("Connected to Redis")

	return client
}
