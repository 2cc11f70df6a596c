package redis_test

import (
	"testing"
	"time"

	"lodgehub/config"
	"lodgehub/infras/redis"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "cache.internal"
	cfg.Cache.Redis.Primary.Port = "6379"
	cfg.Cache.Redis.Primary.Password = "secret"
	cfg.Cache.Redis.Primary.DB = 2
	cfg.Cache.Redis.PoolSize = 20
	cfg.Cache.Redis.DialTimeoutSeconds = 5

	opts := redis.Options(cfg)

	assert.Equal(t, "cache.internal:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 20, opts.PoolSize)
	assert.Equal(t, 5*time.Second, opts.DialTimeout)
}
