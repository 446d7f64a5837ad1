package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/gittales/pkg/infra/dedup"
	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"
)

// Redis backs webhook delivery dedup. Without an address, deliveries are
// remembered in process memory.
type Redis struct {
	addr     string
	password string `masq:"secret"`
	db       int
	ttl      time.Duration
}

func (x *Redis) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "redis-addr",
			Usage:       "Redis address (host:port) for webhook delivery dedup",
			Category:    "Redis",
			Destination: &x.addr,
			Sources:     cli.EnvVars("GITTALES_REDIS_ADDR"),
		},
		&cli.StringFlag{
			Name:        "redis-password",
			Usage:       "Redis password",
			Category:    "Redis",
			Destination: &x.password,
			Sources:     cli.EnvVars("GITTALES_REDIS_PASSWORD"),
		},
		&cli.IntFlag{
			Name:        "redis-db",
			Usage:       "Redis database number",
			Category:    "Redis",
			Destination: &x.db,
			Sources:     cli.EnvVars("GITTALES_REDIS_DB"),
		},
		&cli.DurationFlag{
			Name:        "delivery-ttl",
			Usage:       "How long a webhook delivery ID is remembered",
			Category:    "Redis",
			Value:       dedup.DefaultTTL,
			Destination: &x.ttl,
			Sources:     cli.EnvVars("GITTALES_DELIVERY_TTL"),
		},
	}
}

func (x *Redis) Enabled() bool {
	return x.addr != ""
}

// NewDeliveryGuard connects to Redis and checks the connection. The returned
// function closes the client.
func (x *Redis) NewDeliveryGuard(ctx context.Context) (*dedup.Redis, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     x.addr,
		Password: x.password,
		DB:       x.db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, goerr.Wrap(err, "failed to connect to redis", goerr.V("addr", x.addr))
	}

	return dedup.NewRedis(client, x.ttl), func() { _ = client.Close() }, nil
}

// NewMemoryGuard returns the in-process fallback with the same TTL
func (x *Redis) NewMemoryGuard() *dedup.Memory {
	return dedup.NewMemory(x.ttl)
}

func (x Redis) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", x.addr),
		slog.Int("password.len", len(x.password)),
		slog.Int("db", x.db),
		slog.Duration("ttl", x.ttl),
	)
}
