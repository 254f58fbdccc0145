package cache

import (
	"context"
	"fmt"
	"time"

	"healthcare-portal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.Info("Successfully connected to Redis")

	return client, nil
}

// NewEmbeddedRedisClient starts an in-process Redis server and returns a client
// for it. The returned stop func shuts the server down.
func NewEmbeddedRedisClient() (*redis.Client, func(), error) {
	server, err := miniredis.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start embedded Redis: %w", err)
	}

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	logrus.Infof("Embedded Redis listening on %s", server.Addr())

	return client, server.Close, nil
}
