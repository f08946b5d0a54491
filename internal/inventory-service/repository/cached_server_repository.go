package repository

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"server-inventory-dashboard/internal/inventory-service/model"

	"github.com/redis/go-redis/v9"
)

// serverListCacheKey holds the gob-encoded full record set. Every write
// path drops it so the next FetchAll repopulates from the database.
const serverListCacheKey = "servers:all"

type cachedServerRepository struct {
	redis    *redis.Client
	repo     ServerRepository
	cacheTTL time.Duration
}

func (c *cachedServerRepository) FetchAll(ctx context.Context) ([]model.Server, error) {
	data, err := c.redis.Get(ctx, serverListCacheKey).Bytes()
	if err == nil {
		var servers []model.Server
		if e := gob.NewDecoder(bytes.NewReader(data)).Decode(&servers); e == nil {
			return servers, nil
		}
		// Undecodable cache entry, fall through to the database.
		c.redis.Del(ctx, serverListCacheKey)
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("cachedServerRepository.FetchAll: %w", err)
	}
	servers, err := c.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if e := gob.NewEncoder(&buf).Encode(servers); e == nil {
		c.redis.Set(ctx, serverListCacheKey, buf.Bytes(), c.cacheTTL)
	}
	return servers, nil
}

func (c *cachedServerRepository) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	if err := c.redis.Del(ctx, serverListCacheKey).Err(); err != nil {
		return model.Server{}, fmt.Errorf("cachedServerRepository.CreateServer: %w", err)
	}
	return c.repo.CreateServer(ctx, server)
}

func (c *cachedServerRepository) UpdateServer(ctx context.Context, server model.Server) (model.Server, error) {
	if err := c.redis.Del(ctx, serverListCacheKey).Err(); err != nil {
		return model.Server{}, fmt.Errorf("cachedServerRepository.UpdateServer: %w", err)
	}
	return c.repo.UpdateServer(ctx, server)
}

func (c *cachedServerRepository) DeleteServerByID(ctx context.Context, serverID string) error {
	if err := c.redis.Del(ctx, serverListCacheKey).Err(); err != nil {
		return fmt.Errorf("cachedServerRepository.DeleteServerByID: %w", err)
	}
	return c.repo.DeleteServerByID(ctx, serverID)
}

func (c *cachedServerRepository) BatchUpsertServers(ctx context.Context, servers []model.Server) (int, error) {
	if err := c.redis.Del(ctx, serverListCacheKey).Err(); err != nil {
		return 0, fmt.Errorf("cachedServerRepository.BatchUpsertServers: %w", err)
	}
	return c.repo.BatchUpsertServers(ctx, servers)
}

func NewCachedServerRepository(redisClient *redis.Client, repo ServerRepository, cacheTTL time.Duration) ServerRepository {
	return &cachedServerRepository{
		redis:    redisClient,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
