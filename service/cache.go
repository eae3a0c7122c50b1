// file: service/cache.go

package service

import (
	"bank-admin-api/model"
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ICacheClient defines the contract for a cache client. The abstraction
// decouples the services from a concrete Redis implementation, enabling
// easier testing and future flexibility.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

const (
	dashboardCacheKey = "dashboard"
	dashboardCacheTTL = 30 * time.Second
)

// DashboardCache is a cache-aside layer over the combined dashboard payload.
// Every write path through the services invalidates it. A nil client turns
// every operation into a no-op, which is how the service runs without Redis.
type DashboardCache struct {
	client ICacheClient
}

func NewDashboardCache(client ICacheClient) *DashboardCache {
	return &DashboardCache{client: client}
}

func (c *DashboardCache) Get(ctx context.Context) (*model.Dashboard, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	cached, err := c.client.Get(ctx, dashboardCacheKey).Result()
	if err != nil {
		return nil, false
	}

	var dashboard model.Dashboard
	if err := json.Unmarshal([]byte(cached), &dashboard); err != nil {
		return nil, false
	}
	return &dashboard, true
}

func (c *DashboardCache) Set(ctx context.Context, dashboard *model.Dashboard) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(dashboard)
	if err != nil {
		return
	}
	c.client.Set(ctx, dashboardCacheKey, data, dashboardCacheTTL)
}

func (c *DashboardCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, dashboardCacheKey)
}
