package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache es un wrapper fino sobre redis. Con addr vacío queda deshabilitado
// y todas las operaciones son no-ops: la app funciona sin redis.
type Cache struct {
	rdb *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		return &Cache{}
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable (%v), running without cache", err)
		return &Cache{}
	}

	return &Cache{rdb: rdb}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if !c.Enabled() {
		return "", false
	}

	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if !c.Enabled() {
		return
	}

	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

func (c *Cache) Delete(ctx context.Context, key string) {
	if !c.Enabled() {
		return
	}

	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		log.Printf("cache delete %s: %v", key, err)
	}
}
