package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/converse98/pizzeria-pos/internal/domain"
)

var errCacheMiss = errors.New("cache miss")

// Cache wraps a Store and caches filtered listings in redis. Cache
// failures degrade to the inner store; lookups by id pass through.
type Cache struct {
	inner   Store
	client  *redis.Client
	baseTTL time.Duration
	sfg     singleflight.Group // prevents cache stampede
}

func NewCache(inner Store, client *redis.Client) *Cache {
	return &Cache{
		inner:   inner,
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

func (c *Cache) Products(ctx context.Context) ([]domain.Product, error) {
	return c.inner.Products(ctx)
}

func (c *Cache) Product(ctx context.Context, id string) (*domain.Product, error) {
	return c.inner.Product(ctx, id)
}

func (c *Cache) Extras(ctx context.Context) ([]domain.Extra, error) {
	return c.inner.Extras(ctx)
}

func (c *Cache) Extra(ctx context.Context, id string) (*domain.Extra, error) {
	return c.inner.Extra(ctx, id)
}

func (c *Cache) Filter(ctx context.Context, category, search string) ([]domain.Product, error) {
	key := cacheKey(category, search)

	// Use singleflight so concurrent misses for the same key hit the
	// inner store once.
	v, err, _ := c.sfg.Do(key, func() (interface{}, error) {
		products, err := c.get(ctx, key)
		if err == nil {
			return products, nil
		}

		if !errors.Is(err, errCacheMiss) {
			log.Printf("catalog cache get error: %v", err) // log cache error but continue
		}

		products, errInner := c.inner.Filter(ctx, category, search)
		if errInner != nil {
			return nil, errInner
		}

		go func() {
			if errSet := c.set(context.Background(), key, products); errSet != nil {
				log.Printf("catalog cache set error: %v", errSet)
			}
		}()

		return products, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

func (c *Cache) get(ctx context.Context, key string) ([]domain.Product, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("unmarshal products failed: %w", err)
	}

	return products, nil
}

func (c *Cache) set(ctx context.Context, key string, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal products failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	if err := c.client.Set(ctx, key, data, c.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cacheKey(category, search string) string {
	return fmt.Sprintf("products:%s:%s", category, search)
}
