package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "echovision:summary:"

// SummaryCache stores model summaries keyed by model and source text.
type SummaryCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a SummaryCache. A zero ttl keeps entries forever.
func NewSummaryCache(client *goredis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl}
}

// Get returns the cached summary and true, or "" and false on a miss.
func (c *SummaryCache) Get(ctx context.Context, model, text string) (string, bool, error) {
	val, err := c.client.Get(ctx, summaryKey(model, text)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("summary cache get: %w", err)
	}
	return val, true, nil
}

// Set stores a summary.
func (c *SummaryCache) Set(ctx context.Context, model, text, summary string) error {
	if err := c.client.Set(ctx, summaryKey(model, text), summary, c.ttl).Err(); err != nil {
		return fmt.Errorf("summary cache set: %w", err)
	}
	return nil
}

// Ping checks connectivity for the readiness probe.
func (c *SummaryCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func summaryKey(model, text string) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}
