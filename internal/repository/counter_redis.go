package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sendsight/sendsight/internal/domain"
)

const (
	counterKeyPrefix = "delivery"

	hourBucketMillis = int64(time.Hour / time.Millisecond)
	dayBucketMillis  = 24 * hourBucketMillis

	hourCounterTTL = 24 * time.Hour
	dayCounterTTL  = 30 * 24 * time.Hour
)

type deliveryCounterRepository struct {
	client *redis.Client
}

// NewDeliveryCounterRepository creates a Redis-backed repository for
// rolling counters and cached analytics payloads.
func NewDeliveryCounterRepository(client *redis.Client) domain.DeliveryCounterRepository {
	return &deliveryCounterRepository{client: client}
}

// IncrementCounters bumps the hour and day bucket hashes for the event's
// organization and campaign, plus the provider's day counter. Each hash
// field is the event type; TTLs keep the counters rolling without a
// cleanup job.
func (r *deliveryCounterRepository) IncrementCounters(ctx context.Context, event *domain.DeliveryEvent) error {
	campaign := event.CampaignID
	if campaign == "" {
		campaign = "all"
	}

	millis := event.Timestamp.UnixMilli()
	hourKey := fmt.Sprintf("%s:%s:%s:hour:%d", counterKeyPrefix, event.OrganizationID, campaign, millis/hourBucketMillis)
	dayKey := fmt.Sprintf("%s:%s:%s:day:%d", counterKeyPrefix, event.OrganizationID, campaign, millis/dayBucketMillis)

	pipe := r.client.Pipeline()
	pipe.HIncrBy(ctx, hourKey, string(event.EventType), 1)
	pipe.Expire(ctx, hourKey, hourCounterTTL)
	pipe.HIncrBy(ctx, dayKey, string(event.EventType), 1)
	pipe.Expire(ctx, dayKey, dayCounterTTL)

	if event.Provider != "" {
		providerKey := fmt.Sprintf("%s:%s:provider:%s:day:%d", counterKeyPrefix, event.OrganizationID, event.Provider, millis/dayBucketMillis)
		pipe.HIncrBy(ctx, providerKey, string(event.EventType), 1)
		pipe.Expire(ctx, providerKey, dayCounterTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment delivery counters: %w", err)
	}

	return nil
}

func (r *deliveryCounterRepository) CacheGet(ctx context.Context, key string) ([]byte, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}

	return payload, nil
}

func (r *deliveryCounterRepository) CacheSet(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}

	return nil
}

func (r *deliveryCounterRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	return nil
}
