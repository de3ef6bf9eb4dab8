package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/crebito/ledger-api/internal/logger"
)

// CreditLimitCacheRepository provides cached credit limits using Redis.
// Limits are immutable after provisioning, so a cache hit never goes stale;
// the TTL only bounds memory for ids that stop being queried.
type CreditLimitCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewCreditLimitCacheRepository creates a new repository instance with optional TTL
func NewCreditLimitCacheRepository(client *redis.Client, expiration time.Duration) *CreditLimitCacheRepository {
	return &CreditLimitCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetCreditLimit fetches a cached credit limit for a client
func (r *CreditLimitCacheRepository) GetCreditLimit(ctx context.Context, clientID int) (int64, error) {
	key := fmt.Sprintf("credit_limit:%d", clientID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("credit limit cache miss",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return 0, fmt.Errorf("credit limit not cached for client %d", clientID)
		}
		return 0, err
	}

	creditLimit, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Infow("credit limit cache corrupt value",
			"key", key,
			"value", val,
			"error", err,
		)
		return 0, err
	}

	logger.Log.Infow("credit limit cache hit",
		"key", key,
		"result", creditLimit,
	)

	return creditLimit, nil
}

// SetCreditLimit caches a client's credit limit in Redis with expiration
func (r *CreditLimitCacheRepository) SetCreditLimit(ctx context.Context, clientID int, creditLimit int64) error {
	key := fmt.Sprintf("credit_limit:%d", clientID)
	err := r.client.Set(ctx, key, strconv.FormatInt(creditLimit, 10), r.exp).Err()

	logger.Log.Infow("credit limit cached",
		"key", key,
		"credit_limit", creditLimit,
		"error", err,
	)

	return err
}
