package cache

import (
	"context"
	"log/slog"
	"time"

	"stay-ledger/internal/domain/bookingcode"

	"github.com/redis/go-redis/v9"
)

const codeClaimPrefix = "booking-code:claim:"

// SetNXer is the slice of *redis.Client the claim checker needs.
type SetNXer interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

// CodeClaimChecker claims a candidate code in Redis before asking the
// database. A code claimed by another request within the TTL counts as taken,
// so two concurrent creations never walk away with the same candidate.
// Redis failures fall through to the database check.
type CodeClaimChecker struct {
	client SetNXer
	next   bookingcode.Checker
	ttl    time.Duration
	logger *slog.Logger
}

func NewCodeClaimChecker(client SetNXer, next bookingcode.Checker, ttl time.Duration, logger *slog.Logger) *CodeClaimChecker {
	return &CodeClaimChecker{
		client: client,
		next:   next,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CodeClaimChecker) Exists(ctx context.Context, code string) (bool, error) {
	claimed, err := c.client.SetNX(ctx, codeClaimPrefix+code, "1", c.ttl).Result()
	switch {
	case err != nil:
		c.logger.Warn("booking code claim failed, using database check only",
			slog.String("code", code),
			slog.String("error", err.Error()))
	case !claimed:
		return true, nil
	}

	return c.next.Exists(ctx, code)
}
