// Package redis dials the Redis backing the business store and waits for it
// to answer before handing the client out.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/logger"
	"github.com/redis/go-redis/v9"
)

// ConnectOptions defines the client and its startup retry policy.
type ConnectOptions struct {
	Addr           string
	User           string
	Password       string
	DB             int
	DialTimeout    time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	PoolSize       int
	ConnectTimeout time.Duration // total budget for the startup pings
	RetryInterval  time.Duration // first wait, doubled after each failure
	MaxWait        time.Duration // cap on the wait between pings
	PingTimeout    time.Duration
	WarnThreshold  int // failures after this many attempts log at error level
}

func (o ConnectOptions) validate() error {
	switch {
	case o.Addr == "":
		return fmt.Errorf("redis address is required")
	case o.ConnectTimeout <= 0:
		return fmt.Errorf("ConnectTimeout must be > 0, got %v", o.ConnectTimeout)
	case o.RetryInterval <= 0:
		return fmt.Errorf("RetryInterval must be > 0, got %v", o.RetryInterval)
	case o.MaxWait <= 0:
		return fmt.Errorf("MaxWait must be > 0, got %v", o.MaxWait)
	case o.PingTimeout <= 0:
		return fmt.Errorf("PingTimeout must be > 0, got %v", o.PingTimeout)
	case o.WarnThreshold < 0:
		return fmt.Errorf("WarnThreshold must be >= 0, got %d", o.WarnThreshold)
	}
	return nil
}

func (o ConnectOptions) client() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         o.Addr,
		Username:     o.User,
		Password:     o.Password,
		DB:           o.DB,
		DialTimeout:  o.DialTimeout,
		ReadTimeout:  o.ReadTimeout,
		WriteTimeout: o.WriteTimeout,
		PoolSize:     o.PoolSize,
	})
}

// backoff doubles the wait up to max.
type backoff struct {
	wait, max time.Duration
}

func (b *backoff) next() time.Duration {
	w := b.wait
	b.wait = min(b.wait*2, b.max)
	return w
}

// Connect creates the client and pings it with exponential backoff until it
// answers, ctx is cancelled or ConnectTimeout elapses. The client is closed
// on failure.
func Connect(ctx context.Context, opts ConnectOptions, log logger.Logger) (*redis.Client, error) {
	if err := opts.validate(); err != nil {
		log.Error("invalid redis options", logger.Error(err))
		return nil, err
	}

	client := opts.client()
	ctx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()

	log.Info("connecting to redis",
		logger.String("addr", opts.Addr),
		logger.Duration("timeout", opts.ConnectTimeout))

	start := time.Now()
	bo := &backoff{wait: opts.RetryInterval, max: opts.MaxWait}

	for attempt := 1; ; attempt++ {
		err := ping(ctx, client, opts.PingTimeout)
		if err == nil {
			logConnected(log, opts.Addr, attempt, time.Since(start))
			return client, nil
		}

		wait := bo.next()
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			_ = client.Close()
			log.Error("redis unavailable, giving up",
				logger.String("addr", opts.Addr),
				logger.Int("attempts", attempt),
				logger.Duration("timeout", opts.ConnectTimeout),
				logger.Error(err))
			return nil, fmt.Errorf("redis unavailable at %s after %d attempts: %w", opts.Addr, attempt, err)
		case <-timer.C:
			logRetry(log, opts.Addr, attempt, opts.WarnThreshold, wait, err)
		}
	}
}

func ping(ctx context.Context, client *redis.Client, timeout time.Duration) error {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.Ping(pingCtx).Err()
}

func logConnected(log logger.Logger, addr string, attempts int, elapsed time.Duration) {
	if attempts == 1 {
		log.Info("connected to redis", logger.String("addr", addr))
		return
	}
	log.Warn("connected to redis after retry",
		logger.String("addr", addr),
		logger.Int("attempts", attempts),
		logger.Duration("elapsed", elapsed))
}

func logRetry(log logger.Logger, addr string, attempt, warnThreshold int, waited time.Duration, err error) {
	fields := []logger.Field{
		logger.String("addr", addr),
		logger.Int("attempt", attempt),
		logger.Duration("waited", waited),
		logger.Error(err),
	}
	if attempt <= warnThreshold {
		log.Warn("redis connection failed, retrying", fields...)
		return
	}
	log.Error("redis still unavailable, retrying", fields...)
}
