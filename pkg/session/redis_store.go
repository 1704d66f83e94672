package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisSessionPrefix = "authkit:session:"
	redisUserPrefix    = "authkit:user_sessions:"
)

// RedisStore implements Store on top of Redis so sessions survive process
// restarts and can be shared between replicas. Each session lives in a hash
// keyed by token; a per-user set indexes tokens for Destroy.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Create mints a token and records it against userID.
func (s *RedisStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	key := redisSessionPrefix + token
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("session: redis exists: %w", err)
	}
	if exists > 0 {
		return "", ErrTokenCollision
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"user_id", userID.String(),
			"created_at", time.Now().UTC().Format(time.RFC3339Nano),
		)
		pipe.SAdd(ctx, redisUserPrefix+userID.String(), token)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("session: redis create: %w", err)
	}

	return token, nil
}

// Destroy removes every session owned by userID.
func (s *RedisStore) Destroy(ctx context.Context, userID uuid.UUID) error {
	setKey := redisUserPrefix + userID.String()
	tokens, err := s.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return fmt.Errorf("session: redis smembers: %w", err)
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, redisSessionPrefix+token)
	}
	keys = append(keys, setKey)

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("session: redis del: %w", err)
	}
	return nil
}

// UserID resolves a token, applying ttl as a read-only expiration check.
func (s *RedisStore) UserID(ctx context.Context, token string, ttl time.Duration) (uuid.UUID, error) {
	fields, err := s.client.HGetAll(ctx, redisSessionPrefix+token).Result()
	if err != nil {
		return uuid.Nil, fmt.Errorf("session: redis hgetall: %w", err)
	}
	if len(fields) == 0 {
		return uuid.Nil, ErrSessionNotFound
	}

	rec, err := recordFromFields(token, fields)
	if err != nil {
		return uuid.Nil, err
	}
	if rec.ExpiredAt(time.Now(), ttl) {
		return uuid.Nil, ErrSessionExpired
	}
	return rec.UserID, nil
}

// DeleteExpired removes records created more than olderThan ago. Scans the
// session keyspace incrementally to avoid blocking the server.
func (s *RedisStore) DeleteExpired(ctx context.Context, olderThan time.Duration) error {
	if olderThan <= 0 {
		return nil
	}
	cutoff := time.Now().Add(-olderThan)

	iter := s.client.Scan(ctx, 0, redisSessionPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		fields, err := s.client.HGetAll(ctx, key).Result()
		if err != nil || len(fields) == 0 {
			continue
		}
		rec, err := recordFromFields(key, fields)
		if err != nil {
			continue
		}
		if rec.CreatedAt.Before(cutoff) {
			_, _ = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Del(ctx, key)
				pipe.SRem(ctx, redisUserPrefix+rec.UserID.String(), key[len(redisSessionPrefix):])
				return nil
			})
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("session: redis scan: %w", err)
	}
	return nil
}

// recordFromFields rebuilds a Record from a Redis hash.
func recordFromFields(token string, fields map[string]string) (*Record, error) {
	userID, err := uuid.Parse(fields["user_id"])
	if err != nil {
		return nil, fmt.Errorf("session: malformed user id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, fmt.Errorf("session: malformed created_at: %w", err)
	}
	return &Record{Token: token, UserID: userID, CreatedAt: createdAt}, nil
}

// Compile-time interface assertion
var _ Store = (*RedisStore)(nil)
