// Package rediscache layers a Redis read-through cache in front of a
// ConversationRepository. Cache misses and Redis failures fall through to
// the wrapped repository, so availability never depends on Redis.
package rediscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"docsage/internal/config"
	"docsage/internal/domain"
	"docsage/internal/port"
)

const keyPrefix = "docsage:conv:"

type cachedRepo struct {
	rdb  *redis.Client
	next port.ConversationRepository
	ttl  time.Duration
}

var _ port.ConversationRepository = (*cachedRepo)(nil)

// NewClient creates a Redis client and verifies the connection with a PING.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// Wrap decorates next with a Redis cache on Get, keeping writes and deletes
// coherent by invalidating or refreshing the affected keys.
func Wrap(rdb *redis.Client, next port.ConversationRepository, ttl time.Duration) port.ConversationRepository {
	return &cachedRepo{rdb: rdb, next: next, ttl: ttl}
}

// cacheKey hashes the question so arbitrary user text never becomes part of
// a Redis key.
func cacheKey(documentHash, question string) string {
	q := sha256.Sum256([]byte(question))
	return keyPrefix + documentHash + ":" + hex.EncodeToString(q[:])
}

func (r *cachedRepo) Get(ctx context.Context, documentHash, question string) (*domain.Conversation, error) {
	key := cacheKey(documentHash, question)
	raw, err := r.rdb.Get(ctx, key).Result()
	if err == nil {
		var conv domain.Conversation
		if jsonErr := json.Unmarshal([]byte(raw), &conv); jsonErr == nil {
			return &conv, nil
		}
		// Unreadable entry: drop it and fall through.
		r.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("redis get failed for %s: %v", key, err)
	}

	conv, err := r.next.Get(ctx, documentHash, question)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, conv)
	return conv, nil
}

func (r *cachedRepo) Put(ctx context.Context, conv *domain.Conversation) error {
	if err := r.next.Put(ctx, conv); err != nil {
		return err
	}
	r.store(ctx, cacheKey(conv.DocumentHash, conv.Question), conv)
	return nil
}

func (r *cachedRepo) List(ctx context.Context, documentHash string) ([]domain.Conversation, error) {
	return r.next.List(ctx, documentHash)
}

func (r *cachedRepo) Delete(ctx context.Context, documentHash, question string) error {
	if err := r.next.Delete(ctx, documentHash, question); err != nil {
		return err
	}
	if err := r.rdb.Del(ctx, cacheKey(documentHash, question)).Err(); err != nil {
		log.Printf("redis del failed: %v", err)
	}
	return nil
}

func (r *cachedRepo) DeleteAll(ctx context.Context, documentHash string) (int64, error) {
	n, err := r.next.DeleteAll(ctx, documentHash)
	if err != nil {
		return 0, err
	}
	if ferr := r.flushDocument(ctx, documentHash); ferr != nil {
		log.Printf("redis flush failed for document %s: %v", documentHash, ferr)
	}
	return n, nil
}

func (r *cachedRepo) store(ctx context.Context, key string, conv *domain.Conversation) {
	raw, err := json.Marshal(conv)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		log.Printf("redis set failed for %s: %v", key, err)
	}
}

// flushDocument scans for every cached answer of a document and deletes it.
func (r *cachedRepo) flushDocument(ctx context.Context, documentHash string) error {
	pattern := keyPrefix + documentHash + ":*"
	iter := r.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := r.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("deleting key %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}
