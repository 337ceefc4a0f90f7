package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/linkstash/internal/mapping"
)

const mappingPrefix = "mapping:"

func mappingKey(code mapping.Code) string {
	return mappingPrefix + string(code)
}

func ownerKey(ownerID string) string {
	return "owner:" + ownerID + ":codes"
}

// RedisStore is the Redis implementation of mapping.Store. Records live
// under mapping:<code> as JSON with a per-key TTL; each owner's codes are
// kept in a set under owner:<ownerId>:codes. Multi-key writes go through
// a transactional pipeline so the record and its index entry move together.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed mapping store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Exists(ctx context.Context, code mapping.Code) (bool, error) {
	n, err := r.client.Exists(ctx, mappingKey(code)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (r *RedisStore) Get(ctx context.Context, code mapping.Code) (*mapping.Mapping, error) {
	payload, err := r.client.Get(ctx, mappingKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, mapping.ErrNotFound
		}

		return nil, err
	}

	var m mapping.Mapping
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *RedisStore) Put(ctx context.Context, m *mapping.Mapping, ttl time.Duration) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, mappingKey(m.ShortCode), payload, ttl)
	pipe.SAdd(ctx, ownerKey(m.OwnerID), string(m.ShortCode))
	_, err = pipe.Exec(ctx)

	return err
}

func (r *RedisStore) SetWithTTL(ctx context.Context, m *mapping.Mapping, ttl time.Duration) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, mappingKey(m.ShortCode), payload, ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, code mapping.Code) error {
	return r.client.Del(ctx, mappingKey(code)).Err()
}

func (r *RedisStore) Remove(ctx context.Context, code mapping.Code, ownerID string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, mappingKey(code))
	pipe.SRem(ctx, ownerKey(ownerID), string(code))
	_, err := pipe.Exec(ctx)

	return err
}

func (r *RedisStore) IndexAdd(ctx context.Context, ownerID string, code mapping.Code) error {
	return r.client.SAdd(ctx, ownerKey(ownerID), string(code)).Err()
}

func (r *RedisStore) IndexRemove(ctx context.Context, ownerID string, code mapping.Code) error {
	return r.client.SRem(ctx, ownerKey(ownerID), string(code)).Err()
}

func (r *RedisStore) IndexMembers(ctx context.Context, ownerID string) ([]mapping.Code, error) {
	members, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, err
	}

	codes := make([]mapping.Code, len(members))
	for i, member := range members {
		codes[i] = mapping.Code(member)
	}

	return codes, nil
}

// Shutdown closes the underlying Redis client. Invoked by the injector
// when the process entry point shuts the container down.
func (r *RedisStore) Shutdown() error {
	return r.client.Close()
}

// Compile-time check.
var _ mapping.Store = (*RedisStore)(nil)
