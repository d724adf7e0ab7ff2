package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/conduit-lang/irsearch/internal/ierrors"
	"github.com/conduit-lang/irsearch/internal/index"
)

// RedisStore persists the index blob under a Redis key, for embedders
// that want one prebuilt index shared across several processes
// instead of a local file each has to rebuild or copy.
type RedisStore struct {
	Client  *redis.Client
	Prefix  string
	TTL     time.Duration
	Timeout time.Duration
}

// NewRedisStore builds a RedisStore against client. Keys are written
// as prefix+key; ttl of 0 means "no expiry".
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, Prefix: prefix, TTL: ttl, Timeout: 10 * time.Second}
}

func (r *RedisStore) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.Timeout)
}

func (r *RedisStore) Load(key string) (*index.Index, bool, error) {
	ctx, cancel := r.ctx()
	defer cancel()

	data, err := r.Client.Get(ctx, r.Prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, ierrors.CacheIOError("redis GET", err)
	}
	idx, err := decodeFromBytes(data)
	if err != nil {
		return nil, false, err
	}
	return idx, true, nil
}

func (r *RedisStore) Save(key string, idx *index.Index) error {
	data, err := encodeToBytes(idx)
	if err != nil {
		return ierrors.CacheIOError("encode index", err)
	}
	ctx, cancel := r.ctx()
	defer cancel()
	if err := r.Client.Set(ctx, r.Prefix+key, data, r.TTL).Err(); err != nil {
		return ierrors.CacheIOError("redis SET", err)
	}
	return nil
}
