package store

import (
	"context"
	"encoding/json"
	"errors"

	redis "github.com/redis/go-redis/v9"

	"TaskFilterService/models"
)

// DefaultRedisKey is the key holding the preference document.
const DefaultRedisKey = "taskfilter:preferences"

// RedisStore keeps the whole document as one JSON string under a single key.
type RedisStore struct {
	base
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string, opts ...Option) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{base: newBase("redis", opts), client: client, key: key}
}

func (s *RedisStore) Close() error { return s.client.Close() }

func (s *RedisStore) Init(ctx context.Context) error {
	if err := s.ensure(ctx); err != nil {
		return s.writeFailed("initialize preferences", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) models.PreferenceDocument {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		if err := s.ensure(ctx); err != nil {
			return s.fallback(err)
		}
		return models.EmptyDocument()
	}
	if err != nil {
		return s.fallback(err)
	}
	var doc models.PreferenceDocument
	if err := models.Decode(data, &doc); err != nil {
		return s.fallback(err)
	}
	return doc.Normalize()
}

func (s *RedisStore) Save(ctx context.Context, entry models.Preference) error {
	doc := models.PreferenceDocument{SavedPreferences: []models.Preference{s.stamp(entry)}}
	if err := s.set(ctx, doc); err != nil {
		return s.writeFailed("save preferences", err)
	}
	s.wrote("save preferences", doc)
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	doc := models.EmptyDocument()
	if err := s.set(ctx, doc); err != nil {
		return s.writeFailed("clear preferences", err)
	}
	s.wrote("clear preferences", doc)
	return nil
}

// ensure writes the empty document unless the key already exists.
func (s *RedisStore) ensure(ctx context.Context) error {
	data, err := json.Marshal(models.EmptyDocument())
	if err != nil {
		return err
	}
	return s.client.SetNX(ctx, s.key, data, 0).Err()
}

func (s *RedisStore) set(ctx context.Context, doc models.PreferenceDocument) error {
	data, err := json.Marshal(doc.Normalize())
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}
