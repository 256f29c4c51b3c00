package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"soko/internal/models"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// SEO analysis caching. Analyses are cheap to recompute, so the TTL is
// short and invalidation on listing update is best-effort.
const analysisTTL = 10 * time.Minute

func (s *CacheService) GetAnalysis(ctx context.Context, listingID uuid.UUID) (*models.SEOAnalysis, error) {
	var analysis models.SEOAnalysis
	found, err := s.Get(ctx, s.GenerateKey("seo", "listing", listingID), &analysis)
	if err != nil || !found {
		return nil, err
	}
	return &analysis, nil
}

func (s *CacheService) SetAnalysis(ctx context.Context, listingID uuid.UUID, analysis *models.SEOAnalysis) error {
	return s.SetWithTTL(ctx, s.GenerateKey("seo", "listing", listingID), analysis, analysisTTL)
}

func (s *CacheService) InvalidateAnalysis(ctx context.Context, listingID uuid.UUID) error {
	return s.Delete(ctx, s.GenerateKey("seo", "listing", listingID))
}

// FlushAll flushes all keys from the cache
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
