package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/tutorlane/tutorlane-backend/internal/apperror"
	"github.com/tutorlane/tutorlane-backend/internal/config"
	"github.com/tutorlane/tutorlane-backend/internal/model"
	"github.com/tutorlane/tutorlane-backend/internal/repository"
	"github.com/tutorlane/tutorlane-backend/internal/schedule"
)

// ClassService handles class business logic and the Redis list cache.
type ClassService struct {
	classRepo repository.ClassRepository
	rdb       *redis.Client // nil disables caching
	cacheTTL  time.Duration
	log       zerolog.Logger
}

// NewClassService creates a new ClassService.
func NewClassService(classRepo repository.ClassRepository, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *ClassService {
	return &ClassService{
		classRepo: classRepo,
		rdb:       rdb,
		cacheTTL:  cacheTTL,
		log:       log.With().Str("component", "class_service").Logger(),
	}
}

// Create inserts a new class and drops any cached class lists.
func (s *ClassService) Create(ctx context.Context, class *model.Class) error {
	if class.Name == "" {
		return apperror.Validation("Class name is required")
	}
	if class.TimeStart != nil && class.TimeEnd != nil &&
		!schedule.StartsBeforeEnd(*class.TimeStart, *class.TimeEnd) {
		return apperror.Validation("time_start must be before time_end")
	}

	if err := s.classRepo.Create(ctx, class); err != nil {
		return apperror.Storage("create class", err)
	}

	s.invalidateListCache(ctx)
	return nil
}

// List retrieves all classes, optionally filtered by day of week,
// reading through the Redis cache when one is configured.
func (s *ClassService) List(ctx context.Context, day *model.DayOfWeek) ([]model.Class, error) {
	key, cacheable := listCacheKey(day)

	if s.rdb != nil && cacheable {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var classes []model.Class
			if err := json.Unmarshal(raw, &classes); err == nil {
				return classes, nil
			}
		}
	}

	classes, err := s.classRepo.List(ctx, day)
	if err != nil {
		return nil, apperror.Storage("list classes", err)
	}
	if classes == nil {
		classes = []model.Class{}
	}

	if s.rdb != nil && cacheable {
		if payload, err := json.Marshal(classes); err == nil {
			if err := s.rdb.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Str("key", key).Msg("Class list cache write failed")
			}
		}
	}

	return classes, nil
}

// listCacheKey returns the cache key for a class list query. Only the
// canonical day labels map to keys; any other filter value is not
// cacheable, so callers cannot mint arbitrary keys through the query
// string.
func listCacheKey(day *model.DayOfWeek) (string, bool) {
	if day == nil {
		return config.CacheKey.ClassListKey(), true
	}
	if day.Valid() {
		return config.CacheKey.ClassListByDayKey(string(*day)), true
	}
	return "", false
}

// invalidateListCache drops every cached class list variant so a create
// is visible to the next read.
func (s *ClassService) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	keys := []string{config.CacheKey.ClassListKey()}
	for _, d := range model.Days {
		keys = append(keys, config.CacheKey.ClassListByDayKey(string(d)))
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Class list cache invalidation failed")
	}
}
