package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/tridenda/talentlytica/internal/config"
	"github.com/tridenda/talentlytica/internal/grading"
	"github.com/tridenda/talentlytica/internal/model"
)

type redisFormRepository struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

// NewRedisFormRepository stores each form as a marker key plus a hash of
// cells (field GradeKey.String(), value the numeral or "" for unset). Both
// keys expire after ttl without activity.
func NewRedisFormRepository(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) FormRepository {
	return &redisFormRepository{
		rdb: rdb,
		ttl: ttl,
		log: log.With().Str("component", "redis_form_repository").Logger(),
	}
}

func (r *redisFormRepository) Create(ctx context.Context, formID string) error {
	err := r.rdb.Set(ctx, config.CacheKey.FormKey(formID), time.Now().UTC().Format(time.RFC3339), r.ttl).Err()
	if err != nil {
		return fmt.Errorf("create form: %w", err)
	}
	return nil
}

func (r *redisFormRepository) Exists(ctx context.Context, formID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, config.CacheKey.FormKey(formID)).Result()
	if err != nil {
		return false, fmt.Errorf("check form: %w", err)
	}
	return n > 0, nil
}

func (r *redisFormRepository) SetGrade(ctx context.Context, formID string, key model.GradeKey, grade model.Grade) error {
	if err := r.requireForm(ctx, formID); err != nil {
		return err
	}

	gradesKey := config.CacheKey.FormGradesKey(formID)
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, gradesKey, key.String(), grade.String())
	pipe.Expire(ctx, gradesKey, r.ttl)
	pipe.Expire(ctx, config.CacheKey.FormKey(formID), r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set grade: %w", err)
	}
	return nil
}

func (r *redisFormRepository) Load(ctx context.Context, formID string) (*grading.Store, error) {
	if err := r.requireForm(ctx, formID); err != nil {
		return nil, err
	}

	fields, err := r.rdb.HGetAll(ctx, config.CacheKey.FormGradesKey(formID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load grades: %w", err)
	}

	store := grading.NewStore()
	for field, raw := range fields {
		key, err := model.ParseGradeKey(field)
		if err != nil {
			r.log.Warn().Err(err).Str("form_id", formID).Msg("Skipping malformed grade field")
			continue
		}
		store.Put(key, grading.ParseGrade(raw))
	}

	pipe := r.rdb.Pipeline()
	pipe.Expire(ctx, config.CacheKey.FormKey(formID), r.ttl)
	pipe.Expire(ctx, config.CacheKey.FormGradesKey(formID), r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		r.log.Warn().Err(err).Str("form_id", formID).Msg("Failed to refresh form TTL")
	}
	return store, nil
}

func (r *redisFormRepository) Delete(ctx context.Context, formID string) error {
	n, err := r.rdb.Del(ctx, config.CacheKey.FormKey(formID), config.CacheKey.FormGradesKey(formID)).Result()
	if err != nil {
		return fmt.Errorf("delete form: %w", err)
	}
	if n == 0 {
		return ErrFormNotFound
	}
	return nil
}

func (r *redisFormRepository) requireForm(ctx context.Context, formID string) error {
	ok, err := r.Exists(ctx, formID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFormNotFound
	}
	return nil
}
