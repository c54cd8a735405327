// internal/service/catalog_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go_5_fit_keep/internal/middleware"
	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/repository"

	"github.com/coocood/freecache"
)

type CatalogService interface {
	ListPrograms(ctx context.Context) ([]*model.Program, error)
	GetProgram(ctx context.Context, programID string) (*model.Program, error)
	GetWeek(ctx context.Context, programID, weekID string) (*model.Week, error)
	GetDay(ctx context.Context, programID, weekID, dayID string) (*model.Day, error)
	ListFoods(ctx context.Context) ([]*model.Food, error)
	GetFood(ctx context.Context, foodID string) (*model.Food, error)
}

// catalogService はカタログ読み取りの前段にインメモリキャッシュを挟みます。
// カタログは管理ツール側でしか変わらないため、TTL失効だけで十分
type catalogService struct {
	repo       repository.CatalogRepository
	cache      *freecache.Cache
	ttlSeconds int
}

const catalogCacheSizeBytes = 8 * 1024 * 1024

func NewCatalogService(repo repository.CatalogRepository, ttlSeconds int) CatalogService {
	return &catalogService{
		repo:       repo,
		cache:      freecache.NewCache(catalogCacheSizeBytes),
		ttlSeconds: ttlSeconds,
	}
}

func (s *catalogService) ListPrograms(ctx context.Context) ([]*model.Program, error) {
	var programs []*model.Program
	err := s.cached(ctx, "programs", &programs, func() (any, error) {
		return s.repo.ListPrograms(ctx)
	})
	return programs, err
}

func (s *catalogService) GetProgram(ctx context.Context, programID string) (*model.Program, error) {
	var program *model.Program
	err := s.cached(ctx, "program:"+programID, &program, func() (any, error) {
		return s.repo.FindProgram(ctx, programID)
	})
	return program, err
}

func (s *catalogService) GetWeek(ctx context.Context, programID, weekID string) (*model.Week, error) {
	var week *model.Week
	err := s.cached(ctx, fmt.Sprintf("week:%s:%s", programID, weekID), &week, func() (any, error) {
		return s.repo.FindWeek(ctx, programID, weekID)
	})
	return week, err
}

func (s *catalogService) GetDay(ctx context.Context, programID, weekID, dayID string) (*model.Day, error) {
	var day *model.Day
	err := s.cached(ctx, fmt.Sprintf("day:%s:%s:%s", programID, weekID, dayID), &day, func() (any, error) {
		return s.repo.FindDay(ctx, programID, weekID, dayID)
	})
	return day, err
}

func (s *catalogService) ListFoods(ctx context.Context) ([]*model.Food, error) {
	var foods []*model.Food
	err := s.cached(ctx, "foods", &foods, func() (any, error) {
		return s.repo.ListFoods(ctx)
	})
	return foods, err
}

func (s *catalogService) GetFood(ctx context.Context, foodID string) (*model.Food, error) {
	var food *model.Food
	err := s.cached(ctx, "food:"+foodID, &food, func() (any, error) {
		return s.repo.FindFood(ctx, foodID)
	})
	return food, err
}

// cached はキャッシュヒットなら dst にデコードし、ミスなら load の結果を格納します。
// NotFound はキャッシュしない（カタログ追加が即座に見えるようにする）
func (s *catalogService) cached(ctx context.Context, key string, dst any, load func() (any, error)) error {
	logger := middleware.GetLogger(ctx)

	if raw, err := s.cache.Get([]byte(key)); err == nil {
		if err := json.Unmarshal(raw, dst); err == nil {
			return nil
		}
		// デコードできないエントリは捨ててロードし直す
		s.cache.Del([]byte(key))
	}

	value, err := load()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("catalogService.cached: marshal %s: %w", key, err)
	}
	if err := s.cache.Set([]byte(key), raw, s.ttlSeconds); err != nil {
		// キャッシュ格納失敗は致命ではない
		logger.Debug("Failed to cache catalog entry", "key", key, "error", err)
	}
	return json.Unmarshal(raw, dst)
}
