// internal/store/gorm_store.go
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go_5_fit_keep/internal/middleware"
	"go_5_fit_keep/internal/model"

	"gorm.io/gorm"
)

// gormDocumentStore は documents テーブルを使った DocumentStore 実装。
// 同一パスの read-modify-write はパス単位のミューテックスで直列化する（§並行性要件）
type gormDocumentStore struct {
	db  *gorm.DB
	hub *Hub

	// パスごとのロック。エントリは解放しない（パス数はユーザー×日数程度で有限）
	locks sync.Map // map[string]*sync.Mutex

	retryAttempts int
	retryBase     time.Duration
}

func NewGormDocumentStore(db *gorm.DB, hub *Hub, retryAttempts int, retryBase time.Duration) DocumentStore {
	if retryAttempts <= 0 {
		retryAttempts = 3
	}
	if retryBase <= 0 {
		retryBase = 50 * time.Millisecond
	}
	return &gormDocumentStore{
		db:            db,
		hub:           hub,
		retryAttempts: retryAttempts,
		retryBase:     retryBase,
	}
}

func (s *gormDocumentStore) pathLock(path string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(path, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// withRetry は一時的な失敗に対して指数バックオフ付きで再試行します。
// リトライ予算を使い切ったら model.ErrRemoteUnavailable でラップして返す
func (s *gormDocumentStore) withRetry(ctx context.Context, op string, fn func() error) error {
	logger := middleware.GetLogger(ctx)
	var lastErr error
	delay := s.retryBase
	for attempt := 1; attempt <= s.retryAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		// NotFound は再試行しても意味がないのでそのまま返す
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		lastErr = err
		if attempt == s.retryAttempts {
			break
		}
		logger.Warn("Document store operation failed, retrying",
			"op", op, "attempt", attempt, "delay_ms", delay.Milliseconds(), "error", err)
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", model.ErrRemoteUnavailable, ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}
	logger.Error("Document store operation failed after retries", "op", op, "error", lastErr)
	return fmt.Errorf("%w: %v", model.ErrRemoteUnavailable, lastErr)
}

func (s *gormDocumentStore) Get(ctx context.Context, path string) (*Document, error) {
	var doc Document
	err := s.withRetry(ctx, "get", func() error {
		result := s.db.WithContext(ctx).Where("path = ?", path).First(&doc)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return model.ErrNotFound
			}
			return result.Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *gormDocumentStore) Set(ctx context.Context, path string, fields map[string]any, merge bool) error {
	lock := s.pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	var written JSONMap
	err := s.withRetry(ctx, "set", func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing Document
			result := tx.Where("path = ?", path).First(&existing)
			switch {
			case result.Error == nil:
				next := existing.Fields
				if !merge {
					next = JSONMap{}
				}
				if next == nil {
					next = JSONMap{}
				}
				for k, v := range fields {
					next[k] = v
				}
				if err := tx.Model(&Document{}).Where("path = ?", path).
					Updates(map[string]any{"fields": next, "updated_at": time.Now()}).Error; err != nil {
					return err
				}
				written = next
				return nil
			case errors.Is(result.Error, gorm.ErrRecordNotFound):
				doc := Document{Path: path, Fields: JSONMap(fields)}
				if err := tx.Create(&doc).Error; err != nil {
					return err
				}
				written = doc.Fields
				return nil
			default:
				return result.Error
			}
		})
	})
	if err != nil {
		return err
	}
	s.hub.Publish(Event{Path: path, Fields: written})
	return nil
}

func (s *gormDocumentStore) Update(ctx context.Context, path string, fields map[string]any) error {
	lock := s.pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	var written JSONMap
	err := s.withRetry(ctx, "update", func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing Document
			result := tx.Where("path = ?", path).First(&existing)
			if result.Error != nil {
				if errors.Is(result.Error, gorm.ErrRecordNotFound) {
					return model.ErrNotFound
				}
				return result.Error
			}
			next := existing.Fields
			if next == nil {
				next = JSONMap{}
			}
			for k, v := range fields {
				next[k] = v
			}
			if err := tx.Model(&Document{}).Where("path = ?", path).
				Updates(map[string]any{"fields": next, "updated_at": time.Now()}).Error; err != nil {
				return err
			}
			written = next
			return nil
		})
	})
	if err != nil {
		return err
	}
	s.hub.Publish(Event{Path: path, Fields: written})
	return nil
}

func (s *gormDocumentStore) Delete(ctx context.Context, path string) error {
	lock := s.pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	err := s.withRetry(ctx, "delete", func() error {
		return s.db.WithContext(ctx).Where("path = ?", path).Delete(&Document{}).Error
	})
	if err != nil {
		return err
	}
	s.hub.Publish(Event{Path: path, Deleted: true})
	return nil
}

func (s *gormDocumentStore) List(ctx context.Context, prefix string) ([]*Document, error) {
	var docs []*Document
	err := s.withRetry(ctx, "list", func() error {
		return s.db.WithContext(ctx).
			Where("path LIKE ?", prefix+"%").
			Order("path ASC").
			Find(&docs).Error
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *gormDocumentStore) Subscribe(prefix string) *Subscription {
	return s.hub.Subscribe(prefix)
}
