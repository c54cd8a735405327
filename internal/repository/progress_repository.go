//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
// internal/repository/progress_repository.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go_5_fit_keep/internal/middleware"
	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/store"

	"github.com/google/uuid"
)

// ProgressRepository は進捗レコードの同期アダプタです。
// ドキュメントの生フィールドはここで型付きレコードに検証・変換してからコアへ渡す
type ProgressRepository interface {
	// Find はレコードを取得します。existed=false はストアに未作成であることを示す
	// （その場合は空レコードを返す）
	Find(ctx context.Context, userID uuid.UUID, key model.ProgressKey) (rec *model.ProgressRecord, existed bool, err error)
	// Mutate はキー単位の排他区間内で read-modify-write を実行します。
	// fn がエラーを返した場合は書き込みを行わずそのまま返す
	Mutate(ctx context.Context, userID uuid.UUID, key model.ProgressKey, fn func(rec *model.ProgressRecord, existed bool) error) (*model.ProgressRecord, error)
}

type documentProgressRepository struct {
	docs store.DocumentStore

	// read-modify-write はストア呼び出しを跨ぐため、リポジトリ側でもキー単位に直列化する
	keyLocks sync.Map // map[string]*sync.Mutex
}

func NewDocumentProgressRepository(docs store.DocumentStore) ProgressRepository {
	return &documentProgressRepository{docs: docs}
}

func (r *documentProgressRepository) keyLock(path string) *sync.Mutex {
	v, _ := r.keyLocks.LoadOrStore(path, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func (r *documentProgressRepository) Find(ctx context.Context, userID uuid.UUID, key model.ProgressKey) (*model.ProgressRecord, bool, error) {
	logger := middleware.GetLogger(ctx)
	path := store.ProgressPath(userID.String(), key.DocumentID())

	doc, err := r.docs.Get(ctx, path)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewProgressRecord(), false, nil
		}
		return nil, false, err
	}

	rec, err := decodeProgressRecord(doc.Fields)
	if err != nil {
		logger.Error("Malformed progress document in store",
			"path", path,
			"error", err,
		)
		return nil, false, fmt.Errorf("documentProgressRepository.Find: %w", err)
	}
	return rec, true, nil
}

func (r *documentProgressRepository) Mutate(ctx context.Context, userID uuid.UUID, key model.ProgressKey, fn func(rec *model.ProgressRecord, existed bool) error) (*model.ProgressRecord, error) {
	path := store.ProgressPath(userID.String(), key.DocumentID())
	lock := r.keyLock(path)
	lock.Lock()
	defer lock.Unlock()

	rec, existed, err := r.Find(ctx, userID, key)
	if err != nil {
		return nil, err
	}

	if err := fn(rec, existed); err != nil {
		return nil, err
	}

	fields := encodeProgressRecord(rec)
	if existed {
		// 既存レコードはフィールド単位の更新（並行する他フィールドの書き込みを潰さない）
		err = r.docs.Update(ctx, path, fields)
	} else {
		err = r.docs.Set(ctx, path, fields, true)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// encodeProgressRecord はレコードをドキュメントフィールドへ変換します
func encodeProgressRecord(rec *model.ProgressRecord) map[string]any {
	notes := make([]any, 0, len(rec.Notes))
	for _, n := range rec.Notes {
		notes = append(notes, map[string]any{
			"text":       n.Text,
			"created_at": n.CreatedAt,
		})
	}
	exercises := make(map[string]any, len(rec.Exercises))
	for id, done := range rec.Exercises {
		exercises[id] = done
	}
	return map[string]any{
		"exercises":    exercises,
		"notes":        notes,
		"completed":    rec.Completed,
		"updated_date": rec.UpdatedDate,
	}
}

// decodeProgressRecord は生フィールドを検証しつつ型付きレコードへ変換します。
// JSONラウンドトリップで型不一致を検出する
func decodeProgressRecord(fields store.JSONMap) (*model.ProgressRecord, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal fields: %w", err)
	}
	var rec model.ProgressRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode progress record: %w", err)
	}
	if rec.Exercises == nil {
		rec.Exercises = make(map[string]bool)
	}
	if rec.Notes == nil {
		rec.Notes = []model.ProgressNote{}
	}
	return &rec, nil
}
