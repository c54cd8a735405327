// internal/repository/progress_repository_test.go
package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqliteで裏打ちした実ストアを使う（ドキュメント変換まで通しで検証するため）
func setupTestDocs(t *testing.T) store.DocumentStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory sqlite")
	require.NoError(t, db.AutoMigrate(&store.Document{}))
	return store.NewGormDocumentStore(db, store.NewHub(), 3, time.Millisecond)
}

func TestDocumentProgressRepository_Find(t *testing.T) {
	ctx := context.Background()
	docs := setupTestDocs(t)
	repo := NewDocumentProgressRepository(docs)
	userID := uuid.New()
	key := model.ProgressKey{ProgramID: "beginner", WeekID: "week1", DayID: "monday"}

	t.Run("正常系: 未作成キーは existed=false で空レコード", func(t *testing.T) {
		rec, existed, err := repo.Find(ctx, userID, key)
		require.NoError(t, err)
		assert.False(t, existed)
		require.NotNil(t, rec)
		assert.Empty(t, rec.Exercises)
		assert.Empty(t, rec.Notes)
		assert.False(t, rec.Completed)
		assert.Equal(t, model.DayUnstarted, rec.State(existed))
	})

	t.Run("正常系: 保存済みレコードを復元できる", func(t *testing.T) {
		path := store.ProgressPath(userID.String(), key.DocumentID())
		err := docs.Set(ctx, path, map[string]any{
			"exercises":    map[string]any{"squat": true, "bench": false},
			"notes":        []any{map[string]any{"text": "felt strong", "created_at": time.Now().UTC().Format(time.RFC3339)}},
			"completed":    false,
			"updated_date": "2026-08-30",
		}, false)
		require.NoError(t, err)

		rec, existed, err := repo.Find(ctx, userID, key)
		require.NoError(t, err)
		assert.True(t, existed)
		assert.True(t, rec.Exercises["squat"])
		assert.False(t, rec.Exercises["bench"])
		require.Len(t, rec.Notes, 1)
		assert.Equal(t, "felt strong", rec.Notes[0].Text)
		assert.Equal(t, "2026-08-30", rec.UpdatedDate)
		assert.Equal(t, model.DayInProgress, rec.State(existed))
	})

	t.Run("異常系: フィールドの型が壊れていたらエラー", func(t *testing.T) {
		badKey := model.ProgressKey{ProgramID: "beginner", WeekID: "week1", DayID: "tuesday"}
		path := store.ProgressPath(userID.String(), badKey.DocumentID())
		require.NoError(t, docs.Set(ctx, path, map[string]any{"exercises": "not-a-map"}, false))

		_, _, err := repo.Find(ctx, userID, badKey)
		assert.Error(t, err)
	})
}

func TestDocumentProgressRepository_Mutate(t *testing.T) {
	ctx := context.Background()
	docs := setupTestDocs(t)
	repo := NewDocumentProgressRepository(docs)
	userID := uuid.New()
	key := model.ProgressKey{ProgramID: "beginner", WeekID: "week1", DayID: "wednesday"}

	t.Run("正常系: 未作成キーへの書き込みでレコードが作られる", func(t *testing.T) {
		rec, err := repo.Mutate(ctx, userID, key, func(rec *model.ProgressRecord, existed bool) error {
			assert.False(t, existed)
			rec.Exercises["squat"] = true
			rec.UpdatedDate = "2026-08-30"
			return nil
		})
		require.NoError(t, err)
		assert.True(t, rec.Exercises["squat"])

		got, existed, err := repo.Find(ctx, userID, key)
		require.NoError(t, err)
		assert.True(t, existed)
		assert.True(t, got.Exercises["squat"])
		assert.Equal(t, "2026-08-30", got.UpdatedDate)
	})

	t.Run("正常系: 2回目の Mutate は existed=true で呼ばれ、前回の状態を引き継ぐ", func(t *testing.T) {
		rec, err := repo.Mutate(ctx, userID, key, func(rec *model.ProgressRecord, existed bool) error {
			assert.True(t, existed)
			assert.True(t, rec.Exercises["squat"])
			rec.Exercises["bench"] = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, rec.Exercises["squat"])
		assert.True(t, rec.Exercises["bench"])
	})

	t.Run("異常系: fn がエラーを返したら書き込まない", func(t *testing.T) {
		sentinel := errors.New("rejected")
		_, err := repo.Mutate(ctx, userID, key, func(rec *model.ProgressRecord, existed bool) error {
			rec.Exercises["deadlift"] = true
			return sentinel
		})
		assert.ErrorIs(t, err, sentinel)

		got, _, err := repo.Find(ctx, userID, key)
		require.NoError(t, err)
		_, ok := got.Exercises["deadlift"]
		assert.False(t, ok, "rejected mutation must not be persisted")
	})

	t.Run("正常系: 並行 Mutate でトグルが失われない", func(t *testing.T) {
		concKey := model.ProgressKey{ProgramID: "beginner", WeekID: "week2", DayID: "monday"}
		const n = 20
		done := make(chan error, n)
		for i := 0; i < n; i++ {
			id := string(rune('a' + i))
			go func(exerciseID string) {
				_, err := repo.Mutate(ctx, userID, concKey, func(rec *model.ProgressRecord, existed bool) error {
					rec.Exercises[exerciseID] = true
					return nil
				})
				done <- err
			}(id)
		}
		for i := 0; i < n; i++ {
			require.NoError(t, <-done)
		}

		got, existed, err := repo.Find(ctx, userID, concKey)
		require.NoError(t, err)
		assert.True(t, existed)
		assert.Len(t, got.Exercises, n, "every concurrent toggle must survive")
	})
}
