// internal/repository/catalog_repository_test.go
package repository

import (
	"context"
	"testing"

	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// テスト用の最小カタログを投入する
func seedCatalog(t *testing.T, docs store.DocumentStore) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, docs.Set(ctx, store.ProgramPath("beginner"), map[string]any{
		"name":        "Beginner Strength",
		"description": "3 day full body",
		"weeks":       []any{"week1", "week2"},
	}, false))
	require.NoError(t, docs.Set(ctx, store.WeekPath("beginner", "week1"), map[string]any{
		"days": []any{"monday", "wednesday", "friday"},
	}, false))
	require.NoError(t, docs.Set(ctx, store.DayPath("beginner", "week1", "monday"), map[string]any{}, false))
	require.NoError(t, docs.Set(ctx, store.ExercisePath("beginner", "week1", "monday", "squat"), map[string]any{
		"name":        "Back Squat",
		"target_sets": 3,
		"target_reps": "8-12",
		"order":       2,
	}, false))
	require.NoError(t, docs.Set(ctx, store.ExercisePath("beginner", "week1", "monday", "bench"), map[string]any{
		"name":        "Bench Press",
		"target_sets": 3,
		"target_reps": "5",
		"order":       1,
	}, false))

	require.NoError(t, docs.Set(ctx, store.FoodPath("chicken-breast"), map[string]any{
		"name":     "Chicken Breast",
		"unit":     "100g",
		"calories": 165.0,
		"protein":  31.0,
		"carbs":    0.0,
		"fat":      3.6,
	}, false))
}

func TestDocumentCatalogRepository_Programs(t *testing.T) {
	ctx := context.Background()
	docs := setupTestDocs(t)
	seedCatalog(t, docs)
	repo := NewDocumentCatalogRepository(docs)

	t.Run("正常系: ListPrograms はプログラム直下のみ返す", func(t *testing.T) {
		programs, err := repo.ListPrograms(ctx)
		require.NoError(t, err)
		require.Len(t, programs, 1, "week/day sub-documents must be excluded")
		assert.Equal(t, "beginner", programs[0].ProgramID)
		assert.Equal(t, "Beginner Strength", programs[0].Name)
		assert.Equal(t, []string{"week1", "week2"}, programs[0].Weeks)
	})

	t.Run("正常系: FindProgram / FindWeek", func(t *testing.T) {
		p, err := repo.FindProgram(ctx, "beginner")
		require.NoError(t, err)
		assert.Equal(t, "Beginner Strength", p.Name)

		w, err := repo.FindWeek(ctx, "beginner", "week1")
		require.NoError(t, err)
		assert.Equal(t, []string{"monday", "wednesday", "friday"}, w.Days)
	})

	t.Run("異常系: 存在しないプログラムは ErrNotFound", func(t *testing.T) {
		_, err := repo.FindProgram(ctx, "no-such-program")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestDocumentCatalogRepository_FindDay(t *testing.T) {
	ctx := context.Background()
	docs := setupTestDocs(t)
	seedCatalog(t, docs)
	repo := NewDocumentCatalogRepository(docs)

	t.Run("正常系: 種目は order 順で返る", func(t *testing.T) {
		day, err := repo.FindDay(ctx, "beginner", "week1", "monday")
		require.NoError(t, err)
		require.Len(t, day.Exercises, 2)
		assert.Equal(t, "bench", day.Exercises[0].ExerciseID)
		assert.Equal(t, "squat", day.Exercises[1].ExerciseID)
		assert.Equal(t, "8-12", day.Exercises[1].TargetReps)
		assert.True(t, day.HasExercise("squat"))
		assert.False(t, day.HasExercise("deadlift"))
	})

	t.Run("異常系: カタログに無い日は ErrNotFound", func(t *testing.T) {
		_, err := repo.FindDay(ctx, "beginner", "week1", "sunday")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestDocumentCatalogRepository_Foods(t *testing.T) {
	ctx := context.Background()
	docs := setupTestDocs(t)
	seedCatalog(t, docs)
	repo := NewDocumentCatalogRepository(docs)

	t.Run("正常系: FindFood は単位あたりの栄養値を返す", func(t *testing.T) {
		f, err := repo.FindFood(ctx, "chicken-breast")
		require.NoError(t, err)
		assert.Equal(t, "Chicken Breast", f.Name)
		assert.Equal(t, "100g", f.Unit)
		assert.InDelta(t, 165.0, f.Calories, 0.001)
		assert.InDelta(t, 31.0, f.Protein, 0.001)
	})

	t.Run("正常系: ListFoods は壊れたドキュメントをスキップする", func(t *testing.T) {
		require.NoError(t, docs.Set(ctx, store.FoodPath("broken"), map[string]any{
			"calories": "not-a-number",
		}, false))

		foods, err := repo.ListFoods(ctx)
		require.NoError(t, err)
		require.Len(t, foods, 1)
		assert.Equal(t, "chicken-breast", foods[0].FoodID)
	})
}
