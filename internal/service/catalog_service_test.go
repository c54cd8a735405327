// internal/service/catalog_service_test.go
package service

import (
	"context"
	"testing"

	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Cache(t *testing.T) {
	ctx := context.Background()
	program := &model.Program{ProgramID: "beginner", Name: "Beginner Strength", Weeks: []string{"week1"}}

	t.Run("正常系: 2回目の読み取りはキャッシュから返る", func(t *testing.T) {
		repo := new(mocks.CatalogRepository)
		repo.On("FindProgram", ctx, "beginner").Return(program, nil).Once()

		svc := NewCatalogService(repo, 60)

		got, err := svc.GetProgram(ctx, "beginner")
		require.NoError(t, err)
		assert.Equal(t, "Beginner Strength", got.Name)

		// リポジトリは1回しか呼ばれない
		got, err = svc.GetProgram(ctx, "beginner")
		require.NoError(t, err)
		assert.Equal(t, []string{"week1"}, got.Weeks)
		repo.AssertExpectations(t)
	})

	t.Run("正常系: NotFound はキャッシュされない", func(t *testing.T) {
		repo := new(mocks.CatalogRepository)
		repo.On("FindProgram", ctx, "new-program").Return(nil, model.ErrNotFound).Once()
		repo.On("FindProgram", ctx, "new-program").Return(program, nil).Once()

		svc := NewCatalogService(repo, 60)

		_, err := svc.GetProgram(ctx, "new-program")
		assert.ErrorIs(t, err, model.ErrNotFound)

		// カタログ追加後の読み取りはすぐ新しい値が見える
		got, err := svc.GetProgram(ctx, "new-program")
		require.NoError(t, err)
		assert.Equal(t, "Beginner Strength", got.Name)
	})

	t.Run("正常系: 一覧もキャッシュされる", func(t *testing.T) {
		repo := new(mocks.CatalogRepository)
		repo.On("ListPrograms", ctx).Return([]*model.Program{program}, nil).Once()

		svc := NewCatalogService(repo, 60)

		programs, err := svc.ListPrograms(ctx)
		require.NoError(t, err)
		require.Len(t, programs, 1)

		programs, err = svc.ListPrograms(ctx)
		require.NoError(t, err)
		require.Len(t, programs, 1)
		assert.Equal(t, "beginner", programs[0].ProgramID)
		repo.AssertExpectations(t)
	})
}
