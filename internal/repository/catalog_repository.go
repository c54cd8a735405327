//go:generate mockery --name CatalogRepository --output ./mocks --outpkg mocks --case=underscore
// internal/repository/catalog_repository.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go_5_fit_keep/internal/middleware"
	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/store"
)

// CatalogRepository はワークアウトカタログとフードカタログの読み取り専用アダプタです。
// カタログの作成・更新は管理ツール側の責務で、このコアからは読むだけ
type CatalogRepository interface {
	ListPrograms(ctx context.Context) ([]*model.Program, error)
	FindProgram(ctx context.Context, programID string) (*model.Program, error)
	FindWeek(ctx context.Context, programID, weekID string) (*model.Week, error)
	FindDay(ctx context.Context, programID, weekID, dayID string) (*model.Day, error)
	ListFoods(ctx context.Context) ([]*model.Food, error)
	FindFood(ctx context.Context, foodID string) (*model.Food, error)
}

type documentCatalogRepository struct {
	docs store.DocumentStore
}

func NewDocumentCatalogRepository(docs store.DocumentStore) CatalogRepository {
	return &documentCatalogRepository{docs: docs}
}

func (r *documentCatalogRepository) ListPrograms(ctx context.Context) ([]*model.Program, error) {
	docs, err := r.docs.List(ctx, store.ProgramsPrefix)
	if err != nil {
		return nil, err
	}

	programs := make([]*model.Program, 0)
	for _, doc := range docs {
		rel := strings.TrimPrefix(doc.Path, store.ProgramsPrefix)
		// "workoutTemplates/{id}" 直下のみ（weeks以下のサブドキュメントは除外）
		if strings.Contains(rel, "/") {
			continue
		}
		p, err := decodeProgram(rel, doc.Fields)
		if err != nil {
			middleware.GetLogger(ctx).Warn("Skipping malformed program document", "path", doc.Path, "error", err)
			continue
		}
		programs = append(programs, p)
	}
	return programs, nil
}

func (r *documentCatalogRepository) FindProgram(ctx context.Context, programID string) (*model.Program, error) {
	doc, err := r.docs.Get(ctx, store.ProgramPath(programID))
	if err != nil {
		return nil, err
	}
	return decodeProgram(programID, doc.Fields)
}

func (r *documentCatalogRepository) FindWeek(ctx context.Context, programID, weekID string) (*model.Week, error) {
	doc, err := r.docs.Get(ctx, store.WeekPath(programID, weekID))
	if err != nil {
		return nil, err
	}
	week := &model.Week{WeekID: weekID, ProgramID: programID}
	if err := decodeField(doc.Fields, "days", &week.Days); err != nil {
		return nil, fmt.Errorf("decode week %s: %w", weekID, err)
	}
	return week, nil
}

func (r *documentCatalogRepository) FindDay(ctx context.Context, programID, weekID, dayID string) (*model.Day, error) {
	// Day本体の存在確認（メタ情報は持たないが、カタログに無い日をエラーにするため）
	if _, err := r.docs.Get(ctx, store.DayPath(programID, weekID, dayID)); err != nil {
		return nil, err
	}

	docs, err := r.docs.List(ctx, store.ExercisesPrefix(programID, weekID, dayID))
	if err != nil {
		return nil, err
	}

	day := &model.Day{DayID: dayID, WeekID: weekID, ProgramID: programID}
	for _, doc := range docs {
		exerciseID := strings.TrimPrefix(doc.Path, store.ExercisesPrefix(programID, weekID, dayID))
		var ex model.Exercise
		if err := decodeDocument(doc.Fields, &ex); err != nil {
			return nil, fmt.Errorf("decode exercise %s: %w", exerciseID, err)
		}
		ex.ExerciseID = exerciseID
		day.Exercises = append(day.Exercises, ex)
	}
	// 表示順は order フィールドで安定させる
	sort.SliceStable(day.Exercises, func(i, j int) bool {
		return day.Exercises[i].Order < day.Exercises[j].Order
	})
	return day, nil
}

func (r *documentCatalogRepository) ListFoods(ctx context.Context) ([]*model.Food, error) {
	docs, err := r.docs.List(ctx, store.FoodsPrefix)
	if err != nil {
		return nil, err
	}
	foods := make([]*model.Food, 0, len(docs))
	for _, doc := range docs {
		foodID := strings.TrimPrefix(doc.Path, store.FoodsPrefix)
		var f model.Food
		if err := decodeDocument(doc.Fields, &f); err != nil {
			middleware.GetLogger(ctx).Warn("Skipping malformed food document", "path", doc.Path, "error", err)
			continue
		}
		f.FoodID = foodID
		foods = append(foods, &f)
	}
	return foods, nil
}

func (r *documentCatalogRepository) FindFood(ctx context.Context, foodID string) (*model.Food, error) {
	doc, err := r.docs.Get(ctx, store.FoodPath(foodID))
	if err != nil {
		return nil, err
	}
	var f model.Food
	if err := decodeDocument(doc.Fields, &f); err != nil {
		return nil, fmt.Errorf("decode food %s: %w", foodID, err)
	}
	f.FoodID = foodID
	return &f, nil
}

func decodeProgram(programID string, fields store.JSONMap) (*model.Program, error) {
	var p model.Program
	if err := decodeDocument(fields, &p); err != nil {
		return nil, fmt.Errorf("decode program %s: %w", programID, err)
	}
	p.ProgramID = programID
	return &p, nil
}

// decodeDocument は生フィールドをJSONラウンドトリップで構造体へ変換します
func decodeDocument(fields store.JSONMap, dst any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// decodeField は単一フィールドだけを変換します
func decodeField(fields store.JSONMap, key string, dst any) error {
	v, ok := fields[key]
	if !ok {
		return fmt.Errorf("missing field %q", key)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
