//go:generate mockery --name NutritionLogRepository --output ./mocks --outpkg mocks --case=underscore
// internal/repository/nutrition_repository.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/store"

	"github.com/google/uuid"
)

// NutritionLogRepository は日次栄養ログの同期アダプタです。
// このエンティティには部分更新パスが無く、保存は常にドキュメント全体の
// マージアップサート（並行書き込みは last-write-wins）
type NutritionLogRepository interface {
	Find(ctx context.Context, userID uuid.UUID, isoDate string) (log *model.DailyNutritionLog, existed bool, err error)
	Save(ctx context.Context, userID uuid.UUID, log *model.DailyNutritionLog) error
}

type documentNutritionLogRepository struct {
	docs store.DocumentStore
}

func NewDocumentNutritionLogRepository(docs store.DocumentStore) NutritionLogRepository {
	return &documentNutritionLogRepository{docs: docs}
}

func (r *documentNutritionLogRepository) Find(ctx context.Context, userID uuid.UUID, isoDate string) (*model.DailyNutritionLog, bool, error) {
	path := store.MealLogPath(userID.String(), isoDate)
	doc, err := r.docs.Get(ctx, path)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.DailyNutritionLog{Date: isoDate, Meals: []model.Meal{}}, false, nil
		}
		return nil, false, err
	}

	var log model.DailyNutritionLog
	raw, err := json.Marshal(doc.Fields)
	if err != nil {
		return nil, false, fmt.Errorf("documentNutritionLogRepository.Find: %w", err)
	}
	if err := json.Unmarshal(raw, &log); err != nil {
		return nil, false, fmt.Errorf("documentNutritionLogRepository.Find: decode log: %w", err)
	}
	log.Date = isoDate
	if log.Meals == nil {
		log.Meals = []model.Meal{}
	}
	return &log, true, nil
}

func (r *documentNutritionLogRepository) Save(ctx context.Context, userID uuid.UUID, log *model.DailyNutritionLog) error {
	path := store.MealLogPath(userID.String(), log.Date)

	meals := make([]any, 0, len(log.Meals))
	for _, meal := range log.Meals {
		items := make([]any, 0, len(meal.Items))
		for _, item := range meal.Items {
			items = append(items, map[string]any{
				"food_id":   item.FoodID,
				"food_name": item.FoodName,
				"quantity":  item.Quantity,
				"unit":      item.Unit,
				"calories":  item.Calories,
				"protein":   item.Protein,
				"carbs":     item.Carbs,
				"fat":       item.Fat,
			})
		}
		meals = append(meals, map[string]any{
			"meal_id": meal.MealID.String(),
			"name":    meal.Name,
			"items":   items,
		})
	}

	fields := map[string]any{
		"date":            log.Date,
		"meals":           meals,
		"target_calories": log.TargetCalories,
		"target_protein":  log.TargetProtein,
		"target_carbs":    log.TargetCarbs,
		"target_fat":      log.TargetFat,
		"consumed":        totalsFields(log.Consumed),
		"remaining":       totalsFields(log.Remaining),
	}
	return r.docs.Set(ctx, path, fields, true)
}

func totalsFields(t model.NutritionTotals) map[string]any {
	return map[string]any{
		"calories": t.Calories,
		"protein":  t.Protein,
		"carbs":    t.Carbs,
		"fat":      t.Fat,
	}
}
