// internal/service/nutrition_service.go
package service

import (
	"context"
	"errors"

	"go_5_fit_keep/internal/config"
	"go_5_fit_keep/internal/middleware"
	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/nutrition"
	"go_5_fit_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NutritionService interface {
	GetDailyLog(ctx context.Context, userID uuid.UUID, isoDate string) (*model.DailyNutritionLog, error)
	AddMeal(ctx context.Context, userID uuid.UUID, isoDate string, req *model.PutMealRequest) (*model.DailyNutritionLog, error)
	ReplaceMeal(ctx context.Context, userID uuid.UUID, isoDate string, mealID uuid.UUID, req *model.PutMealRequest) (*model.DailyNutritionLog, error)
	DeleteMeal(ctx context.Context, userID uuid.UUID, isoDate string, mealID uuid.UUID) (*model.DailyNutritionLog, error)
	Targets(ctx context.Context, userID uuid.UUID) (*model.NutritionTargets, error)
}

type nutritionService struct {
	db          *gorm.DB
	logRepo     repository.NutritionLogRepository
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
	cfg         *config.Config
}

func NewNutritionService(db *gorm.DB, logRepo repository.NutritionLogRepository, catalogRepo repository.CatalogRepository, userRepo repository.UserRepository, cfg *config.Config) NutritionService {
	return &nutritionService{
		db:          db,
		logRepo:     logRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		cfg:         cfg,
	}
}

func (s *nutritionService) GetDailyLog(ctx context.Context, userID uuid.UUID, isoDate string) (*model.DailyNutritionLog, error) {
	log, _, err := s.logRepo.Find(ctx, userID, isoDate)
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, userID, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *nutritionService) AddMeal(ctx context.Context, userID uuid.UUID, isoDate string, req *model.PutMealRequest) (*model.DailyNutritionLog, error) {
	meal, err := s.buildMeal(ctx, uuid.New(), req)
	if err != nil {
		return nil, err
	}

	log, _, err := s.logRepo.Find(ctx, userID, isoDate)
	if err != nil {
		return nil, err
	}
	log.Meals = append(log.Meals, *meal)
	return s.recomputeAndSave(ctx, userID, log)
}

// ReplaceMeal は食事全体を置き換えます。行単位の部分更新は提供しない
func (s *nutritionService) ReplaceMeal(ctx context.Context, userID uuid.UUID, isoDate string, mealID uuid.UUID, req *model.PutMealRequest) (*model.DailyNutritionLog, error) {
	meal, err := s.buildMeal(ctx, mealID, req)
	if err != nil {
		return nil, err
	}

	log, existed, err := s.logRepo.Find(ctx, userID, isoDate)
	if err != nil {
		return nil, err
	}
	if !existed {
		return nil, model.ErrNotFound
	}

	replaced := false
	for i := range log.Meals {
		if log.Meals[i].MealID == mealID {
			log.Meals[i] = *meal
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, model.ErrNotFound
	}
	return s.recomputeAndSave(ctx, userID, log)
}

func (s *nutritionService) DeleteMeal(ctx context.Context, userID uuid.UUID, isoDate string, mealID uuid.UUID) (*model.DailyNutritionLog, error) {
	log, existed, err := s.logRepo.Find(ctx, userID, isoDate)
	if err != nil {
		return nil, err
	}
	if !existed {
		return nil, model.ErrNotFound
	}

	meals := log.Meals[:0]
	found := false
	for _, meal := range log.Meals {
		if meal.MealID == mealID {
			found = true
			continue
		}
		meals = append(meals, meal)
	}
	if !found {
		return nil, model.ErrNotFound
	}
	log.Meals = meals
	return s.recomputeAndSave(ctx, userID, log)
}

// Targets は維持カロリーと目標PFCを算出します。
// 身体情報が未入力でもエラーにせず、ゼロ値のまま計算する
func (s *nutritionService) Targets(ctx context.Context, userID uuid.UUID) (*model.NutritionTargets, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	return s.targetsFor(user), nil
}

func (s *nutritionService) targetsFor(user *model.User) *model.NutritionTargets {
	attrs := nutrition.Attributes{
		Age:           user.Age,
		HeightCm:      user.HeightCm,
		WeightKg:      user.WeightKg,
		Gender:        user.Gender,
		ActivityLevel: user.ActivityLevel,
	}
	maintenance := nutrition.Maintenance(attrs)
	target := nutrition.Target(maintenance, user.Goal, s.cfg.App.CalorieAdjustment)
	protein, carbs, fat := nutrition.MacroSplit(target, config.DefaultProteinPct, config.DefaultCarbsPct, config.DefaultFatPct)

	return &model.NutritionTargets{
		Maintenance:    maintenance,
		TargetCalories: target,
		TargetProtein:  protein,
		TargetCarbs:    carbs,
		TargetFat:      fat,
	}
}

// buildMeal はリクエストの食品IDをカタログで解決し、行ごとの栄養値を導出します
func (s *nutritionService) buildMeal(ctx context.Context, mealID uuid.UUID, req *model.PutMealRequest) (*model.Meal, error) {
	items := make([]model.MealItem, 0, len(req.Items))
	for _, item := range req.Items {
		food, err := s.catalogRepo.FindFood(ctx, item.FoodID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, model.NewAppError("UNKNOWN_FOOD", "食品カタログに存在しない食品です。", "food_id", model.ErrInvalidInput)
			}
			return nil, err
		}
		items = append(items, nutrition.NewLineItem(*food, item.Quantity))
	}
	return &model.Meal{
		MealID: mealID,
		Name:   req.Name,
		Items:  items,
	}, nil
}

// hydrate は目標値を最新のプロフィールから埋め、消費・残量を再計算します
func (s *nutritionService) hydrate(ctx context.Context, userID uuid.UUID, log *model.DailyNutritionLog) error {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// プロフィール未登録でもログ自体は返す（目標ゼロのまま）
			middleware.GetLogger(ctx).Debug("No user profile for nutrition targets", "user_id", userID.String())
			s.recompute(log)
			return nil
		}
		return err
	}

	targets := s.targetsFor(user)
	log.TargetCalories = targets.TargetCalories
	log.TargetProtein = targets.TargetProtein
	log.TargetCarbs = targets.TargetCarbs
	log.TargetFat = targets.TargetFat
	s.recompute(log)
	return nil
}

func (s *nutritionService) recompute(log *model.DailyNutritionLog) {
	log.Consumed = nutrition.Totals(log.Meals)
	log.Remaining = nutrition.Remaining(model.NutritionTotals{
		Calories: float64(log.TargetCalories),
		Protein:  log.TargetProtein,
		Carbs:    log.TargetCarbs,
		Fat:      log.TargetFat,
	}, log.Consumed)
}

func (s *nutritionService) recomputeAndSave(ctx context.Context, userID uuid.UUID, log *model.DailyNutritionLog) (*model.DailyNutritionLog, error) {
	if err := s.hydrate(ctx, userID, log); err != nil {
		return nil, err
	}
	if err := s.logRepo.Save(ctx, userID, log); err != nil {
		return nil, err
	}
	return log, nil
}
