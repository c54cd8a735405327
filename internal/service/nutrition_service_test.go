// internal/service/nutrition_service_test.go
package service

import (
	"context"
	"testing"

	"go_5_fit_keep/internal/config"
	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func nutritionTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.CalorieAdjustment = config.DefaultCalorieAdjustment
	return cfg
}

func testUser(userID uuid.UUID) *model.User {
	return &model.User{
		UserID:        userID,
		Name:          "Taro",
		Email:         "taro@example.com",
		Age:           30,
		HeightCm:      175,
		WeightKg:      70,
		Gender:        "male",
		ActivityLevel: "moderate",
		Goal:          "lose-fat",
	}
}

func chickenBreast() *model.Food {
	return &model.Food{
		FoodID:   "chicken-breast",
		Name:     "Chicken Breast",
		Unit:     "100g",
		Calories: 165,
		Protein:  31,
		Carbs:    0,
		Fat:      3.6,
	}
}

func TestNutritionService_Targets(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := new(mocks.UserRepository)
	userRepo.On("FindByID", ctx, mock.Anything, userID).Return(testUser(userID), nil).Once()

	svc := NewNutritionService(nil, new(mocks.NutritionLogRepository), new(mocks.CatalogRepository), userRepo, nutritionTestConfig())
	targets, err := svc.Targets(ctx, userID)
	require.NoError(t, err)

	// Mifflin-St Jeor: 10*70 + 6.25*175 - 5*30 + 5 = 1648.75, ×1.55 ≈ 2556
	assert.Equal(t, 2556, targets.Maintenance)
	// lose-fat は維持カロリー - 300
	assert.Equal(t, 2256, targets.TargetCalories)
	// 30/40/30 を 4/4/9 kcal/g で換算
	assert.InDelta(t, 169, targets.TargetProtein, 0.001)
	assert.InDelta(t, 226, targets.TargetCarbs, 0.001)
	assert.InDelta(t, 75, targets.TargetFat, 0.001)
}

func TestNutritionService_AddMeal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := "2026-08-30"

	t.Run("正常系: 食品を解決して合計・残量を再計算する", func(t *testing.T) {
		logRepo := new(mocks.NutritionLogRepository)
		catalogRepo := new(mocks.CatalogRepository)
		userRepo := new(mocks.UserRepository)

		catalogRepo.On("FindFood", ctx, "chicken-breast").Return(chickenBreast(), nil).Once()
		logRepo.On("Find", ctx, userID, date).
			Return(&model.DailyNutritionLog{Date: date, Meals: []model.Meal{}}, false, nil).Once()
		userRepo.On("FindByID", ctx, mock.Anything, userID).Return(testUser(userID), nil).Once()

		var saved *model.DailyNutritionLog
		logRepo.On("Save", ctx, userID, mock.AnythingOfType("*model.DailyNutritionLog")).
			Run(func(args mock.Arguments) {
				saved = args.Get(2).(*model.DailyNutritionLog)
			}).
			Return(nil).Once()

		svc := NewNutritionService(nil, logRepo, catalogRepo, userRepo, nutritionTestConfig())
		log, err := svc.AddMeal(ctx, userID, date, &model.PutMealRequest{
			Name:  "Lunch",
			Items: []model.MealItemRequest{{FoodID: "chicken-breast", Quantity: 2}},
		})
		require.NoError(t, err)
		require.Len(t, log.Meals, 1)
		require.Len(t, log.Meals[0].Items, 1)

		item := log.Meals[0].Items[0]
		assert.InDelta(t, 330, item.Calories, 0.001) // 165 × 2
		assert.InDelta(t, 62, item.Protein, 0.001)

		assert.InDelta(t, 330, log.Consumed.Calories, 0.001)
		assert.Equal(t, 2256, log.TargetCalories)
		assert.InDelta(t, 2256-330, log.Remaining.Calories, 0.001)
		require.NotNil(t, saved)
		assert.Equal(t, log.Consumed, saved.Consumed)
	})

	t.Run("異常系: カタログに無い食品は ErrInvalidInput", func(t *testing.T) {
		catalogRepo := new(mocks.CatalogRepository)
		catalogRepo.On("FindFood", ctx, "no-such-food").Return(nil, model.ErrNotFound).Once()

		svc := NewNutritionService(nil, new(mocks.NutritionLogRepository), catalogRepo, new(mocks.UserRepository), nutritionTestConfig())
		_, err := svc.AddMeal(ctx, userID, date, &model.PutMealRequest{
			Name:  "Lunch",
			Items: []model.MealItemRequest{{FoodID: "no-such-food", Quantity: 1}},
		})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestNutritionService_ReplaceMeal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := "2026-08-30"
	mealID := uuid.New()

	existing := func() *model.DailyNutritionLog {
		return &model.DailyNutritionLog{
			Date: date,
			Meals: []model.Meal{{
				MealID: mealID,
				Name:   "Lunch",
				Items:  []model.MealItem{{FoodID: "chicken-breast", Quantity: 1, Calories: 165, Protein: 31, Fat: 3.6}},
			}},
		}
	}

	t.Run("正常系: 食事全体が置き換わる", func(t *testing.T) {
		logRepo := new(mocks.NutritionLogRepository)
		catalogRepo := new(mocks.CatalogRepository)
		userRepo := new(mocks.UserRepository)

		catalogRepo.On("FindFood", ctx, "chicken-breast").Return(chickenBreast(), nil).Once()
		logRepo.On("Find", ctx, userID, date).Return(existing(), true, nil).Once()
		userRepo.On("FindByID", ctx, mock.Anything, userID).Return(testUser(userID), nil).Once()
		logRepo.On("Save", ctx, userID, mock.AnythingOfType("*model.DailyNutritionLog")).Return(nil).Once()

		svc := NewNutritionService(nil, logRepo, catalogRepo, userRepo, nutritionTestConfig())
		log, err := svc.ReplaceMeal(ctx, userID, date, mealID, &model.PutMealRequest{
			Name:  "Big Lunch",
			Items: []model.MealItemRequest{{FoodID: "chicken-breast", Quantity: 3}},
		})
		require.NoError(t, err)
		require.Len(t, log.Meals, 1)
		assert.Equal(t, "Big Lunch", log.Meals[0].Name)
		assert.InDelta(t, 495, log.Consumed.Calories, 0.001) // 165 × 3
	})

	t.Run("異常系: 存在しない食事IDは ErrNotFound", func(t *testing.T) {
		logRepo := new(mocks.NutritionLogRepository)
		catalogRepo := new(mocks.CatalogRepository)

		catalogRepo.On("FindFood", ctx, "chicken-breast").Return(chickenBreast(), nil).Once()
		logRepo.On("Find", ctx, userID, date).Return(existing(), true, nil).Once()

		svc := NewNutritionService(nil, logRepo, catalogRepo, new(mocks.UserRepository), nutritionTestConfig())
		_, err := svc.ReplaceMeal(ctx, userID, date, uuid.New(), &model.PutMealRequest{
			Name:  "Lunch",
			Items: []model.MealItemRequest{{FoodID: "chicken-breast", Quantity: 1}},
		})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: ログ未作成の日の置き換えは ErrNotFound", func(t *testing.T) {
		logRepo := new(mocks.NutritionLogRepository)
		catalogRepo := new(mocks.CatalogRepository)

		catalogRepo.On("FindFood", ctx, "chicken-breast").Return(chickenBreast(), nil).Once()
		logRepo.On("Find", ctx, userID, date).
			Return(&model.DailyNutritionLog{Date: date, Meals: []model.Meal{}}, false, nil).Once()

		svc := NewNutritionService(nil, logRepo, catalogRepo, new(mocks.UserRepository), nutritionTestConfig())
		_, err := svc.ReplaceMeal(ctx, userID, date, mealID, &model.PutMealRequest{
			Name:  "Lunch",
			Items: []model.MealItemRequest{{FoodID: "chicken-breast", Quantity: 1}},
		})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestNutritionService_DeleteMeal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := "2026-08-30"
	mealID := uuid.New()

	t.Run("正常系: 食事を削除すると残量が戻る", func(t *testing.T) {
		logRepo := new(mocks.NutritionLogRepository)
		userRepo := new(mocks.UserRepository)

		logRepo.On("Find", ctx, userID, date).Return(&model.DailyNutritionLog{
			Date: date,
			Meals: []model.Meal{{
				MealID: mealID,
				Name:   "Lunch",
				Items:  []model.MealItem{{FoodID: "chicken-breast", Quantity: 1, Calories: 165}},
			}},
		}, true, nil).Once()
		userRepo.On("FindByID", ctx, mock.Anything, userID).Return(testUser(userID), nil).Once()
		logRepo.On("Save", ctx, userID, mock.AnythingOfType("*model.DailyNutritionLog")).Return(nil).Once()

		svc := NewNutritionService(nil, logRepo, new(mocks.CatalogRepository), userRepo, nutritionTestConfig())
		log, err := svc.DeleteMeal(ctx, userID, date, mealID)
		require.NoError(t, err)
		assert.Empty(t, log.Meals)
		assert.InDelta(t, 0, log.Consumed.Calories, 0.001)
		assert.InDelta(t, float64(log.TargetCalories), log.Remaining.Calories, 0.001)
	})

	t.Run("異常系: 存在しない食事IDは ErrNotFound", func(t *testing.T) {
		logRepo := new(mocks.NutritionLogRepository)
		logRepo.On("Find", ctx, userID, date).Return(&model.DailyNutritionLog{
			Date:  date,
			Meals: []model.Meal{{MealID: uuid.New(), Name: "Lunch"}},
		}, true, nil).Once()

		svc := NewNutritionService(nil, logRepo, new(mocks.CatalogRepository), new(mocks.UserRepository), nutritionTestConfig())
		_, err := svc.DeleteMeal(ctx, userID, date, mealID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestNutritionService_GetDailyLog(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := "2026-08-30"

	t.Run("正常系: 未作成の日は空ログに目標だけ載せて返す", func(t *testing.T) {
		logRepo := new(mocks.NutritionLogRepository)
		userRepo := new(mocks.UserRepository)
		logRepo.On("Find", ctx, userID, date).
			Return(&model.DailyNutritionLog{Date: date, Meals: []model.Meal{}}, false, nil).Once()
		userRepo.On("FindByID", ctx, mock.Anything, userID).Return(testUser(userID), nil).Once()

		svc := NewNutritionService(nil, logRepo, new(mocks.CatalogRepository), userRepo, nutritionTestConfig())
		log, err := svc.GetDailyLog(ctx, userID, date)
		require.NoError(t, err)
		assert.Empty(t, log.Meals)
		assert.Equal(t, 2256, log.TargetCalories)
		assert.InDelta(t, 2256, log.Remaining.Calories, 0.001)
	})

	t.Run("正常系: プロフィール未登録でも目標ゼロでログを返す", func(t *testing.T) {
		logRepo := new(mocks.NutritionLogRepository)
		userRepo := new(mocks.UserRepository)
		logRepo.On("Find", ctx, userID, date).
			Return(&model.DailyNutritionLog{Date: date, Meals: []model.Meal{}}, false, nil).Once()
		userRepo.On("FindByID", ctx, mock.Anything, userID).Return(nil, model.ErrNotFound).Once()

		svc := NewNutritionService(nil, logRepo, new(mocks.CatalogRepository), userRepo, nutritionTestConfig())
		log, err := svc.GetDailyLog(ctx, userID, date)
		require.NoError(t, err)
		assert.Equal(t, 0, log.TargetCalories)
		assert.InDelta(t, 0, log.Remaining.Calories, 0.001)
	})
}
