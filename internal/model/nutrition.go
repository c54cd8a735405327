// internal/model/nutrition.go
package model

import "github.com/google/uuid"

// NutritionTotals はカロリーとPFCの合計値
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MealItem は食品×数量の1行。栄養値は追加時に導出して保持する
type MealItem struct {
	FoodID   string  `json:"food_id"`
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Meal は1回の食事。編集は食事全体の置き換えで行う（部分更新なし）
type Meal struct {
	MealID uuid.UUID  `json:"meal_id"`
	Name   string     `json:"name"` // "Breakfast" | "Lunch" など
	Items  []MealItem `json:"items"`
}

// DailyNutritionLog は (user, date) ごとの日次ログ。
// Consumed 系は保存値を信用せず、読み出し・変更のたびに Meals から再計算する
type DailyNutritionLog struct {
	Date           string          `json:"date"` // YYYY-MM-DD
	Meals          []Meal          `json:"meals"`
	TargetCalories int             `json:"target_calories"`
	TargetProtein  float64         `json:"target_protein"`
	TargetCarbs    float64         `json:"target_carbs"`
	TargetFat      float64         `json:"target_fat"`
	Consumed       NutritionTotals `json:"consumed"`
	Remaining      NutritionTotals `json:"remaining"`
}

// NutritionTargets は目標値の算出結果
type NutritionTargets struct {
	Maintenance    int     `json:"maintenance"`
	TargetCalories int     `json:"target_calories"`
	TargetProtein  float64 `json:"target_protein"`
	TargetCarbs    float64 `json:"target_carbs"`
	TargetFat      float64 `json:"target_fat"`
}

// MealItemRequest は食事リクエスト内の1行
type MealItemRequest struct {
	FoodID   string  `json:"food_id" validate:"required"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
}

// PutMealRequest は食事の作成・置き換えリクエストDTO
type PutMealRequest struct {
	Name  string            `json:"name" validate:"required,min=1,max=100"`
	Items []MealItemRequest `json:"items" validate:"required,min=1,dive"`
}
