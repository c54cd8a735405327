// internal/nutrition/ledger.go
package nutrition

import "go_5_fit_keep/internal/model"

// NewLineItem は食品×数量から1行分の栄養値を導出します。
// 数量の単位は食品カタログが宣言する単位のまま（単位換算は行わない）
func NewLineItem(food model.Food, quantity float64) model.MealItem {
	return model.MealItem{
		FoodID:   food.FoodID,
		FoodName: food.Name,
		Quantity: quantity,
		Unit:     food.Unit,
		Calories: food.Calories * quantity,
		Protein:  food.Protein * quantity,
		Carbs:    food.Carbs * quantity,
		Fat:      food.Fat * quantity,
	}
}

// Totals は全食事の全行を畳み込んだ合計を返します
func Totals(meals []model.Meal) model.NutritionTotals {
	var t model.NutritionTotals
	for _, meal := range meals {
		for _, item := range meal.Items {
			t.Calories += item.Calories
			t.Protein += item.Protein
			t.Carbs += item.Carbs
			t.Fat += item.Fat
		}
	}
	return t
}

// Remaining は残量 max(target - consumed, 0) をフィールドごとに独立に計算します。
// マクロ残量とカロリー残量の整合は取らない（表示用近似として許容）
func Remaining(target, consumed model.NutritionTotals) model.NutritionTotals {
	return model.NutritionTotals{
		Calories: clampZero(target.Calories - consumed.Calories),
		Protein:  clampZero(target.Protein - consumed.Protein),
		Carbs:    clampZero(target.Carbs - consumed.Carbs),
		Fat:      clampZero(target.Fat - consumed.Fat),
	}
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
