// internal/nutrition/calculator.go
package nutrition

import "math"

// 目標タグ
const (
	GoalLoseFat    = "lose-fat"
	GoalGainMuscle = "gain-muscle"
)

// Attributes は計算に使う身体情報。
// 未入力の数値はゼロ値のまま計算する（エラーにはしない仕様）
type Attributes struct {
	Age           int
	HeightCm      float64
	WeightKg      float64
	Gender        string // "male" 以外は female 係数で計算
	ActivityLevel string
}

// activityMultipliers は活動レベルごとのTDEE係数。
// 未知のキーは moderate (1.55) にフォールバックする
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very-active": 1.9,
}

// ActivityMultiplier は活動レベルの係数を返します
func ActivityMultiplier(level string) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return activityMultipliers["moderate"]
}

// BMR は Mifflin-St Jeor 式で基礎代謝量を計算します
func BMR(a Attributes) float64 {
	bmr := 10*a.WeightKg + 6.25*a.HeightCm - 5*float64(a.Age)
	if a.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}

// Maintenance は維持カロリー（BMR × 活動係数）を整数kcalで返します
func Maintenance(a Attributes) int {
	return int(math.Round(BMR(a) * ActivityMultiplier(a.ActivityLevel)))
}

// Target は目標タグに応じて維持カロリーを調整します。
// adjustment は設定値（既定300kcal）。lose-fat / gain-muscle 以外は維持カロリーのまま
func Target(maintenance int, goal string, adjustment int) int {
	switch goal {
	case GoalLoseFat:
		return maintenance - adjustment
	case GoalGainMuscle:
		return maintenance + adjustment
	default:
		return maintenance
	}
}

// MacroSplit は目標カロリーをPFCのグラム数に分解します。
// 比率は割合（合計1.0想定）、換算は 4/4/9 kcal per g
func MacroSplit(targetCalories int, proteinPct, carbsPct, fatPct float64) (protein, carbs, fat float64) {
	t := float64(targetCalories)
	protein = math.Round(t * proteinPct / 4)
	carbs = math.Round(t * carbsPct / 4)
	fat = math.Round(t * fatPct / 9)
	return protein, carbs, fat
}
