// internal/nutrition/calculator_test.go
package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMR(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attributes
		want  float64
	}{
		{
			name:  "正常系: 男性の基準ケース (70kg/175cm/30歳)",
			attrs: Attributes{Age: 30, HeightCm: 175, WeightKg: 70, Gender: "male"},
			// 10*70 + 6.25*175 - 5*30 + 5 = 1648.75
			want: 1648.75,
		},
		{
			name:  "正常系: 女性は -161 の定数",
			attrs: Attributes{Age: 30, HeightCm: 175, WeightKg: 70, Gender: "female"},
			want:  1482.75,
		},
		{
			name:  "正常系: 性別未指定は female 係数で計算",
			attrs: Attributes{Age: 30, HeightCm: 175, WeightKg: 70},
			want:  1482.75,
		},
		{
			name:  "正常系: 未入力の数値はゼロ値のまま計算（エラーにしない仕様）",
			attrs: Attributes{Gender: "male"},
			want:  5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BMR(tc.attrs))
		})
	}
}

func TestBMR_Deterministic(t *testing.T) {
	attrs := Attributes{Age: 45, HeightCm: 168, WeightKg: 82.5, Gender: "female"}
	first := BMR(attrs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BMR(attrs))
	}
}

func TestMaintenance(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attributes
		want  int
	}{
		{
			name:  "正常系: sedentary は 1.2 倍",
			attrs: Attributes{Age: 30, HeightCm: 175, WeightKg: 70, Gender: "male", ActivityLevel: "sedentary"},
			// round(1648.75 * 1.2) = round(1978.5) = 1979
			want: 1979,
		},
		{
			name:  "正常系: very-active は 1.9 倍",
			attrs: Attributes{Age: 30, HeightCm: 175, WeightKg: 70, Gender: "male", ActivityLevel: "very-active"},
			// round(1648.75 * 1.9) = round(3132.625) = 3133
			want: 3133,
		},
		{
			name:  "正常系: 未知の活動レベルは moderate (1.55) にフォールバック",
			attrs: Attributes{Age: 30, HeightCm: 175, WeightKg: 70, Gender: "male", ActivityLevel: "couch"},
			// round(1648.75 * 1.55) = round(2555.5625) = 2556
			want: 2556,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Maintenance(tc.attrs)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestTarget(t *testing.T) {
	tests := []struct {
		name        string
		maintenance int
		goal        string
		adjustment  int
		want        int
	}{
		{name: "正常系: lose-fat は減算", maintenance: 2000, goal: GoalLoseFat, adjustment: 300, want: 1700},
		{name: "正常系: gain-muscle は加算", maintenance: 2000, goal: GoalGainMuscle, adjustment: 300, want: 2300},
		{name: "正常系: 調整値500の設定でも動く", maintenance: 2000, goal: GoalLoseFat, adjustment: 500, want: 1500},
		{name: "正常系: maintain は恒等", maintenance: 2000, goal: "maintain", adjustment: 300, want: 2000},
		{name: "正常系: 未知の目標タグも恒等", maintenance: 2000, goal: "get-shredded", adjustment: 300, want: 2000},
		{name: "正常系: 空の目標タグも恒等", maintenance: 2000, goal: "", adjustment: 300, want: 2000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Target(tc.maintenance, tc.goal, tc.adjustment))
		})
	}
}

func TestMacroSplit(t *testing.T) {
	// 30% / 40% / 30% split, 2000 kcal
	protein, carbs, fat := MacroSplit(2000, 0.3, 0.4, 0.3)
	assert.Equal(t, float64(150), protein) // 600/4
	assert.Equal(t, float64(200), carbs)   // 800/4
	assert.Equal(t, float64(67), fat)      // round(600/9)
}
