// internal/model/catalog.go
package model

// ワークアウトカタログのエンティティ群。
// カタログは管理ツール側が作成する読み取り専用データで、
// ドキュメントストアから取得した時点で型付きに変換される。

// Exercise は1種目の仕様（目標セット数・レップ数など）
type Exercise struct {
	ExerciseID   string `json:"exercise_id"`
	Name         string `json:"name"`
	TargetSets   int    `json:"target_sets"`
	TargetReps   string `json:"target_reps"` // "8-12" のようなレンジ表記を許容するため文字列
	Tempo        string `json:"tempo,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Order        int    `json:"order"`
}

// Day は1日分の種目リスト。DayIDは曜日名（monday〜sunday）
type Day struct {
	DayID     string     `json:"day_id"`
	WeekID    string     `json:"week_id"`
	ProgramID string     `json:"program_id"`
	Exercises []Exercise `json:"exercises"`
}

// HasExercise は種目IDがこの日の仕様に含まれるか判定します
func (d *Day) HasExercise(exerciseID string) bool {
	for _, ex := range d.Exercises {
		if ex.ExerciseID == exerciseID {
			return true
		}
	}
	return false
}

// Week は1週間分の曜日リスト（月曜始まり、日曜は任意）
type Week struct {
	WeekID    string   `json:"week_id"`
	ProgramID string   `json:"program_id"`
	Days      []string `json:"days"` // 正規の曜日キー順
}

// Program はプログラムの概要と週の順序リスト
type Program struct {
	ProgramID   string   `json:"program_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Weeks       []string `json:"weeks"`
}

// Food はフードカタログの1品目。栄養値は宣言された単位あたりの値
type Food struct {
	FoodID   string  `json:"food_id"`
	Name     string  `json:"name"`
	Unit     string  `json:"unit"` // "g" | "100g" | "piece" など。単位換算は行わない
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
