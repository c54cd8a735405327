// internal/store/document.go
package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// JSONMap はドキュメントのフィールド群。JSONBカラムとして永続化する
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src any) error {
	if src == nil {
		*m = JSONMap{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("store: unsupported scan source for JSONMap")
	}
}

// Document はドキュメントストア上の1ドキュメント。
// Path が論理階層を含む一意キーになる（Firestore 的なパス形状）
type Document struct {
	Path      string    `gorm:"primaryKey" json:"path"`
	Fields    JSONMap   `gorm:"type:jsonb;not null" json:"fields"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

// --- パス形状のヘルパー ---
// 進捗: users/{userId}/progress/{programId}_{weekId}_{dayId}
// 栄養: users/{userId}/meals/{isoDate}
// カタログ: workoutTemplates/{programId}/weeks/{weekId}/days/{dayId}/exercises/{exerciseId}
// フード: foods/{foodId}

func ProgressPath(userID, progressDocID string) string {
	return fmt.Sprintf("users/%s/progress/%s", userID, progressDocID)
}

func UserProgressPrefix(userID string) string {
	return fmt.Sprintf("users/%s/progress/", userID)
}

func MealLogPath(userID, isoDate string) string {
	return fmt.Sprintf("users/%s/meals/%s", userID, isoDate)
}

func UserDocumentPrefix(userID string) string {
	return fmt.Sprintf("users/%s/", userID)
}

func ProgramPath(programID string) string {
	return fmt.Sprintf("workoutTemplates/%s", programID)
}

func WeekPath(programID, weekID string) string {
	return fmt.Sprintf("workoutTemplates/%s/weeks/%s", programID, weekID)
}

func DayPath(programID, weekID, dayID string) string {
	return fmt.Sprintf("workoutTemplates/%s/weeks/%s/days/%s", programID, weekID, dayID)
}

func ExercisePath(programID, weekID, dayID, exerciseID string) string {
	return fmt.Sprintf("workoutTemplates/%s/weeks/%s/days/%s/exercises/%s", programID, weekID, dayID, exerciseID)
}

func ExercisesPrefix(programID, weekID, dayID string) string {
	return fmt.Sprintf("workoutTemplates/%s/weeks/%s/days/%s/exercises/", programID, weekID, dayID)
}

func FoodPath(foodID string) string {
	return fmt.Sprintf("foods/%s", foodID)
}

const (
	ProgramsPrefix = "workoutTemplates/"
	FoodsPrefix    = "foods/"
)
