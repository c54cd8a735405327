// internal/model/progress.go
package model

import (
	"fmt"
	"time"
)

// DayState は (program, week, day) キーごとの進捗状態
type DayState string

const (
	DayUnstarted       DayState = "unstarted"
	DayInProgress      DayState = "in_progress"
	DayLockedCompleted DayState = "locked_completed" // トグルに対して終端状態
)

// WeekStatus / ProgramStatus 集計結果
type AggregateStatus string

const (
	StatusNotStarted AggregateStatus = "not-started"
	StatusOngoing    AggregateStatus = "ongoing"
	StatusCompleted  AggregateStatus = "completed"
)

// ProgressKey は進捗レコードの複合キー。
// ストア上のドキュメントIDは "{programId}_{weekId}_{dayId}" の連結文字列
type ProgressKey struct {
	ProgramID string
	WeekID    string
	DayID     string
}

func (k ProgressKey) DocumentID() string {
	return fmt.Sprintf("%s_%s_%s", k.ProgramID, k.WeekID, k.DayID)
}

func (k ProgressKey) String() string {
	return k.DocumentID()
}

// ProgressNote は追記専用のメモ。既存メモの編集・削除は行わない
type ProgressNote struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ProgressRecord は1日分の進捗レコード。
// Completed が true になった時点で write-lock され、以後トグルとメモ追記は拒否される
type ProgressRecord struct {
	Exercises   map[string]bool `json:"exercises"`
	Notes       []ProgressNote  `json:"notes"`
	Completed   bool            `json:"completed"`
	UpdatedDate string          `json:"updated_date"` // 最終更新のカレンダー日付 (YYYY-MM-DD)
}

// NewProgressRecord は空のレコード（Unstarted 相当）を返します
func NewProgressRecord() *ProgressRecord {
	return &ProgressRecord{
		Exercises: make(map[string]bool),
		Notes:     []ProgressNote{},
	}
}

// State はレコードの状態を導出します。existed=false はストアにレコードが無いことを示す
func (r *ProgressRecord) State(existed bool) DayState {
	if !existed {
		return DayUnstarted
	}
	if r.Completed {
		return DayLockedCompleted
	}
	return DayInProgress
}

// AllCompleted は Day 仕様の全種目が true か判定します。
// 種目ゼロの日は完了扱いにしない（カタログ欠損時のフェイルクローズ）
func (r *ProgressRecord) AllCompleted(day *Day) bool {
	if day == nil || len(day.Exercises) == 0 {
		return false
	}
	for _, ex := range day.Exercises {
		if !r.Exercises[ex.ExerciseID] {
			return false
		}
	}
	return true
}

// DayProgress はUIに返す1日分の進捗ビュー
type DayProgress struct {
	ProgramID string          `json:"program_id"`
	WeekID    string          `json:"week_id"`
	DayID     string          `json:"day_id"`
	State     DayState        `json:"state"`
	Locked    bool            `json:"locked"`
	Exercises map[string]bool `json:"exercises"`
	Notes     []ProgressNote  `json:"notes"`
}

// WeekStatusResponse は週単位の集計レスポンス
type WeekStatusResponse struct {
	ProgramID string              `json:"program_id"`
	WeekID    string              `json:"week_id"`
	Status    AggregateStatus     `json:"status"`
	Days      map[string]DayState `json:"days"`
}

// ProgramStatusResponse はプログラム単位の集計レスポンス
type ProgramStatusResponse struct {
	ProgramID string                     `json:"program_id"`
	Status    AggregateStatus            `json:"status"`
	Weeks     map[string]AggregateStatus `json:"weeks"`
}

// AddNoteRequest はメモ追記のDTO
type AddNoteRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// ToggleExerciseRequest は種目チェックのトグルDTO
type ToggleExerciseRequest struct {
	ExerciseID string `json:"exercise_id" validate:"required"`
}
