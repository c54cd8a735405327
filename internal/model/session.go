// internal/model/session.go
package model

// Screen はドリルダウンナビゲーションの画面
type Screen string

const (
	ScreenProgramList  Screen = "program_list"
	ScreenProgramInfo  Screen = "program_info"
	ScreenWeekList     Screen = "week_list"
	ScreenDayList      Screen = "day_list"
	ScreenExerciseList Screen = "exercise_list"
)

// SessionState はユーザーごとの選択状態。
// カレンダーは任意の画面から開ける直交オーバーレイで、閉じると元の画面に戻る
type SessionState struct {
	Screen       Screen       `json:"screen"`
	ProgramID    string       `json:"program_id,omitempty"`
	WeekID       string       `json:"week_id,omitempty"`
	DayID        string       `json:"day_id,omitempty"`
	CalendarOpen bool         `json:"calendar_open"`
	DayProgress  *DayProgress `json:"day_progress,omitempty"` // exercise_list 進入時にハイドレートされる
}

// SelectProgramRequest / SelectWeekRequest / SelectDayRequest はナビゲーションDTO
type SelectProgramRequest struct {
	ProgramID string `json:"program_id" validate:"required"`
}

type SelectWeekRequest struct {
	WeekID string `json:"week_id" validate:"required"`
}

type SelectDayRequest struct {
	DayID string `json:"day_id" validate:"required"`
}
