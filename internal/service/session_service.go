// internal/service/session_service.go
package service

import (
	"context"
	"sync"

	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionService はユーザーごとの画面選択状態（ドリルダウンナビゲーション）を管理します。
// 状態はプロセス内メモリにのみ保持し、再起動でリセットされる。
type SessionService interface {
	GetSession(ctx context.Context, userID uuid.UUID) (*model.SessionState, error)
	SelectProgram(ctx context.Context, userID uuid.UUID, programID string) (*model.SessionState, error)
	StartProgram(ctx context.Context, userID uuid.UUID) (*model.SessionState, error)
	SelectWeek(ctx context.Context, userID uuid.UUID, weekID string) (*model.SessionState, error)
	SelectDay(ctx context.Context, userID uuid.UUID, dayID string) (*model.SessionState, error)
	Back(ctx context.Context, userID uuid.UUID) (*model.SessionState, error)
	OpenCalendar(ctx context.Context, userID uuid.UUID) (*model.SessionState, error)
	CloseCalendar(ctx context.Context, userID uuid.UUID) (*model.SessionState, error)
}

type sessionService struct {
	db       *gorm.DB
	catalog  CatalogService
	tracker  TrackerService
	userRepo repository.UserRepository

	mu       sync.RWMutex
	sessions map[uuid.UUID]*model.SessionState
}

func NewSessionService(db *gorm.DB, catalog CatalogService, tracker TrackerService, userRepo repository.UserRepository) SessionService {
	return &sessionService{
		db:       db,
		catalog:  catalog,
		tracker:  tracker,
		userRepo: userRepo,
		sessions: make(map[uuid.UUID]*model.SessionState),
	}
}

func (s *sessionService) GetSession(ctx context.Context, userID uuid.UUID) (*model.SessionState, error) {
	s.mu.RLock()
	state, ok := s.sessions[userID]
	s.mu.RUnlock()
	if !ok {
		return &model.SessionState{Screen: model.ScreenProgramList}, nil
	}
	copied := *state
	return &copied, nil
}

// SelectProgram はプログラムを選択します。
// 進行中プログラムなら週一覧へ直行、そうでなければ概要画面へ
func (s *sessionService) SelectProgram(ctx context.Context, userID uuid.UUID, programID string) (*model.SessionState, error) {
	if _, err := s.catalog.GetProgram(ctx, programID); err != nil {
		return nil, err
	}

	screen := model.ScreenProgramInfo
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err == nil && user.CurrentProgramID != nil && *user.CurrentProgramID == programID {
		screen = model.ScreenWeekList
	}

	return s.mutate(userID, func(state *model.SessionState) error {
		state.Screen = screen
		state.ProgramID = programID
		state.WeekID = ""
		state.DayID = ""
		state.DayProgress = nil
		return nil
	})
}

// StartProgram は概要画面で表示中のプログラムを開始します。
// すでに開始済みのプログラムを再度開始しても状態は変わらない（冪等）
func (s *sessionService) StartProgram(ctx context.Context, userID uuid.UUID) (*model.SessionState, error) {
	state, err := s.GetSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.ProgramID == "" {
		return nil, model.NewAppError("NO_PROGRAM_SELECTED", "プログラムが選択されていません。", "", model.ErrInvalidInput)
	}

	if err := s.userRepo.SetCurrentProgram(ctx, s.db, userID, state.ProgramID); err != nil {
		return nil, err
	}

	return s.mutate(userID, func(state *model.SessionState) error {
		state.Screen = model.ScreenWeekList
		return nil
	})
}

func (s *sessionService) SelectWeek(ctx context.Context, userID uuid.UUID, weekID string) (*model.SessionState, error) {
	state, err := s.GetSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.ProgramID == "" {
		return nil, model.NewAppError("NO_PROGRAM_SELECTED", "プログラムが選択されていません。", "", model.ErrInvalidInput)
	}

	if _, err := s.catalog.GetWeek(ctx, state.ProgramID, weekID); err != nil {
		return nil, err
	}

	return s.mutate(userID, func(state *model.SessionState) error {
		state.Screen = model.ScreenDayList
		state.WeekID = weekID
		state.DayID = ""
		state.DayProgress = nil
		return nil
	})
}

// SelectDay は曜日を選択し、その日の進捗をハイドレートして種目一覧へ進みます
func (s *sessionService) SelectDay(ctx context.Context, userID uuid.UUID, dayID string) (*model.SessionState, error) {
	state, err := s.GetSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.ProgramID == "" || state.WeekID == "" {
		return nil, model.NewAppError("NO_WEEK_SELECTED", "週が選択されていません。", "", model.ErrInvalidInput)
	}

	key := model.ProgressKey{ProgramID: state.ProgramID, WeekID: state.WeekID, DayID: dayID}
	progress, err := s.tracker.GetDayProgress(ctx, userID, key)
	if err != nil {
		return nil, err
	}

	return s.mutate(userID, func(state *model.SessionState) error {
		state.Screen = model.ScreenExerciseList
		state.DayID = dayID
		state.DayProgress = progress
		return nil
	})
}

// Back は1階層戻ります。カレンダーが開いていれば先にそれを閉じる
func (s *sessionService) Back(ctx context.Context, userID uuid.UUID) (*model.SessionState, error) {
	current, err := s.GetSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 週一覧からの戻り先は開始済みかどうかで分岐する。
	// 未開始プログラムなら概要画面、開始済み（現在のプログラム）ならルートへ
	backToInfo := false
	if !current.CalendarOpen && current.Screen == model.ScreenWeekList && current.ProgramID != "" {
		user, err := s.userRepo.FindByID(ctx, s.db, userID)
		if err != nil || user.CurrentProgramID == nil || *user.CurrentProgramID != current.ProgramID {
			backToInfo = true
		}
	}

	return s.mutate(userID, func(state *model.SessionState) error {
		if state.CalendarOpen {
			state.CalendarOpen = false
			return nil
		}
		switch state.Screen {
		case model.ScreenExerciseList:
			state.Screen = model.ScreenDayList
			state.DayID = ""
			state.DayProgress = nil
		case model.ScreenDayList:
			state.Screen = model.ScreenWeekList
			state.WeekID = ""
		case model.ScreenWeekList:
			if backToInfo {
				state.Screen = model.ScreenProgramInfo
			} else {
				state.Screen = model.ScreenProgramList
				state.ProgramID = ""
			}
		case model.ScreenProgramInfo:
			state.Screen = model.ScreenProgramList
			state.ProgramID = ""
		case model.ScreenProgramList:
			// 最上位ではなにもしない
		}
		return nil
	})
}

// カレンダーは任意の画面に重なる直交オーバーレイ。開閉で画面選択は変わらない
func (s *sessionService) OpenCalendar(ctx context.Context, userID uuid.UUID) (*model.SessionState, error) {
	return s.mutate(userID, func(state *model.SessionState) error {
		state.CalendarOpen = true
		return nil
	})
}

func (s *sessionService) CloseCalendar(ctx context.Context, userID uuid.UUID) (*model.SessionState, error) {
	return s.mutate(userID, func(state *model.SessionState) error {
		state.CalendarOpen = false
		return nil
	})
}

func (s *sessionService) mutate(userID uuid.UUID, fn func(state *model.SessionState) error) (*model.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[userID]
	if !ok {
		state = &model.SessionState{Screen: model.ScreenProgramList}
		s.sessions[userID] = state
	}
	if err := fn(state); err != nil {
		return nil, err
	}
	copied := *state
	return &copied, nil
}
