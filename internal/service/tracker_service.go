// internal/service/tracker_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go_5_fit_keep/internal/middleware"
	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrackerService interface {
	GetDayProgress(ctx context.Context, userID uuid.UUID, key model.ProgressKey) (*model.DayProgress, error)
	ToggleExercise(ctx context.Context, userID uuid.UUID, key model.ProgressKey, exerciseID string) (*model.DayProgress, error)
	AddNote(ctx context.Context, userID uuid.UUID, key model.ProgressKey, req *model.AddNoteRequest) (*model.DayProgress, error)
	CompleteDay(ctx context.Context, userID uuid.UUID, key model.ProgressKey) (*model.DayProgress, error)
	WeekStatus(ctx context.Context, userID uuid.UUID, programID, weekID string) (*model.WeekStatusResponse, error)
	ProgramStatus(ctx context.Context, userID uuid.UUID, programID string) (*model.ProgramStatusResponse, error)
}

type trackerService struct {
	db          *gorm.DB
	progRepo    repository.ProgressRepository
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
	mailer      Mailer
}

func NewTrackerService(db *gorm.DB, progRepo repository.ProgressRepository, catalogRepo repository.CatalogRepository, userRepo repository.UserRepository, mailer Mailer) TrackerService {
	return &trackerService{
		db:          db,
		progRepo:    progRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		mailer:      mailer,
	}
}

func (s *trackerService) GetDayProgress(ctx context.Context, userID uuid.UUID, key model.ProgressKey) (*model.DayProgress, error) {
	// カタログ上に存在しない日は進捗も存在しない扱い
	if _, err := s.catalogRepo.FindDay(ctx, key.ProgramID, key.WeekID, key.DayID); err != nil {
		return nil, err
	}

	rec, existed, err := s.progRepo.Find(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	return dayProgressView(key, rec, existed), nil
}

func (s *trackerService) ToggleExercise(ctx context.Context, userID uuid.UUID, key model.ProgressKey, exerciseID string) (*model.DayProgress, error) {
	day, err := s.catalogRepo.FindDay(ctx, key.ProgramID, key.WeekID, key.DayID)
	if err != nil {
		return nil, err
	}
	// その日の仕様に無い種目はトグルできない
	if !day.HasExercise(exerciseID) {
		return nil, model.NewAppError("INVALID_EXERCISE", "この日のメニューに含まれない種目です。", "exercise_id", model.ErrInvalidInput)
	}

	rec, err := s.progRepo.Mutate(ctx, userID, key, func(rec *model.ProgressRecord, existed bool) error {
		if rec.Completed {
			return model.ErrLocked
		}
		rec.Exercises[exerciseID] = !rec.Exercises[exerciseID]
		rec.UpdatedDate = today()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dayProgressView(key, rec, true), nil
}

func (s *trackerService) AddNote(ctx context.Context, userID uuid.UUID, key model.ProgressKey, req *model.AddNoteRequest) (*model.DayProgress, error) {
	if _, err := s.catalogRepo.FindDay(ctx, key.ProgramID, key.WeekID, key.DayID); err != nil {
		return nil, err
	}

	rec, err := s.progRepo.Mutate(ctx, userID, key, func(rec *model.ProgressRecord, existed bool) error {
		if rec.Completed {
			return model.ErrLocked
		}
		// メモは追記のみ。既存メモの編集・削除は提供しない
		rec.Notes = append(rec.Notes, model.ProgressNote{
			Text:      req.Text,
			CreatedAt: time.Now().UTC(),
		})
		rec.UpdatedDate = today()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dayProgressView(key, rec, true), nil
}

// CompleteDay は全種目が完了した日を確定し、以後の書き込みをロックします。
// 確定済みの日に再度呼んでも副作用はない（冪等）
func (s *trackerService) CompleteDay(ctx context.Context, userID uuid.UUID, key model.ProgressKey) (*model.DayProgress, error) {
	logger := middleware.GetLogger(ctx)

	day, err := s.catalogRepo.FindDay(ctx, key.ProgramID, key.WeekID, key.DayID)
	if err != nil {
		return nil, err
	}

	var alreadyCompleted bool
	rec, err := s.progRepo.Mutate(ctx, userID, key, func(rec *model.ProgressRecord, existed bool) error {
		if rec.Completed {
			alreadyCompleted = true
			return nil
		}
		// 全種目完了の判定は排他区間内で行う（確定と並行トグルの競合を防ぐ）
		if !rec.AllCompleted(day) {
			return model.NewAppError("DAY_NOT_DONE", "未完了の種目が残っています。", "", model.ErrInvalidInput)
		}
		rec.Completed = true
		rec.UpdatedDate = today()
		return nil
	})
	if err != nil {
		return nil, err
	}

	// プログラム全体が完了していればお祝いメールを送る（失敗してもAPI自体は成功）
	if !alreadyCompleted {
		if done, err := s.isProgramCompleted(ctx, userID, key.ProgramID); err != nil {
			logger.Warn("Failed to check program completion", "program_id", key.ProgramID, "error", err)
		} else if done {
			s.sendCompletionMail(ctx, userID, key.ProgramID)
		}
	}

	return dayProgressView(key, rec, true), nil
}

func (s *trackerService) WeekStatus(ctx context.Context, userID uuid.UUID, programID, weekID string) (*model.WeekStatusResponse, error) {
	week, err := s.catalogRepo.FindWeek(ctx, programID, weekID)
	if err != nil {
		return nil, err
	}
	return s.weekStatus(ctx, userID, programID, week)
}

func (s *trackerService) weekStatus(ctx context.Context, userID uuid.UUID, programID string, week *model.Week) (*model.WeekStatusResponse, error) {
	logger := middleware.GetLogger(ctx)

	days := make(map[string]model.DayState, len(week.Days))
	locked := 0
	touched := 0
	for _, dayID := range week.Days {
		key := model.ProgressKey{ProgramID: programID, WeekID: week.WeekID, DayID: dayID}
		rec, existed, err := s.progRepo.Find(ctx, userID, key)
		if err != nil {
			// 読めない日は未着手として数える（完了判定のフェイルクローズ）
			logger.Warn("Failed to read progress for aggregation", "key", key.String(), "error", err)
			days[dayID] = model.DayUnstarted
			continue
		}
		state := rec.State(existed)
		days[dayID] = state
		switch state {
		case model.DayLockedCompleted:
			locked++
			touched++
		case model.DayInProgress:
			touched++
		}
	}

	status := model.StatusNotStarted
	if len(week.Days) > 0 && locked == len(week.Days) {
		status = model.StatusCompleted
	} else if touched > 0 {
		status = model.StatusOngoing
	}

	return &model.WeekStatusResponse{
		ProgramID: programID,
		WeekID:    week.WeekID,
		Status:    status,
		Days:      days,
	}, nil
}

func (s *trackerService) ProgramStatus(ctx context.Context, userID uuid.UUID, programID string) (*model.ProgramStatusResponse, error) {
	program, err := s.catalogRepo.FindProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	weeks := make(map[string]model.AggregateStatus, len(program.Weeks))
	completed := 0
	touched := 0
	for _, weekID := range program.Weeks {
		week, err := s.catalogRepo.FindWeek(ctx, programID, weekID)
		if err != nil {
			// カタログ欠損週は未着手扱い（完了側には倒さない）
			middleware.GetLogger(ctx).Warn("Missing week in catalog", "program_id", programID, "week_id", weekID, "error", err)
			weeks[weekID] = model.StatusNotStarted
			continue
		}
		ws, err := s.weekStatus(ctx, userID, programID, week)
		if err != nil {
			return nil, err
		}
		weeks[weekID] = ws.Status
		switch ws.Status {
		case model.StatusCompleted:
			completed++
			touched++
		case model.StatusOngoing:
			touched++
		}
	}

	status := model.StatusNotStarted
	if len(program.Weeks) > 0 && completed == len(program.Weeks) {
		status = model.StatusCompleted
	} else if touched > 0 {
		status = model.StatusOngoing
	}

	return &model.ProgramStatusResponse{
		ProgramID: programID,
		Status:    status,
		Weeks:     weeks,
	}, nil
}

func (s *trackerService) isProgramCompleted(ctx context.Context, userID uuid.UUID, programID string) (bool, error) {
	ps, err := s.ProgramStatus(ctx, userID, programID)
	if err != nil {
		return false, err
	}
	return ps.Status == model.StatusCompleted, nil
}

func (s *trackerService) sendCompletionMail(ctx context.Context, userID uuid.UUID, programID string) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		logger.Warn("Failed to load user for completion mail", "user_id", userID.String(), "error", err)
		return
	}

	program, err := s.catalogRepo.FindProgram(ctx, programID)
	if err != nil {
		logger.Warn("Failed to load program for completion mail", "program_id", programID, "error", err)
		return
	}

	subject := fmt.Sprintf("プログラム「%s」完了おめでとうございます！", program.Name)
	body := fmt.Sprintf("%s さん\n\nプログラム「%s」の全トレーニングを完了しました。\n次のプログラムに挑戦しましょう！\n", user.Name, program.Name)
	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		logger.Warn("Failed to send completion mail", "to", user.Email, "error", err)
	}
}

func dayProgressView(key model.ProgressKey, rec *model.ProgressRecord, existed bool) *model.DayProgress {
	return &model.DayProgress{
		ProgramID: key.ProgramID,
		WeekID:    key.WeekID,
		DayID:     key.DayID,
		State:     rec.State(existed),
		Locked:    rec.Completed,
		Exercises: rec.Exercises,
		Notes:     rec.Notes,
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}
