// internal/service/tracker_service_test.go
package service

import (
	"context"
	"sync"
	"testing"

	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// captureMailer はテスト用のメール送信記録
type captureMailer struct {
	mu   sync.Mutex
	sent []string // "to|subject"
}

func (m *captureMailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}

func testDay(programID, weekID, dayID string, exerciseIDs ...string) *model.Day {
	day := &model.Day{DayID: dayID, WeekID: weekID, ProgramID: programID}
	for i, id := range exerciseIDs {
		day.Exercises = append(day.Exercises, model.Exercise{ExerciseID: id, Name: id, Order: i})
	}
	return day
}

// mutateWith はモックの Mutate を実レコードに対して実行させるヘルパー
func mutateWith(rec *model.ProgressRecord, existed bool) func(context.Context, uuid.UUID, model.ProgressKey, func(*model.ProgressRecord, bool) error) (*model.ProgressRecord, error) {
	return func(ctx context.Context, userID uuid.UUID, key model.ProgressKey, fn func(*model.ProgressRecord, bool) error) (*model.ProgressRecord, error) {
		if err := fn(rec, existed); err != nil {
			return nil, err
		}
		return rec, nil
	}
}

func TestTrackerService_ToggleExercise(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := model.ProgressKey{ProgramID: "beginner", WeekID: "week1", DayID: "monday"}

	tests := []struct {
		name        string
		exerciseID  string
		setupMock   func(progRepo *mocks.ProgressRepository, catalogRepo *mocks.CatalogRepository)
		wantErr     error
		checkResult func(t *testing.T, dp *model.DayProgress)
	}{
		{
			name:       "正常系: 未完了の種目をトグルできる",
			exerciseID: "squat",
			setupMock: func(progRepo *mocks.ProgressRepository, catalogRepo *mocks.CatalogRepository) {
				catalogRepo.On("FindDay", ctx, "beginner", "week1", "monday").
					Return(testDay("beginner", "week1", "monday", "squat", "bench"), nil).Once()
				progRepo.On("Mutate", ctx, userID, key, mock.AnythingOfType("func(*model.ProgressRecord, bool) error")).
					Return(mutateWith(model.NewProgressRecord(), false)).Once()
			},
			checkResult: func(t *testing.T, dp *model.DayProgress) {
				assert.True(t, dp.Exercises["squat"])
				assert.Equal(t, model.DayInProgress, dp.State)
				assert.False(t, dp.Locked)
			},
		},
		{
			name:       "異常系: 日のメニューに無い種目は ErrInvalidInput",
			exerciseID: "deadlift",
			setupMock: func(progRepo *mocks.ProgressRepository, catalogRepo *mocks.CatalogRepository) {
				catalogRepo.On("FindDay", ctx, "beginner", "week1", "monday").
					Return(testDay("beginner", "week1", "monday", "squat", "bench"), nil).Once()
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:       "異常系: カタログに無い日は ErrNotFound",
			exerciseID: "squat",
			setupMock: func(progRepo *mocks.ProgressRepository, catalogRepo *mocks.CatalogRepository) {
				catalogRepo.On("FindDay", ctx, "beginner", "week1", "monday").
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name:       "異常系: 確定済みの日は ErrLocked",
			exerciseID: "squat",
			setupMock: func(progRepo *mocks.ProgressRepository, catalogRepo *mocks.CatalogRepository) {
				catalogRepo.On("FindDay", ctx, "beginner", "week1", "monday").
					Return(testDay("beginner", "week1", "monday", "squat", "bench"), nil).Once()
				locked := model.NewProgressRecord()
				locked.Completed = true
				progRepo.On("Mutate", ctx, userID, key, mock.AnythingOfType("func(*model.ProgressRecord, bool) error")).
					Return(mutateWith(locked, true)).Once()
			},
			wantErr: model.ErrLocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progRepo := new(mocks.ProgressRepository)
			catalogRepo := new(mocks.CatalogRepository)
			userRepo := new(mocks.UserRepository)
			tt.setupMock(progRepo, catalogRepo)

			svc := NewTrackerService(nil, progRepo, catalogRepo, userRepo, &captureMailer{})
			dp, err := svc.ToggleExercise(ctx, userID, key, tt.exerciseID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				tt.checkResult(t, dp)
			}
			progRepo.AssertExpectations(t)
			catalogRepo.AssertExpectations(t)
		})
	}
}

func TestTrackerService_ToggleExercise_Twice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := model.ProgressKey{ProgramID: "beginner", WeekID: "week1", DayID: "monday"}

	progRepo := new(mocks.ProgressRepository)
	catalogRepo := new(mocks.CatalogRepository)
	rec := model.NewProgressRecord()

	catalogRepo.On("FindDay", ctx, "beginner", "week1", "monday").
		Return(testDay("beginner", "week1", "monday", "squat"), nil).Twice()
	progRepo.On("Mutate", ctx, userID, key, mock.AnythingOfType("func(*model.ProgressRecord, bool) error")).
		Return(mutateWith(rec, true)).Twice()

	svc := NewTrackerService(nil, progRepo, catalogRepo, new(mocks.UserRepository), &captureMailer{})

	dp, err := svc.ToggleExercise(ctx, userID, key, "squat")
	require.NoError(t, err)
	assert.True(t, dp.Exercises["squat"])

	// 2回目のトグルで元に戻る
	dp, err = svc.ToggleExercise(ctx, userID, key, "squat")
	require.NoError(t, err)
	assert.False(t, dp.Exercises["squat"])
}

func TestTrackerService_AddNote(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := model.ProgressKey{ProgramID: "beginner", WeekID: "week1", DayID: "monday"}

	t.Run("正常系: メモが追記される", func(t *testing.T) {
		progRepo := new(mocks.ProgressRepository)
		catalogRepo := new(mocks.CatalogRepository)
		rec := model.NewProgressRecord()
		rec.Notes = append(rec.Notes, model.ProgressNote{Text: "first"})

		catalogRepo.On("FindDay", ctx, "beginner", "week1", "monday").
			Return(testDay("beginner", "week1", "monday", "squat"), nil).Once()
		progRepo.On("Mutate", ctx, userID, key, mock.AnythingOfType("func(*model.ProgressRecord, bool) error")).
			Return(mutateWith(rec, true)).Once()

		svc := NewTrackerService(nil, progRepo, catalogRepo, new(mocks.UserRepository), &captureMailer{})
		dp, err := svc.AddNote(ctx, userID, key, &model.AddNoteRequest{Text: "second"})
		require.NoError(t, err)
		require.Len(t, dp.Notes, 2)
		assert.Equal(t, "first", dp.Notes[0].Text)
		assert.Equal(t, "second", dp.Notes[1].Text)
		assert.False(t, dp.Notes[1].CreatedAt.IsZero())
	})

	t.Run("異常系: 確定済みの日には追記できない", func(t *testing.T) {
		progRepo := new(mocks.ProgressRepository)
		catalogRepo := new(mocks.CatalogRepository)
		locked := model.NewProgressRecord()
		locked.Completed = true

		catalogRepo.On("FindDay", ctx, "beginner", "week1", "monday").
			Return(testDay("beginner", "week1", "monday", "squat"), nil).Once()
		progRepo.On("Mutate", ctx, userID, key, mock.AnythingOfType("func(*model.ProgressRecord, bool) error")).
			Return(mutateWith(locked, true)).Once()

		svc := NewTrackerService(nil, progRepo, catalogRepo, new(mocks.UserRepository), &captureMailer{})
		_, err := svc.AddNote(ctx, userID, key, &model.AddNoteRequest{Text: "late note"})
		assert.ErrorIs(t, err, model.ErrLocked)
	})
}

func TestTrackerService_CompleteDay(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := model.ProgressKey{ProgramID: "beginner", WeekID: "week1", DayID: "monday"}
	day := testDay("beginner", "week1", "monday", "squat", "bench")

	t.Run("異常系: 未完了の種目が残っていたら確定できない", func(t *testing.T) {
		progRepo := new(mocks.ProgressRepository)
		catalogRepo := new(mocks.CatalogRepository)
		rec := model.NewProgressRecord()
		rec.Exercises["squat"] = true // bench が未完了

		catalogRepo.On("FindDay", ctx, "beginner", "week1", "monday").Return(day, nil).Once()
		progRepo.On("Mutate", ctx, userID, key, mock.AnythingOfType("func(*model.ProgressRecord, bool) error")).
			Return(mutateWith(rec, true)).Once()

		svc := NewTrackerService(nil, progRepo, catalogRepo, new(mocks.UserRepository), &captureMailer{})
		_, err := svc.CompleteDay(ctx, userID, key)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.False(t, rec.Completed)
	})

	t.Run("正常系: 確定済みの日への再確定は冪等", func(t *testing.T) {
		progRepo := new(mocks.ProgressRepository)
		catalogRepo := new(mocks.CatalogRepository)
		mailer := &captureMailer{}
		rec := model.NewProgressRecord()
		rec.Exercises["squat"] = true
		rec.Exercises["bench"] = true
		rec.Completed = true

		catalogRepo.On("FindDay", ctx, "beginner", "week1", "monday").Return(day, nil).Once()
		progRepo.On("Mutate", ctx, userID, key, mock.AnythingOfType("func(*model.ProgressRecord, bool) error")).
			Return(mutateWith(rec, true)).Once()

		svc := NewTrackerService(nil, progRepo, catalogRepo, new(mocks.UserRepository), mailer)
		dp, err := svc.CompleteDay(ctx, userID, key)
		require.NoError(t, err)
		assert.Equal(t, model.DayLockedCompleted, dp.State)
		assert.True(t, dp.Locked)
		// 再確定ではメールを送らない
		assert.Empty(t, mailer.sent)
	})

	t.Run("正常系: 最後の日の確定でプログラム完了メールが送られる", func(t *testing.T) {
		progRepo := new(mocks.ProgressRepository)
		catalogRepo := new(mocks.CatalogRepository)
		userRepo := new(mocks.UserRepository)
		mailer := &captureMailer{}

		// 1週1日だけの最小プログラム
		program := &model.Program{ProgramID: "beginner", Name: "Beginner Strength", Weeks: []string{"week1"}}
		week := &model.Week{WeekID: "week1", ProgramID: "beginner", Days: []string{"monday"}}
		rec := model.NewProgressRecord()
		rec.Exercises["squat"] = true
		rec.Exercises["bench"] = true

		catalogRepo.On("FindDay", ctx, "beginner", "week1", "monday").Return(day, nil).Once()
		progRepo.On("Mutate", ctx, userID, key, mock.AnythingOfType("func(*model.ProgressRecord, bool) error")).
			Return(mutateWith(rec, true)).Once()

		// 完了判定のための集計読み取り
		catalogRepo.On("FindProgram", ctx, "beginner").Return(program, nil)
		catalogRepo.On("FindWeek", ctx, "beginner", "week1").Return(week, nil).Once()
		progRepo.On("Find", ctx, userID, key).Return(rec, true, nil).Once()
		userRepo.On("FindByID", ctx, mock.Anything, userID).
			Return(&model.User{UserID: userID, Name: "Taro", Email: "taro@example.com"}, nil).Once()

		svc := NewTrackerService(nil, progRepo, catalogRepo, userRepo, mailer)
		dp, err := svc.CompleteDay(ctx, userID, key)
		require.NoError(t, err)
		assert.True(t, dp.Locked)
		require.Len(t, mailer.sent, 1)
		assert.Contains(t, mailer.sent[0], "taro@example.com")
	})
}

func TestTrackerService_WeekStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	week := &model.Week{WeekID: "week1", ProgramID: "beginner", Days: []string{"monday", "wednesday", "friday"}}

	lockedRec := model.NewProgressRecord()
	lockedRec.Completed = true
	inProgressRec := model.NewProgressRecord()
	inProgressRec.Exercises["squat"] = true

	tests := []struct {
		name       string
		recs       map[string]*model.ProgressRecord // dayID -> record (nil = 未作成)
		wantStatus model.AggregateStatus
	}{
		{
			name:       "正常系: 全日未着手なら not-started",
			recs:       map[string]*model.ProgressRecord{},
			wantStatus: model.StatusNotStarted,
		},
		{
			name:       "正常系: 1日でも進行中なら ongoing",
			recs:       map[string]*model.ProgressRecord{"monday": inProgressRec},
			wantStatus: model.StatusOngoing,
		},
		{
			name:       "正常系: 一部確定でも ongoing",
			recs:       map[string]*model.ProgressRecord{"monday": lockedRec, "wednesday": lockedRec},
			wantStatus: model.StatusOngoing,
		},
		{
			name:       "正常系: 全日確定で completed",
			recs:       map[string]*model.ProgressRecord{"monday": lockedRec, "wednesday": lockedRec, "friday": lockedRec},
			wantStatus: model.StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progRepo := new(mocks.ProgressRepository)
			catalogRepo := new(mocks.CatalogRepository)
			catalogRepo.On("FindWeek", ctx, "beginner", "week1").Return(week, nil).Once()
			for _, dayID := range week.Days {
				key := model.ProgressKey{ProgramID: "beginner", WeekID: "week1", DayID: dayID}
				if rec, ok := tt.recs[dayID]; ok {
					progRepo.On("Find", ctx, userID, key).Return(rec, true, nil).Once()
				} else {
					progRepo.On("Find", ctx, userID, key).Return(model.NewProgressRecord(), false, nil).Once()
				}
			}

			svc := NewTrackerService(nil, progRepo, catalogRepo, new(mocks.UserRepository), &captureMailer{})
			ws, err := svc.WeekStatus(ctx, userID, "beginner", "week1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, ws.Status)
			assert.Len(t, ws.Days, 3)
		})
	}
}

func TestTrackerService_ProgramStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	program := &model.Program{ProgramID: "beginner", Name: "Beginner Strength", Weeks: []string{"week1", "week2"}}
	week1 := &model.Week{WeekID: "week1", ProgramID: "beginner", Days: []string{"monday"}}
	week2 := &model.Week{WeekID: "week2", ProgramID: "beginner", Days: []string{"monday"}}

	lockedRec := model.NewProgressRecord()
	lockedRec.Completed = true

	t.Run("正常系: 1週完了・1週未着手なら ongoing", func(t *testing.T) {
		progRepo := new(mocks.ProgressRepository)
		catalogRepo := new(mocks.CatalogRepository)
		catalogRepo.On("FindProgram", ctx, "beginner").Return(program, nil).Once()
		catalogRepo.On("FindWeek", ctx, "beginner", "week1").Return(week1, nil).Once()
		catalogRepo.On("FindWeek", ctx, "beginner", "week2").Return(week2, nil).Once()
		progRepo.On("Find", ctx, userID, model.ProgressKey{ProgramID: "beginner", WeekID: "week1", DayID: "monday"}).
			Return(lockedRec, true, nil).Once()
		progRepo.On("Find", ctx, userID, model.ProgressKey{ProgramID: "beginner", WeekID: "week2", DayID: "monday"}).
			Return(model.NewProgressRecord(), false, nil).Once()

		svc := NewTrackerService(nil, progRepo, catalogRepo, new(mocks.UserRepository), &captureMailer{})
		ps, err := svc.ProgramStatus(ctx, userID, "beginner")
		require.NoError(t, err)
		assert.Equal(t, model.StatusOngoing, ps.Status)
		assert.Equal(t, model.StatusCompleted, ps.Weeks["week1"])
		assert.Equal(t, model.StatusNotStarted, ps.Weeks["week2"])
	})

	t.Run("正常系: カタログ欠損週は未着手扱い（完了側に倒さない）", func(t *testing.T) {
		progRepo := new(mocks.ProgressRepository)
		catalogRepo := new(mocks.CatalogRepository)
		catalogRepo.On("FindProgram", ctx, "beginner").Return(program, nil).Once()
		catalogRepo.On("FindWeek", ctx, "beginner", "week1").Return(week1, nil).Once()
		catalogRepo.On("FindWeek", ctx, "beginner", "week2").Return(nil, model.ErrNotFound).Once()
		progRepo.On("Find", ctx, userID, model.ProgressKey{ProgramID: "beginner", WeekID: "week1", DayID: "monday"}).
			Return(lockedRec, true, nil).Once()

		svc := NewTrackerService(nil, progRepo, catalogRepo, new(mocks.UserRepository), &captureMailer{})
		ps, err := svc.ProgramStatus(ctx, userID, "beginner")
		require.NoError(t, err)
		assert.Equal(t, model.StatusOngoing, ps.Status)
		assert.Equal(t, model.StatusNotStarted, ps.Weeks["week2"])
	})
}
