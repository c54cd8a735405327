// internal/service/user_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_fit_keep/internal/config"
	"go_5_fit_keep/internal/middleware"
	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, req *model.CreateUserRequest) (*model.User, string, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req *model.PatchUserRequest) (*model.User, error)
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	mailer   Mailer
	cfg      *config.Config
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository, mailer Mailer, cfg *config.Config) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
		mailer:   mailer,
		cfg:      cfg,
	}
}

// Register は新しいユーザーを登録し、APIアクセス用のトークンを発行します
func (s *userService) Register(ctx context.Context, req *model.CreateUserRequest) (*model.User, string, error) {
	logger := middleware.GetLogger(ctx)

	user := &model.User{
		UserID:        uuid.New(),
		Name:          req.Name,
		Email:         req.Email,
		Age:           req.Age,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Email already exists", "email", req.Email)
				return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.UserID)
	if err != nil {
		logger.Error("Failed to issue token", "user_id", user.UserID.String(), "error", err)
		return nil, "", model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの発行に失敗しました。", "", err)
	}

	// ウェルカムメールは失敗しても登録自体は成功扱い
	if err := s.mailer.Send(ctx, user.Email, "FitKeepへようこそ", user.Name+" さん、登録が完了しました。"); err != nil {
		logger.Warn("Failed to send welcome mail", "to", user.Email, "error", err)
	}

	return user, token, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.userRepo.FindByID(ctx, s.db, userID)
}

func (s *userService) UpdateUser(ctx context.Context, userID uuid.UUID, req *model.PatchUserRequest) (*model.User, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.HeightCm != nil {
		updates["height_cm"] = *req.HeightCm
	}
	if req.WeightKg != nil {
		updates["weight_kg"] = *req.WeightKg
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.ActivityLevel != nil {
		updates["activity_level"] = *req.ActivityLevel
	}
	if req.Goal != nil {
		updates["goal"] = *req.Goal
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Update(ctx, tx, userID, updates)
	})
	if err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(ctx, s.db, userID)
}

// issueToken は userID を subject とするHS256署名付きJWTを発行します
func (s *userService) issueToken(userID uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}
