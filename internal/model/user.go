package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ユーザーの基本情報と身体情報
// プロフィールはリレーショナルに保持する（ドキュメントストア管理外の唯一のエンティティ）
type User struct {
	UserID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name             string         `gorm:"not null" json:"name"`
	Email            string         `gorm:"unique;not null" json:"email"`
	Age              int            `json:"age"`
	HeightCm         float64        `json:"height_cm"`
	WeightKg         float64        `json:"weight_kg"`
	Gender           string         `json:"gender"`         // "male" | "female"
	ActivityLevel    string         `json:"activity_level"` // sedentary | light | moderate | active | very-active
	Goal             string         `json:"goal"`           // lose-fat | gain-muscle | maintain
	CurrentProgramID *string        `json:"current_program_id,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// CreateUserRequest は新規ユーザー登録APIのリクエストボディ (DTO)
type CreateUserRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	Email         string  `json:"email" validate:"required,email"`
	Age           int     `json:"age" validate:"omitempty,min=0,max=130"`
	HeightCm      float64 `json:"height_cm" validate:"omitempty,min=0"`
	WeightKg      float64 `json:"weight_kg" validate:"omitempty,min=0"`
	Gender        string  `json:"gender" validate:"omitempty,oneof=male female"`
	ActivityLevel string  `json:"activity_level" validate:"omitempty"`
	Goal          string  `json:"goal" validate:"omitempty"`
}

// PatchUserRequest はプロフィール部分更新のDTO
type PatchUserRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Age           *int     `json:"age,omitempty" validate:"omitempty,min=0,max=130"`
	HeightCm      *float64 `json:"height_cm,omitempty" validate:"omitempty,min=0"`
	WeightKg      *float64 `json:"weight_kg,omitempty" validate:"omitempty,min=0"`
	Gender        *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	ActivityLevel *string  `json:"activity_level,omitempty"`
	Goal          *string  `json:"goal,omitempty"`
}

// UserResponse はクライアントに返すユーザー情報の構造体
type UserResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Age              int       `json:"age"`
	HeightCm         float64   `json:"height_cm"`
	WeightKg         float64   `json:"weight_kg"`
	Gender           string    `json:"gender"`
	ActivityLevel    string    `json:"activity_level"`
	Goal             string    `json:"goal"`
	CurrentProgramID *string   `json:"current_program_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		UserID:           u.UserID,
		Name:             u.Name,
		Email:            u.Email,
		Age:              u.Age,
		HeightCm:         u.HeightCm,
		WeightKg:         u.WeightKg,
		Gender:           u.Gender,
		ActivityLevel:    u.ActivityLevel,
		Goal:             u.Goal,
		CurrentProgramID: u.CurrentProgramID,
		CreatedAt:        u.CreatedAt,
	}
}
