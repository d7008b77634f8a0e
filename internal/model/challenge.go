package model

import "time"

type ChallengeStatus string

const (
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
	ChallengeAbandoned ChallengeStatus = "abandoned"
)

// Challenge 30天挑战，EndDate 在创建时由 StartDate 推算
type Challenge struct {
	Model
	ID        string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string          `gorm:"type:varchar(36);not null;index" json:"user_id"`
	StartDate time.Time       `gorm:"not null" json:"start_date"` // 归一化到零点
	EndDate   time.Time       `gorm:"not null" json:"end_date"`
	Status    ChallengeStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	User      User            `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Habits    []Habit         `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE" json:"habits,omitempty"`
}
