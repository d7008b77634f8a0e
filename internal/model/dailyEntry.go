package model

import "time"

// DailyEntry 每日打卡记录，(habit_id, date) 唯一
type DailyEntry struct {
	Model
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	HabitID   string    `gorm:"type:varchar(36);not null;uniqueIndex:uix_habit_date" json:"habit_id"`
	Date      time.Time `gorm:"not null;uniqueIndex:uix_habit_date" json:"date"` // 归一化到零点
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	Count     *int      `json:"count"` // 计数型习惯的完成次数
	Habit     Habit     `gorm:"foreignKey:HabitID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
