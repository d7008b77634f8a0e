package model

import (
	"time"

	"gorm.io/gorm"
)

// Model 各模型公用的时间戳与软删除字段，主键由各模型自行声明（UUID 字符串）
type Model struct {
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
