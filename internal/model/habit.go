package model

type HabitType string

const (
	HabitBinary  HabitType = "binary"  // 完成/未完成
	HabitCounted HabitType = "counted" // 计数型，带目标次数
)

type Habit struct {
	Model
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ChallengeID   string    `gorm:"type:varchar(36);not null;index" json:"challenge_id"`
	Name          string    `gorm:"type:varchar(200);not null" json:"name"`
	Type          HabitType `gorm:"type:varchar(16);not null" json:"type"`
	TargetCount   *int      `json:"target_count"`                             // 计数型习惯的目标次数
	PreferredTime *string   `gorm:"type:varchar(50)" json:"preferred_time"`   // morning / afternoon / evening / all_day
	Order         int       `gorm:"column:display_order;not null;default:0" json:"order"` // 展示顺序
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	TemplateID    *string   `gorm:"type:varchar(100)" json:"template_id"` // 由模板创建时记录模板 ID
	Challenge     Challenge `gorm:"foreignKey:ChallengeID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Entries       []DailyEntry `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE" json:"-"`
}
