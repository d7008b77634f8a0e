package model

const (
	RoleUser  = 0
	RoleAdmin = 1
)

type User struct {
	Model
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`   // Google 账号邮箱
	Name     string `gorm:"type:varchar(255);not null" json:"name"`                // 用户姓名
	Picture  string `gorm:"type:varchar(512)" json:"picture"`                      // Google 头像 URL
	GoogleID string `gorm:"type:varchar(64);not null;uniqueIndex" json:"-"`        // Google 账号标识
	RoleID   int    `gorm:"not null;default:0" json:"role_id"`                     // 0 普通用户 1 管理员
}
