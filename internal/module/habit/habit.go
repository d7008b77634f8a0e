package habit

import (
	"sober-october-system/config"
	"sober-october-system/internal/global/database"
	"sober-october-system/internal/global/jwt"
	"sober-october-system/internal/global/response"
	"sober-october-system/internal/model"
	"sober-october-system/internal/module/challenge"
	"sober-october-system/internal/module/template"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// habitView 在习惯之上附加模板图标，图标不入库、读取时解析
type habitView struct {
	model.Habit
	Icon string `json:"icon,omitempty"`
}

func newHabitView(h model.Habit) habitView {
	view := habitView{Habit: h}
	if h.TemplateID != nil {
		if tpl, ok := template.Lookup(*h.TemplateID); ok {
			view.Icon = tpl.Icon
		}
	}
	return view
}

// ListHabits 获取挑战下的习惯列表，按展示顺序排列
func ListHabits(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	owned, ok := challenge.FindOwned(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}

	var habits []model.Habit
	if err := database.DB.
		Where("challenge_id = ?", owned.ID).
		Order("display_order ASC").
		Find(&habits).Error; err != nil {
		log.Error("查询 habit 表错误", "error", err, "challenge_id", owned.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	views := make([]habitView, 0, len(habits))
	for _, h := range habits {
		views = append(views, newHabitView(h))
	}
	response.Success(c, views)
}

// HabitCreateReq 定义创建习惯请求的结构体
type HabitCreateReq struct {
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Type          model.HabitType `json:"type" binding:"required,oneof=binary counted"`
	TargetCount   *int            `json:"target_count" binding:"omitempty,gte=1"` // 仅计数型有意义
	PreferredTime *string         `json:"preferred_time" binding:"omitempty,max=50"`
	Order         *int            `json:"order" binding:"omitempty,gte=0"`
	TemplateID    *string         `json:"template_id" binding:"omitempty,max=100"`
}

// CreateHabit 在挑战下创建习惯，活跃习惯数量有上限
func CreateHabit(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	owned, ok := challenge.FindOwned(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}

	var req HabitCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建习惯请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	activeCount, err := countActiveHabits(owned.ID)
	if err != nil {
		log.Error("查询 habit 表错误", "error", err, "challenge_id", owned.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	maxHabits := config.Get().Challenge.MaxHabits
	if activeCount >= int64(maxHabits) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("每个挑战最多创建10个习惯"))
		return
	}

	habit := buildHabit(owned.ID, req, int(activeCount))
	if err := database.DB.Create(&habit).Error; err != nil {
		log.Error("创建习惯失败", "error", err, "challenge_id", owned.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("习惯创建成功", "habit_id", habit.ID, "challenge_id", owned.ID)
	response.Success(c, newHabitView(habit))
}

// HabitBulkCreateReq 定义批量创建习惯请求的结构体
type HabitBulkCreateReq struct {
	Habits []HabitCreateReq `json:"habits" binding:"required,min=1,max=10,dive"`
}

// BulkCreateHabits 批量创建习惯，整体受同一数量上限约束，事务内完成
func BulkCreateHabits(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	owned, ok := challenge.FindOwned(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}

	var req HabitBulkCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定批量创建习惯请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	activeCount, err := countActiveHabits(owned.ID)
	if err != nil {
		log.Error("查询 habit 表错误", "error", err, "challenge_id", owned.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	maxHabits := config.Get().Challenge.MaxHabits
	if activeCount+int64(len(req.Habits)) > int64(maxHabits) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("每个挑战最多创建10个习惯"))
		return
	}

	habits := make([]model.Habit, 0, len(req.Habits))
	for i, hr := range req.Habits {
		habits = append(habits, buildHabit(owned.ID, hr, int(activeCount)+i))
	}
	if err := database.DB.Create(&habits).Error; err != nil {
		log.Error("批量创建习惯失败", "error", err, "challenge_id", owned.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	views := make([]habitView, 0, len(habits))
	for _, h := range habits {
		views = append(views, newHabitView(h))
	}
	response.Success(c, views)
}

// buildHabit 由请求体组装习惯模型，未指定顺序时排到队尾
func buildHabit(challengeID string, req HabitCreateReq, fallbackOrder int) model.Habit {
	order := fallbackOrder
	if req.Order != nil {
		order = *req.Order
	}
	return model.Habit{
		ID:            uuid.NewString(),
		ChallengeID:   challengeID,
		Name:          req.Name,
		Type:          req.Type,
		TargetCount:   req.TargetCount,
		PreferredTime: req.PreferredTime,
		Order:         order,
		IsActive:      true,
		TemplateID:    req.TemplateID,
	}
}

func countActiveHabits(challengeID string) (int64, error) {
	var count int64
	err := database.DB.Model(&model.Habit{}).
		Where("challenge_id = ? AND is_active = ?", challengeID, true).
		Count(&count).Error
	return count, err
}

// GetHabit 获取习惯详情
func GetHabit(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	habit, ok := FindOwned(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}
	response.Success(c, newHabitView(*habit))
}

// HabitUpdateReq 定义更新习惯请求的结构体，指针字段支持部分更新
type HabitUpdateReq struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Type          *model.HabitType `json:"type" binding:"omitempty,oneof=binary counted"`
	TargetCount   *int             `json:"target_count" binding:"omitempty,gte=1"`
	PreferredTime *string          `json:"preferred_time" binding:"omitempty,max=50"`
	Order         *int             `json:"order" binding:"omitempty,gte=0"`
	IsActive      *bool            `json:"is_active"`
}

// UpdateHabit 部分更新习惯，is_active=false 即归档
func UpdateHabit(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	habit, ok := FindOwned(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}

	var req HabitUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定更新习惯请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.Name != nil {
		habit.Name = *req.Name
	}
	if req.Type != nil {
		habit.Type = *req.Type
	}
	if req.TargetCount != nil {
		habit.TargetCount = req.TargetCount
	}
	if req.PreferredTime != nil {
		habit.PreferredTime = req.PreferredTime
	}
	if req.Order != nil {
		habit.Order = *req.Order
	}
	if req.IsActive != nil {
		habit.IsActive = *req.IsActive
	}

	if err := database.DB.Save(habit).Error; err != nil {
		log.Error("更新习惯失败", "error", err, "habit_id", habit.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, newHabitView(*habit))
}

// DeleteHabit 删除习惯及其全部打卡记录
func DeleteHabit(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	habit, ok := FindOwned(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habit.ID).Delete(&model.DailyEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(habit).Error
	})
	if err != nil {
		log.Error("删除习惯失败", "error", err, "habit_id", habit.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c)
}

// FindOwned 经 habit -> challenge 校验归属，失败时已写入响应
func FindOwned(c *gin.Context, habitID, userID string) (*model.Habit, bool) {
	if habitID == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("习惯ID不能为空"))
		return nil, false
	}

	var habit model.Habit
	err := database.DB.
		Joins("JOIN challenge ON challenge.id = habit.challenge_id AND challenge.deleted_at IS NULL").
		Where("habit.id = ? AND challenge.user_id = ?", habitID, userID).
		First(&habit).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("习惯不存在"))
		return nil, false
	case err != nil:
		log.Error("查询 habit 表错误", "error", err, "habit_id", habitID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return nil, false
	}
	return &habit, true
}
