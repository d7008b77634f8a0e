package entry

import (
	"time"

	"sober-october-system/internal/global/cache"
	"sober-october-system/internal/global/database"
	"sober-october-system/internal/global/jwt"
	"sober-october-system/internal/global/response"
	"sober-october-system/internal/model"
	"sober-october-system/internal/module/challenge"
	"sober-october-system/internal/module/habit"
	"sober-october-system/internal/module/progress"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// EntryUpsertReq 定义打卡请求的结构体
type EntryUpsertReq struct {
	Date      time.Time `json:"date" binding:"required"` // 打卡日期，服务端归一化到零点
	Completed bool      `json:"completed"`
	Count     *int      `json:"count" binding:"omitempty,gte=0"` // 计数型习惯的完成次数
}

// UpsertEntry 创建或更新某习惯当天的打卡记录
// 写入校验：不允许未来日期，不允许超出挑战窗口
func UpsertEntry(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	owned, ok := habit.FindOwned(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}

	var req EntryUpsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定打卡请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var parent model.Challenge
	if err := database.DB.First(&parent, "id = ?", owned.ChallengeID).Error; err != nil {
		log.Error("查询 challenge 表错误", "error", err, "challenge_id", owned.ChallengeID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	entryDate := progress.NormalizeDate(req.Date)
	today := progress.NormalizeDate(time.Now())
	startDate := progress.NormalizeDate(parent.StartDate)
	endDate := progress.NormalizeDate(parent.EndDate)

	if entryDate.After(today) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("不能为未来日期打卡"))
		return
	}
	if entryDate.Before(startDate) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("不能在挑战开始前打卡"))
		return
	}
	if entryDate.After(endDate) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("不能在挑战结束后打卡"))
		return
	}

	var existing model.DailyEntry
	err := database.DB.
		Where("habit_id = ? AND date = ?", owned.ID, entryDate).
		First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		existing = model.DailyEntry{
			ID:        uuid.NewString(),
			HabitID:   owned.ID,
			Date:      entryDate,
			Completed: req.Completed,
			Count:     req.Count,
		}
		if err := database.DB.Create(&existing).Error; err != nil {
			log.Error("插入打卡记录失败", "error", err, "habit_id", owned.ID)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	case err != nil:
		log.Error("查询 daily_entry 表错误", "error", err, "habit_id", owned.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	default:
		existing.Completed = req.Completed
		existing.Count = req.Count
		if err := database.DB.Save(&existing).Error; err != nil {
			log.Error("更新打卡记录失败", "error", err, "entry_id", existing.ID)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	// 打卡变化后失效进度缓存
	cache.InvalidateProgress(c.Request.Context(), owned.ChallengeID)
	response.Success(c, existing)
}

// ListHabitEntriesReq 定义打卡记录列表的查询参数结构体
type ListHabitEntriesReq struct {
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// ListHabitEntries 获取某习惯的打卡记录，按日期倒序
func ListHabitEntries(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	owned, ok := habit.FindOwned(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}

	var req ListHabitEntriesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定查询参数失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	query := database.DB.Where("habit_id = ?", owned.ID)
	if req.StartDate != nil {
		query = query.Where("date >= ?", progress.NormalizeDate(*req.StartDate))
	}
	if req.EndDate != nil {
		query = query.Where("date <= ?", progress.NormalizeDate(*req.EndDate))
	}

	var entries []model.DailyEntry
	if err := query.Order("date DESC").Find(&entries).Error; err != nil {
		log.Error("查询 daily_entry 表错误", "error", err, "habit_id", owned.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, entries)
}

// ListChallengeEntriesByDate 获取挑战下活跃习惯在某天的全部打卡记录
func ListChallengeEntriesByDate(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	owned, ok := challenge.FindOwned(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("日期格式应为 YYYY-MM-DD"))
		return
	}

	var entries []model.DailyEntry
	if err := database.DB.
		Where("date = ?", progress.NormalizeDate(date)).
		Where("habit_id IN (?)", database.DB.Model(&model.Habit{}).
			Select("id").
			Where("challenge_id = ? AND is_active = ?", owned.ID, true),
		).
		Find(&entries).Error; err != nil {
		log.Error("查询 daily_entry 表错误", "error", err, "challenge_id", owned.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, entries)
}

// EntryUpdateReq 定义修改打卡记录请求的结构体
type EntryUpdateReq struct {
	Completed *bool `json:"completed"`
	Count     *int  `json:"count" binding:"omitempty,gte=0"`
}

// UpdateEntry 修改打卡记录的完成状态或计数
func UpdateEntry(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	entry, challengeID, ok := findOwnedEntry(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}

	var req EntryUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定修改打卡请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.Completed != nil {
		entry.Completed = *req.Completed
	}
	if req.Count != nil {
		entry.Count = req.Count
	}
	if err := database.DB.Save(entry).Error; err != nil {
		log.Error("更新打卡记录失败", "error", err, "entry_id", entry.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	cache.InvalidateProgress(c.Request.Context(), challengeID)
	response.Success(c, entry)
}

// DeleteEntry 删除打卡记录
func DeleteEntry(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	entry, challengeID, ok := findOwnedEntry(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}

	if err := database.DB.Delete(entry).Error; err != nil {
		log.Error("删除打卡记录失败", "error", err, "entry_id", entry.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	cache.InvalidateProgress(c.Request.Context(), challengeID)
	response.Success(c)
}

// findOwnedEntry 经 entry -> habit -> challenge 校验归属，返回所属挑战ID用于缓存失效
func findOwnedEntry(c *gin.Context, entryID, userID string) (*model.DailyEntry, string, bool) {
	if entryID == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("记录ID不能为空"))
		return nil, "", false
	}

	var result struct {
		model.DailyEntry
		ChallengeID string
	}
	err := database.DB.Model(&model.DailyEntry{}).
		Select("daily_entry.*, habit.challenge_id AS challenge_id").
		Joins("JOIN habit ON habit.id = daily_entry.habit_id AND habit.deleted_at IS NULL").
		Joins("JOIN challenge ON challenge.id = habit.challenge_id AND challenge.deleted_at IS NULL").
		Where("daily_entry.id = ? AND challenge.user_id = ?", entryID, userID).
		First(&result).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("打卡记录不存在"))
		return nil, "", false
	case err != nil:
		log.Error("查询 daily_entry 表错误", "error", err, "entry_id", entryID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return nil, "", false
	}
	return &result.DailyEntry, result.ChallengeID, true
}
