package progress

import (
	"encoding/json"
	"time"

	"sober-october-system/config"
	"sober-october-system/internal/global/cache"
	"sober-october-system/internal/global/database"
	"sober-october-system/internal/global/jwt"
	"sober-october-system/internal/global/response"
	"sober-october-system/internal/model"
	"sober-october-system/internal/module/template"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetChallengeProgress 获取挑战进度报告
// 数据一次性取出后交给纯函数计算，结果短暂缓存，打卡写入时失效
func GetChallengeProgress(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	challengeID := c.Param("id")
	if challengeID == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("挑战ID不能为空"))
		return
	}

	var challenge model.Challenge
	err := database.DB.
		Where("id = ? AND user_id = ?", challengeID, payload.UserID).
		First(&challenge).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("挑战不存在"))
		return
	case err != nil:
		log.Error("查询 challenge 表错误", "error", err, "challenge_id", challengeID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 缓存命中直接返回
	if raw, ok := cache.GetProgress(c.Request.Context(), challenge.ID); ok {
		var cached Report
		if err := json.Unmarshal(raw, &cached); err == nil {
			response.Success(c, cached)
			return
		}
	}

	now := time.Now()

	var habits []model.Habit
	if err := database.DB.
		Where("challenge_id = ? AND is_active = ?", challenge.ID, true).
		Order("display_order ASC").
		Find(&habits).Error; err != nil {
		log.Error("查询 habit 表错误", "error", err, "challenge_id", challenge.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	habitIDs := make([]string, 0, len(habits))
	for _, h := range habits {
		habitIDs = append(habitIDs, h.ID)
	}

	var entries []model.DailyEntry
	if len(habitIDs) > 0 {
		if err := database.DB.
			Where("habit_id IN ?", habitIDs).
			Where("date >= ? AND date <= ?", NormalizeDate(challenge.StartDate), NormalizeDate(now)).
			Find(&entries).Error; err != nil {
			log.Error("查询 daily_entry 表错误", "error", err, "challenge_id", challenge.ID)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	cfg := config.Get().Challenge
	report := Calculate(challenge, habits, entries, now, Options{
		LengthDays:   cfg.LengthDays,
		LookbackDays: cfg.LookbackDays,
		IconLookup: func(templateID string) (string, bool) {
			tpl, ok := template.Lookup(templateID)
			return tpl.Icon, ok
		},
	})

	if raw, err := json.Marshal(report); err == nil {
		cache.SetProgress(c.Request.Context(), challenge.ID, raw, time.Duration(cfg.CacheTTL)*time.Second)
	}

	response.Success(c, report)
}
