package challenge

import (
	"time"

	"sober-october-system/config"
	"sober-october-system/internal/global/database"
	"sober-october-system/internal/global/jwt"
	"sober-october-system/internal/global/response"
	"sober-october-system/internal/model"
	"sober-october-system/internal/module/progress"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListChallenges 获取当前用户的全部挑战，按创建时间倒序
func ListChallenges(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var challenges []model.Challenge
	if err := database.DB.
		Where("user_id = ?", payload.UserID).
		Order("created_at DESC").
		Find(&challenges).Error; err != nil {
		log.Error("查询 challenge 表错误", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, challenges)
}

// ChallengeCreateReq 定义创建挑战请求的结构体
type ChallengeCreateReq struct {
	StartDate time.Time `json:"start_date" binding:"required"` // 挑战开始日期
}

// CreateChallenge 创建一个新挑战，结束日期由开始日期加挑战周期推算
func CreateChallenge(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req ChallengeCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建挑战请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	startDate := progress.NormalizeDate(req.StartDate)
	endDate := startDate.AddDate(0, 0, config.Get().Challenge.LengthDays)

	challenge := model.Challenge{
		ID:        uuid.NewString(),
		UserID:    payload.UserID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    model.ChallengeActive,
	}
	if err := database.DB.Create(&challenge).Error; err != nil {
		log.Error("创建挑战失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("挑战创建成功", "challenge_id", challenge.ID, "user_id", payload.UserID)
	response.Success(c, challenge)
}

// GetChallenge 获取单个挑战详情
func GetChallenge(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	challenge, ok := FindOwned(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}
	response.Success(c, challenge)
}

// ChallengeUpdateReq 定义更新挑战请求的结构体，目前仅允许修改状态
type ChallengeUpdateReq struct {
	Status model.ChallengeStatus `json:"status" binding:"required,oneof=active completed abandoned"`
}

// UpdateChallenge 更新挑战状态，开始/结束日期一经创建不可修改
func UpdateChallenge(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req ChallengeUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定更新挑战请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	challenge, ok := FindOwned(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}

	challenge.Status = req.Status
	if err := database.DB.Save(challenge).Error; err != nil {
		log.Error("更新挑战失败", "error", err, "challenge_id", challenge.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, challenge)
}

// DeleteChallenge 删除挑战，级联删除其习惯与打卡记录
func DeleteChallenge(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	challenge, ok := FindOwned(c, c.Param("id"), payload.UserID)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id IN (?)",
			tx.Model(&model.Habit{}).Select("id").Where("challenge_id = ?", challenge.ID),
		).Delete(&model.DailyEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("challenge_id = ?", challenge.ID).Delete(&model.Habit{}).Error; err != nil {
			return err
		}
		return tx.Delete(challenge).Error
	})
	if err != nil {
		log.Error("删除挑战失败", "error", err, "challenge_id", challenge.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c)
}

// FindOwned 查找属于指定用户的挑战，失败时已写入响应
func FindOwned(c *gin.Context, challengeID, userID string) (*model.Challenge, bool) {
	if challengeID == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("挑战ID不能为空"))
		return nil, false
	}

	var challenge model.Challenge
	err := database.DB.
		Where("id = ? AND user_id = ?", challengeID, userID).
		First(&challenge).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("挑战不存在"))
		return nil, false
	case err != nil:
		log.Error("查询 challenge 表错误", "error", err, "challenge_id", challengeID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return nil, false
	}
	return &challenge, true
}
