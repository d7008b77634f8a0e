package auth

import (
	"sober-october-system/config"
	"sober-october-system/internal/global/database"
	"sober-october-system/internal/global/jwt"
	"sober-october-system/internal/global/response"
	"sober-october-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GoogleLoginReq 定义 Google 登录请求的结构体
type GoogleLoginReq struct {
	Code        string `json:"code" binding:"required"`         // Google 授权码
	RedirectURI string `json:"redirect_uri" binding:"required"` // OAuth 流程使用的回调地址
}

// GoogleLogin 处理 Google OAuth 登录：换码、拉取用户信息、首次登录自动注册、签发 JWT
func GoogleLogin(c *gin.Context) {
	var req GoogleLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	token, err := exchangeCodeForToken(req.Code, req.RedirectURI)
	if err != nil {
		log.Error("授权码换取失败", "error", err)
		response.Fail(c, response.ErrOAuthFailed.WithOrigin(err))
		return
	}

	info, err := fetchGoogleUserInfo(token.AccessToken)
	if err != nil {
		log.Error("获取 Google 用户信息失败", "error", err)
		response.Fail(c, response.ErrOAuthFailed.WithOrigin(err))
		return
	}

	user, err := upsertGoogleUser(info)
	if err != nil {
		response.Fail(c, err)
		return
	}

	log.Info("用户登录成功", "user_id", user.ID, "email", user.Email, "role_id", user.RoleID)

	response.Success(c, map[string]interface{}{
		"token": jwt.CreateToken(user.ID, user.RoleID),
		"user":  user,
	})
}

// upsertGoogleUser 按 google_id 查找用户，不存在则创建
func upsertGoogleUser(info *googleUserInfo) (*model.User, error) {
	var user model.User
	err := database.DB.Where("google_id = ?", info.ID).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = model.User{
			ID:       uuid.NewString(),
			Email:    info.Email,
			Name:     info.Name,
			Picture:  info.Picture,
			GoogleID: info.ID,
			RoleID:   roleForEmail(info.Email),
		}
		if err := database.DB.Create(&user).Error; err != nil {
			log.Error("创建用户失败", "error", err, "email", info.Email)
			return nil, response.ErrDatabase.WithOrigin(err)
		}
	case err != nil:
		log.Error("数据库查询失败", "error", err, "google_id", info.ID)
		return nil, response.ErrDatabase.WithOrigin(err)
	}
	return &user, nil
}

// roleForEmail 管理员角色由配置的邮箱白名单决定
func roleForEmail(email string) int {
	for _, admin := range config.Get().Google.AdminEmails {
		if admin == email {
			return model.RoleAdmin
		}
	}
	return model.RoleUser
}

// Me 返回当前登录用户信息
func Me(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var user model.User
	err := database.DB.First(&user, "id = ?", payload.UserID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, user)
}

// Logout 登出（JWT 无服务端状态，仅返回成功）
func Logout(c *gin.Context) {
	response.Success(c, map[string]interface{}{
		"message": "Successfully logged out",
	})
}
