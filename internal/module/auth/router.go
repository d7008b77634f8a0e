package auth

import (
	"sober-october-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (a *ModuleAuth) InitRouter(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		// Google OAuth 登录端点
		authGroup.POST("/google", GoogleLogin)
		// 登出端点（JWT 下仅由客户端丢弃令牌）
		authGroup.POST("/logout", Logout)
	}

	authedGroup := authGroup.Use(middleware.Auth(0))
	{
		// 当前用户信息端点
		authedGroup.GET("/me", Me)
	}
}
