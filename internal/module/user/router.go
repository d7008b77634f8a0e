package user

import (
	"sober-october-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.Auth(0))
	{
		// 获取个人资料端点
		userGroup.GET("/profile", GetProfile)
		// 更新个人资料端点
		userGroup.PUT("/profile", UpdateProfile)
	}
}
