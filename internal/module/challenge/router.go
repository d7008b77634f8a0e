package challenge

import (
	"sober-october-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleChallenge) InitRouter(r *gin.RouterGroup) {
	challengeGroup := r.Group("/challenges")
	challengeGroup.Use(middleware.Auth(0))
	{
		// 挑战列表端点
		challengeGroup.GET("", ListChallenges)
		// 创建挑战端点
		challengeGroup.POST("", CreateChallenge)
		// 挑战详情端点
		challengeGroup.GET("/:id", GetChallenge)
		// 更新挑战状态端点
		challengeGroup.PUT("/:id", UpdateChallenge)
		// 删除挑战端点
		challengeGroup.DELETE("/:id", DeleteChallenge)
	}
}
