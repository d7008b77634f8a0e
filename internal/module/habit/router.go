package habit

import (
	"sober-october-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleHabit) InitRouter(r *gin.RouterGroup) {
	challengeGroup := r.Group("/challenges/:id/habits")
	challengeGroup.Use(middleware.Auth(0))
	{
		// 挑战下的习惯列表端点
		challengeGroup.GET("", ListHabits)
		// 创建习惯端点
		challengeGroup.POST("", CreateHabit)
		// 批量创建习惯端点（onboarding 从模板一次性建档）
		challengeGroup.POST("/bulk", BulkCreateHabits)
	}

	habitGroup := r.Group("/habits")
	habitGroup.Use(middleware.Auth(0))
	{
		// 习惯详情端点
		habitGroup.GET("/:id", GetHabit)
		// 更新习惯端点
		habitGroup.PUT("/:id", UpdateHabit)
		// 删除习惯端点
		habitGroup.DELETE("/:id", DeleteHabit)
	}
}
