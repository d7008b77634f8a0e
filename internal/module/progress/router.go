package progress

import (
	"sober-october-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleProgress) InitRouter(r *gin.RouterGroup) {
	progressGroup := r.Group("/challenges/:id/progress")
	progressGroup.Use(middleware.Auth(0))
	{
		// 挑战进度报告端点
		progressGroup.GET("", GetChallengeProgress)
	}
}
