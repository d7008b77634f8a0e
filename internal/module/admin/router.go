package admin

import (
	"sober-october-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleAdmin) InitRouter(r *gin.RouterGroup) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.Auth(1))
	{
		// 运营统计端点
		adminGroup.GET("/stats", GetStats)
		// 用户清单导出端点
		adminGroup.GET("/stats/export", ExportStats)
	}
}
