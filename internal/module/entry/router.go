package entry

import (
	"sober-october-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleEntry) InitRouter(r *gin.RouterGroup) {
	habitGroup := r.Group("/habits/:id/entries")
	habitGroup.Use(middleware.Auth(0))
	{
		// 打卡（同一天重复提交视为更新）端点
		habitGroup.POST("", UpsertEntry)
		// 习惯的打卡记录列表端点，支持日期范围
		habitGroup.GET("", ListHabitEntries)
	}

	challengeGroup := r.Group("/challenges/:id/entries")
	challengeGroup.Use(middleware.Auth(0))
	{
		// 挑战下某天全部打卡记录端点
		challengeGroup.GET("/:date", ListChallengeEntriesByDate)
	}

	entryGroup := r.Group("/entries")
	entryGroup.Use(middleware.Auth(0))
	{
		// 修改打卡记录端点
		entryGroup.PUT("/:id", UpdateEntry)
		// 删除打卡记录端点
		entryGroup.DELETE("/:id", DeleteEntry)
	}
}
