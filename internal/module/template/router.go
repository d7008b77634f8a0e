package template

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleTemplate) InitRouter(r *gin.RouterGroup) {
	// 模板为静态数据，无需登录即可浏览
	templateGroup := r.Group("/habit-templates")
	{
		// 模板列表端点，支持 ?category= 筛选
		templateGroup.GET("", ListTemplates)
		// 模板详情端点
		templateGroup.GET("/:id", GetTemplate)
	}
}
