package template

import (
	"sober-october-system/internal/global/response"

	"github.com/gin-gonic/gin"
)

// ListTemplates 获取习惯模板列表，category 非法时回退为全量
func ListTemplates(c *gin.Context) {
	category := c.Query("category")
	if category != "" && ValidCategory(category) {
		response.Success(c, ByCategory(Category(category)))
		return
	}
	response.Success(c, All())
}

// GetTemplate 按 ID 获取单个模板
func GetTemplate(c *gin.Context) {
	id := c.Param("id")
	tpl, ok := Lookup(id)
	if !ok {
		response.Fail(c, response.ErrNotFound.WithTips("模板不存在"))
		return
	}
	response.Success(c, tpl)
}
