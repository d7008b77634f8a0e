package admin

import (
	"fmt"
	"time"

	"sober-october-system/internal/global/database"
	"sober-october-system/internal/global/response"
	"sober-october-system/internal/model"
	"sober-october-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// StatsResult 运营统计响应
type StatsResult struct {
	TotalUsers int64 `json:"total_users"`
	TotalHabits int64 `json:"total_habits"`
	// 注意：这里沿用管理口径 completed OR count>0，与进度引擎的严格 completed 口径不同
	TotalEntriesCompleted int64        `json:"total_entries_completed"`
	Users                 []model.User `json:"users"`
}

// GetStats 获取运营统计：用户数、习惯数、完成打卡数与用户列表
func GetStats(c *gin.Context) {
	var result StatsResult

	if err := database.DB.Model(&model.User{}).Count(&result.TotalUsers).Error; err != nil {
		log.Error("查询 user 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if err := database.DB.Model(&model.Habit{}).Count(&result.TotalHabits).Error; err != nil {
		log.Error("查询 habit 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	// 管理统计的"完成"口径：completed 为真或 count 大于 0
	if err := database.DB.Model(&model.DailyEntry{}).
		Where("completed = ? OR count > 0", true).
		Count(&result.TotalEntriesCompleted).Error; err != nil {
		log.Error("查询 daily_entry 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if err := database.DB.Order("created_at DESC").Find(&result.Users).Error; err != nil {
		log.Error("查询 user 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, result)
}

// userRow 导出用的用户行
type userRow struct {
	ID        string `excel:"ID"`
	Email     string `excel:"邮箱"`
	Name      string `excel:"姓名"`
	RoleID    int    `excel:"角色"`
	CreatedAt string `excel:"注册时间"`
}

// ExportStats 导出用户清单为 excel
func ExportStats(c *gin.Context) {
	var users []model.User
	if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		log.Error("查询 user 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, userRow{
			ID:        u.ID,
			Email:     u.Email,
			Name:      u.Name,
			RoleID:    u.RoleID,
			CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := tools.ExportToExcel(f, "", rows); err != nil {
		log.Error("导出 excel 错误", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	filename := fmt.Sprintf("users_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", tools.ExcelContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Cache-Control", "must-revalidate")
	_ = f.Write(c.Writer)
}
