package progress

import (
	"math"
	"time"

	"sober-october-system/internal/model"
)

// Options 注入进度计算所需的数值配置与模板图标查找，保证计算本身纯函数、可测试
type Options struct {
	LengthDays   int                             // 挑战周期天数
	LookbackDays int                             // 近况序列回看天数
	IconLookup   func(templateID string) (string, bool) // 模板图标查找，可为 nil
}

// DayProgress 单日进度
type DayProgress struct {
	Date                 time.Time `json:"date"`
	CompletedCount       int       `json:"completed_count"`
	TotalCount           int       `json:"total_count"`
	IsPerfect            bool      `json:"is_perfect"`
	CompletionPercentage int       `json:"completion_percentage"`
}

// HabitProgress 单个习惯的进度
type HabitProgress struct {
	HabitID              string `json:"habit_id"`
	HabitName            string `json:"habit_name"`
	Icon                 string `json:"icon,omitempty"`
	CompletedCount       int    `json:"completed_count"`
	TotalDays            int    `json:"total_days"`
	CompletionPercentage int    `json:"completion_percentage"`
}

// Report 挑战进度报告
type Report struct {
	ChallengeID                 string          `json:"challenge_id"`
	StartDate                   time.Time       `json:"start_date"`
	EndDate                     time.Time       `json:"end_date"`
	CurrentDay                  int             `json:"current_day"`
	TotalDays                   int             `json:"total_days"`
	DaysElapsed                 int             `json:"days_elapsed"`
	TotalHabitsCompleted        int             `json:"total_habits_completed"`
	TotalPossibleHabits         int             `json:"total_possible_habits"`
	OverallCompletionPercentage int             `json:"overall_completion_percentage"`
	CurrentStreak               int             `json:"current_streak"`
	LongestStreak               int             `json:"longest_streak"`
	Last7Days                   []DayProgress   `json:"last_7_days"`
	HabitProgress               []HabitProgress `json:"habit_progress"`
}

// NormalizeDate 把任意时间戳归一化为无时区的日历日（零点）
// 取时间戳自身的年月日字段，不做时区换算，全系统的日期比较都依赖这一约定
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween a 到 b 的整天数，a、b 均已归一化
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// roundPercent 四舍五入的完成百分比，分母为 0 时返回 0
func roundPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// Calculate 计算挑战进度报告
// 纯函数：不读库不落库，当前时间由调用方注入；并发调用安全
func Calculate(challenge model.Challenge, habits []model.Habit, entries []model.DailyEntry, now time.Time, opts Options) Report {
	report := Report{
		ChallengeID:   challenge.ID,
		StartDate:     challenge.StartDate,
		EndDate:       challenge.EndDate,
		Last7Days:     []DayProgress{},
		HabitProgress: []HabitProgress{},
	}

	active := make([]model.Habit, 0, len(habits))
	for _, h := range habits {
		if h.IsActive {
			active = append(active, h)
		}
	}

	// 没有活跃习惯时短路返回，避免后面一串除零分支
	if len(active) == 0 {
		report.TotalDays = opts.LengthDays
		return report
	}

	today := NormalizeDate(now)
	startDate := NormalizeDate(challenge.StartDate)
	endDate := NormalizeDate(challenge.EndDate)

	daysElapsed := daysBetween(startDate, today)
	if daysElapsed < 0 {
		daysElapsed = 0
	}
	currentDay := daysElapsed + 1
	if currentDay > opts.LengthDays {
		currentDay = opts.LengthDays
	}

	report.CurrentDay = currentDay
	report.TotalDays = daysBetween(startDate, endDate) + 1
	report.DaysElapsed = daysElapsed

	// 每个习惯的起算日：创建日与挑战开始日取较晚者
	// 创建日早于挑战开始属于容忍的数据异常，按挑战开始日起算
	activationOf := make(map[string]time.Time, len(active))
	activeIDs := make(map[string]struct{}, len(active))
	for _, h := range active {
		activation := NormalizeDate(h.CreatedAt)
		if activation.Before(startDate) {
			activation = startDate
		}
		activationOf[h.ID] = activation
		activeIDs[h.ID] = struct{}{}
	}

	// 按日索引打卡记录，只保留 [挑战开始, 今天] 窗口内活跃习惯的记录
	// 窗口外的记录（未来日期、挑战开始前）直接忽略，不报错
	completedOn := make(map[time.Time]map[string]bool)
	completedPerHabit := make(map[string]int, len(active))
	totalCompleted := 0
	for _, e := range entries {
		if _, ok := activeIDs[e.HabitID]; !ok {
			continue
		}
		day := NormalizeDate(e.Date)
		if day.Before(startDate) || day.After(today) {
			continue
		}
		if e.Completed {
			if completedOn[day] == nil {
				completedOn[day] = make(map[string]bool)
			}
			completedOn[day][e.HabitID] = true
			completedPerHabit[e.HabitID]++
			totalCompleted++
		}
	}

	// activeCountOn 某天的活跃习惯数；completedCountOn 某天完成的活跃习惯数
	activeCountOn := func(day time.Time) int {
		n := 0
		for _, activation := range activationOf {
			if !activation.After(day) {
				n++
			}
		}
		return n
	}
	completedCountOn := func(day time.Time) int {
		n := 0
		for id, activation := range activationOf {
			if !activation.After(day) && completedOn[day][id] {
				n++
			}
		}
		return n
	}
	// isPerfect 完美的一天：当天有活跃习惯，且每个活跃习惯都有完成记录
	// 零活跃习惯的一天永远不算完美
	isPerfect := func(day time.Time) bool {
		total := activeCountOn(day)
		return total > 0 && completedCountOn(day) == total
	}

	// 可能完成总数：各习惯存在天数之和，上限为展示用的 current_day
	totalPossible := 0
	habitDaysOf := make(map[string]int, len(active))
	for id, activation := range activationOf {
		habitDays := daysBetween(activation, today) + 1
		if habitDays > currentDay {
			habitDays = currentDay
		}
		if habitDays < 0 {
			habitDays = 0
		}
		habitDaysOf[id] = habitDays
		totalPossible += habitDays
	}

	report.TotalHabitsCompleted = totalCompleted
	report.TotalPossibleHabits = totalPossible
	report.OverallCompletionPercentage = roundPercent(totalCompleted, totalPossible)

	// 最长连续：从挑战开始正向扫到今天，严格按时间顺序
	longest, temp := 0, 0
	for day := startDate; !day.After(today); day = day.AddDate(0, 0, 1) {
		if isPerfect(day) {
			temp++
			if temp > longest {
				longest = temp
			}
		} else {
			temp = 0
		}
	}
	report.LongestStreak = longest

	// 当前连续：从昨天反向扫，今天尚未结束不计入也不打断
	current := 0
	for day := today.AddDate(0, 0, -1); !day.Before(startDate); day = day.AddDate(0, 0, -1) {
		if !isPerfect(day) {
			break
		}
		current++
	}
	report.CurrentStreak = current

	// 近 N 天序列，时间正序，早于挑战开始的天跳过
	for i := opts.LookbackDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		if day.Before(startDate) {
			continue
		}
		total := activeCountOn(day)
		completed := completedCountOn(day)
		report.Last7Days = append(report.Last7Days, DayProgress{
			Date:                 day,
			CompletedCount:       completed,
			TotalCount:           total,
			IsPerfect:            isPerfect(day),
			CompletionPercentage: roundPercent(completed, total),
		})
	}

	// 逐习惯分解，保持传入的展示顺序
	for _, h := range active {
		hp := HabitProgress{
			HabitID:              h.ID,
			HabitName:            h.Name,
			CompletedCount:       completedPerHabit[h.ID],
			TotalDays:            habitDaysOf[h.ID],
			CompletionPercentage: roundPercent(completedPerHabit[h.ID], habitDaysOf[h.ID]),
		}
		if h.TemplateID != nil && opts.IconLookup != nil {
			if icon, ok := opts.IconLookup(*h.TemplateID); ok {
				hp.Icon = icon
			}
		}
		report.HabitProgress = append(report.HabitProgress, hp)
	}

	return report
}
