package progress

import (
	"testing"
	"time"

	"sober-october-system/internal/model"

	"github.com/stretchr/testify/require"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func defaultOpts() Options {
	return Options{LengthDays: 30, LookbackDays: 7}
}

func makeChallenge(start time.Time) model.Challenge {
	return model.Challenge{
		ID:        "ch-1",
		UserID:    "user-1",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 30),
		Status:    model.ChallengeActive,
	}
}

func makeHabit(id string, created time.Time) model.Habit {
	return model.Habit{
		Model:       model.Model{CreatedAt: created},
		ID:          id,
		ChallengeID: "ch-1",
		Name:        "habit " + id,
		Type:        model.HabitBinary,
		IsActive:    true,
	}
}

func completedEntry(habitID string, date time.Time) model.DailyEntry {
	return model.DailyEntry{
		ID:        habitID + "-" + date.Format("20060102"),
		HabitID:   habitID,
		Date:      date,
		Completed: true,
	}
}

func uncompletedEntry(habitID string, date time.Time) model.DailyEntry {
	e := completedEntry(habitID, date)
	e.Completed = false
	return e
}

func TestNormalizeDate(t *testing.T) {
	// 同一个名义日期的不同时刻必须归一化到同一天
	late := time.Date(2025, 10, 5, 23, 0, 0, 0, time.UTC)
	early := time.Date(2025, 10, 5, 1, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	require.Equal(t, NormalizeDate(late), NormalizeDate(early))
	require.Equal(t, day(2025, 10, 5), NormalizeDate(late))
}

func TestRoundPercent(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{3, 4, 75},
		{1, 3, 33}, // 33.33 向下
		{2, 3, 67}, // 66.67 向上
		{1, 2, 50},
		{0, 5, 0},
		{5, 5, 100},
		{0, 0, 0}, // 分母为零
		{3, 0, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, roundPercent(tc.completed, tc.total), "completed=%d total=%d", tc.completed, tc.total)
	}
}

func TestNoActiveHabits(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 10, 10)

	report := Calculate(makeChallenge(start), nil, nil, now, defaultOpts())

	require.Equal(t, 0, report.CurrentDay)
	require.Equal(t, 30, report.TotalDays)
	require.Equal(t, 0, report.DaysElapsed)
	require.Equal(t, 0, report.TotalHabitsCompleted)
	require.Equal(t, 0, report.TotalPossibleHabits)
	require.Equal(t, 0, report.OverallCompletionPercentage)
	require.Equal(t, 0, report.CurrentStreak)
	require.Equal(t, 0, report.LongestStreak)
	require.Empty(t, report.Last7Days)
	require.Empty(t, report.HabitProgress)
}

func TestInactiveHabitsAreExcluded(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 10, 10)
	archived := makeHabit("h1", start)
	archived.IsActive = false

	report := Calculate(makeChallenge(start), []model.Habit{archived}, nil, now, defaultOpts())

	require.Empty(t, report.HabitProgress)
	require.Equal(t, 0, report.TotalPossibleHabits)
}

// 挑战开始 15 天，两个习惯，最近 3 天全部完成
func TestCurrentStreakLastThreeDays(t *testing.T) {
	start := day(2025, 10, 1)
	now := time.Date(2025, 10, 16, 14, 30, 0, 0, time.UTC)
	habits := []model.Habit{makeHabit("h1", start), makeHabit("h2", start)}

	var entries []model.DailyEntry
	for i := 1; i <= 3; i++ {
		d := day(2025, 10, 16).AddDate(0, 0, -i)
		entries = append(entries, completedEntry("h1", d), completedEntry("h2", d))
	}

	report := Calculate(makeChallenge(start), habits, entries, now, defaultOpts())

	require.Equal(t, 3, report.CurrentStreak)
	require.Equal(t, 3, report.LongestStreak)
}

// 往前第 4 天只完成了两个习惯中的一个，连续在此中断
func TestStreakBreaksOnImperfectDay(t *testing.T) {
	start := day(2025, 10, 1)
	now := time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)
	habits := []model.Habit{makeHabit("h1", start), makeHabit("h2", start)}

	var entries []model.DailyEntry
	for i := 1; i <= 3; i++ {
		d := day(2025, 10, 16).AddDate(0, 0, -i)
		entries = append(entries, completedEntry("h1", d), completedEntry("h2", d))
	}
	// 第 4 天只有 h1 完成
	entries = append(entries, completedEntry("h1", day(2025, 10, 12)))

	report := Calculate(makeChallenge(start), habits, entries, now, defaultOpts())

	require.Equal(t, 3, report.CurrentStreak)
	require.Equal(t, 3, report.LongestStreak)
}

// 今天的打卡不计入当前连续，也不打断它
func TestTodayExcludedFromCurrentStreak(t *testing.T) {
	start := day(2025, 10, 1)
	now := time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)
	habits := []model.Habit{makeHabit("h1", start)}

	var entries []model.DailyEntry
	for i := 1; i <= 5; i++ {
		entries = append(entries, completedEntry("h1", day(2025, 10, 16).AddDate(0, 0, -i)))
	}
	// 今天尚无打卡

	report := Calculate(makeChallenge(start), habits, entries, now, defaultOpts())
	require.Equal(t, 5, report.CurrentStreak)

	// 补上今天的打卡后当前连续不变，最长连续增加
	entries = append(entries, completedEntry("h1", day(2025, 10, 16)))
	report = Calculate(makeChallenge(start), habits, entries, now, defaultOpts())
	require.Equal(t, 5, report.CurrentStreak)
	require.Equal(t, 6, report.LongestStreak)
}

// 习惯中途加入，起算日之前的天数不计入可能完成数
func TestMidChallengeHabitActivation(t *testing.T) {
	start := day(2025, 10, 1)
	now := time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC)
	habits := []model.Habit{
		makeHabit("h1", start),
		makeHabit("h2", day(2025, 10, 6)), // 第 6 天才创建
	}

	report := Calculate(makeChallenge(start), habits, nil, now, defaultOpts())

	// daysElapsed=15, currentDay=16；h1 存在 16 天，h2 存在 11 天
	require.Equal(t, 15, report.DaysElapsed)
	require.Equal(t, 16, report.CurrentDay)
	require.Equal(t, 16+11, report.TotalPossibleHabits)

	require.Len(t, report.HabitProgress, 2)
	require.Equal(t, 16, report.HabitProgress[0].TotalDays)
	require.Equal(t, 11, report.HabitProgress[1].TotalDays)
}

// 创建时间早于挑战开始的脏数据按挑战开始日起算
func TestHabitCreatedBeforeChallengeStart(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 10, 5)
	habits := []model.Habit{makeHabit("h1", day(2025, 9, 20))}

	report := Calculate(makeChallenge(start), habits, nil, now, defaultOpts())

	// 起算日被钳到挑战开始：存在 5 天而不是 16 天
	require.Equal(t, 5, report.TotalPossibleHabits)
}

// 习惯加入前的日子活跃集合为空，永远不算完美
func TestPerfectRequiresNonEmptyActiveSet(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 10, 7)
	habits := []model.Habit{makeHabit("h1", day(2025, 10, 5))}

	var entries []model.DailyEntry
	for _, d := range []time.Time{day(2025, 10, 5), day(2025, 10, 6)} {
		entries = append(entries, completedEntry("h1", d))
	}

	report := Calculate(makeChallenge(start), habits, entries, now, defaultOpts())

	require.Equal(t, 2, report.CurrentStreak)
	require.Equal(t, 2, report.LongestStreak)
	for _, dp := range report.Last7Days {
		if dp.Date.Before(day(2025, 10, 5)) {
			require.False(t, dp.IsPerfect)
			require.Equal(t, 0, dp.TotalCount)
			require.Equal(t, 0, dp.CompletionPercentage)
		}
	}
}

// 窗口外的打卡记录（挑战开始前、未来日期）被静默忽略
func TestEntriesOutsideWindowAreIgnored(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 10, 10)
	habits := []model.Habit{makeHabit("h1", start)}
	entries := []model.DailyEntry{
		completedEntry("h1", day(2025, 9, 25)),  // 挑战开始前
		completedEntry("h1", day(2025, 10, 20)), // 未来日期
		completedEntry("h1", day(2025, 10, 9)),
	}

	report := Calculate(makeChallenge(start), habits, entries, now, defaultOpts())

	require.Equal(t, 1, report.TotalHabitsCompleted)
	require.Equal(t, 1, report.CurrentStreak)
}

// completed=false 的记录不参与任何计数
func TestUncompletedEntriesDoNotCount(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 10, 5)
	habits := []model.Habit{makeHabit("h1", start)}
	count := 3
	e := uncompletedEntry("h1", day(2025, 10, 4))
	e.Count = &count // 计数大于 0 也不算完成，进度引擎只看 completed

	report := Calculate(makeChallenge(start), habits, []model.DailyEntry{e}, now, defaultOpts())

	require.Equal(t, 0, report.TotalHabitsCompleted)
	require.Equal(t, 0, report.CurrentStreak)
	require.Equal(t, 0, report.LongestStreak)
}

func TestOverallPercentageRounding(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 10, 3) // daysElapsed=2, currentDay=3
	habits := []model.Habit{makeHabit("h1", start)}
	entries := []model.DailyEntry{
		completedEntry("h1", day(2025, 10, 1)),
	}

	report := Calculate(makeChallenge(start), habits, entries, now, defaultOpts())

	// 1/3 = 33.33 -> 33
	require.Equal(t, 1, report.TotalHabitsCompleted)
	require.Equal(t, 3, report.TotalPossibleHabits)
	require.Equal(t, 33, report.OverallCompletionPercentage)
}

func TestLast7DaysOrderAndClipping(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 10, 4) // 窗口 9.28-10.4，前三天应被裁掉
	habits := []model.Habit{makeHabit("h1", start)}

	report := Calculate(makeChallenge(start), habits, nil, now, defaultOpts())

	require.Len(t, report.Last7Days, 4)
	require.Equal(t, day(2025, 10, 1), report.Last7Days[0].Date)
	require.Equal(t, day(2025, 10, 4), report.Last7Days[3].Date)
	for i := 1; i < len(report.Last7Days); i++ {
		require.True(t, report.Last7Days[i-1].Date.Before(report.Last7Days[i].Date))
	}
}

func TestLast7DaysCounts(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 10, 10)
	habits := []model.Habit{makeHabit("h1", start), makeHabit("h2", start)}
	entries := []model.DailyEntry{
		completedEntry("h1", day(2025, 10, 9)),
		completedEntry("h2", day(2025, 10, 9)),
		completedEntry("h1", day(2025, 10, 8)),
	}

	report := Calculate(makeChallenge(start), habits, entries, now, defaultOpts())

	require.Len(t, report.Last7Days, 7)
	byDate := map[time.Time]DayProgress{}
	for _, dp := range report.Last7Days {
		byDate[dp.Date] = dp
	}

	full := byDate[day(2025, 10, 9)]
	require.Equal(t, 2, full.CompletedCount)
	require.Equal(t, 2, full.TotalCount)
	require.True(t, full.IsPerfect)
	require.Equal(t, 100, full.CompletionPercentage)

	half := byDate[day(2025, 10, 8)]
	require.Equal(t, 1, half.CompletedCount)
	require.False(t, half.IsPerfect)
	require.Equal(t, 50, half.CompletionPercentage)

	empty := byDate[day(2025, 10, 7)]
	require.Equal(t, 0, empty.CompletedCount)
	require.Equal(t, 2, empty.TotalCount) // 没有打卡的一天仍计入分母
	require.False(t, empty.IsPerfect)
}

func TestCurrentStreakNeverExceedsLongest(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 10, 16)
	habits := []model.Habit{makeHabit("h1", start)}

	// 零散完成：2-4 连续，6 单日，10-14 连续
	var entries []model.DailyEntry
	for _, d := range []int{2, 3, 4, 6, 10, 11, 12, 13, 14} {
		entries = append(entries, completedEntry("h1", day(2025, 10, d)))
	}

	report := Calculate(makeChallenge(start), habits, entries, now, defaultOpts())

	require.Equal(t, 5, report.LongestStreak)
	require.Equal(t, 0, report.CurrentStreak) // 15 号断档
	require.LessOrEqual(t, report.CurrentStreak, report.LongestStreak)
}

// 同一输入计算两次结果必须一致
func TestCalculateIsPure(t *testing.T) {
	start := day(2025, 10, 1)
	now := time.Date(2025, 10, 12, 8, 45, 0, 0, time.UTC)
	habits := []model.Habit{makeHabit("h1", start), makeHabit("h2", day(2025, 10, 4))}
	var entries []model.DailyEntry
	for _, d := range []int{3, 5, 6, 9, 10, 11} {
		entries = append(entries, completedEntry("h1", day(2025, 10, d)))
	}
	for _, d := range []int{5, 6, 10, 11} {
		entries = append(entries, completedEntry("h2", day(2025, 10, d)))
	}

	first := Calculate(makeChallenge(start), habits, entries, now, defaultOpts())
	second := Calculate(makeChallenge(start), habits, entries, now, defaultOpts())
	require.Equal(t, first, second)
}

// 为今天补打卡只会增加完成总数，不会减少
func TestAddingTodayEntryIsMonotonic(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 10, 10)
	habits := []model.Habit{makeHabit("h1", start)}
	entries := []model.DailyEntry{completedEntry("h1", day(2025, 10, 9))}

	before := Calculate(makeChallenge(start), habits, entries, now, defaultOpts())
	entries = append(entries, completedEntry("h1", day(2025, 10, 10)))
	after := Calculate(makeChallenge(start), habits, entries, now, defaultOpts())

	require.GreaterOrEqual(t, after.TotalHabitsCompleted, before.TotalHabitsCompleted)
}

func TestCurrentDayCappedAtChallengeLength(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 12, 1) // 远超挑战窗口
	habits := []model.Habit{makeHabit("h1", start)}

	report := Calculate(makeChallenge(start), habits, nil, now, defaultOpts())

	require.Equal(t, 30, report.CurrentDay)
	require.Equal(t, 31, report.TotalDays) // 首尾均含
}

func TestChallengeNotStartedYet(t *testing.T) {
	start := day(2025, 10, 10)
	now := day(2025, 10, 5)
	habits := []model.Habit{makeHabit("h1", day(2025, 10, 1))}

	report := Calculate(makeChallenge(start), habits, nil, now, defaultOpts())

	require.Equal(t, 0, report.DaysElapsed)
	require.Equal(t, 1, report.CurrentDay)
	require.Equal(t, 0, report.TotalPossibleHabits) // 起算日在未来，逐习惯天数被钳到 0
	require.Equal(t, 0, report.CurrentStreak)
	require.Equal(t, 0, report.LongestStreak)
	require.Empty(t, report.Last7Days)
}

func TestIconLookupAttached(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 10, 5)
	templateID := "meditate"
	h := makeHabit("h1", start)
	h.TemplateID = &templateID

	opts := defaultOpts()
	opts.IconLookup = func(id string) (string, bool) {
		if id == "meditate" {
			return "🧘", true
		}
		return "", false
	}

	report := Calculate(makeChallenge(start), []model.Habit{h}, nil, now, opts)

	require.Len(t, report.HabitProgress, 1)
	require.Equal(t, "🧘", report.HabitProgress[0].Icon)

	// 未命中的模板 ID 不报错，仅没有图标
	unknown := "nope"
	h.TemplateID = &unknown
	report = Calculate(makeChallenge(start), []model.Habit{h}, nil, now, opts)
	require.Empty(t, report.HabitProgress[0].Icon)
}

func TestPerHabitBreakdown(t *testing.T) {
	start := day(2025, 10, 1)
	now := day(2025, 10, 4) // currentDay=4
	habits := []model.Habit{makeHabit("h1", start), makeHabit("h2", start)}
	entries := []model.DailyEntry{
		completedEntry("h1", day(2025, 10, 1)),
		completedEntry("h1", day(2025, 10, 2)),
		completedEntry("h1", day(2025, 10, 3)),
		completedEntry("h2", day(2025, 10, 2)),
	}

	report := Calculate(makeChallenge(start), habits, entries, now, defaultOpts())

	require.Len(t, report.HabitProgress, 2)
	h1 := report.HabitProgress[0]
	require.Equal(t, "h1", h1.HabitID)
	require.Equal(t, 3, h1.CompletedCount)
	require.Equal(t, 4, h1.TotalDays)
	require.Equal(t, 75, h1.CompletionPercentage)

	h2 := report.HabitProgress[1]
	require.Equal(t, 1, h2.CompletedCount)
	require.Equal(t, 25, h2.CompletionPercentage)
}
