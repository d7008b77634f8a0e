package template

// Category 模板分类
type Category string

const (
	CategorySoberOctober   Category = "sober_october"
	CategoryPhysicalHealth Category = "physical_health"
	CategoryMentalWellness Category = "mental_wellness"
	CategoryDailyRoutines  Category = "daily_routines"
)

// Template 预置习惯模板，onboarding 时供用户直接选用
type Template struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Type          string   `json:"type"` // binary / counted
	PreferredTime string   `json:"preferred_time"`
	TargetCount   *int     `json:"target_count"`
	Category      Category `json:"category"`
	Icon          string   `json:"icon"`
}

func intPtr(v int) *int { return &v }

// templates 静态注册表，按分类归组维护
var templates = []Template{
	// 戒断类
	{ID: "no_alcohol", Name: "No Alcohol", Description: "Stay alcohol-free today", Type: "binary", PreferredTime: "all_day", Category: CategorySoberOctober, Icon: "🚫🍺"},
	{ID: "no_sugar", Name: "No Added Sugar", Description: "Avoid added sugars and sweeteners", Type: "binary", PreferredTime: "all_day", Category: CategorySoberOctober, Icon: "🚫🍰"},
	{ID: "no_caffeine", Name: "No Caffeine After 2pm", Description: "Cut off caffeine intake after 2pm", Type: "binary", PreferredTime: "afternoon", Category: CategorySoberOctober, Icon: "☕"},
	{ID: "no_social_media", Name: "No Social Media", Description: "Stay off social media platforms", Type: "binary", PreferredTime: "all_day", Category: CategorySoberOctober, Icon: "📱"},

	// 身体健康类
	{ID: "exercise", Name: "Exercise", Description: "Complete a workout session", Type: "binary", PreferredTime: "morning", Category: CategoryPhysicalHealth, Icon: "💪"},
	{ID: "pushups", Name: "Pushups", Description: "Do your daily pushups", Type: "counted", PreferredTime: "morning", TargetCount: intPtr(20), Category: CategoryPhysicalHealth, Icon: "🏋️"},
	{ID: "walk_10k", Name: "Walk 10,000 Steps", Description: "Hit your daily step goal", Type: "binary", PreferredTime: "all_day", Category: CategoryPhysicalHealth, Icon: "🚶"},
	{ID: "vitamins", Name: "Take Vitamins", Description: "Take your daily vitamins and supplements", Type: "binary", PreferredTime: "morning", Category: CategoryPhysicalHealth, Icon: "💊"},
	{ID: "cold_shower", Name: "Cold Shower", Description: "Take a cold shower for alertness and recovery", Type: "binary", PreferredTime: "morning", Category: CategoryPhysicalHealth, Icon: "🚿"},
	{ID: "yoga", Name: "Yoga Practice", Description: "Complete a yoga session", Type: "binary", PreferredTime: "morning", Category: CategoryPhysicalHealth, Icon: "🧘"},
	{ID: "drink_water", Name: "Drink 8 Glasses of Water", Description: "Stay hydrated throughout the day", Type: "counted", PreferredTime: "all_day", TargetCount: intPtr(8), Category: CategoryPhysicalHealth, Icon: "💧"},

	// 心理健康类
	{ID: "meditate", Name: "Meditate", Description: "Practice mindfulness meditation", Type: "binary", PreferredTime: "morning", Category: CategoryMentalWellness, Icon: "🧘‍♀️"},
	{ID: "journal", Name: "Journal", Description: "Write in your journal", Type: "binary", PreferredTime: "evening", Category: CategoryMentalWellness, Icon: "📓"},
	{ID: "read", Name: "Read", Description: "Read for pleasure or learning", Type: "binary", PreferredTime: "evening", Category: CategoryMentalWellness, Icon: "📚"},
	{ID: "gratitude", Name: "Practice Gratitude", Description: "Write down three things you're grateful for", Type: "binary", PreferredTime: "evening", Category: CategoryMentalWellness, Icon: "🙏"},

	// 日常作息类
	{ID: "sleep_8hrs", Name: "Sleep 8 Hours", Description: "Get a full night's rest", Type: "binary", PreferredTime: "evening", Category: CategoryDailyRoutines, Icon: "😴"},
	{ID: "make_bed", Name: "Make Your Bed", Description: "Start the day by making your bed", Type: "binary", PreferredTime: "morning", Category: CategoryDailyRoutines, Icon: "🛏️"},
	{ID: "floss", Name: "Floss Teeth", Description: "Floss your teeth daily", Type: "binary", PreferredTime: "evening", Category: CategoryDailyRoutines, Icon: "🦷"},
}

// index 按模板 ID 建立的查找表
var index = func() map[string]Template {
	m := make(map[string]Template, len(templates))
	for _, t := range templates {
		m[t.ID] = t
	}
	return m
}()

// All 返回全部模板
func All() []Template {
	return templates
}

// ByCategory 按分类筛选模板
func ByCategory(category Category) []Template {
	var result []Template
	for _, t := range templates {
		if t.Category == category {
			result = append(result, t)
		}
	}
	return result
}

// Lookup 按 ID 精确查找模板
func Lookup(id string) (Template, bool) {
	t, ok := index[id]
	return t, ok
}

// ValidCategory 判断分类字符串是否合法
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategorySoberOctober, CategoryPhysicalHealth, CategoryMentalWellness, CategoryDailyRoutines:
		return true
	}
	return false
}
