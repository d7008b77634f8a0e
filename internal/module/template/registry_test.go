package template

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tpl, ok := Lookup("no_alcohol")
	require.True(t, ok)
	require.Equal(t, "No Alcohol", tpl.Name)
	require.Equal(t, CategorySoberOctober, tpl.Category)
	require.NotEmpty(t, tpl.Icon)

	_, ok = Lookup("does_not_exist")
	require.False(t, ok)
}

func TestRegistryConsistency(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seen := map[string]bool{}
	for _, tpl := range all {
		require.NotEmpty(t, tpl.ID)
		require.False(t, seen[tpl.ID], "重复的模板 ID: %s", tpl.ID)
		seen[tpl.ID] = true

		require.True(t, ValidCategory(string(tpl.Category)), "模板 %s 分类非法", tpl.ID)
		require.Contains(t, []string{"binary", "counted"}, tpl.Type)
		// 计数型模板必须有目标次数，二元型不能有
		if tpl.Type == "counted" {
			require.NotNil(t, tpl.TargetCount, "计数型模板 %s 缺少目标次数", tpl.ID)
			require.Positive(t, *tpl.TargetCount)
		} else {
			require.Nil(t, tpl.TargetCount, "二元型模板 %s 不应有目标次数", tpl.ID)
		}
	}
}

func TestByCategory(t *testing.T) {
	physical := ByCategory(CategoryPhysicalHealth)
	require.NotEmpty(t, physical)
	for _, tpl := range physical {
		require.Equal(t, CategoryPhysicalHealth, tpl.Category)
	}

	// 各分类数量之和等于总数
	total := 0
	for _, c := range []Category{CategorySoberOctober, CategoryPhysicalHealth, CategoryMentalWellness, CategoryDailyRoutines} {
		total += len(ByCategory(c))
	}
	require.Equal(t, len(All()), total)

	require.Empty(t, ByCategory("nonsense"))
}

func TestValidCategory(t *testing.T) {
	require.True(t, ValidCategory("sober_october"))
	require.True(t, ValidCategory("daily_routines"))
	require.False(t, ValidCategory(""))
	require.False(t, ValidCategory("Sober_October"))
}
