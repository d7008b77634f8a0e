package habit

import (
	"log/slog"

	"sober-october-system/internal/global/logger"
)

var log *slog.Logger

type ModuleHabit struct{}

func (m *ModuleHabit) GetName() string {
	return "Habit"
}

func (m *ModuleHabit) Init() {
	log = logger.New("Habit")
}
