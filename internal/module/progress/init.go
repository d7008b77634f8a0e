package progress

import (
	"log/slog"

	"sober-october-system/internal/global/logger"
)

var log *slog.Logger

type ModuleProgress struct{}

func (m *ModuleProgress) GetName() string {
	return "Progress"
}

func (m *ModuleProgress) Init() {
	log = logger.New("Progress")
}
