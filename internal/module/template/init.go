package template

import (
	"log/slog"

	"sober-october-system/internal/global/logger"
)

var log *slog.Logger

type ModuleTemplate struct{}

func (m *ModuleTemplate) GetName() string {
	return "Template"
}

func (m *ModuleTemplate) Init() {
	log = logger.New("Template")
}
