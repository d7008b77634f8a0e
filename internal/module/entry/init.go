package entry

import (
	"log/slog"

	"sober-october-system/internal/global/logger"
)

var log *slog.Logger

type ModuleEntry struct{}

func (m *ModuleEntry) GetName() string {
	return "Entry"
}

func (m *ModuleEntry) Init() {
	log = logger.New("Entry")
}
