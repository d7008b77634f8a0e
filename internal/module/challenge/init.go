package challenge

import (
	"log/slog"

	"sober-october-system/internal/global/logger"
)

var log *slog.Logger

type ModuleChallenge struct{}

func (m *ModuleChallenge) GetName() string {
	return "Challenge"
}

func (m *ModuleChallenge) Init() {
	log = logger.New("Challenge")
}
