package auth

import (
	"log/slog"

	"sober-october-system/internal/global/logger"
)

var log *slog.Logger

type ModuleAuth struct{}

func (a *ModuleAuth) GetName() string {
	return "Auth"
}

func (a *ModuleAuth) Init() {
	log = logger.New("Auth")
}
