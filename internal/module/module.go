package module

import (
	"sober-october-system/internal/module/admin"
	"sober-october-system/internal/module/auth"
	"sober-october-system/internal/module/challenge"
	"sober-october-system/internal/module/entry"
	"sober-october-system/internal/module/habit"
	"sober-october-system/internal/module/ping"
	"sober-october-system/internal/module/progress"
	"sober-october-system/internal/module/template"
	"sober-october-system/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&auth.ModuleAuth{},
		&user.ModuleUser{},
		&challenge.ModuleChallenge{},
		&habit.ModuleHabit{},
		&entry.ModuleEntry{},
		&template.ModuleTemplate{},
		&progress.ModuleProgress{},
		&admin.ModuleAdmin{},
	})
}
