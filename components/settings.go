package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/HN67/runner/config"
)

// SettingsData carries the validated, read-only game configuration so plain
// system functions can reach it through the world instead of package globals.
type SettingsData struct {
	cfg.Config
}

var Settings = donburi.NewComponentType[SettingsData]()
