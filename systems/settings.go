package systems

import (
	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug overlay toggle and persists the change.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionDebugOverlay).JustPressed {
		settings.Debug = !settings.Debug
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		data := components.SettingsData{
			Debug:           cfg.Debug.Overlay,
			ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
		}
		if saved, _ := LoadSettings(); saved != nil {
			data.Fullscreen = saved.Fullscreen
			data.ResolutionIndex = saved.ResolutionIndex
			// The overlay flag from the command line wins over disk
			data.Debug = saved.Debug || cfg.Debug.Overlay
		}
		components.Settings.SetValue(ent, data)
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
