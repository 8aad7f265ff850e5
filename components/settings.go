package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Debug           bool
	Fullscreen      bool
	ResolutionIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
