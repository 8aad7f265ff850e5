package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug           bool `json:"debug"`
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

// SavedRecords tracks run records across sessions
type SavedRecords struct {
	BestDepth  int `json:"bestDepth"`
	TotalRuns  int `json:"totalRuns"`
	TotalKills int `json:"totalKills"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "vaultrush",
	})
	if err != nil {
		return fmt.Errorf("open gdata: %w", err)
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the SettingsData component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Debug:           s.Debug,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings applies loaded settings to the window and the
// settings component, when one exists.
func ApplySavedSettings(saved *SavedSettings, s *components.SettingsData) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}

	if s != nil {
		s.Debug = saved.Debug
		s.Fullscreen = saved.Fullscreen
		s.ResolutionIndex = saved.ResolutionIndex
	}
}

// LoadRecords loads run records from disk
func LoadRecords() *SavedRecords {
	if !gdataInitialized || gdataManager == nil {
		return &SavedRecords{}
	}

	data, err := gdataManager.LoadItem("records")
	if err != nil {
		log.Printf("Warning: Could not load records: %v", err)
		return &SavedRecords{}
	}
	if len(data) == 0 {
		return &SavedRecords{}
	}

	var records SavedRecords
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Warning: Could not parse saved records: %v", err)
		return &SavedRecords{}
	}

	return &records
}

// SaveRecords saves run records to disk
func SaveRecords(r *SavedRecords) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize records: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("records", data); err != nil {
		log.Printf("Warning: Could not save records: %v", err)
		return err
	}
	return nil
}

// RecordRunEnd folds a finished run into the stored records and
// reports whether the depth set a new record.
func RecordRunEnd(depth, kills int) (*SavedRecords, bool) {
	records := LoadRecords()
	records.TotalRuns++
	records.TotalKills += kills

	newRecord := depth > records.BestDepth
	if newRecord {
		records.BestDepth = depth
	}

	_ = SaveRecords(records)
	return records, newRecord
}
