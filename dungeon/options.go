package dungeon

// Default generation parameters.
const (
	DefaultWidth          = 800.0
	DefaultHeight         = 600.0
	DefaultMinDifficulty  = 1
	DefaultMaxDifficulty  = 10
	DefaultBossDifficulty = 10
	DefaultGridColumns    = 5
	DefaultGridRows       = 5

	// bossRoomAutoThreshold is the room count at which a boss room is
	// included unless the caller says otherwise.
	bossRoomAutoThreshold = 5
)

// Options tunes a generation call. Zero fields fall back to the
// defaults above. IncludeBossRoom nil means automatic: a boss room is
// added when the dungeon has at least five rooms.
type Options struct {
	Width, Height       float64
	MinDifficulty       int
	MaxDifficulty       int
	StartRoomDifficulty int
	BossRoomDifficulty  int
	IncludeBossRoom     *bool
	GridColumns         int
	GridRows            int
}

// genConfig is an Options value with every field resolved.
type genConfig struct {
	numRooms            int
	width, height       float64
	minDifficulty       int
	maxDifficulty       int
	startRoomDifficulty int
	bossRoomDifficulty  int
	includeBossRoom     bool
	gridColumns         int
	gridRows            int
}

func resolveOptions(numRooms int, o Options) genConfig {
	cfg := genConfig{
		width:              DefaultWidth,
		height:             DefaultHeight,
		minDifficulty:      DefaultMinDifficulty,
		maxDifficulty:      DefaultMaxDifficulty,
		bossRoomDifficulty: DefaultBossDifficulty,
		gridColumns:        DefaultGridColumns,
		gridRows:           DefaultGridRows,
	}
	if o.Width > 0 {
		cfg.width = o.Width
	}
	if o.Height > 0 {
		cfg.height = o.Height
	}
	if o.MinDifficulty > 0 {
		cfg.minDifficulty = o.MinDifficulty
	}
	if o.MaxDifficulty > 0 {
		cfg.maxDifficulty = o.MaxDifficulty
	}
	if cfg.maxDifficulty < cfg.minDifficulty {
		cfg.maxDifficulty = cfg.minDifficulty
	}
	cfg.startRoomDifficulty = cfg.minDifficulty
	if o.StartRoomDifficulty > 0 {
		cfg.startRoomDifficulty = o.StartRoomDifficulty
	}
	if o.BossRoomDifficulty > 0 {
		cfg.bossRoomDifficulty = o.BossRoomDifficulty
	}
	if o.GridColumns > 0 {
		cfg.gridColumns = o.GridColumns
	}
	if o.GridRows > 0 {
		cfg.gridRows = o.GridRows
	}
	if numRooms < 1 {
		numRooms = 1
	}
	if max := cfg.gridColumns * cfg.gridRows; numRooms > max {
		numRooms = max
	}
	cfg.numRooms = numRooms

	if o.IncludeBossRoom != nil {
		cfg.includeBossRoom = *o.IncludeBossRoom
	} else {
		cfg.includeBossRoom = cfg.numRooms >= bossRoomAutoThreshold
	}
	return cfg
}
