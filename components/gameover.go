package components

import "github.com/yohamta/donburi"

// GameOverData carries the final stats of the run that just ended
type GameOverData struct {
	Depth     int
	Kills     int
	BestDepth int
	NewRecord bool
	Seed      string
}

var GameOver = donburi.NewComponentType[GameOverData]()
