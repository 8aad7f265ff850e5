package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Boss       = donburi.NewTag().SetName("Boss")
	Projectile = donburi.NewTag().SetName("Projectile")
	Item       = donburi.NewTag().SetName("Item")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
	Wall       = donburi.NewTag().SetName("Wall")
	Door       = donburi.NewTag().SetName("Door")
	Hatch      = donburi.NewTag().SetName("Hatch")
)
