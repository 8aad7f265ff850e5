package dungeon

import "math"

// Item type names.
const (
	ItemHealth = "health"
	ItemAmmo   = "ammo"
	ItemSpeed  = "speed"
	ItemDamage = "damage"
	ItemShield = "shield"
)

type itemDef struct {
	Type   string
	Color  string
	Radius float64
	Effect float64
	Weight float64
}

// itemTable is ordered; the weighted roll walks it front to back.
var itemTable = [5]itemDef{
	{ItemHealth, "#ff4d5a", 10, 25, 3},
	{ItemAmmo, "#ffa226", 9, 15, 3},
	{ItemSpeed, "#2ee56f", 8, 1.4, 2},
	{ItemDamage, "#a06bff", 8, 1.5, 2},
	{ItemShield, "#4dc3ff", 11, 50, 1},
}

func defFor(typ string) itemDef {
	for _, d := range itemTable {
		if d.Type == typ {
			return d
		}
	}
	return itemTable[0]
}

// safeZone is a disc items may land in. Zones sit away from template
// obstacle positions so drops stay pickable.
type safeZone struct {
	x, y, radius float64
}

func safeZones(room *Room) []safeZone {
	w, h := room.Width, room.Height
	base := math.Min(w, h)
	return []safeZone{
		{w / 2, h / 2, base * 0.15},
		{w / 4, h / 4, base * 0.12},
		{3 * w / 4, h / 4, base * 0.12},
		{w / 4, 3 * h / 4, base * 0.12},
		{3 * w / 4, 3 * h / 4, base * 0.12},
		{w / 2, h * 0.12, base * 0.1},
		{w / 2, h * 0.88, base * 0.1},
		{w * 0.08, h / 2, base * 0.1},
		{w * 0.92, h / 2, base * 0.1},
	}
}

func (g *Generator) shuffledZones(room *Room) []safeZone {
	zones := safeZones(room)
	for i := len(zones) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		zones[i], zones[j] = zones[j], zones[i]
	}
	return zones
}

// itemCount gives harder rooms fewer pickups, between one and three.
func itemCount(difficulty int) int {
	n := int(math.Ceil(3 - float64(difficulty)/4))
	if n < 1 {
		n = 1
	}
	if n > 3 {
		n = 3
	}
	return n
}

// generateItems restocks the room's pickups, replacing whatever was
// there. The first drop answers the player's most pressing shortage
// when stats are known; that pick burns no randomness.
func (g *Generator) generateItems(room *Room, difficulty int, stats *PlayerStats) {
	room.Items = nil
	zones := g.shuffledZones(room)
	count := itemCount(difficulty)
	for i := 0; i < count; i++ {
		var typ string
		if i == 0 && stats != nil {
			typ = neededItemType(stats)
		} else {
			typ = g.itemType(stats)
		}
		zone := zones[i%len(zones)]
		angle := g.randFloat(0, 2*math.Pi)
		dist := g.randFloat(0, zone.radius)
		def := defFor(typ)
		room.Items = append(room.Items, Item{
			X:      zone.x + math.Cos(angle)*dist,
			Y:      zone.y + math.Sin(angle)*dist,
			Type:   typ,
			Color:  def.Color,
			Radius: def.Radius,
			Effect: def.Effect,
		})
	}
}

// itemType rolls against the weight table, tilted toward whichever
// pool the player has drained.
func (g *Generator) itemType(stats *PlayerStats) string {
	hf, af := 1.0, 1.0
	if stats != nil {
		hf = frac(stats.Health, stats.MaxHealth)
		af = frac(stats.Ammo, stats.MaxAmmo)
	}
	weights := [5]float64{
		itemTable[0].Weight + (1-hf)*6,
		itemTable[1].Weight + (1-af)*4,
		itemTable[2].Weight,
		itemTable[3].Weight,
		itemTable[4].Weight,
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	roll := g.rng.Float64() * total
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return itemTable[i].Type
		}
	}
	return itemTable[len(itemTable)-1].Type
}

// neededItemType picks the shortage to cover first. Low ammo beats low
// health because an empty gun ends a run faster.
func neededItemType(stats *PlayerStats) string {
	if frac(stats.Ammo, stats.MaxAmmo) < 0.35 {
		return ItemAmmo
	}
	return ItemHealth
}

func hasItemType(items []Item, typ string) bool {
	for _, it := range items {
		if it.Type == typ {
			return true
		}
	}
	return false
}

func frac(v, max float64) float64 {
	if max <= 0 {
		return 1
	}
	return v / max
}

// EnsureItemSafety walks any item that landed inside an obstacle back
// toward the room center until it sits clear.
func EnsureItemSafety(room *Room) {
	cx, cy := room.SpawnPoint()
	for i := range room.Items {
		it := &room.Items[i]
		for step := 0; step < 50 && itemInsideObstacle(room, it.X, it.Y, it.Radius); step++ {
			dx, dy := cx-it.X, cy-it.Y
			d := math.Hypot(dx, dy)
			if d == 0 {
				break
			}
			it.X += dx / d * 10
			it.Y += dy / d * 10
		}
	}
}

// VerifyItemPlacements reports the indices of items overlapping an
// obstacle.
func VerifyItemPlacements(room *Room) []int {
	var bad []int
	for i, it := range room.Items {
		if itemInsideObstacle(room, it.X, it.Y, it.Radius) {
			bad = append(bad, i)
		}
	}
	return bad
}

func itemInsideObstacle(room *Room, x, y, radius float64) bool {
	for _, o := range room.Obstacles {
		nx := clampf(x, o.X, o.X+o.Width)
		ny := clampf(y, o.Y, o.Y+o.Height)
		dx, dy := x-nx, y-ny
		if dx*dx+dy*dy <= radius*radius {
			return true
		}
	}
	return false
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
