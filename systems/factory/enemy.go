package factory

import (
	"github.com/automoto/vaultrush/archetypes"
	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/physics"
	"github.com/automoto/vaultrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy from a generator record. Unknown type
// names fall back to the basic type.
func CreateEnemy(ecs *ecs.ECS, spawn dungeon.Enemy) *donburi.Entry {
	typeName := spawn.Type
	enemyType, exists := cfg.Enemy.Types[typeName]
	if !exists {
		typeName = dungeon.EnemyNormal
		enemyType = cfg.Enemy.Types[typeName]
	}

	var enemy *donburi.Entry
	if typeName == dungeon.EnemyBoss {
		enemy = archetypes.Enemy.Spawn(ecs, tags.Boss)
	} else {
		enemy = archetypes.Enemy.Spawn(ecs)
	}

	body := physics.NewBody(physics.Vec2{X: spawn.X, Y: spawn.Y}, physics.Circle{Radius: enemyType.Radius})
	body.Mass = enemyType.Mass
	if enemyType.KnockbackResistance > 0 {
		body.KnockbackResistance = enemyType.KnockbackResistance
	}
	body.MaxKnockbackSpeed = enemyType.MaxKnockbackSpeed
	body.Knockback = &physics.KnockbackState{}
	components.Body.SetValue(enemy, components.BodyData{Body: body})

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:     typeName,
		TypeConfig:   &enemyType, // Cache the config reference
		Facing:       physics.Vec2{X: -1, Y: 0},
		Home:         physics.Vec2{X: spawn.X, Y: spawn.Y},
		WanderTarget: physics.Vec2{X: spawn.X, Y: spawn.Y},
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: spawn.Health,
		Max:     spawn.Health,
	})
	// StateNone lets the AI system pick the type's opening state
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StateNone,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Flash.SetValue(enemy, components.FlashData{
		Duration: 0,
		R:        1, G: 1, B: 1,
	})

	return enemy
}
