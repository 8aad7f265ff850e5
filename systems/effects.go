package systems

import (
	"github.com/automoto/vaultrush/components"
	"github.com/automoto/vaultrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, hatch pulse, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateHatchPulse(ecs)
	updateAutoDestroy(ecs)
}

// updateFlashEffects decrements flash timers and removes expired flashes
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateHatchPulse advances the hatch's tween so it breathes in place
func updateHatchPulse(ecs *ecs.ECS) {
	tags.Hatch.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Tween) || !e.HasComponent(components.Hatch) {
			return
		}
		tw := components.Tween.Get(e)
		if tw == nil {
			return
		}
		pulse, _, seqDone := tw.Update(float32(tickDelta))
		components.Hatch.Get(e).Pulse = float64(pulse)
		if seqDone {
			tw.Reset()
		}
	})
}

// updateAutoDestroy handles entities that should be destroyed after a countdown
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining <= 0 {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// TriggerFlash starts or restarts a color flash on an entity
func TriggerFlash(entry *donburi.Entry, duration int, r, g, b float32) {
	if entry.HasComponent(components.Flash) {
		flash := components.Flash.Get(entry)
		flash.Duration = duration
		flash.R, flash.G, flash.B = r, g, b
	} else {
		entry.AddComponent(components.Flash)
		components.Flash.Set(entry, &components.FlashData{
			Duration: duration,
			R:        r,
			G:        g,
			B:        b,
		})
	}
}
