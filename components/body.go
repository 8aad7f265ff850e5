package components

import (
	"github.com/automoto/vaultrush/physics"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	*physics.Body
}

var Body = donburi.NewComponentType[BodyData]()
