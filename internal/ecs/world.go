package ecs

import (
	"github.com/yohamta/donburi"
)

// NewWorld creates an empty entity world
func NewWorld() donburi.World {
	return donburi.NewWorld()
}

// CreatePlayer creates an input-controlled entity at the given pixel position
func CreatePlayer(w donburi.World, pixelX, pixelY int, size Size, name string) donburi.Entity {
	e := w.Create(
		PositionComponent,
		VelocityComponent,
		SizeComponent,
		LabelComponent,
		ControlledTag,
	)
	entry := w.Entry(e)

	PositionComponent.SetValue(entry, Position{X: pixelX * PositionScale, Y: pixelY * PositionScale})
	VelocityComponent.SetValue(entry, Velocity{})
	SizeComponent.SetValue(entry, size)
	LabelComponent.SetValue(entry, Label{Text: name})

	return e
}

// Destroy removes the given entities, skipping ones already gone
func Destroy(w donburi.World, entities ...donburi.Entity) {
	for _, e := range entities {
		if w.Valid(e) {
			w.Remove(e)
		}
	}
}
