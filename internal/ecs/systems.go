package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// Bounds is the playable area in pixels
type Bounds struct {
	W, H int
}

var (
	controlledQuery = query.NewQuery(filter.Contains(ControlledTag, VelocityComponent))
	movingQuery     = query.NewQuery(filter.Contains(PositionComponent, VelocityComponent))
	bodyQuery       = query.NewQuery(filter.Contains(PositionComponent, SizeComponent))
)

// ApplyControl sets the velocity of every controlled entity from the axis values.
// speed is in internal units per tick at full deflection.
func ApplyControl(w donburi.World, axisX, axisY float64, speed int) {
	controlledQuery.Each(w, func(entry *donburi.Entry) {
		vel := VelocityComponent.Get(entry)
		vel.X = int(axisX * float64(speed))
		vel.Y = int(axisY * float64(speed))
	})
}

// Move integrates velocity into position and keeps bodies inside bounds
func Move(w donburi.World, bounds Bounds) {
	movingQuery.Each(w, func(entry *donburi.Entry) {
		pos := PositionComponent.Get(entry)
		vel := VelocityComponent.Get(entry)

		pos.X += vel.X
		pos.Y += vel.Y

		var size Size
		if entry.HasComponent(SizeComponent) {
			size = *SizeComponent.Get(entry)
		}
		maxX := (bounds.W - size.W) * PositionScale
		maxY := (bounds.H - size.H) * PositionScale
		pos.X = clamp(pos.X, 0, maxX)
		pos.Y = clamp(pos.Y, 0, maxY)
	})
}

// Body is the drawable view of an entity
type Body struct {
	Position Position
	Size     Size
	Label    string
}

// Bodies returns every entity that has a position and a size
func Bodies(w donburi.World) []Body {
	var bodies []Body
	bodyQuery.Each(w, func(entry *donburi.Entry) {
		b := Body{
			Position: *PositionComponent.Get(entry),
			Size:     *SizeComponent.Get(entry),
		}
		if entry.HasComponent(LabelComponent) {
			b.Label = LabelComponent.Get(entry).Text
		}
		bodies = append(bodies, b)
	})
	return bodies
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
