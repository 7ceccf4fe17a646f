// Package level provides the gameplay scene.
package level

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"

	"github.com/younwookim/gametemplate/internal/application/scene"
	"github.com/younwookim/gametemplate/internal/application/world"
	"github.com/younwookim/gametemplate/internal/domain/input"
	"github.com/younwookim/gametemplate/internal/ecs"
	"github.com/younwookim/gametemplate/internal/infrastructure/log"
)

var colorPlayer = color.RGBA{100, 200, 100, 255}

// Level moves the player entity with the input axes
type Level struct {
	face     text.Face
	speed    int
	entities []donburi.Entity
	done     bool
}

// New creates a Level scene and spawns its player in the middle of the screen
func New(w *world.World) (*Level, error) {
	face, err := scene.LoadFace(w, w.Config.Scenes.Font.BodySize)
	if err != nil {
		return nil, err
	}

	cfg := w.Config.Scenes.Level
	size := ecs.Size{W: int(cfg.PlayerWidth), H: int(cfg.PlayerHeight)}
	player := ecs.CreatePlayer(w.Entities,
		(w.ScreenW-size.W)/2, (w.ScreenH-size.H)/2,
		size, w.PlayerName())
	log.Debug("Level: spawned player %q", w.PlayerName())

	return &Level{
		face:     face,
		speed:    ecs.ToIU(cfg.Speed),
		entities: []donburi.Entity{player},
	}, nil
}

// Update steers and moves the level's entities, or leaves after a Menu press
func (l *Level) Update(w *world.World) (scene.Switch, error) {
	if l.done {
		l.done = false
		ecs.Destroy(w.Entities, l.entities...)
		l.entities = nil
		return scene.Pop(), nil
	}

	ecs.ApplyControl(w.Entities,
		w.Input.AxisValue(input.AxisHorizontal),
		w.Input.AxisValue(input.AxisVertical),
		l.speed)
	ecs.Move(w.Entities, ecs.Bounds{W: w.ScreenW, H: w.ScreenH})
	return scene.NoChange(), nil
}

// Draw renders every body with its label above it
func (l *Level) Draw(w *world.World, screen *ebiten.Image) error {
	for _, b := range ecs.Bodies(w.Entities) {
		x := float32(b.Position.PixelX())
		y := float32(b.Position.PixelY())
		vector.DrawFilledRect(screen, x, y, float32(b.Size.W), float32(b.Size.H), colorPlayer, false)
		if b.Label != "" {
			scene.DrawText(screen, b.Label, l.face, float64(x), float64(y)-l.face.Metrics().HAscent-4, scene.ColorText)
		}
	}
	return nil
}

// Input leaves the level on a Menu press
func (l *Level) Input(_ *world.World, ev input.Event, started bool) {
	if started && ev.IsButton() && ev.Button == input.ButtonMenu {
		l.done = true
	}
}

// Name returns the scene name
func (l *Level) Name() string { return "LevelScene" }
