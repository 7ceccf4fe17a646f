// Package game provides the main game loop that feeds input into the scene stack.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/gametemplate/internal/application/scene"
	"github.com/younwookim/gametemplate/internal/application/system"
	"github.com/younwookim/gametemplate/internal/application/world"
	"github.com/younwookim/gametemplate/internal/domain/input"
	"github.com/younwookim/gametemplate/internal/infrastructure/config"
	"github.com/younwookim/gametemplate/internal/infrastructure/log"
)

// FPS overlay position
const (
	fpsX = 50
	fpsY = 550
)

// FrameRecorder receives every polled frame
type FrameRecorder interface {
	RecordFrame(f system.Frame)
}

// Game implements ebiten.Game and drives the scene stack.
type Game struct {
	stack    *scene.Stack
	world    *world.World
	binding  *input.Binding
	source   system.KeySource
	recorder FrameRecorder

	tick      int
	syncTicks int
	drawErr   error

	background color.RGBA
	showFPS    bool
	resizable  bool
	screenW    int
	screenH    int
}

// New creates a Game over an already populated stack.
func New(w *world.World, stack *scene.Stack, binding *input.Binding, source system.KeySource) (*Game, error) {
	app := w.Config.App
	bg, err := config.ParseHexColor(app.Display.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background: %w", err)
	}
	return &Game{
		stack:      stack,
		world:      w,
		binding:    binding,
		source:     source,
		syncTicks:  app.Runtime.AssetSyncTicks,
		background: bg,
		showFPS:    app.Display.ShowFPS,
		resizable:  app.Display.Resizable,
		screenW:    app.Display.ScreenWidth,
		screenH:    app.Display.ScreenHeight,
	}, nil
}

// SetRecorder makes the game hand every polled frame to r.
func (g *Game) SetRecorder(r FrameRecorder) {
	g.recorder = r
}

// Stack returns the scene stack
func (g *Game) Stack() *scene.Stack {
	return g.stack
}

// World returns the shared scene context
func (g *Game) World() *world.World {
	return g.world
}

// Update dispatches this tick's input and updates the active scene.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}
	if f, ok := g.source.(system.Finite); ok && f.Done() {
		log.Info("Input source exhausted after %d ticks", g.tick)
		return ebiten.Termination
	}

	frame := g.source.Poll()
	if g.recorder != nil {
		g.recorder.RecordFrame(frame)
	}
	g.dispatch(frame)

	err := g.stack.Update(g.world)
	g.world.Input.EndFrame()
	if errors.Is(err, scene.ErrExit) {
		log.Info("Last scene closed, exiting")
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	g.tick++
	if g.syncTicks > 0 && g.tick%g.syncTicks == 0 && g.world.Assets != nil {
		g.world.Assets.Sync()
	}
	return nil
}

// dispatch resolves raw keys into events for the input state and the active scene,
// then forwards typed characters unless a button was pressed this tick.
func (g *Game) dispatch(f system.Frame) {
	buttonPressed := false
	for _, ke := range f.Keys {
		ev, ok := g.binding.Resolve(ke.Key)
		if !ok {
			log.Trace("Unmapped key %s", ke.Key)
			continue
		}
		if ke.Down && ev.IsButton() {
			buttonPressed = true
		}
		// Repeats never touch the edges and only reach the scene for repeatable events
		if ke.Repeat {
			if ev.Repeatable() {
				g.stack.Input(g.world, ev, ke.Down)
			}
			continue
		}
		g.world.Input.Apply(ev, ke.Down)
		g.stack.Input(g.world, ev, ke.Down)
	}

	if buttonPressed {
		if len(f.Chars) > 0 {
			log.Trace("Dropped %d chars typed with a button press", len(f.Chars))
		}
		return
	}
	for _, r := range f.Chars {
		if unicode.IsControl(r) {
			continue
		}
		g.stack.TextInput(g.world, r)
	}
}

// Draw renders the active scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	if err := g.stack.Draw(g.world, screen); err != nil && g.drawErr == nil {
		g.drawErr = fmt.Errorf("draw failed: %w", err)
	}
	if g.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()), fpsX, fpsY)
	}
}

// Layout returns the game's logical screen dimensions.
// A resizable game follows the window and tells the world about it.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.resizable || outsideWidth <= 0 || outsideHeight <= 0 {
		return g.screenW, g.screenH
	}
	if outsideWidth != g.world.ScreenW || outsideHeight != g.world.ScreenH {
		log.Debug("Resized to %dx%d", outsideWidth, outsideHeight)
		g.world.ScreenW = outsideWidth
		g.world.ScreenH = outsideHeight
	}
	return outsideWidth, outsideHeight
}
