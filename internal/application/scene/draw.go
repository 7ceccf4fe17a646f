package scene

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/gametemplate/internal/application/world"
)

// Shared palette
var (
	ColorText       = color.RGBA{255, 255, 255, 255}
	ColorUnselected = color.RGBA{188, 188, 188, 255}
)

// LoadFace resolves the configured scene font at the given size
func LoadFace(w *world.World, size float64) (text.Face, error) {
	name := w.Config.Scenes.Font.Name
	face, err := w.Assets.Face(name, size)
	if err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", name, err)
	}
	return face, nil
}

// DrawText draws s with its top-left corner at (x, y)
func DrawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}
