package game

import (
	"fmt"

	"drive3d/internal/components"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type hud struct {
	showColliders bool
}

func (g *Game) drawHUD() {
	rl.DrawText(fmt.Sprintf("%.1f u/s", g.Car.Speed), 20, 20, 28, rl.RayWhite)
	rl.DrawFPS(20, 56)

	g.hud.showColliders = gui.CheckBox(
		rl.Rectangle{X: 20, Y: 88, Width: 18, Height: 18},
		"colliders", g.hud.showColliders)

	// Live camera smoothing tweak, handy when tuning the follow feel.
	if exp, ok := g.Camera.Smoother.(components.ExponentialSmoother); ok {
		speed := gui.Slider(
			rl.Rectangle{X: 76, Y: 116, Width: 120, Height: 16},
			"smooth", fmt.Sprintf("%.1f", exp.Speed),
			exp.Speed, 1, 20)
		if speed != exp.Speed {
			g.Camera.Smoother = components.ExponentialSmoother{Speed: speed}
		}
	}
}
