package render

import (
	"cheesefield/internal/camera"
	"cheesefield/internal/game"
	"cheesefield/internal/hud"
	"cheesefield/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelPadding = 8
	lineHeight   = 22
)

// Render draws the scene from the snapshot's camera, then the overlay.
func (w *Window) Render(snap game.Snapshot) {
	view := camera.Follow{
		Position: snap.CameraPosition,
		Target:   snap.CameraTarget,
		FOV:      w.cfg.Camera.FOV,
		Near:     w.cfg.Camera.Near,
		Far:      w.cfg.Camera.Far,
	}
	frustum := world.ExtractFrustum(view.ViewProjection(w.aspect()))
	w.grass.visible = w.world.VisibleClumps(&frustum, snap.Player.Position, w.cfg.Render.DrawDistance, w.grass.visible[:0])

	cam := rl.Camera3D{
		Position:   toVector3(snap.CameraPosition),
		Target:     toVector3(snap.CameraTarget),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       w.cfg.Camera.FOV,
		Projection: rl.CameraPerspective,
	}

	rl.BeginDrawing()
	rl.ClearBackground(w.sky)

	rl.BeginMode3D(cam)
	rl.DrawModel(w.ground, rl.Vector3Zero(), 1.0, rl.White)
	w.grass.draw(w.grass.visible)

	size := w.cfg.Collectibles.Size
	w.cubes = world.VisibleCollectibles(&frustum, snap.Collectibles, size, w.cubes[:0])
	for _, p := range w.cubes {
		rl.DrawCube(toVector3(p), size, size, size, w.cheeseColor)
	}

	rl.DrawModelEx(
		w.playerModel,
		toVector3(snap.Player.Position),
		rl.Vector3{X: 0, Y: 1, Z: 0},
		snap.Player.Yaw*rl.Rad2deg,
		rl.Vector3{X: 1, Y: 1, Z: 1},
		rl.White,
	)
	rl.EndMode3D()

	w.drawOverlay(snap)
	rl.EndDrawing()
}

func (w *Window) drawOverlay(snap game.Snapshot) {
	w.debugLines = append(w.debugLines[:0], hud.DebugLines(snap.Player.Position, snap.CameraPosition, snap.Pitch, snap.Yaw)...)

	// Debug panel, top left
	debugHeight := float32(len(w.debugLines)*lineHeight + 2*panelPadding)
	gui.Panel(rl.Rectangle{X: 10, Y: 10, Width: 330, Height: debugHeight}, "")
	for i, line := range w.debugLines {
		gui.Label(rl.Rectangle{
			X:      10 + panelPadding,
			Y:      float32(10 + panelPadding + i*lineHeight),
			Width:  330 - 2*panelPadding,
			Height: lineHeight,
		}, line)
	}

	// Score panel, top right
	const scoreWidth = 150
	x := float32(w.width - scoreWidth - 10)
	gui.Panel(rl.Rectangle{X: x, Y: 10, Width: scoreWidth, Height: lineHeight + 2*panelPadding}, "")
	gui.Label(rl.Rectangle{
		X:      x + panelPadding,
		Y:      10 + panelPadding,
		Width:  scoreWidth - 2*panelPadding,
		Height: lineHeight,
	}, hud.ScoreLine(snap.Score))

	if w.cfg.Render.ShowFPS {
		rl.DrawFPS(10, int32(debugHeight)+20)
		rl.DrawText(hud.StatusLine(snap.PlayerState, snap.StepMs), 10, int32(debugHeight)+44, 20, rl.DarkGray)
	}
}
