// Package render shows a game session in a raylib window.
package render

import (
	"fmt"

	"cheesefield/internal/config"
	"cheesefield/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Window is the raylib surface. All methods must run on the goroutine that
// called Open.
type Window struct {
	cfg   *config.Config
	world *world.World
	log   *zap.Logger

	keys     map[int32]string
	captured bool
	width    int
	height   int

	sky         rl.Color
	cheeseColor rl.Color

	ground      rl.Model
	playerModel rl.Model
	grass       *grassBatch
	debugLines  []string
	cubes       []mgl32.Vec3
}

// Open creates the window and uploads the scene meshes. w must already be
// generated; its grass is copied to the GPU once here.
func Open(cfg *config.Config, w *world.World, log *zap.Logger) (*Window, error) {
	keys, err := bindKeys(cfg.Input)
	if err != nil {
		return nil, err
	}

	colors, err := parseColors(cfg.Render)
	if err != nil {
		return nil, err
	}

	var flags uint32 = rl.FlagMsaa4xHint
	if cfg.Window.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if cfg.Window.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("open window %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))
	// Escape releases the pointer instead of quitting.
	rl.SetExitKey(rl.KeyNull)

	win := &Window{
		cfg:         cfg,
		world:       w,
		log:         log.Named("render"),
		keys:        keys,
		width:       rl.GetScreenWidth(),
		height:      rl.GetScreenHeight(),
		sky:         colors.sky,
		cheeseColor: colors.cheese,
	}

	groundMesh := rl.GenMeshPlane(cfg.Render.GroundSize, cfg.Render.GroundSize, 1, 1)
	win.ground = rl.LoadModelFromMesh(groundMesh)
	win.ground.Materials.Maps.Color = colors.ground

	size := cfg.Player.Size
	win.playerModel = rl.LoadModelFromMesh(rl.GenMeshCube(size, size, size))
	win.playerModel.Materials.Maps.Color = colors.player

	win.grass = newGrassBatch(cfg.Render, w.Grass, colors.grass)

	initStyle()

	win.log.Info("Window opened",
		zap.Int("width", win.width),
		zap.Int("height", win.height),
		zap.Int("grass_blades", w.Grass.Len()),
	)
	return win, nil
}

// Close releases GPU resources and the window.
func (w *Window) Close() {
	w.grass.unload()
	rl.UnloadModel(w.playerModel)
	rl.UnloadModel(w.ground)
	rl.CloseWindow()
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *Window) FrameTime() float32 {
	return rl.GetFrameTime()
}

func (w *Window) aspect() float32 {
	if w.height == 0 {
		return 1
	}
	return float32(w.width) / float32(w.height)
}

type sceneColors struct {
	sky, ground, player, cheese, grass rl.Color
}

func parseColors(cfg config.RenderConfig) (sceneColors, error) {
	var c sceneColors
	for _, p := range []struct {
		name  string
		value string
		dst   *rl.Color
	}{
		{"sky_color", cfg.SkyColor, &c.sky},
		{"ground_color", cfg.GroundColor, &c.ground},
		{"player_color", cfg.PlayerColor, &c.player},
		{"collectible_color", cfg.CollectibleColor, &c.cheese},
		{"grass_color", cfg.GrassColor, &c.grass},
	} {
		rgba, err := config.ParseHexColor(p.value)
		if err != nil {
			return c, fmt.Errorf("render %s: %w", p.name, err)
		}
		*p.dst = rgba
	}
	return c, nil
}

// Overlay theme, light text on translucent dark panels.
var (
	colorPanel = rl.NewColor(18, 18, 24, 200)
	colorText  = rl.NewColor(235, 235, 240, 255)
)

func initStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 16)
}
