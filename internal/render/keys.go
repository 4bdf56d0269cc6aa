package render

import (
	"fmt"

	"cheesefield/internal/game"
	"cheesefield/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// keyCodes maps the key names used in bindings to raylib key codes.
var keyCodes = map[string]int32{
	"Space":        rl.KeySpace,
	"Enter":        rl.KeyEnter,
	"Tab":          rl.KeyTab,
	"Up":           rl.KeyUp,
	"Down":         rl.KeyDown,
	"Left":         rl.KeyLeft,
	"Right":        rl.KeyRight,
	"LeftShift":    rl.KeyLeftShift,
	"RightShift":   rl.KeyRightShift,
	"LeftControl":  rl.KeyLeftControl,
	"RightControl": rl.KeyRightControl,
	"LeftAlt":      rl.KeyLeftAlt,
	"RightAlt":     rl.KeyRightAlt,
}

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		keyCodes[string(c)] = rl.KeyA + (c - 'A')
	}
	for d := '0'; d <= '9'; d++ {
		keyCodes[string(d)] = rl.KeyZero + (d - '0')
	}
}

// bindKeys resolves every bound key name to a raylib key code.
func bindKeys(cfg input.Config) (map[int32]string, error) {
	b, err := input.NewBindings(cfg)
	if err != nil {
		return nil, err
	}

	keys := make(map[int32]string, len(b))
	for _, name := range b.Keys() {
		code, ok := keyCodes[name]
		if !ok {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		keys[code] = name
	}
	return keys, nil
}

// PollInput feeds this frame's key edges and mouse motion into s.
func (w *Window) PollInput(s *game.Session) {
	for code, name := range w.keys {
		if rl.IsKeyPressed(code) {
			s.Input.KeyDown(name)
		}
		if rl.IsKeyReleased(code) {
			s.Input.KeyUp(name)
		}
	}

	if !w.captured && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		rl.DisableCursor()
		w.captured = true
		w.log.Debug("Pointer captured")
	}
	if w.captured && rl.IsKeyPressed(rl.KeyEscape) {
		rl.EnableCursor()
		w.captured = false
		w.log.Debug("Pointer released")
	}

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		s.Look.Apply(delta.X, delta.Y)
	}

	if rl.IsWindowResized() {
		w.width = rl.GetScreenWidth()
		w.height = rl.GetScreenHeight()
		w.log.Info("Window resized", zap.Int("width", w.width), zap.Int("height", w.height))
	}
}
