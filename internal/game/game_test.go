package game

import (
	"context"
	"testing"

	"cheesefield/internal/config"
	"cheesefield/internal/input"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Simulation.Seed = 1
	cfg.Grass.Clumps = 20
	cfg.Grass.BladesPerClump = 5
	cfg.Collectibles.Count = 0
	return cfg
}

func newTestSession(t *testing.T, cfg *config.Config) *Session {
	t.Helper()
	s, err := NewSession(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestNewSession(t *testing.T) {
	cfg := testConfig()
	cfg.Collectibles.Count = 100
	s := newTestSession(t, cfg)

	if s.Seed != 1 {
		t.Errorf("Expected seed 1, got %d", s.Seed)
	}
	if s.World.Field.Count() != 100 {
		t.Errorf("Expected 100 collectibles, got %d", s.World.Field.Count())
	}
	if s.World.Grass.Len() != 100 {
		t.Errorf("Expected 100 grass blades, got %d", s.World.Grass.Len())
	}
	if s.Player.Position() != (mgl32.Vec3{0, 0.5, 0}) {
		t.Errorf("Expected player at spawn, got %v", s.Player.Position())
	}

	// One follow update from (0, 10, 20) toward (0, 5.5, 10).
	want := mgl32.Vec3{0, 9.55, 19}
	if s.Camera.Position.Sub(want).Len() >= 1e-4 {
		t.Errorf("Expected camera at %v, got %v", want, s.Camera.Position)
	}
}

func TestNewSessionRandomSeed(t *testing.T) {
	cfg := testConfig()
	cfg.Simulation.Seed = 0
	s := newTestSession(t, cfg)

	if s.Seed == 0 {
		t.Error("Expected a clock seed to replace 0")
	}
}

func TestNewSessionCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewSession(ctx, testConfig(), zap.NewNop()); err == nil {
		t.Error("Expected canceled generation to fail")
	}
}

func TestNewSessionBadBindings(t *testing.T) {
	cfg := testConfig()
	cfg.Input = input.Config{Bindings: map[string]string{"W": "teleport"}}

	if _, err := NewSession(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Error("Expected unknown action to fail")
	}
}

func TestStepCollectsAtSpawn(t *testing.T) {
	s := newTestSession(t, testConfig())
	s.World.Field.SpawnAt(mgl32.Vec3{0.5, 0.25, 0})

	s.Step(1.0 / 60)

	if s.World.Score.Points != 10 {
		t.Errorf("Expected score 10, got %d", s.World.Score.Points)
	}
	if s.World.Field.Count() != 1 {
		t.Errorf("Expected count 1, got %d", s.World.Field.Count())
	}
	if s.Frames() != 1 {
		t.Errorf("Expected 1 frame, got %d", s.Frames())
	}
}

func TestStepPickupBoostsSpeed(t *testing.T) {
	s := newTestSession(t, testConfig())
	s.World.Field.SpawnAt(mgl32.Vec3{0, 0.25, 0})
	s.Step(1.0 / 60)

	s.Input.KeyDown("D")
	s.Step(1.0 / 60)

	// Base 0.2 plus one 0.5 bonus.
	if !mgl32.FloatEqualThreshold(s.Player.Position().X(), 0.7, 1e-6) {
		t.Errorf("Expected x 0.7 after one boosted step, got %f", s.Player.Position().X())
	}
}

func TestStepForwardMovesCamera(t *testing.T) {
	s := newTestSession(t, testConfig())
	before := s.Camera.Position

	s.Input.KeyDown("W")
	s.Step(1.0 / 60)

	want := mgl32.Vec3{0, 0.5, -0.2}
	if s.Player.Position().Sub(want).Len() >= 1e-6 {
		t.Errorf("Expected player at %v, got %v", want, s.Player.Position())
	}
	if s.Camera.Target != s.Player.Position() {
		t.Errorf("Camera should look at the player, got %v", s.Camera.Target)
	}
	if s.Camera.Position == before {
		t.Error("Camera should ease toward the player")
	}
}

func TestStepDeltaTime(t *testing.T) {
	cfg := testConfig()
	cfg.Simulation.TimeStep = config.TimeStepDelta
	s := newTestSession(t, cfg)

	s.Input.KeyDown("W")
	s.Step(1.0 / 30)

	// Half the frame rate doubles the per-step distance.
	if !mgl32.FloatEqualThreshold(s.Player.Position().Z(), -0.4, 1e-5) {
		t.Errorf("Expected z -0.4, got %f", s.Player.Position().Z())
	}
}

func TestSnapshot(t *testing.T) {
	cfg := testConfig()
	cfg.Collectibles.Count = 5
	s := newTestSession(t, cfg)
	s.Look.Apply(100, 50)
	s.Step(1.0 / 60)

	snap := s.Snapshot()

	if snap.Frame != 1 {
		t.Errorf("Expected frame 1, got %d", snap.Frame)
	}
	if len(snap.Collectibles) != 5 {
		t.Errorf("Expected 5 collectibles, got %d", len(snap.Collectibles))
	}
	if snap.Yaw != s.Look.Yaw || snap.Pitch != s.Look.Pitch {
		t.Errorf("Look mismatch: %f/%f vs %f/%f", snap.Yaw, snap.Pitch, s.Look.Yaw, s.Look.Pitch)
	}
	if snap.CameraPosition != s.Camera.Position || snap.CameraTarget != s.Camera.Target {
		t.Error("Camera mismatch")
	}
	if snap.Player.Position != s.Player.Position() {
		t.Error("Player mismatch")
	}
}
