package game

import (
	"context"
	"fmt"
	"time"

	"cheesefield/internal/camera"
	"cheesefield/internal/config"
	"cheesefield/internal/engine"
	"cheesefield/internal/input"
	"cheesefield/internal/player"
	"cheesefield/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Session is the whole simulation: player, look, camera, collectibles and
// grass. It is driven one frame at a time by a Driver.
type Session struct {
	Config *config.Config
	Seed   int64
	Player *player.Entity
	Input  *input.State
	Look   *camera.Look
	Camera *camera.Follow
	World  *world.World

	controller *player.Controller
	log        *zap.Logger
	frames     uint64
	stepMs     float64
	positions  []mgl32.Vec3
}

// Snapshot is the read-only view handed to the surface each frame.
type Snapshot struct {
	Frame          uint64
	Player         engine.Transform
	PlayerState    player.State
	CameraPosition mgl32.Vec3
	CameraTarget   mgl32.Vec3
	Pitch          float32
	Yaw            float32
	Score          int
	Collectibles   []mgl32.Vec3 // reused between frames
	StepMs         float64
}

// NewSession builds the world from cfg. A zero seed is replaced with one
// taken from the clock.
func NewSession(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Session, error) {
	bindings, err := input.NewBindings(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	w, err := world.New(ctx, cfg.Collectibles, cfg.Grass, seed)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Config:     cfg,
		Seed:       seed,
		Player:     player.NewEntity(cfg.Player.GroundY),
		Input:      input.NewState(bindings),
		Look:       camera.NewLook(cfg.Camera.Sensitivity),
		Camera:     camera.NewFollow(cfg.Camera),
		World:      w,
		controller: player.NewController(cfg.Player),
		log:        log,
	}

	worldLog := log.Named("world")
	w.Field.OnPickup.AddListener(func(p world.Pickup) {
		worldLog.Info("Cheese collected",
			zap.Int("score", p.Score),
			zap.Float32("speed_bonus", w.Score.SpeedBonus),
		)
	})

	s.Camera.Update(s.Player.Position(), s.Look.Yaw)

	log.Info("Session ready",
		zap.Int64("seed", seed),
		zap.Int("collectibles", w.Field.Count()),
		zap.Int("grass_blades", w.Grass.Len()),
		zap.Duration("took", time.Since(start)),
	)
	return s, nil
}

// Step advances the simulation by one frame that lasted dt seconds.
func (s *Session) Step(dt float32) {
	start := time.Now()
	scale := s.Config.Simulation.Scale(dt)

	m := s.controller.Step(s.Player, s.Input, s.Look.Yaw, s.World.Score.SpeedBonus, scale)
	if m.Jumped {
		s.log.Debug("Jump", zap.Float32("velocity", s.Player.VelocityY))
	}
	if m.Landed {
		s.log.Debug("Landed", zap.Uint64("frame", s.frames))
	}

	s.World.Collect(s.Player.Position())
	s.Camera.Update(s.Player.Position(), s.Look.Yaw)

	s.frames++
	s.stepMs = float64(time.Since(start).Microseconds()) / 1000.0
}

// Frames returns how many steps have run.
func (s *Session) Frames() uint64 {
	return s.frames
}

func (s *Session) Snapshot() Snapshot {
	s.positions = s.World.Field.Positions(s.positions[:0])

	return Snapshot{
		Frame:          s.frames,
		Player:         s.Player.Transform,
		PlayerState:    s.Player.State,
		CameraPosition: s.Camera.Position,
		CameraTarget:   s.Camera.Target,
		Pitch:          s.Look.Pitch,
		Yaw:            s.Look.Yaw,
		Score:          s.World.Score.Points,
		Collectibles:   s.positions,
		StepMs:         s.stepMs,
	}
}
