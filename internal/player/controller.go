package player

import (
	"math"

	"cheesefield/internal/engine"
	"cheesefield/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// State is the vertical motion state.
type State int

const (
	Grounded State = iota
	Airborne
)

func (s State) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// Config holds the movement constants. Speeds and gravity are per tick.
type Config struct {
	BaseSpeed       float32 `yaml:"base_speed"`
	SprintBoost     float32 `yaml:"sprint_boost"`
	Gravity         float32 `yaml:"gravity"`
	JumpStrength    float32 `yaml:"jump_strength"`
	BoostJumpFactor float32 `yaml:"boost_jump_factor"`
	GroundY         float32 `yaml:"ground_y"`
	Size            float32 `yaml:"size"`
}

func DefaultConfig() Config {
	return Config{
		BaseSpeed:       0.2,
		SprintBoost:     0.5,
		Gravity:         0.01,
		JumpStrength:    0.2,
		BoostJumpFactor: 1.5,
		GroundY:         0.5,
		Size:            1,
	}
}

// Entity is the player cube.
type Entity struct {
	Transform engine.Transform
	VelocityY float32
	State     State
}

// NewEntity places the player at the origin, resting on the ground.
func NewEntity(groundY float32) *Entity {
	return &Entity{
		Transform: engine.NewTransform(mgl32.Vec3{0, groundY, 0}),
		State:     Grounded,
	}
}

func (e *Entity) Position() mgl32.Vec3 {
	return e.Transform.Position
}

// Motion reports what a single Step did.
type Motion struct {
	Velocity mgl32.Vec3 // planar displacement applied this tick
	Jumped   bool
	Landed   bool
}

// Controller integrates player motion once per tick.
type Controller struct {
	cfg Config
}

func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg}
}

// Step advances e by one tick. yaw orients movement, bonus is the permanent
// speed gained from pickups, and scale is 1 for frame-locked stepping or
// dt*referenceFPS when stepping by elapsed time.
func (c *Controller) Step(e *Entity, in *input.State, yaw, bonus, scale float32) Motion {
	var m Motion

	speed := c.cfg.BaseSpeed + bonus
	if in.Held(input.Boost) {
		speed += c.cfg.SprintBoost
	}

	var v mgl32.Vec3
	if in.Held(input.MoveForward) {
		v[2] -= speed
	}
	if in.Held(input.MoveBack) {
		v[2] += speed
	}
	if in.Held(input.MoveLeft) {
		v[0] -= speed
	}
	if in.Held(input.MoveRight) {
		v[0] += speed
	}
	v = engine.RotateY(v, yaw).Mul(scale)

	// A request that arrives mid-air is dropped, not queued for landing.
	jump := in.ConsumeJump() && e.State == Grounded

	if e.State == Airborne {
		e.Transform.Position[1] += e.VelocityY * scale
		e.VelocityY -= c.cfg.Gravity * scale
		if e.Transform.Position[1] <= c.cfg.GroundY {
			e.Transform.Position[1] = c.cfg.GroundY
			e.VelocityY = 0
			e.State = Grounded
			m.Landed = true
		}
	}

	if jump {
		e.VelocityY = c.cfg.JumpStrength
		if in.Held(input.Boost) {
			e.VelocityY *= c.cfg.BoostJumpFactor
		}
		e.State = Airborne
		m.Jumped = true
	}

	e.Transform.Position = e.Transform.Position.Add(v)

	if v.Len() > 0 {
		e.Transform.Yaw = float32(math.Atan2(float64(-v.X()), float64(-v.Z())))
	}

	m.Velocity = v
	return m
}
