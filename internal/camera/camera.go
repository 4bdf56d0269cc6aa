package camera

import (
	"math"

	"cheesefield/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

const maxPitch = math.Pi / 2

type Config struct {
	Sensitivity float32    `yaml:"sensitivity"`
	Offset      [3]float32 `yaml:"offset,flow"`
	Start       [3]float32 `yaml:"start,flow"`
	Smoothing   float32    `yaml:"smoothing"`
	FOV         float32    `yaml:"fov"` // vertical, degrees
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

func DefaultConfig() Config {
	return Config{
		Sensitivity: 0.002,
		Offset:      [3]float32{0, 5, 10},
		Start:       [3]float32{0, 10, 20},
		Smoothing:   0.1,
		FOV:         75,
		Near:        0.1,
		Far:         1000,
	}
}

// Look accumulates relative pointer motion into yaw and pitch (radians).
type Look struct {
	Yaw         float32
	Pitch       float32
	Sensitivity float32
}

func NewLook(sensitivity float32) *Look {
	return &Look{Sensitivity: sensitivity}
}

// Apply turns by a pointer delta. Pitch is clamped to [-pi/2, pi/2]; yaw is
// left unbounded.
func (l *Look) Apply(dx, dy float32) {
	l.Yaw -= dx * l.Sensitivity
	l.Pitch -= dy * l.Sensitivity

	if l.Pitch > maxPitch {
		l.Pitch = maxPitch
	}
	if l.Pitch < -maxPitch {
		l.Pitch = -maxPitch
	}
}

// Follow trails a target from an offset that turns with the look yaw.
type Follow struct {
	Position  mgl32.Vec3
	Target    mgl32.Vec3
	Offset    mgl32.Vec3
	Smoothing float32
	FOV       float32
	Near      float32
	Far       float32
}

func NewFollow(cfg Config) *Follow {
	return &Follow{
		Position:  engine.Vec3(cfg.Start),
		Offset:    engine.Vec3(cfg.Offset),
		Smoothing: cfg.Smoothing,
		FOV:       cfg.FOV,
		Near:      cfg.Near,
		Far:       cfg.Far,
	}
}

// Update eases the position toward target+rotY(offset, yaw) and aims
// straight at target. Only position is smoothed.
func (f *Follow) Update(target mgl32.Vec3, yaw float32) {
	ideal := target.Add(engine.RotateY(f.Offset, yaw))
	f.Position = engine.Lerp(f.Position, ideal, f.Smoothing)
	f.Target = target
}

// ViewProjection returns projection * view for the current pose.
func (f *Follow) ViewProjection(aspect float32) mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(f.FOV), aspect, f.Near, f.Far)
	view := mgl32.LookAtV(f.Position, f.Target, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}
