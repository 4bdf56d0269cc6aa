package world

import (
	"math/rand"

	"cheesefield/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
)

// FieldConfig describes the collectible cheese cubes.
type FieldConfig struct {
	Count        int     `yaml:"count"`
	Range        float32 `yaml:"range"`  // side of the square spawn area, centered on the origin
	Height       float32 `yaml:"height"` // y of every collectible
	PickupRadius float32 `yaml:"pickup_radius"`
	Points       int     `yaml:"points"`
	SpeedBonus   float32 `yaml:"speed_bonus"`
	Size         float32 `yaml:"size"`
}

func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Count:        100,
		Range:        500,
		Height:       0.25,
		PickupRadius: 0.75,
		Points:       10,
		SpeedBonus:   0.5,
		Size:         0.5,
	}
}

// Collectible is the ECS component of a cheese cube.
type Collectible struct {
	Position mgl32.Vec3
}

// Pickup describes one collected cube.
type Pickup struct {
	Position    mgl32.Vec3
	Replacement mgl32.Vec3
	Score       int
}

type hit struct {
	entity   ecs.Entity
	position mgl32.Vec3
}

// Field keeps the active collectibles. Every pickup spawns exactly one
// replacement, so the active count never changes after NewField.
type Field struct {
	OnPickup engine.EventWithArg[Pickup]

	cfg    FieldConfig
	rng    *rand.Rand
	world  *ecs.World
	mapper *ecs.Map1[Collectible]
	filter *ecs.Filter1[Collectible]
	hits   []hit
}

// NewField spawns cfg.Count collectibles using rng for placement.
func NewField(cfg FieldConfig, rng *rand.Rand) *Field {
	w := ecs.NewWorld()
	f := &Field{
		cfg:   cfg,
		rng:   rng,
		world: &w,
	}
	f.mapper = ecs.NewMap1[Collectible](f.world)
	f.filter = ecs.NewFilter1[Collectible](f.world)

	for i := 0; i < cfg.Count; i++ {
		f.Spawn()
	}
	return f
}

// Spawn places a collectible uniformly inside the spawn square.
func (f *Field) Spawn() mgl32.Vec3 {
	half := f.cfg.Range / 2
	p := mgl32.Vec3{
		f.rng.Float32()*f.cfg.Range - half,
		f.cfg.Height,
		f.rng.Float32()*f.cfg.Range - half,
	}
	f.SpawnAt(p)
	return p
}

// SpawnAt places a collectible at an exact position.
func (f *Field) SpawnAt(p mgl32.Vec3) {
	f.mapper.NewEntity(&Collectible{Position: p})
}

// Count returns the number of active collectibles.
func (f *Field) Count() int {
	n := 0
	query := f.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Positions appends every active collectible position to dst.
func (f *Field) Positions(dst []mgl32.Vec3) []mgl32.Vec3 {
	query := f.filter.Query()
	for query.Next() {
		dst = append(dst, query.Get().Position)
	}
	return dst
}

// CheckCollisions collects every cube closer than the pickup radius to pos.
// Members are gathered before anything is removed, so each cube present at
// call time is visited exactly once and replacements wait for the next call.
func (f *Field) CheckCollisions(pos mgl32.Vec3, score *Score) []Pickup {
	f.hits = f.hits[:0]
	query := f.filter.Query()
	for query.Next() {
		c := query.Get()
		if c.Position.Sub(pos).Len() < f.cfg.PickupRadius {
			f.hits = append(f.hits, hit{entity: query.Entity(), position: c.Position})
		}
	}

	if len(f.hits) == 0 {
		return nil
	}

	pickups := make([]Pickup, 0, len(f.hits))
	for _, h := range f.hits {
		f.world.RemoveEntity(h.entity)
		score.Award(f.cfg.Points, f.cfg.SpeedBonus)
		p := Pickup{
			Position:    h.position,
			Replacement: f.Spawn(),
			Score:       score.Points,
		}
		pickups = append(pickups, p)
		f.OnPickup.Invoke(p)
	}
	return pickups
}
