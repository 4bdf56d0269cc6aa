package render

import (
	"unsafe"

	"cheesefield/internal/config"
	"cheesefield/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxInstances caps one DrawMeshInstanced call.
const maxInstances = 65536

const grassVS = `#version 330
in vec3 vertexPosition;
in mat4 instanceTransform;

uniform mat4 mvp;

out float bladeY;

void main() {
    bladeY = vertexPosition.y;
    gl_Position = mvp*instanceTransform*vec4(vertexPosition, 1.0);
}
`

const grassFS = `#version 330
in float bladeY;

uniform vec4 colDiffuse;
uniform float bladeHeight;

out vec4 finalColor;

void main() {
    float shade = 0.55 + 0.45*clamp(bladeY/bladeHeight, 0.0, 1.0);
    finalColor = vec4(colDiffuse.rgb*shade, colDiffuse.a);
}
`

// grassBatch draws the decorative field with one instanced cone mesh.
type grassBatch struct {
	shader   rl.Shader
	mesh     rl.Mesh
	material rl.Material
	grass    *world.Grass
	matrices []rl.Matrix // one per blade, clump order
	batch    []rl.Matrix
	visible  []int
}

func newGrassBatch(cfg config.RenderConfig, grass *world.Grass, color rl.Color) *grassBatch {
	g := &grassBatch{
		grass:    grass,
		matrices: bladeMatrices(grass, cfg.BladeHeight),
		batch:    make([]rl.Matrix, 0, maxInstances),
	}

	g.shader = rl.LoadShaderFromMemory(grassVS, grassFS)
	locs := unsafe.Slice(g.shader.Locs, rl.ShaderLocMapCubemap+1)
	locs[rl.ShaderLocMatrixMvp] = rl.GetShaderLocation(g.shader, "mvp")
	locs[rl.ShaderLocMatrixModel] = rl.GetShaderLocationAttrib(g.shader, "instanceTransform")
	heightLoc := rl.GetShaderLocation(g.shader, "bladeHeight")
	rl.SetShaderValue(g.shader, heightLoc, []float32{cfg.BladeHeight}, rl.ShaderUniformFloat)

	g.mesh = rl.GenMeshCone(cfg.BladeRadius, cfg.BladeHeight, cfg.BladeSlices)
	g.material = rl.LoadMaterialDefault()
	g.material.Shader = g.shader
	g.material.Maps.Color = color

	return g
}

// bladeMatrices bakes every blade transform. The cone mesh grows up from
// y=0, so it is dropped by half its height to center it on the blade
// position.
func bladeMatrices(grass *world.Grass, height float32) []rl.Matrix {
	center := mgl32.Translate3D(0, -height/2, 0)
	blades := grass.Blades()
	out := make([]rl.Matrix, len(blades))
	for i, b := range blades {
		out[i] = toMatrix(b.Matrix().Mul4(center))
	}
	return out
}

// draw renders the blades of the listed clumps.
func (g *grassBatch) draw(clumps []int) {
	per := 0
	if len(g.grass.Clumps) > 0 {
		per = len(g.grass.Clumps[0].Blades)
	}

	g.batch = batchClumps(g.matrices, clumps, per, maxInstances, g.batch, func(batch []rl.Matrix) {
		rl.DrawMeshInstanced(g.mesh, g.material, batch, len(batch))
	})
}

// batchClumps gathers the blades of the listed clumps into buf and hands
// emit batches of at most limit matrices. A clump larger than limit is
// split. buf is reused for every batch and returned empty.
func batchClumps(matrices []rl.Matrix, clumps []int, per, limit int, buf []rl.Matrix, emit func([]rl.Matrix)) []rl.Matrix {
	buf = buf[:0]
	for _, i := range clumps {
		blades := matrices[i*per : (i+1)*per]
		for len(blades) > 0 {
			n := min(limit-len(buf), len(blades))
			buf = append(buf, blades[:n]...)
			blades = blades[n:]
			if len(buf) == limit {
				emit(buf)
				buf = buf[:0]
			}
		}
	}
	if len(buf) > 0 {
		emit(buf)
	}
	return buf[:0]
}

func (g *grassBatch) unload() {
	// The material owns the shader.
	rl.UnloadMaterial(g.material)
	rl.UnloadMesh(&g.mesh)
}
