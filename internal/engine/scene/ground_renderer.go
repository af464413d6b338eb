// Package scene renders generated terrain geometry with OpenGL.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/groundmesh/internal/engine/scene/shaders"
	"github.com/Faultbox/groundmesh/internal/engine/shader"
	"github.com/Faultbox/groundmesh/internal/engine/splat"
	"github.com/Faultbox/groundmesh/internal/engine/terrain"
	"github.com/Faultbox/groundmesh/pkg/math"
)

// vertexStride is floats per interleaved vertex: pos.xyz + normal.xyz + uv.
const vertexStride = 8

// GroundRenderer owns the GPU resources for one terrain surface: the mesh
// buffers, the splat weight texture, and the shader program.
type GroundRenderer struct {
	program uint32

	locViewProj    int32
	locWorldExtent int32
	locSplat       int32
	locLightDir    int32
	locAmbient     int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	splatTex    uint32
	splatWidth  int
	splatHeight int

	worldWidth float32
	worldDepth float32

	// Bounds of the loaded mesh, for camera framing.
	MinBounds [3]float32
	MaxBounds [3]float32
}

// NewGroundRenderer compiles the ground shader. Requires a current GL context.
func NewGroundRenderer() (*GroundRenderer, error) {
	program, err := shader.CompileProgram(shaders.GroundVertexShader, shaders.GroundFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("ground shader: %w", err)
	}

	r := &GroundRenderer{program: program}
	r.locViewProj = shader.GetUniform(program, "uViewProj")
	r.locWorldExtent = shader.GetUniform(program, "uWorldExtent")
	r.locSplat = shader.GetUniform(program, "uSplat")
	r.locLightDir = shader.GetUniform(program, "uLightDir")
	r.locAmbient = shader.GetUniform(program, "uAmbient")
	return r, nil
}

// LoadMesh uploads terrain geometry, replacing any previously loaded mesh.
// worldWidth/worldDepth come from the source heightmap and drive splat UVs.
func (r *GroundRenderer) LoadMesh(mesh *terrain.Mesh, worldWidth, worldDepth float32) {
	r.clearMesh()

	r.worldWidth = worldWidth
	r.worldDepth = worldDepth
	r.MinBounds = mesh.Bounds.Min
	r.MaxBounds = mesh.Bounds.Max
	r.indexCount = int32(len(mesh.Indices))

	// Interleave pos+normal+uv for a single VBO.
	vertices := make([]float32, 0, len(mesh.Positions)*vertexStride)
	for i := range mesh.Positions {
		p := mesh.Positions[i]
		n := mesh.Normals[i]
		uv := mesh.UVs[i]
		vertices = append(vertices, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
}

// UploadSplat (re-)uploads the splat weight texture. Call after splat.Sync
// reports a repack. Allocates a new texture when dimensions change,
// otherwise updates the existing storage in place.
func (r *GroundRenderer) UploadSplat(img *splat.Image) {
	if len(img.Pixels) == 0 {
		return
	}

	resized := img.Width != r.splatWidth || img.Height != r.splatHeight
	if r.splatTex == 0 {
		gl.GenTextures(1, &r.splatTex)
		resized = true
	}
	gl.BindTexture(gl.TEXTURE_2D, r.splatTex)

	if resized {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
			int32(img.Width), int32(img.Height),
			0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pixels[0]))
		r.splatWidth = img.Width
		r.splatHeight = img.Height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
			int32(img.Width), int32(img.Height),
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pixels[0]))
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapGL(img.WrapS))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapGL(img.WrapT))
}

func wrapGL(m splat.WrapMode) int32 {
	if m == splat.WrapClampToEdge {
		return gl.CLAMP_TO_EDGE
	}
	return gl.REPEAT
}

// Render draws the terrain with a directional light.
func (r *GroundRenderer) Render(viewProj math.Mat4, lightDir, ambient [3]float32) {
	if r.vao == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, &viewProj[0])
	gl.Uniform2f(r.locWorldExtent, r.worldWidth, r.worldDepth)
	gl.Uniform3f(r.locLightDir, lightDir[0], lightDir[1], lightDir[2])
	gl.Uniform3f(r.locAmbient, ambient[0], ambient[1], ambient[2])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.splatTex)
	gl.Uniform1i(r.locSplat, 0)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (r *GroundRenderer) clearMesh() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		gl.DeleteBuffers(1, &r.vbo)
		gl.DeleteBuffers(1, &r.ebo)
		r.vao, r.vbo, r.ebo = 0, 0, 0
	}
	r.indexCount = 0
}

// Close releases all GPU resources.
func (r *GroundRenderer) Close() {
	r.clearMesh()
	if r.splatTex != 0 {
		gl.DeleteTextures(1, &r.splatTex)
		r.splatTex = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
