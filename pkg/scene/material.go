// Package scene provides renderable scene nodes pairing shared geometry
// with per-node rendering attributes.
package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/guccialex/kiss3d/pkg/light"
	"github.com/guccialex/kiss3d/pkg/resource"
)

// Camera is the view provider forwarded to materials at render time.
// Materials may mutate the implementation's cached state (e.g. recomputed
// matrices); the scene node itself never touches it.
type Camera interface {
	// ViewTransform returns the world-to-camera transform.
	ViewTransform() mgl32.Mat4
	// Transformation returns the projection * view matrix.
	Transformation() mgl32.Mat4
	// Eye returns the camera position in world space.
	Eye() mgl32.Vec3
	// Upload sets the camera uniforms for the given render pass.
	Upload(pass int)
}

// Material is a swappable shading strategy. Render receives a read-only
// view of the node's attributes and exclusive use of its geometry, and
// issues the actual draw call; the node knows nothing about how shading
// works.
type Material interface {
	Render(pass int, transform mgl32.Mat4, scale mgl32.Vec3, camera Camera, light light.Light, data *Attributes, mesh *resource.Mesh)
}

// MaterialRef is a shared, lockable handle to a material. Several nodes may
// hold the same *MaterialRef; swapping or mutating the material through one
// node is observed by every other node referencing it on their next render.
type MaterialRef struct {
	mu  sync.Mutex
	mat Material
}

// NewMaterialRef wraps a material in a shareable handle.
func NewMaterialRef(mat Material) *MaterialRef {
	return &MaterialRef{mat: mat}
}

// Get returns the current material.
func (r *MaterialRef) Get() Material {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mat
}

// Set hot-swaps the material. Every node sharing this handle renders with
// the new material from now on.
func (r *MaterialRef) Set(mat Material) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mat = mat
}

// render invokes the material while holding the handle lock, so a swap
// cannot interleave with an in-flight draw call.
func (r *MaterialRef) render(pass int, transform mgl32.Mat4, scale mgl32.Vec3, camera Camera, lt light.Light, data *Attributes, mesh *resource.Mesh) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mat == nil {
		return
	}
	r.mat.Render(pass, transform, scale, camera, lt, data, mesh)
}
