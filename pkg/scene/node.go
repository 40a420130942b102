package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/guccialex/kiss3d/pkg/light"
	"github.com/guccialex/kiss3d/pkg/resource"
)

// Node is a single renderable entity: one exclusively-owned Attributes
// value composed with one shared mesh. It is the only interface to
// manipulate the node's color, vertices, and texture.
type Node struct {
	data Attributes
	mesh *resource.Mesh
}

// New creates a node over mesh with the given color, texture, and material.
// Surface rendering and back-face culling start enabled, line and point
// widths at zero, no wireframe color override, and no user payload.
func New(mesh *resource.Mesh, r, g, b float32, texture *resource.Texture, material *MaterialRef) *Node {
	return &Node{
		data: Attributes{
			material:    material,
			texture:     texture,
			color:       mgl32.Vec3{r, g, b},
			drawSurface: true,
			cull:        true,
		},
		mesh: mesh,
	}
}

// TryClone produces a node with an independent deep copy of the mesh and a
// shallow clone of the attributes (shared material and texture, reset user
// payload). The GPU-side mesh state is left uninitialized for lazy
// re-upload.
//
// Returns resource.ErrCloneUnsupported when the mesh declines cloning; this
// is recoverable. A poisoned buffer surfaces as resource.ErrPoisoned.
func (n *Node) TryClone() (*Node, error) {
	data, ok := n.data.TryClone()
	if !ok {
		return nil, resource.ErrCloneUnsupported
	}
	mesh, err := n.mesh.TryClone(false)
	if err != nil {
		return nil, err
	}
	return &Node{data: data, mesh: mesh}, nil
}

// Render delegates the draw call to the node's current material, handing it
// the transform, non-uniform scale, render pass, camera, light, a read-only
// view of the attributes, and the geometry. The material may mutate the
// camera's cached state and the mesh's GPU-facing state; the node's own
// attributes are never modified.
func (n *Node) Render(transform mgl32.Mat4, scale mgl32.Vec3, pass int, camera Camera, lt light.Light) {
	n.data.material.render(pass, transform, scale, camera, lt, &n.data, n.mesh)
}

// Data returns the node's attributes.
func (n *Node) Data() *Attributes { return &n.data }

// Mesh returns the node's shared mesh.
func (n *Node) Mesh() *resource.Mesh { return n.mesh }

// RecomputeNormals derives the mesh's per-vertex normals from its current
// positions and faces.
func (n *Node) RecomputeNormals() error {
	return n.mesh.RecomputeNormals()
}

// ModifyPoints invokes f with exclusive access to the vertex positions.
// f is silently not invoked when the buffer is absent; callers must not
// assume invocation.
func (n *Node) ModifyPoints(f func(*[]mgl32.Vec3)) error {
	return n.mesh.Coords().Write(f)
}

// ReadPoints invokes f with read access to the vertex positions, skipping
// silently when absent.
func (n *Node) ReadPoints(f func([]mgl32.Vec3)) error {
	return n.mesh.Coords().Read(f)
}

// ModifyNormals invokes f with exclusive access to the vertex normals,
// skipping silently when absent.
func (n *Node) ModifyNormals(f func(*[]mgl32.Vec3)) error {
	return n.mesh.Normals().Write(f)
}

// ReadNormals invokes f with read access to the vertex normals, skipping
// silently when absent.
func (n *Node) ReadNormals(f func([]mgl32.Vec3)) error {
	return n.mesh.Normals().Read(f)
}

// ModifyFaces invokes f with exclusive access to the triangle indices,
// skipping silently when absent.
func (n *Node) ModifyFaces(f func(*[]resource.Face)) error {
	return n.mesh.Faces().Write(f)
}

// ReadFaces invokes f with read access to the triangle indices, skipping
// silently when absent.
func (n *Node) ReadFaces(f func([]resource.Face)) error {
	return n.mesh.Faces().Read(f)
}

// ModifyUVs invokes f with exclusive access to the texture coordinates,
// skipping silently when absent.
func (n *Node) ModifyUVs(f func(*[]mgl32.Vec2)) error {
	return n.mesh.UVs().Write(f)
}

// ReadUVs invokes f with read access to the texture coordinates, skipping
// silently when absent.
func (n *Node) ReadUVs(f func([]mgl32.Vec2)) error {
	return n.mesh.UVs().Read(f)
}

// Material returns the node's shared material handle.
func (n *Node) Material() *MaterialRef { return n.data.material }

// SetMaterial swaps the node's material handle.
func (n *Node) SetMaterial(mat *MaterialRef) { n.data.SetMaterial(mat) }

// SetColor sets the node color. Components are in [0, 1] by convention.
func (n *Node) SetColor(r, g, b float32) { n.data.SetColor(r, g, b) }

// SetLinesWidth sets the width of the lines drawn for this node.
func (n *Node) SetLinesWidth(width float32) { n.data.SetLinesWidth(width) }

// LinesWidth returns the width of the lines drawn for this node.
func (n *Node) LinesWidth() float32 { return n.data.LinesWidth() }

// SetLinesColor overrides the wireframe edge color; nil restores the node
// color.
func (n *Node) SetLinesColor(color *mgl32.Vec3) { n.data.SetLinesColor(color) }

// LinesColor returns the wireframe color override, nil when unset.
func (n *Node) LinesColor() *mgl32.Vec3 { return n.data.LinesColor() }

// SetPointsSize sets the size of the points drawn for this node.
func (n *Node) SetPointsSize(size float32) { n.data.SetPointsSize(size) }

// PointsSize returns the size of the points drawn for this node.
func (n *Node) PointsSize() float32 { return n.data.PointsSize() }

// SetSurfaceRendering activates or deactivates filled-surface rendering.
func (n *Node) SetSurfaceRendering(active bool) { n.data.SetSurfaceRendering(active) }

// SurfaceRenderingActive reports whether the filled surface is rendered.
func (n *Node) SurfaceRenderingActive() bool { return n.data.SurfaceRenderingActive() }

// SetBackfaceCulling enables or disables back-face culling.
func (n *Node) SetBackfaceCulling(active bool) { n.data.SetBackfaceCulling(active) }

// SetUserData attaches an opaque payload to this node.
func (n *Node) SetUserData(data any) { n.data.SetUserData(data) }

// SetTexture points the node at a (possibly shared) texture.
func (n *Node) SetTexture(tex *resource.Texture) { n.data.SetTexture(tex) }

// SetTextureByName resolves the node's texture by registered name through
// the global texture manager; unknown names fail.
func (n *Node) SetTextureByName(name string) error {
	return n.data.SetTextureByName(name)
}

// SetTextureFromFile resolves or loads-and-registers the node's texture by
// file path and logical name through the global texture manager.
func (n *Node) SetTextureFromFile(path, name string) error {
	return n.data.SetTextureFromFile(path, name)
}

// UserDataAs recovers the node's user payload as type T, reporting false on
// absence or type mismatch.
func UserDataAs[T any](n *Node) (T, bool) {
	v, ok := n.data.UserData().(T)
	return v, ok
}
