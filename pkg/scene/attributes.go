package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/guccialex/kiss3d/pkg/resource"
)

// Attributes is the per-node rendering state: color, line/point styling,
// culling and surface toggles, the material and texture references, and an
// opaque user payload.
//
// Each node exclusively owns its Attributes value, but the material and
// texture it points at are shared: mutating either through one node is
// visible to every node referencing the same instance.
type Attributes struct {
	material *MaterialRef
	texture  *resource.Texture

	color      mgl32.Vec3
	linesColor *mgl32.Vec3 // nil means "use color" for wireframe edges
	wlines     float32
	wpoints    float32

	drawSurface bool
	cull        bool

	userData any
}

// TryClone produces a copy sharing the same material and texture instances,
// with identical colors, widths, and flags, and an empty user payload. The
// payload is never copied: its type is erased and its copy semantics are
// unknown. The bool result is reserved for payloads that refuse cloning and
// is always true today.
func (a *Attributes) TryClone() (Attributes, bool) {
	clone := *a
	clone.userData = nil
	if a.linesColor != nil {
		c := *a.linesColor
		clone.linesColor = &c
	}
	return clone, true
}

// Material returns the shared material handle.
func (a *Attributes) Material() *MaterialRef { return a.material }

// SetMaterial points the node at a (possibly shared) material handle.
func (a *Attributes) SetMaterial(mat *MaterialRef) { a.material = mat }

// Texture returns the shared texture handle.
func (a *Attributes) Texture() *resource.Texture { return a.texture }

// SetTexture points the node at a (possibly shared) texture.
func (a *Attributes) SetTexture(tex *resource.Texture) { a.texture = tex }

// SetTextureByName resolves a texture registered under name through the
// global texture manager. The texture must already have been registered;
// an unknown name fails and leaves the attributes untouched.
func (a *Attributes) SetTextureByName(name string) error {
	tex, ok := resource.GlobalManager().Get(name)
	if !ok {
		return fmt.Errorf("scene: texture %q was never registered", name)
	}
	a.texture = tex
	return nil
}

// SetTextureFromFile resolves or loads-and-registers the texture at path
// under name through the global texture manager, which owns caching and
// deduplication.
func (a *Attributes) SetTextureFromFile(path, name string) error {
	tex, err := resource.GlobalManager().Add(path, name)
	if err != nil {
		return err
	}
	a.texture = tex
	return nil
}

// Color returns the node color. Components are in [0, 1] by convention;
// the range is not enforced.
func (a *Attributes) Color() mgl32.Vec3 { return a.color }

// SetColor sets the node color.
func (a *Attributes) SetColor(r, g, b float32) {
	a.color = mgl32.Vec3{r, g, b}
}

// LinesColor returns the wireframe color override, or nil when edges use
// the node color.
func (a *Attributes) LinesColor() *mgl32.Vec3 { return a.linesColor }

// SetLinesColor overrides the wireframe edge color. Pass nil to fall back
// to the node color.
func (a *Attributes) SetLinesColor(color *mgl32.Vec3) { a.linesColor = color }

// LinesWidth returns the width of the lines drawn for this node.
func (a *Attributes) LinesWidth() float32 { return a.wlines }

// SetLinesWidth sets the wireframe line width. Non-negative by convention.
func (a *Attributes) SetLinesWidth(width float32) { a.wlines = width }

// PointsSize returns the size of the points drawn for this node.
func (a *Attributes) PointsSize() float32 { return a.wpoints }

// SetPointsSize sets the point rendering size. Non-negative by convention.
func (a *Attributes) SetPointsSize(size float32) { a.wpoints = size }

// SurfaceRenderingActive reports whether the filled surface is rendered.
func (a *Attributes) SurfaceRenderingActive() bool { return a.drawSurface }

// SetSurfaceRendering activates or deactivates filled-surface rendering.
func (a *Attributes) SetSurfaceRendering(active bool) { a.drawSurface = active }

// BackfaceCullingEnabled reports whether back-face culling is active.
func (a *Attributes) BackfaceCullingEnabled() bool { return a.cull }

// SetBackfaceCulling enables or disables back-face culling.
func (a *Attributes) SetBackfaceCulling(active bool) { a.cull = active }

// UserData returns the opaque payload attached to this node, nil when
// absent. Callers recover the concrete value with a type assertion.
func (a *Attributes) UserData() any { return a.userData }

// SetUserData attaches an owner-defined payload the scene core carries
// opaquely.
func (a *Attributes) SetUserData(data any) { a.userData = data }
