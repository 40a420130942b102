package resource

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrCloneUnsupported is returned by Mesh.TryClone when the mesh layout
// cannot produce an independent copy. Callers may treat this as a
// recoverable "cannot clone" outcome.
var ErrCloneUnsupported = errors.New("resource: mesh layout does not support cloning")

// Face indexes the three vertices of a triangle, wound counter-clockwise.
type Face [3]uint16

// Mesh is a shared geometry resource: four independently lockable buffers
// for positions, face indices, normals, and texture coordinates. Many scene
// nodes may hold the same *Mesh; a write to one buffer never blocks reads
// of another.
//
// Buffer lengths are not validated against the face index range; keeping
// them consistent is the mesh owner's responsibility.
type Mesh struct {
	coords  *Buffer[mgl32.Vec3]
	faces   *Buffer[Face]
	normals *Buffer[mgl32.Vec3]
	uvs     *Buffer[mgl32.Vec2]
}

// NewMesh builds a mesh from the given attribute slices. Nil normals or uvs
// stay absent; accessors on absent buffers silently skip their callbacks.
// dynamic selects dynamic-draw GPU usage for meshes rewritten every frame.
func NewMesh(coords []mgl32.Vec3, faces []Face, normals []mgl32.Vec3, uvs []mgl32.Vec2, dynamic bool) *Mesh {
	usage := StaticDraw
	if dynamic {
		usage = DynamicDraw
	}
	return &Mesh{
		coords:  NewBuffer(coords, ArrayBuffer, usage),
		faces:   NewBuffer(faces, ElementArrayBuffer, usage),
		normals: NewBuffer(normals, ArrayBuffer, usage),
		uvs:     NewBuffer(uvs, ArrayBuffer, usage),
	}
}

// Coords returns the vertex position buffer.
func (m *Mesh) Coords() *Buffer[mgl32.Vec3] { return m.coords }

// Faces returns the triangle index buffer.
func (m *Mesh) Faces() *Buffer[Face] { return m.faces }

// Normals returns the per-vertex normal buffer.
func (m *Mesh) Normals() *Buffer[mgl32.Vec3] { return m.normals }

// UVs returns the texture coordinate buffer.
func (m *Mesh) UVs() *Buffer[mgl32.Vec2] { return m.uvs }

// NumVertices returns the number of vertex positions.
func (m *Mesh) NumVertices() int { return m.coords.Len() }

// NumFaces returns the number of triangles.
func (m *Mesh) NumFaces() int { return m.faces.Len() }

// RecomputeNormals derives per-vertex normals from the current positions
// and faces, overwriting (or creating) the normals buffer. The result is
// deterministic: recomputing with unchanged positions yields bit-identical
// normals.
func (m *Mesh) RecomputeNormals() error {
	var coords []mgl32.Vec3
	if err := m.coords.Read(func(c []mgl32.Vec3) {
		coords = append(coords, c...)
	}); err != nil {
		return err
	}

	var faces []Face
	if err := m.faces.Read(func(f []Face) {
		faces = append(faces, f...)
	}); err != nil {
		return err
	}

	return m.normals.replace(ComputeNormals(coords, faces, nil))
}

// ComputeNormals computes per-vertex normals as the average of the unit
// normals of every face sharing the vertex, per right-hand winding.
// Vertices referenced by no face keep a zero normal. The normals slice is
// reused when it has sufficient capacity.
func ComputeNormals(coords []mgl32.Vec3, faces []Face, normals []mgl32.Vec3) []mgl32.Vec3 {
	normals = normals[:0]
	for range coords {
		normals = append(normals, mgl32.Vec3{})
	}

	divisor := make([]float32, len(coords))

	for _, f := range faces {
		p1 := coords[f[0]]
		p2 := coords[f[1]]
		p3 := coords[f[2]]

		normal := p2.Sub(p1).Cross(p3.Sub(p1))
		if length := math32.Sqrt(normal.Dot(normal)); length > 0 {
			normal = normal.Mul(1 / length)
		}

		for _, i := range f {
			normals[i] = normals[i].Add(normal)
			divisor[i]++
		}
	}

	for i := range normals {
		if divisor[i] > 0 {
			normals[i] = normals[i].Mul(1 / divisor[i])
		}
	}

	return normals
}

// TryClone produces an independent mesh whose buffers are value-copies of
// this mesh's current contents, taken under read access. duplicateGPU also
// copies the cached GL-side buffers (requires a current GL context);
// otherwise the clone re-uploads lazily.
//
// Returns ErrCloneUnsupported when positions or faces are absent, since no
// renderable copy can be made. A poisoned buffer surfaces as ErrPoisoned.
func (m *Mesh) TryClone(duplicateGPU bool) (*Mesh, error) {
	if !m.coords.Present() || !m.faces.Present() {
		return nil, ErrCloneUnsupported
	}

	coords, err := m.coords.clone(duplicateGPU)
	if err != nil {
		return nil, err
	}
	faces, err := m.faces.clone(duplicateGPU)
	if err != nil {
		return nil, err
	}
	normals, err := m.normals.clone(duplicateGPU)
	if err != nil {
		return nil, err
	}
	uvs, err := m.uvs.clone(duplicateGPU)
	if err != nil {
		return nil, err
	}

	return &Mesh{coords: coords, faces: faces, normals: normals, uvs: uvs}, nil
}

// LoadToGPU uploads every present buffer. The caller must hold a current GL
// context.
func (m *Mesh) LoadToGPU() error {
	if err := m.coords.LoadToGPU(); err != nil {
		return err
	}
	if err := m.faces.LoadToGPU(); err != nil {
		return err
	}
	if err := m.normals.LoadToGPU(); err != nil {
		return err
	}
	return m.uvs.LoadToGPU()
}
