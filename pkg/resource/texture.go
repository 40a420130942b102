package resource

// Texture is an immutable handle to a GPU texture. Many scene nodes may
// share one *Texture; the handle carries no mutable state of its own.
type Texture struct {
	id     uint32
	width  int32
	height int32
}

// NewTexture wraps an already-created GL texture object.
func NewTexture(id uint32, width, height int32) *Texture {
	return &Texture{id: id, width: width, height: height}
}

// ID returns the GL texture object name.
func (t *Texture) ID() uint32 { return t.id }

// Width returns the texture width in pixels.
func (t *Texture) Width() int32 { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int32 { return t.height }
