// Package resource provides the shared mesh, buffer, and texture resources
// referenced by scene nodes.
package resource

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrPoisoned is returned by buffer accessors after a writer callback
// panicked while holding exclusive access. The buffer contents can no
// longer be trusted and the condition is not recoverable.
var ErrPoisoned = errors.New("resource: buffer poisoned by a panicking writer")

// Target selects the GL binding point of a buffer.
type Target uint8

const (
	// ArrayBuffer holds per-vertex attribute data.
	ArrayBuffer Target = iota
	// ElementArrayBuffer holds face indices.
	ElementArrayBuffer
)

func (t Target) gl() uint32 {
	switch t {
	case ElementArrayBuffer:
		return gl.ELEMENT_ARRAY_BUFFER
	default:
		return gl.ARRAY_BUFFER
	}
}

// Usage hints how often a buffer is rewritten between draws.
type Usage uint8

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

func (u Usage) gl() uint32 {
	switch u {
	case DynamicDraw:
		return gl.DYNAMIC_DRAW
	case StreamDraw:
		return gl.STREAM_DRAW
	default:
		return gl.STATIC_DRAW
	}
}

// Buffer is one lockable mesh attribute buffer with cached GPU-side state.
//
// A nil data slice means the attribute is absent: Read and Write skip their
// callback entirely. A non-nil but empty slice is a present buffer and the
// callback is invoked with an empty slice. Readers run concurrently with
// each other; a writer excludes everyone else on this buffer only, never
// across buffers.
type Buffer[T any] struct {
	mu       sync.RWMutex
	data     []T
	poisoned bool

	target Target
	usage  Usage
	vbo    uint32 // 0 until uploaded
	dirty  bool   // CPU data modified since last upload
}

// NewBuffer wraps data in a buffer. A nil slice produces an absent buffer.
func NewBuffer[T any](data []T, target Target, usage Usage) *Buffer[T] {
	return &Buffer[T]{
		data:   data,
		target: target,
		usage:  usage,
		dirty:  data != nil,
	}
}

// Read invokes f with shared read access to the buffer contents.
// f is not invoked when the buffer is absent. f must not retain the slice
// past the call.
func (b *Buffer[T]) Read(f func([]T)) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.poisoned {
		return ErrPoisoned
	}
	if b.data == nil {
		return nil
	}
	f(b.data)
	return nil
}

// Write invokes f with exclusive access to the buffer contents. f may grow,
// shrink, or replace the slice through the pointer. f is not invoked when
// the buffer is absent. A panic inside f poisons the buffer before
// propagating.
func (b *Buffer[T]) Write(f func(*[]T)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.poisoned {
		return ErrPoisoned
	}
	if b.data == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			b.poisoned = true
			panic(r)
		}
	}()
	f(&b.data)
	b.dirty = true
	return nil
}

// Len returns the number of elements, 0 when absent.
func (b *Buffer[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}

// Present reports whether the attribute exists on this buffer.
func (b *Buffer[T]) Present() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.data != nil
}

// replace installs new contents, creating the buffer if it was absent, and
// marks the GPU copy stale.
func (b *Buffer[T]) replace(data []T) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.poisoned {
		return ErrPoisoned
	}
	b.data = data
	b.dirty = true
	return nil
}

// clone produces an independent value-copy of the buffer contents, taken
// under read access. With duplicateGPU the GL-side buffer object is copied
// as well (requires a current GL context); otherwise the clone starts with
// no GPU state and uploads lazily.
func (b *Buffer[T]) clone(duplicateGPU bool) (*Buffer[T], error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.poisoned {
		return nil, ErrPoisoned
	}
	nb := &Buffer[T]{target: b.target, usage: b.usage}
	if b.data != nil {
		nb.data = append([]T(nil), b.data...)
		nb.dirty = true
	}
	if duplicateGPU && b.vbo != 0 {
		nb.vbo = copyGLBuffer(b.vbo, b.byteLen(), b.usage.gl())
		nb.dirty = false
	}
	return nb, nil
}

// LoadToGPU creates the GL buffer object on first use and re-uploads the
// contents when dirty. The caller must hold a current GL context. No-op for
// absent or clean buffers.
func (b *Buffer[T]) LoadToGPU() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.poisoned {
		return ErrPoisoned
	}
	if b.data == nil || !b.dirty {
		return nil
	}
	if b.vbo == 0 {
		gl.GenBuffers(1, &b.vbo)
	}
	target := b.target.gl()
	gl.BindBuffer(target, b.vbo)
	if len(b.data) > 0 {
		gl.BufferData(target, b.byteLen(), gl.Ptr(b.data), b.usage.gl())
	}
	b.dirty = false
	return nil
}

// Bind makes the buffer current on its target, uploading first if stale.
func (b *Buffer[T]) Bind() error {
	if err := b.LoadToGPU(); err != nil {
		return err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	gl.BindBuffer(b.target.gl(), b.vbo)
	return nil
}

// byteLen returns the size of the CPU data in bytes. Callers hold b.mu.
func (b *Buffer[T]) byteLen() int {
	var zero T
	return len(b.data) * int(unsafe.Sizeof(zero))
}

// copyGLBuffer allocates a new GL buffer object and copies size bytes from
// src into it.
func copyGLBuffer(src uint32, size int, usage uint32) uint32 {
	var dst uint32
	gl.GenBuffers(1, &dst)
	if size > 0 {
		gl.BindBuffer(gl.COPY_READ_BUFFER, src)
		gl.BindBuffer(gl.COPY_WRITE_BUFFER, dst)
		gl.BufferData(gl.COPY_WRITE_BUFFER, size, nil, usage)
		gl.CopyBufferSubData(gl.COPY_READ_BUFFER, gl.COPY_WRITE_BUFFER, 0, 0, size)
	}
	return dst
}
