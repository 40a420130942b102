package resource

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/guccialex/kiss3d/internal/logger"
)

// ErrNoLoader is returned by Registry.Add when no loader function was
// installed, so textures can only be registered pre-built.
var ErrNoLoader = errors.New("resource: no texture loader installed")

// TextureManager resolves textures by logical name. Implementations own
// caching and deduplication; this package only bridges to them.
type TextureManager interface {
	// Add resolves or loads-and-registers the texture at path under name.
	Add(path, name string) (*Texture, error)
	// Get looks up a previously registered texture by name.
	Get(name string) (*Texture, bool)
}

// LoaderFunc decodes the image file at path into a texture. Decoding and
// GPU upload are the embedding application's responsibility; the registry
// only caches the result.
type LoaderFunc func(path string) (*Texture, error)

// Registry is an in-memory TextureManager keyed by logical name.
type Registry struct {
	mu     sync.Mutex
	load   LoaderFunc
	byName map[string]*Texture
}

// NewRegistry creates a registry. load may be nil, in which case Add only
// serves names registered through Register.
func NewRegistry(load LoaderFunc) *Registry {
	return &Registry{
		load:   load,
		byName: make(map[string]*Texture),
	}
}

// Register installs an already-built texture under name, replacing any
// previous registration.
func (r *Registry) Register(name string, tex *Texture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[name] = tex
}

// Add returns the texture registered under name, loading it from path on a
// cache miss. Concurrent callers for the same name share one instance.
func (r *Registry) Add(path, name string) (*Texture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tex, ok := r.byName[name]; ok {
		logger.Debug("texture cache hit", zap.String("name", name))
		return tex, nil
	}
	if r.load == nil {
		return nil, fmt.Errorf("loading texture %q from %s: %w", name, path, ErrNoLoader)
	}

	tex, err := r.load(path)
	if err != nil {
		return nil, fmt.Errorf("loading texture %q from %s: %w", name, path, err)
	}
	r.byName[name] = tex
	logger.Debug("texture loaded", zap.String("name", name), zap.String("path", path))
	return tex, nil
}

// Get looks up a texture by name.
func (r *Registry) Get(name string) (*Texture, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tex, ok := r.byName[name]
	return tex, ok
}

var (
	globalMu      sync.RWMutex
	globalManager TextureManager = NewRegistry(nil)
)

// GlobalManager returns the process-wide texture manager.
func GlobalManager() TextureManager {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalManager
}

// SetGlobalManager installs the process-wide texture manager used by
// name-based texture resolution.
func SetGlobalManager(tm TextureManager) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalManager = tm
}
