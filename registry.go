package tin

import (
	"fmt"
	"sort"
	"sync"
)

// RendererFactory creates a new renderer instance.
type RendererFactory func() Renderer

var (
	registryMu sync.RWMutex
	renderers  = make(map[string]RendererFactory)
)

// RegisterRenderer makes a renderer available by name. Backend packages
// call it from init(), following the database/sql driver pattern:
//
//	func init() {
//	    tin.RegisterRenderer("raster", func() tin.Renderer { return New() })
//	}
//
// RegisterRenderer panics if factory is nil or the name is taken.
func RegisterRenderer(name string, factory RendererFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("tin: RegisterRenderer factory is nil")
	}
	if _, dup := renderers[name]; dup {
		panic("tin: RegisterRenderer called twice for " + name)
	}
	renderers[name] = factory
}

// UnregisterRenderer removes a renderer from the registry. Unknown names
// are ignored.
func UnregisterRenderer(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(renderers, name)
}

// NewRenderer creates a renderer by name.
//
//	import _ "github.com/gogpu/tin/backends/raster"
//
//	r, err := tin.NewRenderer("raster")
func NewRenderer(name string) (Renderer, error) {
	registryMu.RLock()
	factory, ok := renderers[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownRenderer, name)
	}
	return factory(), nil
}

// MustRenderer is like NewRenderer but panics on error.
func MustRenderer(name string) Renderer {
	r, err := NewRenderer(name)
	if err != nil {
		panic(err)
	}
	return r
}

// Renderers returns the registered names, sorted.
func Renderers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRendererRegistered reports whether name has a factory.
func IsRendererRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := renderers[name]
	return ok
}
