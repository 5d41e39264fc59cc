package plot

import (
	"fmt"
	"slices"
	"sync"
)

// BackendFactory creates a backend with the default theme.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available to NewBackend under name. Backend
// packages call it from init, so importing the package for its side
// effect is enough to select the backend by name:
//
//	import _ "github.com/gogpu/plot/backend/raster"
//
//	b, err := plot.NewBackend("raster")
//
// Register panics on a nil factory or a name that is already taken.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("plot: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("plot: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister forgets name. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend returns a fresh backend registered under name.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("plot: unknown backend %q (registered: %v)", name, Backends())
	}
	return factory(), nil
}

// MustBackend is NewBackend for names the caller has imported itself.
// It panics on an unknown name.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether NewBackend(name) would succeed.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
