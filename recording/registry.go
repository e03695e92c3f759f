package recording

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory is a function that creates a new backend instance.
// Factories are registered via Register() and called by NewBackend().
type BackendFactory func() Backend

// Format describes a registered output backend.
type Format struct {
	// Name is the registry key, e.g. "svg".
	Name string
	// Extension is the file extension including the dot, e.g. ".svg".
	Extension string
	// MediaType is the MIME type of the output, e.g. "image/svg+xml".
	MediaType string

	factory BackendFactory
}

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	formats    = make(map[string]Format)
)

// Register registers a backend factory under f.Name.
// This function is typically called from init() in backend packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    recording.Register(recording.Format{
//	        Name:      "pdf",
//	        Extension: ".pdf",
//	        MediaType: "application/pdf",
//	    }, func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
//
// Register panics if the factory is nil, the name is empty or a backend
// with the same name is already registered.
func Register(f Format, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if f.Name == "" {
		panic("recording: Register called with empty name")
	}
	if _, dup := formats[f.Name]; dup {
		panic("recording: Register called twice for " + f.Name)
	}
	f.factory = factory
	formats[f.Name] = f
}

// Unregister removes a backend from the registry.
// This is primarily useful for testing to clean up between tests.
// If the backend is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(formats, name)
}

// NewBackend creates a new backend instance by name.
// Returns an error if the backend is not registered.
// The error message includes a hint about forgotten imports.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	f, ok := formats[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return f.factory(), nil
}

// MustBackend creates a new backend instance by name, panicking on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Lookup returns the format registered under name.
func Lookup(name string) (Format, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := formats[name]
	return f, ok
}

// Backends returns a sorted list of registered backend names.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := formats[name]
	return ok
}
