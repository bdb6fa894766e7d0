// Package registry provides the process-wide main window registry.
//
// It replaces a mutable global "current window" slot: collaborators
// receive the registry by reference and query it for the single
// top-level window without taking ownership of it.
package registry

import "sync"

// Registry holds the single main window reference. The first
// publication wins; later attempts are rejected.
type Registry[W any] struct {
	mu     sync.RWMutex
	set    bool
	window W
}

// New creates an empty registry.
func New[W any]() *Registry[W] {
	return &Registry[W]{}
}

// SetMainWindow publishes the main window. It reports whether the
// write took effect; once set, the reference never changes for the
// process lifetime.
func (r *Registry[W]) SetMainWindow(w W) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.set {
		return false
	}
	r.window = w
	r.set = true
	return true
}

// MainWindow returns the published window, if any.
func (r *Registry[W]) MainWindow() (W, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.window, r.set
}
