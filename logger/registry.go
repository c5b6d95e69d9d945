package logger

import (
	"sync"
)

// components maps component names to loggers. Pinned loggers are set with
// Register and survive global logger changes; derived loggers are built from
// the global logger on first Get and dropped when it is replaced.
var components = struct {
	mu      sync.RWMutex
	pinned  map[string]*Logger
	derived map[string]*Logger
}{
	pinned:  make(map[string]*Logger),
	derived: make(map[string]*Logger),
}

// Register pins l as the logger for the named component.
func Register(name string, l *Logger) {
	components.mu.Lock()
	defer components.mu.Unlock()
	components.pinned[name] = l
	delete(components.derived, name)
}

// Unregister removes a pinned logger; the next Get derives one from the
// global logger again.
func Unregister(name string) {
	components.mu.Lock()
	defer components.mu.Unlock()
	delete(components.pinned, name)
}

// Get returns the logger for a component, deriving and caching one from the
// global logger when none is pinned.
func Get(name string) *Logger {
	components.mu.RLock()
	l, ok := components.pinned[name]
	if !ok {
		l, ok = components.derived[name]
	}
	components.mu.RUnlock()
	if ok {
		return l
	}

	components.mu.Lock()
	defer components.mu.Unlock()
	if l, ok := components.pinned[name]; ok {
		return l
	}
	if l, ok := components.derived[name]; ok {
		return l
	}
	l = GetGlobalLogger().WithComponent(name)
	components.derived[name] = l
	return l
}

// dropDerived forgets cached component loggers after the global logger
// changes.
func dropDerived() {
	components.mu.Lock()
	defer components.mu.Unlock()
	clear(components.derived)
}
