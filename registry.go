package stencil

import (
	"fmt"
	"slices"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Processor)
)

// Register adds a named processor to the registry. The CLI selects
// processors by name; library users can also look them up with Lookup.
// Registering the same name twice panics.
func Register(name string, p Processor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("stencil: processor %q already registered", name))
	}
	registry[name] = p
}

// Lookup returns a registered processor by name.
func Lookup(name string) (Processor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	return p, ok
}

// Processors returns all registered processor names, sorted.
func Processors() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ResetRegistry clears the registry (for testing).
func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Processor)
}
