package plugin

import "sync"

var globalRegistry *Registry
var globalRegistryMutex sync.RWMutex

// SetRegistry replaces the process-wide registry and returns the old one.
func SetRegistry(new *Registry) *Registry {
	globalRegistryMutex.Lock()
	defer globalRegistryMutex.Unlock()
	old := globalRegistry
	globalRegistry = new
	return old
}

// GetRegistry returns the process-wide registry.
func GetRegistry() *Registry {
	globalRegistryMutex.RLock()
	defer globalRegistryMutex.RUnlock()
	return globalRegistry
}

func init() {
	globalRegistry = NewRegistry()
}

// Register stores p in the process-wide registry.
func Register(p Plugin) error {
	return GetRegistry().Register(p)
}

// Get returns a plugin from the process-wide registry.
func Get(name string) (Plugin, bool) {
	return GetRegistry().Get(name)
}

// Names lists the process-wide registry.
func Names() []string {
	return GetRegistry().Names()
}
