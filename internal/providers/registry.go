// Package providers maintains the registry of provider option factories.
// Each factory produces a fresh extension builder, so no two callers ever
// share mutable builder state.
package providers

import (
	"fmt"
	"sort"
	"sync"

	"cloudmason/provm/internal/domain"
	"cloudmason/provm/internal/providers/hetzner"
	"cloudmason/provm/internal/providers/softlayer"
	"cloudmason/provm/internal/util"
)

// Factory returns a fresh options builder for one provider.
type Factory func() domain.Extension

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register adds a provider factory under the given name. It panics on an
// empty name, a nil factory, or a duplicate registration, all of which are
// programmer errors.
func Register(name string, factory Factory) {
	normalizedName := util.NormalizeKey(name)
	if normalizedName == "" {
		panic("providers: empty provider name")
	}
	if factory == nil {
		panic("providers: nil factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[normalizedName]; exists {
		panic(fmt.Sprintf("providers: provider %q already registered", name))
	}

	registry[normalizedName] = factory
}

// New returns a fresh options builder for the named provider.
func New(name string) (domain.Extension, error) {
	normalizedName := util.NormalizeKey(name)
	mu.RLock()
	factory, ok := registry[normalizedName]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, name)
	}

	return factory(), nil
}

// List returns the registered provider names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Reset clears the provider registry. Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]Factory{}
}

// RegisterSoftLayer registers the SoftLayer options factory.
func RegisterSoftLayer() {
	Register("softlayer", func() domain.Extension { return softlayer.NewBuilder() })
}

// RegisterHetzner registers the Hetzner options factory.
func RegisterHetzner() {
	Register("hetzner", func() domain.Extension { return hetzner.NewBuilder() })
}

// RegisterDefaults registers every built-in provider.
func RegisterDefaults() {
	RegisterSoftLayer()
	RegisterHetzner()
}
