package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/lixenwraith/chaos-merge/service"
)

var ErrUnknown = errors.New("unknown name")

// Catalog maps names to constructors of any kind
type Catalog[F any] struct {
	mu    sync.RWMutex
	items map[string]F
}

func NewCatalog[F any]() *Catalog[F] {
	return &Catalog[F]{items: make(map[string]F)}
}

// Add binds name to f, a later Add for the same name wins
func (c *Catalog[F]) Add(name string, f F) {
	c.mu.Lock()
	c.items[name] = f
	c.mu.Unlock()
}

func (c *Catalog[F]) Lookup(name string) (F, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.items[name]
	return f, ok
}

// Require is Lookup with an error naming the known entries
func (c *Catalog[F]) Require(name string) (F, error) {
	if f, ok := c.Lookup(name); ok {
		return f, nil
	}
	var zero F
	return zero, fmt.Errorf("%w %q, have %s", ErrUnknown, name, strings.Join(c.Names(), ", "))
}

func (c *Catalog[F]) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	c.mu.RUnlock()
	slices.Sort(names)
	return names
}

// ServiceFactory builds a fresh, uninitialized service
type ServiceFactory func() service.Service

// Services is the process-wide service catalog filled by the manifest
var Services = NewCatalog[ServiceFactory]()

func RegisterService(name string, factory ServiceFactory) { Services.Add(name, factory) }

func GetService(name string) (ServiceFactory, bool) { return Services.Lookup(name) }

func ServiceNames() []string { return Services.Names() }
