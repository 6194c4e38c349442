package switchable

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Factory constructs a device.
type Factory func() Switchable

// ErrCatalogPanic is returned if a factory panics during Resolve.
var ErrCatalogPanic = errors.New("switchable: panic during Resolve")

// UnknownDeviceError is returned when no factory is registered under Name.
type UnknownDeviceError struct{ Name string }

// Error implements the error interface.
func (e UnknownDeviceError) Error() string {
	// Example: switchable: unknown device "toaster"
	return "switchable: unknown device " + strconv.Quote(e.Name)
}

// Catalog maps device names to factories.
//
// It is populated at startup and then only read; it is not safe for concurrent Provide.
type Catalog struct {
	factories map[string]Factory
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{factories: map[string]Factory{}}
}

// DefaultCatalog returns a catalog with "lamp" and "fan".
func DefaultCatalog() *Catalog {
	return NewCatalog().
		Provide("lamp", func() Switchable { return Lamp{} }).
		Provide("fan", func() Switchable { return Fan{} })
}

// Provide registers factory under name, replacing any previous one, and returns the
// catalog for chaining.
func (c *Catalog) Provide(name string, factory Factory) *Catalog {
	c.factories[name] = factory
	return c
}

// Get returns the factory registered under name.
func (c *Catalog) Get(name string) (Factory, bool) {
	f, ok := c.factories[name]
	return f, ok
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.factories))
	for name := range c.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve constructs the device registered under name.
//
// It returns UnknownDeviceError for unregistered names (including a nil factory) and
// converts factory panics into errors wrapping ErrCatalogPanic.
func (c *Catalog) Resolve(name string) (dev Switchable, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			dev = nil
			err = fmt.Errorf("%w: %v", ErrCatalogPanic, rec)
		}
	}()

	f, ok := c.factories[name]
	if !ok || f == nil {
		return nil, UnknownDeviceError{Name: name}
	}
	return f(), nil
}

// MustResolve returns the device or panics with the Resolve error.
func (c *Catalog) MustResolve(name string) Switchable {
	dev, err := c.Resolve(name)
	if err != nil {
		panic(err)
	}
	return dev
}
