// Package modkit provides module wiring and core deps
package modkit

import (
	"net/http"
	"reflect"

	phttp "cubewars/internal/platform/net/http"
	str "cubewars/internal/platform/strings"
)

// Module is the common surface for API modules that can mount routes and expose ports
// keep this tiny so modules stay decoupled
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set for cross wiring
	Ports() any
	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

// Base carries the routing state every module shares
// modules embed it and supply Ports
type Base struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	own    func(phttp.Router)
	extra  []func(phttp.Router)
}

// NewBase applies opts over a Base whose own routes come from own
func NewBase(own func(phttp.Router), opts ...Option) Base {
	b := Base{own: own}
	for _, o := range opts {
		o(&b)
	}
	return b
}

func (b Base) register(r phttp.Router) {
	if b.own != nil {
		b.own(r)
	}
	for _, fn := range b.extra {
		fn(r)
	}
}

// MountRoutes mounts the module under its prefix, or inline when the prefix is empty
func (b Base) MountRoutes(r phttp.Router) {
	mount := func(rr phttp.Router) {
		if len(b.mws) > 0 {
			rr.Use(b.mws...)
		}
		b.register(rr)
	}
	if b.prefix == "" {
		r.Group(mount)
		return
	}
	r.Route(str.MustPrefix(b.prefix), mount)
}

// Name returns the module name
func (b Base) Name() string { return b.name }

// Prefix returns the route prefix, empty when mounted inline
func (b Base) Prefix() string { return b.prefix }

// PortsOf pulls a T out of a module's Ports, either directly or from an exported struct field
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf that panics naming the module
func MustPortsOf[T any](m Module) T {
	if v, ok := PortsOf[T](m); ok {
		return v
	}
	panic("modkit: requested port not found on module " + m.Name())
}
