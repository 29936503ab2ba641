package repokit

import "fmt"

// Binder binds a domain repo T to a backend handle Q (a Queryer or a Warehouse)
type Binder[Q, T any] interface {
	Bind(Q) T
}

// BindFunc lets you create a Binder from a function
type BindFunc[Q, T any] func(Q) T

// Bind calls the underlying function
func (f BindFunc[Q, T]) Bind(q Q) T { return f(q) }

// MustBind panics early on programmer error (nil handle), then binds
func MustBind[Q, T any](b Binder[Q, T], q Q) T {
	if any(q) == nil {
		panic(fmt.Sprintf("repokit: nil %T handle", (*Q)(nil)))
	}
	return b.Bind(q)
}
