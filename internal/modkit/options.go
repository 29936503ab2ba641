package modkit

import (
	"net/http"

	phttp "cubewars/internal/platform/net/http"
)

// Option adjusts a module's Base before it is mounted
type Option func(*Base)

// WithName names the module in logs and port lookups
func WithName(name string) Option { return func(b *Base) { b.name = name } }

// WithPrefix mounts the module under prefix; "" mounts it inline
func WithPrefix(prefix string) Option { return func(b *Base) { b.prefix = prefix } }

// WithMiddlewares wraps every route of the module, outermost first.
// The API uses it to put the session check in front of the reports
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Base) { b.mws = append(b.mws, mw...) }
}

// WithRegister adds routes mounted after the module's own
func WithRegister(fn func(phttp.Router)) Option {
	return func(b *Base) { b.extra = append(b.extra, fn) }
}
