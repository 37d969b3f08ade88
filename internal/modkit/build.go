package modkit

import (
	"net/http"
	"slices"

	"humanize/internal/modkit/httpkit"
)

// Built is the resolved module configuration
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// Register adds the module's endpoints; the module sets it after Build
	Register func(httpkit.Router)
}

// Build resolves opts. Register starts as a no-op
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Register = func(httpkit.Router) {}
	b.Mw = slices.Clone(b.Mw)
	return b
}

// Mount registers the module on r under its prefix and middleware
func (b Built) Mount(r httpkit.Router) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, b.Register)
}
