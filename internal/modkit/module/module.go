// Package module holds the module contract and the helpers api wiring uses to find
// modules and their ports. It only depends on the router seam so module packages can
// import it without cycles
package module

import (
	phttp "humanize/internal/platform/net/http"
)

// Module is a named unit of routes plus the ports it offers to its siblings
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
	// Ports is nil or a struct whose exported fields are the offered interfaces
	Ports() any
}
