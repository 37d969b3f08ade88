package module

import "humanize/internal/services/api/parse/domain"

// Ports is the parse port set other modules may consume
type Ports struct {
	Service domain.ServicePort
	Counter domain.CounterPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
