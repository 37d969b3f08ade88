package modkit

import "humanize/internal/modkit/module"

// Module is the contract every API module satisfies. Service modules return it from their
// New(Deps, ...Option) constructor
type Module = module.Module
