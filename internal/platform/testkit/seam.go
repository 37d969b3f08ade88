package testkit

import (
	"sync"
	"testing"
)

// global guards tests that touch process wide state (module registry, default parser)
var global sync.Mutex

// Swap points *target at replacement until the test ends
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	prev := *target
	*target = replacement
	t.Cleanup(func() { *target = prev })
}

// Serial holds the package wide lock until the test ends
func Serial(t *testing.T) {
	t.Helper()
	global.Lock()
	t.Cleanup(global.Unlock)
}
