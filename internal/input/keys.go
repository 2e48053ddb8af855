package input

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// KeyState answers whether a named key is currently held down.
type KeyState interface {
	Pressed(name string) bool
}

// Keys is the process-wide key table. The polling side writes states
// (0 released, 1 pressed); the dispatcher only reads.
type Keys struct {
	mu     sync.RWMutex
	states map[string]int
}

func NewKeys() *Keys {
	return &Keys{states: make(map[string]int)}
}

// Set records the state of a key.
func (k *Keys) Set(name string, state int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.states[name] = state
}

// Load replaces the whole table.
func (k *Keys) Load(states map[string]int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.states = maps.Clone(states)
	if k.states == nil {
		k.states = make(map[string]int)
	}
}

// Pressed implements KeyState.
func (k *Keys) Pressed(name string) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.states[name] == 1
}

// Names returns the known key names, sorted.
func (k *Keys) Names() []string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	names := maps.Keys(k.states)
	slices.Sort(names)
	return names
}

var _ KeyState = (*Keys)(nil)
