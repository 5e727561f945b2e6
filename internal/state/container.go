package state

import "sync"

// MutateFunc inspects and edits a working copy of the state, returning the
// remote effects the edit implies. Returning an error discards the copy.
type MutateFunc func(*State) ([]Effect, error)

// Container holds the authoritative local state. All writes go through
// Mutate, one at a time; readers get independent snapshots.
type Container struct {
	mu  sync.RWMutex
	cur State
}

// NewContainer wraps an initial state
func NewContainer(initial State) *Container {
	return &Container{cur: initial}
}

// View returns a snapshot of the current state
func (c *Container) View() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cur.Clone()
}

// Mutate runs fn against a private copy of the current state. On success
// the copy is committed and fn's effects are returned; on error nothing
// changes. fn sees the latest committed state, so validation inside it
// holds at commit time.
func (c *Container) Mutate(fn MutateFunc) ([]Effect, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.cur.Clone()
	effects, err := fn(&next)
	if err != nil {
		return nil, err
	}
	c.cur = next
	return effects, nil
}

// Replace swaps in a rebuilt state wholesale. Reconciliation uses this
// after deriving a repaired state from the remote snapshot.
func (c *Container) Replace(next State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = next
}
