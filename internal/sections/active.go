package sections

import "sync"

// ActiveCell holds the active section id. The tracker writes it; the header
// and palette read it or subscribe to changes.
type ActiveCell struct {
	mu     sync.RWMutex
	value  string
	nextID int
	subs   map[int]func(string)
}

// NewActiveCell returns a cell holding initial.
func NewActiveCell(initial string) *ActiveCell {
	return &ActiveCell{value: initial, subs: make(map[int]func(string))}
}

// Get returns the current value.
func (c *ActiveCell) Get() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set stores id and notifies subscribers when it changed. It reports whether
// the value changed.
func (c *ActiveCell) Set(id string) bool {
	c.mu.Lock()
	if c.value == id {
		c.mu.Unlock()
		return false
	}
	c.value = id
	fns := make([]func(string), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(id)
	}
	return true
}

// Subscribe registers fn for changes and returns a function that removes it.
func (c *ActiveCell) Subscribe(fn func(string)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.subs == nil {
		c.subs = make(map[int]func(string))
	}
	id := c.nextID
	c.nextID++
	c.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}
