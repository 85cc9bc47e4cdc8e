package domain

// Collection is an id-keyed set of entities that preserves insertion order.
// Assignment planning depends on stable iteration for reproducible tie-breaks,
// which plain Go maps cannot provide.
type Collection[T any] struct {
	ids   []string
	items map[string]T
}

func newCollection[T any]() *Collection[T] {
	return &Collection[T]{items: make(map[string]T)}
}

// Put inserts the entity under its id. Re-putting an existing id replaces the
// value but keeps the original position.
func (c *Collection[T]) Put(id string, item T) {
	if _, ok := c.items[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.items[id] = item
}

func (c *Collection[T]) Get(id string) (T, bool) {
	item, ok := c.items[id]
	return item, ok
}

// IDs returns the entity ids in insertion order.
func (c *Collection[T]) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Items returns the entities in insertion order.
func (c *Collection[T]) Items() []T {
	out := make([]T, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.items[id])
	}
	return out
}

func (c *Collection[T]) Len() int {
	return len(c.ids)
}

// Fleet, Routes, and Shipments are the three collections the planner operates
// on; the surrounding application layer owns and mutates them between actions.
type (
	Fleet     = Collection[*Vehicle]
	Routes    = Collection[*Route]
	Shipments = Collection[*Shipment]
)

func NewFleet() *Fleet         { return newCollection[*Vehicle]() }
func NewRoutes() *Routes       { return newCollection[*Route]() }
func NewShipments() *Shipments { return newCollection[*Shipment]() }
