// Package collection owns the authoritative, insertion-ordered list of work
// orders. Every mutation goes through here: it applies the transition,
// re-persists the whole list and fires the change hook so the companion
// bridge can publish a fresh snapshot.
package collection

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sadopc/orderclock/internal/order"
	"github.com/sadopc/orderclock/internal/store"
)

// Blob keys in the store.
const (
	keyOrders       = "orders"
	keySavedNumbers = "savedOrderNumbers"
)

// Collection keeps the ordered slice (newest first) plus an id index so
// lookup stays O(1) while iteration order stays stable.
type Collection struct {
	store *store.Store
	log   *zap.Logger

	orders  []order.Order
	index   map[uuid.UUID]int
	numbers []string

	onChange func()
}

// New builds a collection backed by s and loads the persisted state.
// A corrupt or missing blob yields an empty collection, never an error.
func New(s *store.Store, log *zap.Logger) *Collection {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Collection{store: s, log: log, index: make(map[uuid.UUID]int)}
	c.load()
	return c
}

// SetOnChange registers the hook fired after every mutation.
func (c *Collection) SetOnChange(fn func()) {
	c.onChange = fn
}

func (c *Collection) load() {
	blob, ok, err := c.store.Get(keyOrders)
	if err != nil {
		c.log.Warn("load orders", zap.Error(err))
	} else if ok {
		var orders []order.Order
		if err := json.Unmarshal([]byte(blob), &orders); err != nil {
			c.log.Warn("decode orders blob, starting empty", zap.Error(err))
		} else {
			c.orders = orders
		}
	}
	c.reindex()

	blob, ok, err = c.store.Get(keySavedNumbers)
	if err != nil {
		c.log.Warn("load saved numbers", zap.Error(err))
	} else if ok {
		var numbers []string
		if err := json.Unmarshal([]byte(blob), &numbers); err != nil {
			c.log.Warn("decode saved numbers blob, starting empty", zap.Error(err))
		} else {
			c.numbers = numbers
		}
	}
}

func (c *Collection) reindex() {
	c.index = make(map[uuid.UUID]int, len(c.orders))
	for i, o := range c.orders {
		c.index[o.ID] = i
	}
}

// persist writes the full order list through to the store. A write failure
// is logged and swallowed; the in-memory state stays authoritative.
func (c *Collection) persist() {
	data, err := json.Marshal(c.orders)
	if err == nil {
		err = c.store.Put(keyOrders, string(data))
	}
	if err != nil {
		c.log.Warn("persist orders", zap.Error(err))
	}
}

func (c *Collection) mutated() {
	c.persist()
	if c.onChange != nil {
		c.onChange()
	}
}

// Orders returns a copy of the list, newest first.
func (c *Collection) Orders() []order.Order {
	out := make([]order.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

func (c *Collection) Len() int {
	return len(c.orders)
}

// Get looks an order up by identity.
func (c *Collection) Get(id uuid.UUID) (order.Order, bool) {
	i, ok := c.index[id]
	if !ok {
		return order.Order{}, false
	}
	return c.orders[i], true
}

// Add starts a new order and prepends it to the list. The number is also
// remembered for pre-filling later orders.
func (c *Collection) Add(number string, now time.Time) order.Order {
	o := order.Start(number, now)
	c.orders = append([]order.Order{o}, c.orders...)
	c.reindex()
	c.remember(number)
	c.mutated()
	return o
}

// apply runs fn against the identified order and replaces it in place.
// Unknown ids are soft failures: logged, reported via ok, never fatal.
func (c *Collection) apply(id uuid.UUID, fn func(order.Order) order.Order) (order.Order, bool) {
	i, ok := c.index[id]
	if !ok {
		c.log.Warn("command for unknown order", zap.String("id", id.String()))
		return order.Order{}, false
	}
	c.orders[i] = fn(c.orders[i])
	c.mutated()
	return c.orders[i], true
}

func (c *Collection) TogglePause(id uuid.UUID, now time.Time) (order.Order, bool) {
	return c.apply(id, func(o order.Order) order.Order { return order.TogglePause(o, now) })
}

func (c *Collection) ToggleSetup(id uuid.UUID, now time.Time) (order.Order, bool) {
	return c.apply(id, func(o order.Order) order.Order { return order.ToggleSetup(o, now) })
}

func (c *Collection) Finish(id uuid.UUID, now time.Time) (order.Order, bool) {
	return c.apply(id, func(o order.Order) order.Order { return order.Finish(o, now) })
}

func (c *Collection) SetEditable(id uuid.UUID, editable bool) (order.Order, bool) {
	return c.apply(id, func(o order.Order) order.Order { return order.SetEditable(o, editable) })
}

// Update is the field-edit path: fn gets the current record and returns the
// rewritten one, typically composed from the order.With* helpers.
func (c *Collection) Update(id uuid.UUID, fn func(order.Order) order.Order) (order.Order, bool) {
	return c.apply(id, fn)
}

// Remove deletes the identified order.
func (c *Collection) Remove(id uuid.UUID) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.orders = append(c.orders[:i], c.orders[i+1:]...)
	c.reindex()
	c.mutated()
	return true
}

// RemoveAt deletes the orders at the given positions. Out-of-range indices
// are ignored, duplicates collapse.
func (c *Collection) RemoveAt(indices []int) {
	if len(indices) == 0 {
		return
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(c.orders) {
			drop[i] = true
		}
	}
	if len(drop) == 0 {
		return
	}
	kept := c.orders[:0]
	for i, o := range c.orders {
		if !drop[i] {
			kept = append(kept, o)
		}
	}
	c.orders = kept
	c.reindex()
	c.mutated()
}

// sortedKeys is shared by the grouping helpers.
func sortedKeys[K int | int64](m map[K]bool) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
