package mtf

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/on-the-ground/mtftable/shared/ownership"
	"github.com/on-the-ground/mtftable/shared/sequence"
	"go.uber.org/zap"
)

// ErrNoSuchKey is returned by Get when no entry matches the key.
var ErrNoSuchKey = fmt.Errorf("key not found")

// ErrFreed is raised when a table is used after Free.
var ErrFreed = errors.New("mtf: table used after free")

type entry[K, V any] struct {
	key   K
	value V
}

// Table is a key/value store whose entries move to the front on every
// successful lookup.
type Table[K, V any] struct {
	id      string
	entries *sequence.Sequence[entry[K, V]]
	compare CompareFunc[K]
	keys    ownership.Destructor[K]
	values  ownership.Destructor[V]

	logger   *zap.Logger
	now      func() time.Time
	created  time.Time
	counters counters
}

// New returns an empty table using compare for key equality.
func New[K, V any](compare CompareFunc[K], opts ...Option) *Table[K, V] {
	if compare == nil {
		panic("mtf: New requires a compare function")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table[K, V]{
		id:      o.tableID(),
		entries: sequence.New[entry[K, V]](),
		compare: compare,
		logger:  o.logger,
		now:     o.now,
	}
	t.created = t.now()
	// entry records always belong to the table; their contents only when
	// a destructor says so
	t.entries.SetValueDestructor(ownership.Owned(t.release))

	if ce := t.check("created table"); ce != nil {
		ce.Write(t.idField())
	}
	return t
}

// ID identifies the table in log entries.
func (t *Table[K, V]) ID() string {
	return t.id
}

// SetKeyDestructor decides who releases keys leaving the table from now on.
func (t *Table[K, V]) SetKeyDestructor(d ownership.Destructor[K]) {
	t.mustBeLive()
	t.keys = d
}

// SetValueDestructor decides who releases values leaving the table from now on.
func (t *Table[K, V]) SetValueDestructor(d ownership.Destructor[V]) {
	t.mustBeLive()
	t.values = d
}

// IsEmpty reports whether the table holds no entry.
func (t *Table[K, V]) IsEmpty() bool {
	t.mustBeLive()
	return t.entries.IsEmpty()
}

// Len returns the number of entries, duplicates included.
func (t *Table[K, V]) Len() int {
	t.mustBeLive()
	return t.entries.Len()
}

// Insert adds a new entry at the front. An existing entry with an equal key
// is kept but shadowed until the new one is removed.
func (t *Table[K, V]) Insert(key K, value V) {
	t.mustBeLive()
	t.entries.Insert(t.entries.First(), entry[K, V]{key: key, value: value})
	t.counters.inserts++

	if ce := t.check("inserted entry"); ce != nil {
		ce.Write(t.idField(), digestField(key), zap.Int("entries", t.entries.Len()))
	}
}

// Lookup returns the value of the first entry equal to key and moves that
// entry to the front. On a miss the order is left untouched.
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	t.mustBeLive()
	t.counters.lookups++

	p, depth, ok := t.find(key)
	if !ok {
		t.counters.probes += uint64(depth)
		t.counters.misses++
		var zero V
		return zero, false
	}
	t.counters.probes += uint64(depth + 1)
	t.counters.hits++

	if depth > 0 {
		p = t.entries.MoveToFront(p)
		t.counters.relocations++
		if ce := t.check("moved entry to front"); ce != nil {
			ce.Write(t.idField(), digestField(key), zap.Int("depth", depth))
		}
	}
	return t.entries.Inspect(p).value, true
}

// Get is Lookup reporting a miss as ErrNoSuchKey.
func (t *Table[K, V]) Get(key K) (V, error) {
	v, ok := t.Lookup(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrNoSuchKey, key)
	}
	return v, nil
}

// Peek returns the value of the first entry equal to key without moving
// it and without counting a lookup.
func (t *Table[K, V]) Peek(key K) (V, bool) {
	t.mustBeLive()
	p, _, ok := t.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return t.entries.Inspect(p).value, true
}

// Remove deletes every entry equal to key, not only the first, and returns
// how many were deleted. Survivors keep their order.
func (t *Table[K, V]) Remove(key K) int {
	t.mustBeLive()
	removed := 0
	for p := t.entries.First(); !t.entries.IsEnd(p); {
		if t.compare(t.entries.Inspect(p).key, key) == 0 {
			p = t.entries.Remove(p)
			removed++
			continue
		}
		p = t.entries.Next(p)
	}
	t.counters.removals += uint64(removed)

	if removed > 0 {
		if ce := t.check("removed entries"); ce != nil {
			ce.Write(t.idField(), digestField(key), zap.Int("removed", removed))
		}
	}
	return removed
}

// All yields key/value pairs front to back without reordering. The table
// must not be modified during iteration.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	t.mustBeLive()
	return func(yield func(K, V) bool) {
		for e := range t.entries.All() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns the keys front to back.
func (t *Table[K, V]) Keys() []K {
	t.mustBeLive()
	keys := make([]K, 0, t.entries.Len())
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Stats returns a snapshot of the table's counters.
func (t *Table[K, V]) Stats() Stats {
	t.mustBeLive()
	return t.counters.snapshot(t.entries.Len(), t.created, t.now())
}

// Free releases every entry front to back through the registered
// destructors and drops the underlying sequence. The table is unusable
// afterwards.
func (t *Table[K, V]) Free() {
	t.mustBeLive()
	n := t.entries.Len()
	t.entries.Free()
	t.entries = nil

	if ce := t.check("freed table"); ce != nil {
		ce.Write(t.idField(), zap.Int("released", n))
	}
}

func (t *Table[K, V]) mustBeLive() {
	if t.entries == nil {
		panic(ErrFreed)
	}
}

// find scans from the front and returns the position of the first match
// along with the number of entries skipped before it.
func (t *Table[K, V]) find(key K) (sequence.Position, int, bool) {
	depth := 0
	for p := t.entries.First(); !t.entries.IsEnd(p); p = t.entries.Next(p) {
		if t.compare(t.entries.Inspect(p).key, key) == 0 {
			return p, depth, true
		}
		depth++
	}
	return sequence.Position{}, depth, false
}

func (t *Table[K, V]) release(e entry[K, V]) {
	t.keys.Release(e.key)
	t.values.Release(e.value)
}
