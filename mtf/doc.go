// Package mtf provides a self-organizing key/value table driven by the
// move-to-front heuristic.
//
// Entries are kept in a position-addressed sequence. Every successful
// lookup splices the matched entry to the front, so keys that are read
// often are found after fewer comparisons:
//
//	t := mtf.New[string, int](mtf.Ordered[string]())
//	t.Insert("a", 1)
//	t.Insert("b", 2)         // order: b, a
//	v, ok := t.Lookup("a")   // 1, true; order: a, b
//
// Keys are compared with an injected three-way CompareFunc. Only the zero
// result is used, as equality. There is no hashing and no ordering of the
// table by key.
//
// Duplicate keys are allowed. Insert always adds a new entry at the front,
// so the most recent insert of a key shadows older ones. Remove drops every
// entry equal to the given key, not only the first.
//
// Ownership of keys and values is explicit. By default the table borrows
// them. Registering an ownership.Owned destructor for keys or values hands
// each one to that destructor exactly once when it leaves the table, through
// Remove or Free.
//
// A Table is not safe for concurrent use. Callers that share one must
// serialize every operation, lookups included, since lookups reorder.
package mtf
