package toml

import "github.com/cespare/xxhash/v2"

// hashIndexThreshold is the entry count at which Table builds its hash
// index (a map from key-name hash to entry indices) rather than relying
// on linear scan. Below it,
// a linear scan over a handful of cache-resident entries beats the
// constant overhead of hashing and probing.
const hashIndexThreshold = 6

// entry is one key/value pair of a Table.
type entry struct {
	key  Key
	item Item
}

// Table is an insertion-ordered map from Key to Item, with freeze-state
// tracking that enforces TOML's rules about which tables may later be
// extended, reopened, or dotted into. See tableOrigin for the five ways a
// table can come to exist and what each permits.
type Table struct {
	entries []entry
	index   map[uint64][]int32 // hash(name) -> indices into entries, once built
	origin  tableOrigin
	frozen  bool
}

func newTable(origin tableOrigin) *Table {
	return &Table{origin: origin}
}

// Len reports the number of entries in the table.
func (t *Table) Len() int { return len(t.entries) }

func hashKeyName(name string) uint64 {
	return xxhash.Sum64String(name)
}

// find returns the index of the entry named name, or -1.
func (t *Table) find(name string) int {
	if t.index != nil {
		for _, idx := range t.index[hashKeyName(name)] {
			if t.entries[idx].key.Name == name {
				return int(idx)
			}
		}
		return -1
	}
	for i := range t.entries {
		if t.entries[i].key.Name == name {
			return i
		}
	}
	return -1
}

// buildIndex constructs the hash index over the current entries. Called
// once, lazily, the first time the entry count crosses
// hashIndexThreshold.
func (t *Table) buildIndex() {
	t.index = make(map[uint64][]int32, len(t.entries)*2)
	for i := range t.entries {
		h := hashKeyName(t.entries[i].key.Name)
		t.index[h] = append(t.index[h], int32(i))
	}
}

// Get looks up name and returns its Item and true, or (zero, false) if
// absent.
func (t *Table) Get(name string) (Item, bool) {
	i := t.find(name)
	if i < 0 {
		return Item{}, false
	}
	return t.entries[i].item, true
}

// Keys returns the table's keys in insertion order. The returned slice is
// a fresh copy; callers may not observe internal mutation through it.
func (t *Table) Keys() []Key {
	keys := make([]Key, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.key
	}
	return keys
}

// TableEntry is a single (key, item) pair as returned by Table.Entries.
type TableEntry struct {
	Key  Key
	Item Item
}

// Entries returns the table's (key, item) pairs in insertion order.
func (t *Table) Entries() []TableEntry {
	out := make([]TableEntry, len(t.entries))
	for i, e := range t.entries {
		out[i] = TableEntry{Key: e.key, Item: e.item}
	}
	return out
}

// IsFrozen reports whether this table rejects all further insertion,
// regardless of the operation attempting it.
func (t *Table) IsFrozen() bool { return t.frozen }

// freeze marks the table permanently closed to new entries. Idempotent.
func (t *Table) freeze() { t.frozen = true }

// insert appends a brand-new entry, growing the backing slice
// geometrically via append (Go's native equivalent of the original's
// arena grow/grow_to tip-realloc) and charging the growth against arena
// if the slice's backing array changed.
func (t *Table) insert(arena *Arena, key Key, item Item) {
	before := cap(t.entries)
	t.entries = append(t.entries, entry{key: key, item: item})
	if cap(t.entries) != before {
		arena.recordGrowth(cap(t.entries))
	}
	if t.index != nil {
		h := hashKeyName(key.Name)
		t.index[h] = append(t.index[h], int32(len(t.entries)-1))
	} else if len(t.entries) >= hashIndexThreshold {
		t.buildIndex()
	}
}

// setItem overwrites the item at an existing index. Nothing in the parser
// calls it: headerChild promotes an implicit table by changing the
// table's origin in place.
func (t *Table) setItem(i int, item Item) {
	t.entries[i].item = item
}

// dottedChild is the mutation primitive for dotted-key traversal within a
// "a.b.c = value" statement: it looks up name and, if absent, inserts a
// fresh originDotted table; if present, it permits descending only through
// tables that are still open to dotted extension (originImplicit or
// originDotted and not frozen) and rejects descending through a table
// that already has its own explicit identity (originHeader,
// originArrayElement, originInline) — dotted keys may never redefine a
// table already given form by "[header]" syntax.
func (t *Table) dottedChild(arena *Arena, key Key) (*Table, *Error) {
	i := t.find(key.Name)
	if i < 0 {
		child := newTable(originDotted)
		t.insert(arena, key, tableItem(child, key.Span))
		return child, nil
	}

	existing := t.entries[i]
	if existing.item.Kind != KindTable {
		return nil, newErrorWithFirst(KindDuplicateKey, key.Span, existing.key.Span,
			"key already defined as a non-table value")
	}
	child := existing.item.table
	if child.frozen || child.origin == originHeader || child.origin == originInline || child.origin == originArrayElement {
		return nil, newErrorWithFirst(KindDuplicateKey, key.Span, existing.key.Span,
			"cannot extend table via dotted keys")
	}
	return child, nil
}

// implicitChild is the intermediate-segment traversal primitive shared by
// standard-header ("[a.b.c]") and array-table-header ("[[a.b.c]]")
// resolution: every segment but the last just needs to exist as a
// descendable table, creating one with originImplicit if absent, or
// descending into the most recently appended element if the segment
// names an existing array-of-tables (TOML's rule that "[a.b.c]" under an
// array-of-tables "a" addresses the latest "a" element).
func (t *Table) implicitChild(arena *Arena, key Key) (*Table, *Error) {
	i := t.find(key.Name)
	if i < 0 {
		child := newTable(originImplicit)
		t.insert(arena, key, tableItem(child, key.Span))
		return child, nil
	}

	existing := t.entries[i]
	switch existing.item.Kind {
	case KindTable:
		child := existing.item.table
		if child.frozen || child.origin == originInline {
			return nil, newErrorWithFirst(KindDuplicateKey, key.Span, existing.key.Span,
				"cannot traverse into a frozen table")
		}
		return child, nil
	case KindArray:
		arr := existing.item.array
		if !arr.IsArrayOfTables() || arr.Len() == 0 {
			return nil, newErrorWithFirst(KindDottedKeyInvalidType, key.Span, existing.key.Span,
				"key does not refer to a table")
		}
		last, _ := arr.Get(arr.Len() - 1)
		tbl, _ := last.AsTable()
		return tbl, nil
	default:
		return nil, newErrorWithFirst(KindDottedKeyInvalidType, key.Span, existing.key.Span,
			"key does not refer to a table")
	}
}

// headerChild resolves the final segment of a "[a.b.c]" standard table
// header: creating a fresh originHeader table if absent, promoting a
// still-open originImplicit table to originHeader on its first explicit
// heading, and rejecting every other case (duplicate header, or heading a
// table already given identity by dotted keys or array-of-tables).
func (t *Table) headerChild(arena *Arena, key Key) (*Table, *Error) {
	i := t.find(key.Name)
	if i < 0 {
		child := newTable(originHeader)
		t.insert(arena, key, tableItem(child, key.Span))
		return child, nil
	}

	existing := t.entries[i]
	if existing.item.Kind != KindTable {
		return nil, newErrorWithFirst(KindDuplicateKey, key.Span, existing.key.Span,
			"key already defined as a non-table value")
	}
	child := existing.item.table
	if child.origin == originImplicit && !child.frozen {
		child.origin = originHeader
		return child, nil
	}
	return nil, newErrorWithFirst(KindDuplicateKey, key.Span, existing.key.Span, "table already defined")
}

// arrayTableChild resolves the final segment of a "[[a.b.c]]"
// array-of-tables header: finding or creating the named array-of-tables,
// rejecting a name already bound to something else, then appending and
// returning a fresh open table element.
func (t *Table) arrayTableChild(arena *Arena, key Key) (*Table, *Error) {
	i := t.find(key.Name)
	if i < 0 {
		arr := newArray(arrayOfTables)
		t.insert(arena, key, arrayItem(arr, key.Span))
		return arr.appendTable(arena, key.Span)
	}

	existing := t.entries[i]
	if existing.item.Kind != KindArray || !existing.item.array.IsArrayOfTables() {
		return nil, newErrorWithFirst(KindDuplicateKey, key.Span, existing.key.Span,
			"key already defined and is not an array of tables")
	}
	return existing.item.array.appendTable(arena, key.Span)
}

// insertLeaf adds a final (non-table-valued) key to the table, enforcing
// that the table accepts new entries at all and that name is not already
// present.
func (t *Table) insertLeaf(arena *Arena, key Key, item Item) *Error {
	if t.frozen {
		return newError(KindDuplicateKey, key.Span, "cannot add key to a frozen table")
	}
	if i := t.find(key.Name); i >= 0 {
		return newErrorWithFirst(KindDuplicateKey, key.Span, t.entries[i].key.Span, "duplicate key")
	}
	t.insert(arena, key, item)
	return nil
}
