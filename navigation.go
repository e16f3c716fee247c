package toml

import "strings"

// MaybeItem is a null-coalescing handle on a possibly-absent Item: every
// navigation method on it returns another MaybeItem, so a chain of
// lookups through a document shape that turns out not to match never
// panics and never needs an intermediate nil check. The chain only needs
// checking once, at the end, with Get/OrElse.
type MaybeItem struct {
	item Item
	ok   bool
}

func someItem(it Item) MaybeItem { return MaybeItem{item: it, ok: true} }

var noneItem = MaybeItem{}

// Field looks up name if the receiver holds a table, or returns None.
func (m MaybeItem) Field(name string) MaybeItem {
	if !m.ok || m.item.Kind != KindTable {
		return noneItem
	}
	it, ok := m.item.table.Get(name)
	if !ok {
		return noneItem
	}
	return someItem(it)
}

// Index looks up position i if the receiver holds an array, or returns
// None.
func (m MaybeItem) Index(i int) MaybeItem {
	if !m.ok || m.item.Kind != KindArray {
		return noneItem
	}
	it, ok := m.item.array.Get(i)
	if !ok {
		return noneItem
	}
	return someItem(it)
}

// Get returns the wrapped Item and true, or (zero, false) if the chain
// came up empty at any point.
func (m MaybeItem) Get() (Item, bool) { return m.item, m.ok }

// OrElse returns the wrapped Item, or fallback if the chain came up
// empty.
func (m MaybeItem) OrElse(fallback Item) Item {
	if !m.ok {
		return fallback
	}
	return m.item
}

// IsSome reports whether the chain resolved to a present value.
func (m MaybeItem) IsSome() bool { return m.ok }

// Navigate walks a dotted path ("a.b.c") against the receiver, field by
// field, with no escaping or quoting support — a plain convenience over
// chained Field calls for the common case. It returns None as soon as any
// segment is absent or not a table, exactly like chaining Field manually.
func (m MaybeItem) Navigate(path string) MaybeItem {
	cur := m
	for _, seg := range strings.Split(path, ".") {
		cur = cur.Field(seg)
	}
	return cur
}

// Query resolves a dotted path against an Item directly, as a starting
// point for a MaybeItem chain.
func (it Item) Query(path string) MaybeItem {
	return someItem(it).Navigate(path)
}

// Field starts a null-coalescing chain from it, looking up name. Combined
// with Index, it gives external callers the same entry point Query gives
// dotted paths, but for chains that need to step through array elements
// like root.Field("a").Index(3).Field("b") without ever panicking.
func (it Item) Field(name string) MaybeItem {
	return someItem(it).Field(name)
}

// Index starts a null-coalescing chain from it, looking up position i.
func (it Item) Index(i int) MaybeItem {
	return someItem(it).Index(i)
}

// Field starts a null-coalescing chain from t, looking up name.
func (t *Table) Field(name string) MaybeItem { return tableItem(t, Span{}).Field(name) }

// Query resolves a dotted path against t, as a starting point for a
// MaybeItem chain.
func (t *Table) Query(path string) MaybeItem { return tableItem(t, Span{}).Query(path) }

// Index starts a null-coalescing chain from a, looking up position i.
func (a *Array) Index(i int) MaybeItem { return arrayItem(a, Span{}).Index(i) }
