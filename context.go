package toml

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
	"go.uber.org/zap"
)

// Context accumulates every problem found while deserializing a parsed
// document into a caller's Go type, instead of stopping at the first one.
// A *Context threads through every decode step so a caller validating a
// whole config file sees every bad field in one pass, not one at a time
// across repeated runs.
type Context struct {
	errs   []*Error
	logger *zap.Logger
}

// NewContext creates an empty, error-free Context.
func NewContext() *Context {
	return &Context{}
}

// SetLogger attaches an optional trace logger; deserialize-time errors are
// also logged at Debug level as they're recorded. Off by default: parsing
// never touches a logger, only deserialization does, and only when a
// caller opts in.
func (c *Context) SetLogger(l *zap.Logger) { c.logger = l }

// AddError records a problem without stopping deserialization.
func (c *Context) AddError(err *Error) {
	if err == nil {
		return
	}
	c.errs = append(c.errs, err)
	if c.logger != nil {
		c.logger.Debug("deserialize error", zap.String("kind", err.Kind.String()), zap.String("message", err.Message))
	}
}

// Errors returns every problem recorded so far, in the order encountered.
func (c *Context) Errors() []*Error { return c.errs }

// HasErrors reports whether any problem has been recorded.
func (c *Context) HasErrors() bool { return len(c.errs) > 0 }

// Helper builds a TableHelper for walking t's fields, tracking which of
// them get consumed so ExpectEmpty can flag the rest.
func (c *Context) Helper(t *Table) *TableHelper {
	return newTableHelper(c, t)
}

// TableHelper tracks which fields of a Table have been consumed during
// deserialization, backed by a bitset over entry indices rather than a
// second map.
type TableHelper struct {
	ctx      *Context
	table    *Table
	consumed *bitset.BitSet
}

func newTableHelper(ctx *Context, t *Table) *TableHelper {
	return &TableHelper{ctx: ctx, table: t, consumed: bitset.New(uint(t.Len()))}
}

func (h *TableHelper) markConsumed(name string) (Item, bool) {
	i := h.table.find(name)
	if i < 0 {
		return Item{}, false
	}
	h.consumed.Set(uint(i))
	return h.table.entries[i].item, true
}

// Required fetches name, recording a KindMissingField error (and
// returning ok=false) if it is absent. Call within a type's
// UnmarshalTOML implementation.
func (h *TableHelper) Required(name string) (Item, bool) {
	it, ok := h.markConsumed(name)
	if !ok {
		h.ctx.AddError(newError(KindMissingField, Span{}, name))
		return Item{}, false
	}
	return it, true
}

// Optional fetches name without error if absent.
func (h *TableHelper) Optional(name string) (Item, bool) {
	return h.markConsumed(name)
}

// Contains reports whether name is present, without marking it consumed.
func (h *TableHelper) Contains(name string) bool {
	return h.table.find(name) >= 0
}

// ExpectEmpty records a KindUnexpectedField error, in table insertion
// order, for every field that was never fetched via Required or
// Optional. Call last, after every known field has been consumed.
func (h *TableHelper) ExpectEmpty() {
	for i, e := range h.table.entries {
		if !h.consumed.Test(uint(i)) {
			h.ctx.AddError(newError(KindUnexpectedField, e.key.Span, e.key.Name))
		}
	}
}

// IntoRemaining returns a lazy iterator over every (Key, Item) pair never
// fetched via Required or Optional, in table insertion order. It is the
// catch-all counterpart to ExpectEmpty, for variants that want to capture
// unrecognized fields (e.g. into a map) rather than reject them.
func (h *TableHelper) IntoRemaining() iter.Seq2[Key, Item] {
	return func(yield func(Key, Item) bool) {
		for i, e := range h.table.entries {
			if h.consumed.Test(uint(i)) {
				continue
			}
			if !yield(e.key, e.item) {
				return
			}
		}
	}
}

// Root is the top-level table produced by Parse, together with the arena
// and input it was parsed from.
type Root struct {
	table *Table
	arena *Arena
	input []byte
}

// Parse parses input as a TOML v1.1.0 document, returning the first fatal
// error encountered. Parsing itself is a single fatal-on-first-error
// pass; use IntoResult to accumulate deserialize-time problems instead.
func Parse(input []byte, opts ...Option) (*Root, *Error) {
	o := resolveOptions(opts)
	arena := NewArena()
	tbl, err := parseDocument(input, arena, o)
	if err != nil {
		return nil, err
	}
	return &Root{table: tbl, arena: arena, input: input}, nil
}

// Table returns the document's top-level table.
func (r *Root) Table() *Table { return r.table }

// Arena returns the arena backing every Item reachable from this Root.
func (r *Root) Arena() *Arena { return r.arena }

// Item returns the whole document as a table-kind Item, spanning the
// entire input, as a starting point for MaybeItem navigation.
func (r *Root) Item() Item {
	return tableItem(r.table, NewSpan(0, uint32(len(r.input))))
}

// Helper builds a TableHelper over the document's top-level table, bound
// to a fresh Context, for callers that want to walk the root table
// directly without going through IntoResult/Unmarshaler.
func (r *Root) Helper() (*Context, *TableHelper) {
	ctx := NewContext()
	return ctx, newTableHelper(ctx, r.table)
}

// Unmarshaler is implemented by types that know how to populate
// themselves from a parsed Item, recording any problems on ctx instead of
// returning them. This follows encoding/json's Unmarshaler convention: a
// method on a pointer receiver that mutates the target in place.
type Unmarshaler interface {
	UnmarshalTOML(ctx *Context, item Item) *Error
}

// IntoResult deserializes the document into v, accumulating every problem
// found along the way onto a freshly created Context rather than stopping
// at the first one.
func (r *Root) IntoResult(v Unmarshaler) *Context {
	ctx := NewContext()
	if err := v.UnmarshalTOML(ctx, r.Item()); err != nil {
		ctx.AddError(err)
	}
	return ctx
}
