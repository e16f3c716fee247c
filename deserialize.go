package toml

// The functions below are the built-in decode helpers a type's
// UnmarshalTOML implementation composes. The scalar decoders return an
// *Error directly rather than recording it on a Context, so a caller
// assembling a single field can decide whether that failure is fatal to
// the whole record or just one more thing to accumulate.

// DecodeString decodes item as a string.
func DecodeString(item Item) (string, *Error) {
	s, ok := item.AsString()
	if !ok {
		return "", item.typeMismatch("string")
	}
	return s, nil
}

// DecodeBool decodes item as a boolean.
func DecodeBool(item Item) (bool, *Error) {
	b, ok := item.AsBoolean()
	if !ok {
		return false, item.typeMismatch("boolean")
	}
	return b, nil
}

// DecodeInt64 decodes item as an integer.
func DecodeInt64(item Item) (int64, *Error) {
	n, ok := item.AsInteger()
	if !ok {
		return 0, item.typeMismatch("integer")
	}
	return n, nil
}

// DecodeFloat64 decodes item as a float. TOML permits integers to widen to
// float in contexts that call for one, so both Integer and Float items
// are accepted.
func DecodeFloat64(item Item) (float64, *Error) {
	if f, ok := item.AsFloat(); ok {
		return f, nil
	}
	if n, ok := item.AsInteger(); ok {
		return float64(n), nil
	}
	return 0, item.typeMismatch("float")
}

// DecodeDateTime decodes item as a datetime.
func DecodeDateTime(item Item) (DateTime, *Error) {
	dt, ok := item.AsDateTime()
	if !ok {
		return DateTime{}, item.typeMismatch("datetime")
	}
	return dt, nil
}

// DecodeSlice decodes item as an array, applying decodeOne to every
// element and accumulating each element's failure onto ctx rather than
// aborting the whole array on the first bad element.
func DecodeSlice[T any](ctx *Context, item Item, decodeOne func(*Context, Item) (T, *Error)) ([]T, *Error) {
	arr, ok := item.AsArray()
	if !ok {
		return nil, item.typeMismatch("array")
	}
	out := make([]T, 0, arr.Len())
	for _, elem := range arr.Items() {
		v, err := decodeOne(ctx, elem)
		if err != nil {
			ctx.AddError(err)
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// Spanned wraps a decoded value together with the source span of the Item
// it came from, so a caller can report validation failures discovered
// after decoding (e.g. "port out of range") back at the original
// location.
type Spanned[T any] struct {
	Value T
	Span  Span
}

// DecodeSpanned decodes item with decodeOne and wraps the result together
// with item's span.
func DecodeSpanned[T any](item Item, decodeOne func(Item) (T, *Error)) (Spanned[T], *Error) {
	v, err := decodeOne(item)
	if err != nil {
		return Spanned[T]{}, err
	}
	return Spanned[T]{Value: v, Span: item.Span}, nil
}
