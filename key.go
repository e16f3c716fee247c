package toml

// Key is a decoded TOML key together with the source span of the key
// literal that produced it. Keys are compared and hashed by decoded
// content, matching TOML's key-equality rules (a quoted key and an
// equivalent bare key collide).
type Key struct {
	Name string
	Span Span
}

func newKey(name string, span Span) Key {
	return Key{Name: name, Span: span}
}
