package toml

// Str is a read-only UTF-8 string handle that either aliases a slice of the
// original input (the zero-copy fast path: literal or escape-free basic
// strings) or holds content materialized once via Arena.newString (escaped
// content that required scratch decoding).
//
// Go strings are themselves already immutable, GC-owned, copy-by-header
// values, so Str is realized as a plain string plus a bool discriminator
// rather than a pointer-tagged union. The observable contract — equality
// and hashing on decoded content, with a zero-copy fast path visible to
// callers that care about allocation — is what matters, not the bit layout.
type Str struct {
	value      string
	arenaOwned bool
}

// borrowedStr builds a Str that aliases the input slice directly.
func borrowedStr(s string) Str {
	return Str{value: s, arenaOwned: false}
}

// ownedStr builds a Str over arena-materialized content.
func ownedStr(s string) Str {
	return Str{value: s, arenaOwned: true}
}

// String returns the decoded string content.
func (s Str) String() string { return s.value }

// IsArenaOwned reports whether this Str required scratch decoding (true) or
// aliases the original input slice verbatim (false).
func (s Str) IsArenaOwned() bool { return s.arenaOwned }

// Len returns the byte length of the decoded content.
func (s Str) Len() int { return len(s.value) }

// Equal compares two Str values by decoded content, independent of origin.
func (s Str) Equal(other Str) bool { return s.value == other.value }
