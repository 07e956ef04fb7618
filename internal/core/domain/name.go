package domain

import "unique"

// Name is an interned symbol name.
// Equal strings share one handle, so comparing names is a pointer comparison.
type Name struct {
	h unique.Handle[string]
}

// NewName interns s.
func NewName(s string) Name {
	return Name{h: unique.Make(s)}
}

// String returns the underlying string value.
func (n Name) String() string {
	var zero unique.Handle[string]
	if n.h == zero {
		return ""
	}
	return n.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	n.h = unique.Make(string(text))
	return nil
}
