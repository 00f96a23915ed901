package pagecraft

import (
	"encoding/json"
	"fmt"
)

// Kind identifies a component type. The set is closed: adding a kind means
// adding a constant here, an entry in the registry table and a rule in the
// code generator.
type Kind uint8

const (
	KindButton Kind = iota + 1
	KindText
	KindContainer
	KindImage
	KindSlider
)

var kindNames = map[Kind]string{
	KindButton:    "button",
	KindText:      "text",
	KindContainer: "container",
	KindImage:     "image",
	KindSlider:    "slider",
}

// Kinds returns every known kind in palette order.
func Kinds() []Kind {
	return []Kind{KindButton, KindText, KindContainer, KindImage, KindSlider}
}

// Valid reports whether k is part of the enumeration.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// String returns the wire name of the kind ("button", "text", ...).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind converts a wire name back into a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MarshalJSON encodes the kind as its wire name.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a wire name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseKind(name)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
