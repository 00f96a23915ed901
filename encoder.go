package pagecraft

import (
	"fmt"

	"github.com/pthm/pagecraft/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a drag token encoder with the given signing key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

var (
	_ encoding.Encodable = DragSource{}
	_ encoding.Decodable = (*DragSource)(nil)
)

// EncodeFields encodes the source with an explicit type tag.
func (s DragSource) EncodeFields() map[string]any {
	m := map[string]any{"t": s.Type.String()}
	switch s.Type {
	case SourcePalette:
		m["k"] = s.Kind.String()
	case SourceCanvas:
		m["id"] = s.ID
	}
	return m
}

// DecodeFields rebuilds a source from its tagged fields. The tag decides the
// variant; payload shape is never consulted.
func (s *DragSource) DecodeFields(m map[string]any) error {
	tag, _ := m["t"].(string)
	switch tag {
	case "palette":
		name, _ := m["k"].(string)
		kind, err := ParseKind(name)
		if err != nil {
			return err
		}
		*s = FromPalette(kind)
	case "canvas":
		id, _ := m["id"].(string)
		if id == "" {
			return fmt.Errorf("canvas source without id: %w", ErrInvalidToken)
		}
		*s = FromCanvas(id)
	default:
		return fmt.Errorf("source tag %q: %w", tag, ErrInvalidToken)
	}
	return nil
}

// EncodeSource signs src into a token the client carries as its drag
// payload.
func EncodeSource(enc *Encoder, src DragSource) (string, error) {
	if src.Type != SourcePalette && src.Type != SourceCanvas {
		return "", fmt.Errorf("encode source %s: %w", src, ErrInvalidToken)
	}
	return enc.Encode(src)
}

// DecodeSource verifies token and returns the drag source it carries. All
// failures wrap ErrInvalidToken.
func DecodeSource(enc *Encoder, token string) (DragSource, error) {
	var src DragSource
	if err := enc.Decode(token, &src); err != nil {
		if IsInvalidToken(err) {
			return DragSource{}, err
		}
		return DragSource{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return src, nil
}
