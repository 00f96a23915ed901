package encoding

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Errors returned by Decode.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid token format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
)

// Encoder turns small field maps into URL-safe signed tokens and back.
// Tokens are base64(msgpack).base64(hmac); the payload is visible to the
// client but cannot be altered without the key.
type Encoder struct {
	key []byte
}

// NewEncoder creates an encoder with the given signing key. Keys shorter
// than 32 bytes are stretched with SHA-256.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) == 0 {
		return nil, errors.New("encoding: empty signing key")
	}
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}
	return &Encoder{key: key}, nil
}

// Encodable is implemented by values that can be carried in a token.
type Encodable interface {
	EncodeFields() map[string]any
}

// Decodable is implemented by values that can be rebuilt from a token.
type Decodable interface {
	DecodeFields(map[string]any) error
}

// Encode serializes v and returns a signed token. Map keys are sorted, so
// equal fields always produce the same token.
func (e *Encoder) Encode(v Encodable) (string, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v.EncodeFields()); err != nil {
		return "", err
	}
	return e.sign(buf.Bytes()), nil
}

// Decode verifies token and decodes its fields into v.
func (e *Encoder) Decode(token string, v Decodable) error {
	packed, err := e.verify(token)
	if err != nil {
		return err
	}

	var data map[string]any
	if err := msgpack.Unmarshal(packed, &data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return v.DecodeFields(data)
}

// sign creates base64.signature
func (e *Encoder) sign(data []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	sig := base64.RawURLEncoding.EncodeToString(e.mac(data))
	return b64 + "." + sig
}

// verify checks the signature and returns the payload bytes.
func (e *Encoder) verify(token string) ([]byte, error) {
	payload, signature, ok := strings.Cut(token, ".")
	if !ok {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	sig, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if !hmac.Equal(sig, e.mac(data)) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}

func (e *Encoder) mac(data []byte) []byte {
	m := hmac.New(sha256.New, e.key)
	m.Write(data)
	return m.Sum(nil)[:16] // 128 bits
}
