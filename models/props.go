// Package models defines the data transfer objects exchanged with the
// recommendation API, including the flexible property bags used for user and
// item records.
package models

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// PropertyBag is an ordered, case-insensitive string-keyed property map.
// Keys keep the casing and position of their first Set; lookups ignore case.
// The zero value is ready to use.
type PropertyBag struct {
	order  []string          // lowercased keys in insertion order
	names  map[string]string // lowercased key -> display casing
	values map[string]any    // lowercased key -> value
}

// Set stores a property value, replacing any existing value under a
// case-insensitive match of the key.
func (b *PropertyBag) Set(key string, value any) {
	lower := strings.ToLower(key)
	if b.values == nil {
		b.names = make(map[string]string)
		b.values = make(map[string]any)
	}
	if _, exists := b.values[lower]; !exists {
		b.order = append(b.order, lower)
		b.names[lower] = key
	}
	b.values[lower] = value
}

// Get returns the value stored under a case-insensitive match of the key.
func (b *PropertyBag) Get(key string) (any, bool) {
	if b == nil || b.values == nil {
		return nil, false
	}
	value, ok := b.values[strings.ToLower(key)]
	return value, ok
}

// Delete removes a property under a case-insensitive match of the key.
func (b *PropertyBag) Delete(key string) {
	lower := strings.ToLower(key)
	if b == nil || b.values == nil {
		return
	}
	if _, ok := b.values[lower]; !ok {
		return
	}
	delete(b.values, lower)
	delete(b.names, lower)
	for i, k := range b.order {
		if k == lower {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of properties.
func (b *PropertyBag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.order)
}

// Keys returns the property names in insertion order, with the casing of
// their first Set.
func (b *PropertyBag) Keys() []string {
	if b == nil {
		return nil
	}
	keys := make([]string, 0, len(b.order))
	for _, lower := range b.order {
		keys = append(keys, b.names[lower])
	}
	return keys
}

// Clone returns a shallow copy of the bag.
func (b *PropertyBag) Clone() *PropertyBag {
	clone := &PropertyBag{}
	if b == nil {
		return clone
	}
	for _, lower := range b.order {
		clone.Set(b.names[lower], b.values[lower])
	}
	return clone
}

// Without returns a copy of the bag with the given key removed.
func (b *PropertyBag) Without(key string) *PropertyBag {
	clone := b.Clone()
	clone.Delete(key)
	return clone
}

// MarshalJSON writes the properties as a JSON object in insertion order.
func (b *PropertyBag) MarshalJSON() ([]byte, error) {
	if b == nil || len(b.order) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, lower := range b.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(b.names[lower])
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(b.values[lower])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving key order and decoding nested
// objects as *PropertyBag, arrays as []any and numbers as json.Number.
func (b *PropertyBag) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "property bag")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("property bag: expected JSON object")
	}

	b.order = nil
	b.names = nil
	b.values = nil

	return b.decodeMembers(dec)
}

func (b *PropertyBag) decodeMembers(dec *json.Decoder) error {
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "property bag key")
		}
		key, ok := keyTok.(string)
		if !ok {
			return errors.New("property bag: non-string key")
		}
		value, err := decodeUntypedValue(dec)
		if err != nil {
			return errors.Wrapf(err, "property bag value %q", key)
		}
		b.Set(key, value)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return errors.Wrap(err, "property bag")
	}
	return nil
}

// decodeUntypedValue reads the next JSON value from the decoder, preserving
// object key order and array element order without loss.
func decodeUntypedValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			bag := &PropertyBag{}
			if err := bag.decodeMembers(dec); err != nil {
				return nil, err
			}
			return bag, nil
		case '[':
			values := []any{}
			for dec.More() {
				element, err := decodeUntypedValue(dec)
				if err != nil {
					return nil, err
				}
				values = append(values, element)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return values, nil
		default:
			return nil, errors.Errorf("unexpected delimiter %q", v)
		}
	default:
		return v, nil
	}
}

// DecodeUntyped decodes arbitrary JSON while preserving its shape: objects
// become *PropertyBag (ordered, case-insensitive), arrays []any, numbers
// json.Number.
func DecodeUntyped(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	value, err := decodeUntypedValue(dec)
	if err != nil {
		return nil, errors.Wrap(err, "decode untyped")
	}
	return value, nil
}
