package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Document is a parsed JSON manifest that remembers object member
// order, so an edited manifest writes back with its keys in the
// original sequence. Output formatting matches the ecosystem's own
// tooling: two-space indent, one member per line, trailing newline.
type Document struct {
	root *objectNode
}

// objectNode is a JSON object with remembered key order
type objectNode struct {
	keys   []string
	values map[string]interface{}
}

func newObjectNode() *objectNode {
	return &objectNode{values: make(map[string]interface{})}
}

func (o *objectNode) set(key string, value interface{}) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *objectNode) object(key string) (*objectNode, bool) {
	child, ok := o.values[key].(*objectNode)
	return child, ok
}

// ParseDocument parses manifest bytes into an editable document
func ParseDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := parseValue(dec)
	if err != nil {
		return nil, err
	}

	root, ok := value.(*objectNode)
	if !ok {
		return nil, fmt.Errorf("manifest root is not an object")
	}

	// Reject trailing garbage after the closing brace
	if _, err := dec.Token(); err == nil {
		return nil, fmt.Errorf("unexpected content after manifest object")
	}

	return &Document{root: root}, nil
}

// SetDependency sets section[depName] = spec, creating the section at
// the end of the document if it does not exist. An existing entry
// keeps its position.
func (d *Document) SetDependency(section, depName, spec string) {
	sec, ok := d.root.object(section)
	if !ok {
		sec = newObjectNode()
		d.root.set(section, sec)
	}
	sec.set(depName, spec)
}

// Encode renders the document with two-space indent and a trailing
// newline
func (d *Document) Encode() []byte {
	var buf bytes.Buffer
	encodeValue(&buf, d.root, 0)
	buf.WriteByte('\n')
	return buf.Bytes()
}

func parseValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool, or null
		return tok, nil
	}

	switch delim {
	case '{':
		obj := newObjectNode()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is not a string: %v", keyTok)
			}
			value, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			obj.set(key, value)
		}
		// consume '}'
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil

	case '[':
		var items []interface{}
		for dec.More() {
			value, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		// consume ']'
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return items, nil
	}

	return nil, fmt.Errorf("unexpected delimiter %q", delim)
}

func encodeValue(buf *bytes.Buffer, value interface{}, depth int) {
	switch v := value.(type) {
	case *objectNode:
		if len(v.keys) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{\n")
		for i, key := range v.keys {
			buf.WriteString(pad(depth + 1))
			buf.Write(marshalScalar(key))
			buf.WriteString(": ")
			encodeValue(buf, v.values[key], depth+1)
			if i < len(v.keys)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(pad(depth))
		buf.WriteByte('}')

	case []interface{}:
		if len(v) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteString("[\n")
		for i, item := range v {
			buf.WriteString(pad(depth + 1))
			encodeValue(buf, item, depth+1)
			if i < len(v)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(pad(depth))
		buf.WriteByte(']')

	default:
		buf.Write(marshalScalar(v))
	}
}

func pad(depth int) string {
	return strings.Repeat("  ", depth)
}

// marshalScalar renders a leaf value without HTML escaping, matching
// how manifests are written by ecosystem tooling
func marshalScalar(v interface{}) []byte {
	if num, ok := v.(json.Number); ok {
		return []byte(num.String())
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		// Scalars from the decoder always re-encode
		return []byte("null")
	}
	return bytes.TrimRight(buf.Bytes(), "\n")
}
