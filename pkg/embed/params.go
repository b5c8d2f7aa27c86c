package embed

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params is an insertion-ordered set of query parameters with
// last-write-wins semantics: setting an existing key updates its value in
// place and keeps its original position.
type Params struct {
	keys   []string
	values map[string]string
}

// Set stores a key/value pair, stringifying the value. Booleans and numbers
// render in their natural form ("true", "15", "0.7"); everything else goes
// through fmt-style default formatting.
func (p *Params) Set(key string, value any) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = stringify(value)
}

// Get returns the value for key and whether it is present.
func (p *Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of parameters.
func (p *Params) Len() int { return len(p.keys) }

// Merge sets every pair from other, in other's insertion order. Keys already
// present are overwritten in place.
func (p *Params) Merge(other Params) {
	for _, k := range other.keys {
		p.Set(k, other.values[k])
	}
}

// Each calls fn for every pair in insertion order.
func (p *Params) Each(fn func(key, value string)) {
	for _, k := range p.keys {
		fn(k, p.values[k])
	}
}

// Clone returns an independent copy.
func (p *Params) Clone() Params {
	var out Params
	p.Each(func(k, v string) { out.Set(k, v) })
	return out
}

// UnmarshalYAML decodes a YAML mapping into Params, preserving the document
// order of the keys.
func (p *Params) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("params: expected a mapping, got %s", node.Tag)
	}
	// Mapping nodes store keys and values as alternating content entries.
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		p.Set(node.Content[i].Value, value)
	}
	return nil
}

// stringify renders a parameter value the way the embed endpoint expects:
// floats in shortest round-trip form, booleans as true/false, strings as-is.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
