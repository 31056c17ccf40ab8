package querystring

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Map returns the parameters keyed by name. When a key repeats, the last
// value wins.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, param := range p {
		m[param.Key] = param.Value
	}

	return m
}

// Get returns the first value stored under key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}

	return "", false
}

// Bind decodes the parameters into out, which must be a pointer to a struct
// or map. Struct fields are matched through `query:"name"` tags and string
// values are converted to the field type (ints, bools, floats, slices).
func (p Params) Bind(out any) error {
	input := make(map[string]any, len(p))
	for k, v := range p.Map() {
		input[k] = v
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "query",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("binding parameters: %w", err)
	}

	return nil
}
