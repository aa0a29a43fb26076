package header

import (
	"fmt"

	"github.com/goccy/go-json"
)

// MarshalJSON encodes the map as an object from canonical name to the array
// of its values in order. Keys are emitted sorted. Sensitive values are
// encoded like any other; filter them out first if that matters.
func (m *Map) MarshalJSON() ([]byte, error) {
	obj := make(map[string][]string, m.Len())
	for name, vals := range m.All() {
		out := make([]string, 0, vals.Len())
		for v := range vals.All() {
			out = append(out, string(v.Bytes()))
		}
		obj[name.String()] = out
	}
	return json.Marshal(obj)
}

// UnmarshalJSON replaces the content of m with the decoded object.
// Every name and value is validated; the first invalid one aborts decoding
// and leaves m empty.
func (m *Map) UnmarshalJSON(data []byte) error {
	var obj map[string][]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	m.Clear()
	for k, vals := range obj {
		name, err := ParseName(k)
		if err != nil {
			m.Clear()
			return fmt.Errorf("%w: %q", err, k)
		}
		for _, s := range vals {
			v, err := ParseValue(s)
			if err != nil {
				m.Clear()
				return fmt.Errorf("%w: %s: %q", err, k, s)
			}
			if err := m.Append(name, v); err != nil {
				m.Clear()
				return err
			}
		}
	}
	return nil
}
