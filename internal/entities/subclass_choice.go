package entities

import (
	"encoding/json"
	"fmt"
)

// SubclassChoice is the normalized form of a recorded subclass choice.
// Historical records stored choices in several shapes: a bare string, or an
// object carrying the selection under "name", "selectedChoice", or "choice".
// Normalization happens once here, at the unmarshalling boundary; the rest
// of the codebase only ever sees the Name.
type SubclassChoice struct {
	Name string
}

// MarshalJSON writes the normalized bare-string form.
func (s SubclassChoice) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Name)
}

// UnmarshalJSON accepts every historical shape. Field precedence is
// "name", then "selectedChoice", then "choice"; anything else is coerced
// to its string representation.
func (s *SubclassChoice) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.Name = str
		return nil
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err == nil {
		for _, key := range []string{"name", "selectedChoice", "choice"} {
			if v, ok := obj[key]; ok {
				s.Name = coerceString(v)
				return nil
			}
		}
		s.Name = fmt.Sprintf("%v", obj)
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Name = coerceString(raw)
	return nil
}

func coerceString(v any) string {
	if str, ok := v.(string); ok {
		return str
	}
	return fmt.Sprintf("%v", v)
}

// NormalizeSubclassChoices converts a loosely-typed choice map, as supplied
// by UI callers, into the normalized representation. Keys are the levels the
// choices were made at. Returns false when the value is not a map type.
func NormalizeSubclassChoices(raw any) (map[int]SubclassChoice, bool) {
	if raw == nil {
		return nil, true
	}

	switch m := raw.(type) {
	case map[int]SubclassChoice:
		return m, true
	case map[int]string:
		out := make(map[int]SubclassChoice, len(m))
		for level, name := range m {
			out[level] = SubclassChoice{Name: name}
		}
		return out, true
	case map[string]any:
		// JSON-decoded payloads arrive with string keys.
		data, err := json.Marshal(m)
		if err != nil {
			return nil, false
		}
		var out map[int]SubclassChoice
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, false
		}
		return out, true
	default:
		return nil, false
	}
}
