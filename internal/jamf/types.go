package jamf

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Summary is one item of a get-all response. The id and name are
// decoded into typed fields; every attribute the API returned is kept
// so field-subset output (CSV, tables) can pick what it needs and
// exports round-trip the original payload.
type Summary struct {
	ID   int
	Name string

	attrs map[string]any
}

// NewSummary builds a Summary by hand. Mostly useful for mocks; real
// summaries come from decoding API responses.
func NewSummary(id int, name string, extra map[string]any) Summary {
	attrs := map[string]any{"id": float64(id), "name": name}
	for k, v := range extra {
		attrs[k] = v
	}
	return Summary{ID: id, Name: name, attrs: attrs}
}

func (s *Summary) UnmarshalJSON(data []byte) error {
	var attrs map[string]any
	if err := json.Unmarshal(data, &attrs); err != nil {
		return err
	}
	s.attrs = attrs
	if v, ok := attrs["id"].(float64); ok {
		s.ID = int(v)
	}
	if v, ok := attrs["name"].(string); ok {
		s.Name = v
	}
	return nil
}

// MarshalJSON writes back the full attribute map, so exported JSON
// matches what the API returned.
func (s Summary) MarshalJSON() ([]byte, error) {
	if s.attrs == nil {
		return json.Marshal(map[string]any{"id": s.ID, "name": s.Name})
	}
	return json.Marshal(s.attrs)
}

// Field renders the named attribute as a display string. Integral
// numbers print without a decimal point; a missing attribute is empty.
func (s Summary) Field(name string) string {
	v, ok := s.attrs[name]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// APIError is a non-2xx response from the tenant.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned %d", e.StatusCode)
}
