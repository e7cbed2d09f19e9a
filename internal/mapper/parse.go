package mapper

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ParseList splits a comma separated value, trims each element and drops the
// empty ones. It never returns nil.
func ParseList(raw string) []string {
	out := make([]string, 0)
	if strings.TrimSpace(raw) == "" {
		return out
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// ParseJSON decodes raw into a T, returning fallback when raw is blank,
// cannot be decoded or decodes to the zero T (as "null" does).
func ParseJSON[T any](raw string, fallback T) T {
	v, _ := ParseJSONWithSchema(raw, nil, fallback)
	return v
}

// SchemaError lists the schema violations of a decoded value.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "schema validation failed: " + strings.Join(e.Violations, "; ")
}

// ParseJSONWithSchema validates raw against schema, when one is given, and
// decodes it into a T. On any failure it returns fallback together with the
// reason. A blank raw value, or one decoding to the zero T, yields fallback
// without an error.
func ParseJSONWithSchema[T any](raw string, schema *gojsonschema.Schema, fallback T) (T, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}

	if schema != nil {
		res, err := schema.Validate(gojsonschema.NewStringLoader(raw))
		if err != nil {
			return fallback, fmt.Errorf("decode json: %w", err)
		}
		if !res.Valid() {
			se := &SchemaError{}
			for _, e := range res.Errors() {
				se.Violations = append(se.Violations, e.String())
			}
			return fallback, se
		}
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallback, fmt.Errorf("decode json: %w", err)
	}
	if reflect.ValueOf(&v).Elem().IsZero() {
		return fallback, nil
	}
	return v, nil
}
