package types

import (
	"encoding/json"
	"fmt"
	"math"
)

// Record is a schema-less mapping of field names to JSON-representable
// values. Records in the same table may carry different field sets.
type Record = map[string]any

// Query selects records by exact equality on every listed field (logical
// AND). A nil or empty query matches every record.
type Query = map[string]any

// Updates maps field names to replacement values. Fields already present are
// overwritten, fields not listed are untouched, new fields are added.
type Updates = map[string]any

// Database is the full in-memory structure: table name to an ordered
// sequence of records. It is persisted as a single JSON document.
type Database = map[string][]Record

// NormalizeValue converts v into the JSON value union
// (nil | bool | float64 | string | []any | map[string]any).
// Numeric types collapse to float64, matching JSON's single number type.
// Values that are not JSON-representable return an error.
func NormalizeValue(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case bool, string:
		return x, nil
	case float64:
		// JSON has no encoding for NaN or infinity; admitting one would make
		// the database unserializable.
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("number %v is not JSON-representable", x)
		}
		return x, nil
	case float32:
		return NormalizeValue(float64(x))
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("normalizing number %q: %w", x.String(), err)
		}
		return NormalizeValue(f)
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			norm, err := NormalizeValue(elem)
			if err != nil {
				return nil, err
			}
			out[i] = norm
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, elem := range x {
			norm, err := NormalizeValue(elem)
			if err != nil {
				return nil, err
			}
			out[k] = norm
		}
		return out, nil
	default:
		// Structs, typed slices and maps: anything that survives a JSON
		// round trip is representable.
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("value of type %T is not JSON-representable: %w", v, err)
		}
		var out any
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("value of type %T is not JSON-representable: %w", v, err)
		}
		return out, nil
	}
}

// NormalizeMap normalizes every value in m. The result is a fresh map; m is
// not modified. A nil m normalizes to an empty map.
func NormalizeMap(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		norm, err := NormalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = norm
	}
	return out, nil
}

// Equal reports deep equality of two normalized JSON values.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, xv := range x {
			yv, present := y[k]
			if !present || !Equal(xv, yv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Matches reports whether rec satisfies every field of query. Both sides are
// assumed normalized.
func Matches(rec Record, query Query) bool {
	for k, want := range query {
		got, ok := rec[k]
		if !ok {
			return false
		}
		if !Equal(got, want) {
			return false
		}
	}
	return true
}

// CloneValue deep-copies a normalized JSON value.
func CloneValue(v any) any {
	switch x := v.(type) {
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = CloneValue(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, elem := range x {
			out[k] = CloneValue(elem)
		}
		return out
	default:
		// Scalars are immutable.
		return x
	}
}

// CloneRecord deep-copies a record.
func CloneRecord(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = CloneValue(v)
	}
	return out
}
