package schema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/hashicorp/go-multierror"
)

// Record is a normalized payload. Declared fields carry normalized values
// (JSON numbers resolved to int64/float64), required nullable fields that
// arrived as null keep an explicit nil entry, optional absent fields have no
// entry at all, and unknown keys survive only under an Open schema.
type Record map[string]any

// Validate checks v against s. v must be a decoded JSON object (or an already
// normalized Record); anything else fails with an invalid_type issue at the
// record root. The input is never mutated. context describes what was being
// validated and is carried verbatim on the failure.
func Validate(s *Schema, v any, context string) (Record, error) {
	rec, iss := validateValue(s, v)
	if len(iss) > 0 {
		return nil, &ValidationError{Schema: s.name, Context: context, Issues: iss}
	}

	return rec, nil
}

// ValidateList applies Validate to every element of list. A single bad
// element fails the whole call: a corrupt record anywhere means the listing
// as a whole cannot be trusted. All element failures are collected, so the
// returned error names every offending index. source names where the list
// came from (for example "api").
func ValidateList(s *Schema, list []any, context, source string) ([]Record, error) {
	out := make([]Record, 0, len(list))

	var merr *multierror.Error

	for i, el := range list {
		rec, err := Validate(s, el, fmt.Sprintf("%s: record %d (source %s)", context, i, source))
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}

		out = append(out, rec)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return out, nil
}

func validateValue(s *Schema, v any) (Record, Issues) {
	record, ok := asRecord(v)
	if !ok {
		return nil, Issues{{Path: "", Code: CodeInvalidType, Message: fmt.Sprintf("expected an object, got %s", describe(v))}}
	}

	var iss Issues
	out := make(Record, len(record))

	for _, f := range s.fields {
		raw, present := record[f.Name]
		if !present {
			if f.Required {
				iss = append(iss, Issue{Path: "/" + f.Name, Code: CodeRequired, Message: "field is required"})
			}
			continue
		}

		val, fieldIss := normalize(f, "/"+f.Name, raw)
		if len(fieldIss) > 0 {
			iss = append(iss, fieldIss...)
			continue
		}

		out[f.Name] = val
	}

	for _, k := range sortedKeys(record) {
		if s.HasField(k) {
			continue
		}

		switch s.mode {
		case Open:
			out[k] = record[k]
		case Closed:
			iss = append(iss, Issue{Path: "/" + k, Code: CodeUnknownKey, Message: "unknown field is not permitted"})
		}
	}

	if len(iss) > 0 {
		return nil, iss
	}

	return out, nil
}

func normalize(f Field, path string, v any) (any, Issues) {
	if v == nil {
		if f.Nullable {
			return nil, nil
		}
		return nil, Issues{{Path: path, Code: CodeInvalidType, Message: "null is not allowed"}}
	}

	switch f.Kind {
	case String:
		if s, ok := v.(string); ok {
			return s, nil
		}

	case Int:
		if n, ok := asInt(v); ok {
			return n, nil
		}

	case Bool:
		if b, ok := v.(bool); ok {
			return b, nil
		}

	case ID:
		if s, ok := v.(string); ok {
			return s, nil
		}
		if n, ok := asInt(v); ok {
			return n, nil
		}

	case Scalar:
		if _, isBool := v.(bool); !isBool {
			if s, ok := v.(string); ok {
				return s, nil
			}
			if n, ok := asInt(v); ok {
				return n, nil
			}
			if fl, ok := asFloat(v); ok {
				return fl, nil
			}
		}

	case Map:
		if m, ok := asRecord(v); ok {
			return m, nil
		}

	case List:
		if l, ok := v.([]any); ok {
			return l, nil
		}

	case MultiMap:
		return normalizeMultiMap(f, path, v)
	}

	return nil, Issues{{Path: path, Code: CodeInvalidType, Message: fmt.Sprintf("expected %s, got %s", f.Kind, describe(v))}}
}

func normalizeMultiMap(f Field, path string, v any) (any, Issues) {
	m, ok := asRecord(v)
	if !ok {
		return nil, Issues{{Path: path, Code: CodeInvalidType, Message: fmt.Sprintf("expected %s, got %s", f.Kind, describe(v))}}
	}

	var iss Issues
	out := make(map[string][]Record, len(m))

	for _, name := range sortedKeys(m) {
		list, ok := m[name].([]any)
		if !ok {
			iss = append(iss, Issue{Path: path + "/" + name, Code: CodeInvalidType, Message: fmt.Sprintf("expected array, got %s", describe(m[name]))})
			continue
		}

		recs := make([]Record, 0, len(list))

		for i, el := range list {
			elPath := path + "/" + name + "/" + strconv.Itoa(i)

			if f.Elem == nil {
				rec, ok := asRecord(el)
				if !ok {
					iss = append(iss, Issue{Path: elPath, Code: CodeInvalidType, Message: fmt.Sprintf("expected an object, got %s", describe(el))})
					continue
				}
				recs = append(recs, Record(rec))
				continue
			}

			rec, elIss := validateValue(f.Elem, el)
			if len(elIss) > 0 {
				for _, it := range elIss {
					iss = append(iss, Issue{Path: elPath + it.Path, Code: it.Code, Message: it.Message})
				}
				continue
			}

			recs = append(recs, rec)
		}

		out[name] = recs
	}

	if len(iss) > 0 {
		return nil, iss
	}

	return out, nil
}

func asRecord(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case int, int8, int16, int32, int64:
		return "integer"
	case float32, float64:
		return "float"
	case map[string]any, Record:
		return "object"
	case []any:
		return "array"
	}
	return fmt.Sprintf("%T", v)
}
