// Package schema declares payload shapes for the partner API and enforces
// them over raw decoded JSON. A Schema lists the recognized fields with their
// required/nullable flags and primitive kind, plus a mode deciding whether
// keys outside that list are preserved (read models) or rejected (write
// models). Validation is pure: all diagnostics travel in the returned error.
package schema

// Mode controls how a schema treats keys it does not declare.
type Mode int

const (
	// Open preserves unknown keys on the normalized record without type
	// checking them. Read models use this so service-side schema drift does
	// not break decoding.
	Open Mode = iota

	// Closed rejects unknown keys. Write models use this so callers cannot
	// smuggle server-managed fields into a request.
	Closed
)

// Kind is the primitive shape a declared field accepts. There is no implicit
// coercion between kinds: a string holding digits is not an Int, and a bool
// is never a Scalar.
type Kind int

const (
	String Kind = iota
	Int
	Bool

	// ID accepts a service identifier given either as a string or an integer.
	ID

	// Scalar accepts a string, an integer or a float. Booleans are rejected
	// even though the wire format could smuggle them through a looser check.
	Scalar

	// Map accepts any JSON object without inspecting its values.
	Map

	// List accepts any JSON array without inspecting its elements.
	List

	// MultiMap accepts an object mapping names to ordered arrays of records,
	// each record validated against the field's Elem schema.
	MultiMap
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "integer"
	case Bool:
		return "boolean"
	case ID:
		return "identifier"
	case Scalar:
		return "scalar"
	case Map:
		return "object"
	case List:
		return "array"
	case MultiMap:
		return "multi-valued object"
	}
	return "unknown"
}

// Field declares one recognized key of a schema.
//
// Required means the key must be present in the payload. Nullable means the
// value may be null when the key is present. The two flags are independent:
// a required nullable field tolerates "key": null but not a missing key,
// while an optional field (Required false) may be absent entirely.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Nullable bool

	// Elem is the element schema for MultiMap fields. Ignored for other kinds.
	Elem *Schema
}

// Schema is the declarative shape of one payload kind. Construct with New;
// the zero value is not usable.
type Schema struct {
	name   string
	mode   Mode
	fields []Field
	index  map[string]int
}

// New builds a schema from its declared fields. Field order is kept for
// deterministic issue reporting.
func New(name string, mode Mode, fields ...Field) *Schema {
	s := &Schema{
		name:   name,
		mode:   mode,
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}

	for i, f := range fields {
		s.index[f.Name] = i
	}

	return s
}

func (s *Schema) Name() string {
	return s.name
}

func (s *Schema) Mode() Mode {
	return s.mode
}

// Field returns the declaration for name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}

	return s.fields[i], true
}

// HasField reports whether name is a declared field.
func (s *Schema) HasField(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Fields returns the declarations in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// FieldNames returns the declared field names in declaration order.
func (s *Schema) FieldNames() []string {
	out := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, f.Name)
	}
	return out
}
