package schema

// This file models the interface boundary spec.md §6 describes between
// the (external, out-of-scope) lexer/parser and the analyzer: a tree of
// parsed schemas exposing, per declaration, its kind, namespace,
// identifier, a metadata-attribute map, and a field or enum-value list.
// Nothing in this package ever reads .fbs source text — a RawSchema is
// what a parser would have already produced.

// RawKind tags the declaration kinds the analyzer currently knows how
// to validate, plus the two §4.3 step 5 defers ("(Future) validate
// tables and unions by analogous rules").
type RawKind int

const (
	KindEnum RawKind = iota
	KindStruct
	KindTable
	KindUnion
)

func (k RawKind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindStruct:
		return "struct"
	case KindTable:
		return "table"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// RawSchema is one parsed file: its own declarations plus the schemas
// it includes. The rose tree described in spec.md §4.3 is this type's
// Includes edges, rooted at whichever RawSchema Analyze is called with.
type RawSchema struct {
	Includes     []*RawSchema
	Declarations []*RawDecl
}

// RawDecl is one declaration as the parser hands it over: unvalidated,
// with its namespace already resolved to whatever the most recent
// `namespace` directive in its source file set (spec.md §4.3 "Input").
type RawDecl struct {
	Kind       RawKind
	Namespace  string
	Identifier string

	// Attributes holds the metadata attributes spec.md §6 names:
	// "deprecated" and "bit_flags" as boolean presence (key present,
	// value ignored), "force_align" and "id" as their decimal string
	// value, "required" as boolean presence, "key" passed through
	// untouched for the generator.
	Attributes map[string]string

	// UnderlyingType is meaningful only for KindEnum: one of
	// "i8","i16","i32","i64","u8","u16","u32","u64".
	UnderlyingType string

	// Values is meaningful only for KindEnum.
	Values []RawEnumValue

	// Fields is meaningful for KindStruct, KindTable, and KindUnion.
	Fields []RawField
}

// RawEnumValue is one `identifier [ = integer ]` member of an enum
// declaration. Value is nil when the schema omitted an explicit
// integer, signaling auto-assignment.
type RawEnumValue struct {
	Identifier string
	Value      *int64
}

// RawField is one field of a struct, table, or union declaration.
// TypeName is the type reference exactly as written in the schema —
// possibly dotted (e.g. "MyNamespace.MyStruct") — and is resolved
// against the field's enclosing declaration's namespace during
// analysis, per the walk-up rule in spec.md §4.3.
type RawField struct {
	Identifier string
	TypeName   string
	IsVector   bool
	Attributes map[string]string
}

// HasAttribute reports whether a boolean-presence attribute (such as
// "deprecated" or "bit_flags") is set.
func (d *RawDecl) HasAttribute(name string) bool {
	_, ok := d.Attributes[name]
	return ok
}

// HasAttribute reports whether a boolean-presence attribute is set on
// a field.
func (f *RawField) HasAttribute(name string) bool {
	_, ok := f.Attributes[name]
	return ok
}

func qualifiedName(namespace, identifier string) string {
	if namespace == "" {
		return identifier
	}
	return namespace + "." + identifier
}
