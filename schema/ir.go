package schema

// The types in this file are the validated IR spec.md §3.2 describes:
// what survives Analyze, with alignments, resolved references, and
// (for enums) value bounds already checked. A code generator (out of
// scope) would consume these instead of RawDecl.

// IntegralType is one of the eight integer widths an enum's underlying
// representation may be.
type IntegralType int

const (
	I8 IntegralType = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
)

func (t IntegralType) String() string {
	switch t {
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	default:
		return "unknown"
	}
}

// Size is the integral type's width in bytes, which is also its
// natural alignment.
func (t IntegralType) Size() int {
	switch t {
	case I8, U8:
		return 1
	case I16, U16:
		return 2
	case I32, U32:
		return 4
	default:
		return 8
	}
}

// fits reports whether v is representable in t without truncation.
func (t IntegralType) fits(v int64) bool {
	switch t {
	case I8:
		return v >= -1<<7 && v <= 1<<7-1
	case I16:
		return v >= -1<<15 && v <= 1<<15-1
	case I32:
		return v >= -1<<31 && v <= 1<<31-1
	case I64:
		return true
	case U8:
		return v >= 0 && v <= 1<<8-1
	case U16:
		return v >= 0 && v <= 1<<16-1
	case U32:
		return v >= 0 && v <= 1<<32-1
	case U64:
		return v >= 0
	default:
		return false
	}
}

func parseIntegralType(name string) (IntegralType, bool) {
	switch name {
	case "i8":
		return I8, true
	case "i16":
		return I16, true
	case "i32":
		return I32, true
	case "i64":
		return I64, true
	case "u8":
		return U8, true
	case "u16":
		return U16, true
	case "u32":
		return U32, true
	case "u64":
		return U64, true
	default:
		return 0, false
	}
}

// EnumValue is one validated `identifier = value` member, after
// auto-assignment has filled in any value the schema omitted.
type EnumValue struct {
	Identifier string
	Value      int64
}

// EnumDecl is a validated enum: strictly ascending values, all fitting
// UnderlyingType, no duplicate member names, and never `bit_flags`
// (spec.md §1 Non-goals).
type EnumDecl struct {
	Namespace      string
	Identifier     string
	UnderlyingType IntegralType
	Values         []EnumValue
}

// QualifiedName is "Namespace.Identifier", or just "Identifier" at the
// root namespace.
func (e *EnumDecl) QualifiedName() string { return qualifiedName(e.Namespace, e.Identifier) }

// HasValue reports whether v is one of the enum's declared members —
// the check the decoder's EnumUnknown error is built around.
func (e *EnumDecl) HasValue(v int64) bool {
	for _, m := range e.Values {
		if m.Value == v {
			return true
		}
	}
	return false
}

// ScalarKind is the leaf type of a struct field that isn't a nested
// struct: a boolean, one of the eight integral widths, one of the two
// floating-point widths, or a reference to a validated enum (whose
// underlying integral type determines its storage size).
type ScalarKind int

const (
	ScalarBool ScalarKind = iota
	ScalarIntegral
	ScalarF32
	ScalarF64
	ScalarEnum
)

// ScalarField describes a struct field that is not itself a nested
// struct.
type ScalarField struct {
	Kind     ScalarKind
	Integral IntegralType // meaningful when Kind == ScalarIntegral
	EnumRef  *EnumDecl    // meaningful when Kind == ScalarEnum
}

// Size is the field's inline width in bytes, which (absent
// force_align) is also its natural alignment.
func (s ScalarField) Size() int {
	switch s.Kind {
	case ScalarBool:
		return 1
	case ScalarIntegral:
		return s.Integral.Size()
	case ScalarF32:
		return 4
	case ScalarF64:
		return 8
	case ScalarEnum:
		return s.EnumRef.UnderlyingType.Size()
	default:
		return 0
	}
}

// StructField is one field of a validated struct: either a scalar leaf
// or a nested, already-validated struct (spec.md §3.2: "A struct field
// is either a numeric/bool/enum leaf or a nested struct").
type StructField struct {
	Identifier string
	Scalar     *ScalarField // nil if Nested is set
	Nested     *StructDecl  // nil if Scalar is set
}

// Size is the field's inline width in bytes.
func (f StructField) Size() int {
	if f.Scalar != nil {
		return f.Scalar.Size()
	}
	return f.Nested.Size
}

// Alignment is the field's alignment requirement.
func (f StructField) Alignment() int {
	if f.Scalar != nil {
		return f.Scalar.Size()
	}
	return f.Nested.Alignment
}

// StructDecl is a validated struct: acyclic, every field either a
// scalar or a previously-validated nested struct, with Alignment
// computed per spec.md §4.3 step 4 (natural alignment, or the
// schema's force_align if present and valid).
type StructDecl struct {
	Namespace  string
	Identifier string
	Alignment  int
	Size       int
	Fields     []StructField
}

// QualifiedName is "Namespace.Identifier", or just "Identifier" at the
// root namespace.
func (s *StructDecl) QualifiedName() string { return qualifiedName(s.Namespace, s.Identifier) }

// TableField is the IR shape spec.md §3.2 names for table fields:
// "tagged type carrying, where meaningful, a default value ... and a
// required flag". Table and union validation itself is explicitly
// deferred by spec.md §4.3 step 5 ("(Future) Validate tables and
// unions by analogous rules") — this type exists so that boundary is
// visible in the IR without the analyzer pipeline claiming to enforce
// it yet.
type TableField struct {
	Identifier string
	Scalar     *ScalarField // non-nil for scalar/bool/enum fields; carries the default
	Default    int64        // meaningful when Scalar != nil
	HasDefault bool
	Required   bool // meaningful for string/vector/table/union/struct fields
}
