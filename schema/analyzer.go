package schema

import (
	"fmt"
	"strings"
)

// AnalyzerOption configures Analyze. There is currently nothing to
// configure beyond the root schema itself, but the functional-options
// shape is kept consistent with the rest of this module (and with the
// retrieved corpus's CompileOption/CompileOptions pattern) so a future
// option — e.g. a pre-resolved dependency set, mirroring the corpus's
// WithDependencies — has somewhere idiomatic to go.
type AnalyzerOption interface {
	apply(*AnalyzerOptions)
}

type analyzerOption func(*AnalyzerOptions)

func (f analyzerOption) apply(o *AnalyzerOptions) { f(o) }

// AnalyzerOptions is the resolved option set Analyze runs with.
type AnalyzerOptions struct{}

// Result is everything Analyze produces: the validated declarations,
// a side table for a downstream code generator (spec.md §6: "plus a
// side table mapping qualified type names to declarations"), and the
// errors/warnings accumulated along the way.
type Result struct {
	Enums   []*EnumDecl
	Structs []*StructDecl

	// ByQualifiedName indexes every validated declaration by its
	// "Namespace.Identifier" string (bare "Identifier" at the root
	// namespace). Values are *EnumDecl or *StructDecl.
	ByQualifiedName map[string]any

	Errors   []*AnalysisError
	Warnings []*Warning
}

// OK reports whether analysis produced no errors.
func (r *Result) OK() bool { return len(r.Errors) == 0 }

// Analyze validates root (and everything it transitively includes)
// through the pipeline spec.md §4.3 describes: flatten namespaces,
// validate enums, detect struct cycles, validate structs. Table and
// union validation is future work per that same section ("(Future)
// Validate tables and unions by analogous rules") and is not run here.
func Analyze(root *RawSchema, opts ...AnalyzerOption) *Result {
	options := &AnalyzerOptions{}
	for _, opt := range opts {
		opt.apply(options)
	}

	a := &analyzer{
		opts:            options,
		byQualifiedName: make(map[string]*RawDecl),
		validatedEnums:  make(map[string]*EnumDecl),
		validatedStructs: make(map[string]*StructDecl),
		structState:     make(map[string]int),
		cyclic:          make(map[string]bool),
	}
	a.flatten(root)
	a.validateEnums()
	a.detectStructCycles()
	a.validateStructs()

	result := &Result{
		Errors:          a.errors,
		Warnings:        a.warnings,
		ByQualifiedName: make(map[string]any),
	}
	for qn, e := range a.validatedEnums {
		result.Enums = append(result.Enums, e)
		result.ByQualifiedName[qn] = e
	}
	for qn, s := range a.validatedStructs {
		result.Structs = append(result.Structs, s)
		result.ByQualifiedName[qn] = s
	}
	return result
}

// analyzer is the mutable state threaded through the pipeline, playing
// the role the retrieved corpus's compiler struct plays for its own
// compile pipeline: a flat declaration registry, an error/warning
// sink, and memoization tables that double as cycle-detection state.
type analyzer struct {
	opts *AnalyzerOptions

	decls           []*RawDecl
	byQualifiedName map[string]*RawDecl

	validatedEnums   map[string]*EnumDecl
	validatedStructs map[string]*StructDecl

	// structState tracks DFS progress per qualified struct name: 0
	// unvisited, 1 visiting (on the current DFS stack), 2 done.
	structState map[string]int
	cyclic      map[string]bool

	errors   []*AnalysisError
	warnings []*Warning
}

func (a *analyzer) err(context, message string) {
	a.errors = append(a.errors, newError(context, message))
}

func (a *analyzer) errWrap(context, message string, cause error) {
	a.errors = append(a.errors, wrapError(context, message, cause))
}

func (a *analyzer) warn(context, message string) {
	a.warnings = append(a.warnings, &Warning{Context: context, Message: message})
}

// flatten walks the include tree and pairs every declaration with its
// already-set namespace (spec.md §4.3 step 1). Declarations keep the
// namespace the parser assigned them; flatten's job is only to collect
// them into one registry addressable by qualified name.
func (a *analyzer) flatten(root *RawSchema) {
	seen := make(map[*RawSchema]bool)
	var walk func(*RawSchema)
	walk = func(s *RawSchema) {
		if s == nil || seen[s] {
			return
		}
		seen[s] = true
		for _, d := range s.Declarations {
			qn := qualifiedName(d.Namespace, d.Identifier)
			if existing, ok := a.byQualifiedName[qn]; ok && existing != d {
				a.err(qn, fmt.Sprintf("duplicate declaration of %q", qn))
				continue
			}
			a.byQualifiedName[qn] = d
			a.decls = append(a.decls, d)
		}
		for _, inc := range s.Includes {
			walk(inc)
		}
	}
	walk(root)
}

// namespaceCandidates returns the walk-up search order spec.md §4.3
// specifies for a reference made within namespace ns = n1.n2...nk:
// ns, n1...nk-1, ..., n1, "".
func namespaceCandidates(ns string) []string {
	if ns == "" {
		return []string{""}
	}
	parts := strings.Split(ns, ".")
	candidates := make([]string, 0, len(parts)+1)
	for i := len(parts); i >= 0; i-- {
		candidates = append(candidates, strings.Join(parts[:i], "."))
	}
	return candidates
}

func joinNamespace(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "." + b
	}
}

// splitRef splits a schema type reference such as "MyNamespace.MyStruct"
// into its namespace prefix ("MyNamespace") and final identifier
// ("MyStruct"). An unqualified reference like "Vec3" splits to ("", "Vec3").
func splitRef(ref string) (namespace, identifier string) {
	if i := strings.LastIndex(ref, "."); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return "", ref
}

// resolveType implements spec.md §4.3's namespace resolution: for
// reference ref appearing within fromNamespace, search candidate
// namespaces in walk-up order, each joined with ref's own namespace
// prefix, for a declaration matching the final identifier.
func (a *analyzer) resolveType(fromNamespace, ref string) (*RawDecl, error) {
	refNamespace, identifier := splitRef(ref)
	var checked []string
	for _, candidate := range namespaceCandidates(fromNamespace) {
		lookup := joinNamespace(candidate, refNamespace)
		checked = append(checked, lookup)
		if decl, ok := a.byQualifiedName[qualifiedName(lookup, identifier)]; ok {
			return decl, nil
		}
	}
	return nil, fmt.Errorf("type '%s' does not exist (checked in these namespaces: %s)", ref, strings.Join(checked, ", "))
}

// validateEnums runs spec.md §4.3 step 2 over every KindEnum
// declaration, independent of struct/table validation.
func (a *analyzer) validateEnums() {
	for _, d := range a.decls {
		if d.Kind != KindEnum {
			continue
		}
		a.validateEnum(d)
	}
}

func (a *analyzer) validateEnum(d *RawDecl) {
	qn := qualifiedName(d.Namespace, d.Identifier)

	if d.HasAttribute("bit_flags") {
		a.err(qn, "enum attribute 'bit_flags' is not supported")
		return
	}

	underlying, ok := parseIntegralType(d.UnderlyingType)
	if !ok {
		a.err(qn, fmt.Sprintf("enum underlying type %q is not an integral type", d.UnderlyingType))
		return
	}

	seenNames := make(map[string]bool, len(d.Values))
	values := make([]EnumValue, 0, len(d.Values))
	var previous int64 = -1
	ok = true
	for _, raw := range d.Values {
		if seenNames[raw.Identifier] {
			a.err(qn, fmt.Sprintf("duplicate enum member %q", raw.Identifier))
			ok = false
			continue
		}
		seenNames[raw.Identifier] = true

		var value int64
		if raw.Value != nil {
			value = *raw.Value
			if value <= previous {
				a.err(qn, fmt.Sprintf("enum member %q has value %d, which does not strictly ascend from the previous value %d", raw.Identifier, value, previous))
				ok = false
				continue
			}
		} else {
			value = previous + 1
			a.warn(qn, fmt.Sprintf("enum member %q relies on auto-assignment to value %d", raw.Identifier, value))
		}

		if !underlying.fits(value) {
			a.err(qn, fmt.Sprintf("enum member %q has value %d, which does not fit %s", raw.Identifier, value, underlying))
			ok = false
			continue
		}

		values = append(values, EnumValue{Identifier: raw.Identifier, Value: value})
		previous = value
	}

	if len(values) == 0 {
		a.err(qn, "enum must declare at least one member")
		return
	}
	if !ok {
		return
	}

	a.validatedEnums[qn] = &EnumDecl{
		Namespace:      d.Namespace,
		Identifier:     d.Identifier,
		UnderlyingType: underlying,
		Values:         values,
	}
}

// detectStructCycles runs spec.md §4.3 step 3: a DFS over struct type
// references, reporting `cyclic dependency detected [A -> B -> A]` on
// any revisit of a node still on the DFS stack.
func (a *analyzer) detectStructCycles() {
	for _, d := range a.decls {
		if d.Kind != KindStruct {
			continue
		}
		qn := qualifiedName(d.Namespace, d.Identifier)
		if a.structState[qn] == 0 {
			a.dfsStruct(d, nil)
		}
	}
}

func (a *analyzer) dfsStruct(d *RawDecl, path []string) {
	qn := qualifiedName(d.Namespace, d.Identifier)
	a.structState[qn] = 1
	path = append(path, qn)

	for _, f := range d.Fields {
		if f.IsVector {
			continue
		}
		ref, err := a.resolveType(d.Namespace, f.TypeName)
		if err != nil || ref.Kind != KindStruct {
			continue
		}
		rqn := qualifiedName(ref.Namespace, ref.Identifier)
		switch a.structState[rqn] {
		case 1:
			cycle := cyclePath(path, rqn)
			a.err(qn, fmt.Sprintf("cyclic dependency detected [%s]", strings.Join(cycle, " -> ")))
			a.cyclic[rqn] = true
			a.cyclic[qn] = true
		case 0:
			a.dfsStruct(ref, path)
		}
	}

	a.structState[qn] = 2
}

// cyclePath trims path down to the cycle itself: from target's first
// occurrence through the end, plus target again to close the loop.
func cyclePath(path []string, target string) []string {
	for i, qn := range path {
		if qn == target {
			cycle := append([]string{}, path[i:]...)
			cycle = append(cycle, target)
			return cycle
		}
	}
	return append(append([]string{}, path...), target)
}

var builtinScalars = map[string]ScalarField{
	"bool": {Kind: ScalarBool},
	"i8":   {Kind: ScalarIntegral, Integral: I8},
	"i16":  {Kind: ScalarIntegral, Integral: I16},
	"i32":  {Kind: ScalarIntegral, Integral: I32},
	"i64":  {Kind: ScalarIntegral, Integral: I64},
	"u8":   {Kind: ScalarIntegral, Integral: U8},
	"u16":  {Kind: ScalarIntegral, Integral: U16},
	"u32":  {Kind: ScalarIntegral, Integral: U32},
	"u64":  {Kind: ScalarIntegral, Integral: U64},
	"f32":  {Kind: ScalarF32},
	"f64":  {Kind: ScalarF64},
}

// validateStructs runs spec.md §4.3 step 4 over every KindStruct
// declaration not already implicated in a reported cycle.
func (a *analyzer) validateStructs() {
	for _, d := range a.decls {
		if d.Kind != KindStruct {
			continue
		}
		qn := qualifiedName(d.Namespace, d.Identifier)
		if a.cyclic[qn] {
			continue
		}
		a.validateStruct(d)
	}
}

// validateStruct validates and memoizes d, resolving nested struct
// references recursively (also memoized, so a struct referenced by
// several others is only validated once).
func (a *analyzer) validateStruct(d *RawDecl) *StructDecl {
	qn := qualifiedName(d.Namespace, d.Identifier)
	if existing, ok := a.validatedStructs[qn]; ok {
		return existing
	}
	if a.cyclic[qn] {
		return nil
	}

	var fields []StructField
	maxAlign := 1
	offset := 0
	ok := true

	for _, f := range d.Fields {
		if f.HasAttribute("deprecated") {
			a.err(qn, fmt.Sprintf("field %q: 'deprecated' is not valid on a struct field", f.Identifier))
			ok = false
			continue
		}
		if f.IsVector {
			a.err(qn, fmt.Sprintf("field %q: a struct may not contain a vector", f.Identifier))
			ok = false
			continue
		}

		field, fieldOK := a.resolveStructFieldType(d.Namespace, qn, f)
		if !fieldOK {
			ok = false
			continue
		}
		fields = append(fields, field)
		if field.Alignment() > maxAlign {
			maxAlign = field.Alignment()
		}
		// Each field starts on its own alignment boundary, not just
		// wherever the previous field's bytes happened to end.
		offset = padToAlignment(offset, field.Alignment())
		offset += field.Size()
	}
	size := offset

	if !ok {
		return nil
	}

	alignment := maxAlign
	if raw, hasForceAlign := d.Attributes["force_align"]; hasForceAlign {
		forced, err := parseForceAlign(raw)
		if err != nil || forced < alignment || forced > 16 || !isPowerOfTwo(forced) {
			a.err(qn, fmt.Sprintf("force_align value %q must be a power of two in [%d, 16]", raw, alignment))
			return nil
		}
		alignment = forced
	}

	size = padToAlignment(size, alignment)

	s := &StructDecl{
		Namespace:  d.Namespace,
		Identifier: d.Identifier,
		Alignment:  alignment,
		Size:       size,
		Fields:     fields,
	}
	a.validatedStructs[qn] = s
	return s
}

// resolveStructFieldType resolves one struct field to either a scalar
// leaf (builtin numeric/bool type, or enum reference) or a nested,
// recursively-validated struct, rejecting string/table/union
// references outright (spec.md §4.3 step 4).
func (a *analyzer) resolveStructFieldType(namespace, qn string, f RawField) (StructField, bool) {
	if scalar, ok := builtinScalars[f.TypeName]; ok {
		sc := scalar
		return StructField{Identifier: f.Identifier, Scalar: &sc}, true
	}
	if f.TypeName == "string" {
		a.err(qn, fmt.Sprintf("field %q: a struct may not contain a string", f.Identifier))
		return StructField{}, false
	}

	ref, err := a.resolveType(namespace, f.TypeName)
	if err != nil {
		a.errWrap(qn, fmt.Sprintf("field %q", f.Identifier), err)
		return StructField{}, false
	}

	switch ref.Kind {
	case KindEnum:
		enumQN := qualifiedName(ref.Namespace, ref.Identifier)
		enumDecl, ok := a.validatedEnums[enumQN]
		if !ok {
			a.err(qn, fmt.Sprintf("field %q: enum %q failed validation", f.Identifier, enumQN))
			return StructField{}, false
		}
		return StructField{Identifier: f.Identifier, Scalar: &ScalarField{Kind: ScalarEnum, EnumRef: enumDecl}}, true
	case KindStruct:
		nested := a.validateStruct(ref)
		if nested == nil {
			a.err(qn, fmt.Sprintf("field %q: struct %q failed validation", f.Identifier, qualifiedName(ref.Namespace, ref.Identifier)))
			return StructField{}, false
		}
		return StructField{Identifier: f.Identifier, Nested: nested}, true
	case KindTable:
		a.err(qn, fmt.Sprintf("field %q: a struct may not contain a table", f.Identifier))
		return StructField{}, false
	case KindUnion:
		a.err(qn, fmt.Sprintf("field %q: a struct may not contain a union", f.Identifier))
		return StructField{}, false
	default:
		a.err(qn, fmt.Sprintf("field %q: unresolvable type %q", f.Identifier, f.TypeName))
		return StructField{}, false
	}
}

func parseForceAlign(raw string) (int, error) {
	var n int
	_, err := fmt.Sscanf(raw, "%d", &n)
	return n, err
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func padToAlignment(size, alignment int) int {
	if size%alignment == 0 {
		return size
	}
	return size + (alignment - size%alignment)
}
