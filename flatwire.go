// Package flatwire implements the FlatBuffers wire format: a
// zero-copy binary encoder and decoder (package flatbuffers) and a
// schema semantic analyzer (package schema) that turns a parsed .fbs
// syntax tree into a validated intermediate representation.
//
// There is no code generator here — callers write the encode/decode
// glue a generator would otherwise emit, using flatbuffers.Builder to
// write and flatbuffers.Table (plus its typed accessors in
// decoder.go) to read. schema.Analyze is useful independently, for a
// tool that only needs to validate a schema without generating
// bindings from it.
package flatwire

import (
	"github.com/flatwire-go/flatwire/flatbuffers"
	"github.com/flatwire-go/flatwire/schema"
)

// NewBuilder is a convenience re-export of flatbuffers.NewBuilder for
// callers that otherwise only need this package's name in an import
// list.
func NewBuilder(initialSize int) *flatbuffers.Builder {
	return flatbuffers.NewBuilder(initialSize)
}

// AnalyzeSchema is a convenience re-export of schema.Analyze.
func AnalyzeSchema(root *schema.RawSchema, opts ...schema.AnalyzerOption) *schema.Result {
	return schema.Analyze(root, opts...)
}
