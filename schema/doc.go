// Package schema validates a parsed FlatBuffers schema syntax tree into
// the intermediate representation a code generator would consume.
//
// The lexer and parser that produce the raw tree (raw.go's RawSchema)
// are external collaborators, out of scope for this module — schema
// text never appears here, only the tree shape a parser would hand
// back. Analyze walks that tree through a fixed pipeline (flatten
// namespaces, validate enums, detect struct cycles, validate structs)
// and returns a Result holding the validated declarations together
// with any AnalysisErrors; non-fatal observations are reported separately as Warnings and never
// block a result from being produced.
package schema
