// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Decoded is the outcome of schema-checked decoding: the Go value plus the
// unified CUE value for callers that need to inspect the document further.
type Decoded[T any] struct {
	Value   *T
	Unified cue.Value
}

// DecodeFile checks a CUE document against one definition of an embedded
// schema and decodes it into a Go value. The schema is trusted (it ships
// with the binary); the document is not, so it is size-capped and every
// failure is reported with the document's filename and field path.
//
// rootDef names the schema definition to unify with, e.g. "#Launchfile".
func DecodeFile[T any](schema string, data []byte, rootDef string, opts ...Option) (*Decoded[T], error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	name := options.filename
	if name == "" {
		name = "<input>"
	}

	if err := CheckFileSize(data, options.maxFileSize, name); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	def, err := schemaDef(ctx, schema, rootDef)
	if err != nil {
		return nil, err
	}

	doc := ctx.CompileBytes(data, cue.Filename(name))
	if doc.Err() != nil {
		return nil, FormatError(doc.Err(), name)
	}

	merged := def.Unify(doc)
	if options.concrete {
		err = merged.Validate(cue.Concrete(true))
	} else {
		err = merged.Validate()
	}
	if err != nil {
		return nil, FormatError(err, name)
	}

	var out T
	if err := merged.Decode(&out); err != nil {
		return nil, FormatError(err, name)
	}

	return &Decoded[T]{Value: &out, Unified: merged}, nil
}

// schemaDef compiles the embedded schema and looks up the root definition.
// Failures here are programming errors, not user input problems.
func schemaDef(ctx *cue.Context, schema, rootDef string) (cue.Value, error) {
	compiled := ctx.CompileString(schema)
	if compiled.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: embedded schema does not compile: %w", compiled.Err())
	}

	def := compiled.LookupPath(cue.ParsePath(rootDef))
	if def.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema has no %s definition: %w", rootDef, def.Err())
	}
	return def, nil
}
