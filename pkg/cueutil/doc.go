// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes schema-checked CUE documents.
//
// Launchfiles and gantry's own config file are both CUE documents validated
// against schemas embedded in the binary; this package holds the shared
// decode path (compile schema, unify with the document, validate, decode)
// and the error formatting that points users at the offending field.
//
// # Usage
//
//	//go:embed launchfile_schema.cue
//	var schema string
//
//	decoded, err := cueutil.DecodeFile[Launchfile](
//	    schema,
//	    data,
//	    "#Launchfile",
//	    cueutil.WithFilename("launchfile.cue"),
//	)
//	if err != nil {
//	    return nil, err
//	}
//	return decoded.Value, nil
package cueutil
