// Package schemas holds the JSON Schema documents describing the on-disk
// artifacts of the resume builder.
package schemas

import _ "embed"

// Snapshot is the JSON Schema for the persisted document-store snapshot.
//
//go:embed snapshot.schema.json
var Snapshot string
