// Package api carries the OpenAPI contract served by the HTTP adapter.
package api

import _ "embed"

// Spec is the raw OpenAPI document describing the HTTP surface.
//
//go:embed openapi.yaml
var Spec []byte
