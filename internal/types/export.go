// Package types provides type definitions for the resume document model used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// PageSize identifies how rendered source dimensions map to destination
// paginated units.
type PageSize string

// Supported export page sizes.
const (
	PageA4     PageSize = "a4"
	PageLetter PageSize = "letter"
)

// ExportRequest represents a request to export the rendered active resume to
// a PDF file. Document fields are never validated (free text is accepted
// as-is); only the export inputs are.
type ExportRequest struct {
	Filename string   `json:"filename" validate:"required,min=1"`
	PageSize PageSize `json:"page_size" validate:"required,oneof=a4 letter"`
}

// Validate validates the ExportRequest using the validator.
func (r *ExportRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
