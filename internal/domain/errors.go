package domain

import "errors"

var (
	ErrEmptyBatch     = errors.New("no extraction results to export")
	ErrUnknownField   = errors.New("unknown field name")
	ErrEmptySelection = errors.New("field selection is empty")
	ErrTooManyFiles   = errors.New("too many files in one batch")
	ErrFileTooLarge   = errors.New("file exceeds maximum allowed size")
)
