package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrUnknownField  = errors.New("unknown field")
	ErrFieldReadOnly = errors.New("field is filled by postal lookup")
)
