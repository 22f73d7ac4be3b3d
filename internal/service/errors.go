package service

import "errors"

var (
	ErrValidation         = errors.New("registration has invalid fields")
	ErrRegistrationFailed = errors.New("registration request failed")
	ErrLookupFailed       = errors.New("postal lookup failed")
	ErrZipcodeNotFound    = errors.New("zipcode not found")
)
