package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	InvalidRequestCode        = 1001
	InvalidRequestMessage     = "invalid request body"
	UnknownFieldCode          = 1002
	UnknownFieldMessage       = "unknown field"
	FieldReadOnlyCode         = 1003
	FieldReadOnlyMessage      = "field is filled by postal lookup"
	ZipcodeNotFoundCode       = 2001
	ZipcodeNotFoundMessage    = "zipcode not found"
	LookupFailedCode          = 2002
	LookupFailedMessage       = "postal lookup failed"
	RegistrationFailedCode    = 3001
	RegistrationFailedMessage = "registration request failed"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "Validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
} // @name ValidationError

var errorMessages = map[ErrorCode]ErrorMessage{
	InvalidRequestCode:     InvalidRequestMessage,
	UnknownFieldCode:       UnknownFieldMessage,
	FieldReadOnlyCode:      FieldReadOnlyMessage,
	ZipcodeNotFoundCode:    ZipcodeNotFoundMessage,
	LookupFailedCode:       LookupFailedMessage,
	RegistrationFailedCode: RegistrationFailedMessage,
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	if message, ok := errorMessages[code]; ok {
		errorStruct.ErrorCode = code
		errorStruct.ErrorMessage = message
	}

	return errorStruct
}
