package forms

// ErrorCode identifies the kind of validation failure for a single field.
type ErrorCode string

const (
	CodeEmptyField    ErrorCode = "empty_field"
	CodeInvalidFormat ErrorCode = "invalid_format"
	CodeTooShort      ErrorCode = "too_short"
	CodeMissingLetter ErrorCode = "missing_letter"
	CodeMissingDigit  ErrorCode = "missing_digit"
	CodeMismatch      ErrorCode = "mismatch"
)

// FieldError is a validation failure tied to one specific input. It blocks
// submission but never typing. A nil *FieldError means the value is valid.
type FieldError struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface, returning the user-facing message.
func (e *FieldError) Error() string {
	return e.Message
}

func fieldError(code ErrorCode, message string) *FieldError {
	return &FieldError{Code: code, Message: message}
}
