package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
	cause   error
}

// Error returns the error message, followed by the cause when there is one.
func (e domainErr) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

// Unwrap returns the underlying cause.
func (e domainErr) Unwrap() error {
	return e.cause
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// InvalidReferenceErr represents a malformed or unrecognized media reference.
type InvalidReferenceErr struct {
	domainErr
}

// NewInvalidReferenceErr creates a new InvalidReferenceErr with the given message.
func NewInvalidReferenceErr(message string) *InvalidReferenceErr {
	return &InvalidReferenceErr{
		domainErr: domainErr{message: message},
	}
}

// ReferenceUnavailableErr represents a reference that exists but cannot be fetched
// (private, removed, age or region restricted).
type ReferenceUnavailableErr struct {
	domainErr
}

// NewReferenceUnavailableErr creates a new ReferenceUnavailableErr.
func NewReferenceUnavailableErr(message string, cause error) *ReferenceUnavailableErr {
	return &ReferenceUnavailableErr{
		domainErr: domainErr{message: message, cause: cause},
	}
}

// DecodeFailureErr represents a clip that could not be read as audio.
type DecodeFailureErr struct {
	domainErr
}

// NewDecodeFailureErr creates a new DecodeFailureErr.
func NewDecodeFailureErr(message string, cause error) *DecodeFailureErr {
	return &DecodeFailureErr{
		domainErr: domainErr{message: message, cause: cause},
	}
}

// ModelFailureErr represents a feature model invocation that failed or produced no usable output.
type ModelFailureErr struct {
	domainErr
}

// NewModelFailureErr creates a new ModelFailureErr.
func NewModelFailureErr(message string, cause error) *ModelFailureErr {
	return &ModelFailureErr{
		domainErr: domainErr{message: message, cause: cause},
	}
}
