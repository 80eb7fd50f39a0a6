package domain

import (
	"fmt"
)

const (
	ErrCodeValidation      string = "VALIDATION_ERROR"
	ErrCodeInternal        string = "INTERNAL_ERROR"
	ErrCodeExternal        string = "EXTERNAL_SERVICE_ERROR"
	ErrCodePayloadTooLarge string = "PAYLOAD_TOO_LARGE"
)

type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"cause"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Message:%s, Cause:%v", e.Message, e.Cause)
	}
	return fmt.Sprintf("Message:%s", e.Message)

}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func NewDomainError(code, msg string, cause error) *DomainError {
	return &DomainError{Code: code, Message: msg, Cause: cause}
}

var ErrEmptyImage = &DomainError{Code: ErrCodeValidation, Message: "image must not be empty", Cause: nil}
var ErrUnsupportedMimeType = &DomainError{Code: ErrCodeValidation, Message: "unsupported image type, expected png or jpeg", Cause: nil}
var ErrMissingImage = &DomainError{Code: ErrCodeValidation, Message: "no image was uploaded", Cause: nil}
