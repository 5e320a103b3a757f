package valueobjects

import (
	"errors"
	"fmt"
)

// FailureCategory classifies an error into the small set of outcomes a user can act on.
type FailureCategory string

const (
	FailureValidation         FailureCategory = "validation"
	FailureOversized          FailureCategory = "oversized"
	FailureUnsupportedType    FailureCategory = "unsupported-type"
	FailureTimeout            FailureCategory = "timeout"
	FailureConnectivity       FailureCategory = "connectivity"
	FailureServiceUnavailable FailureCategory = "service-unavailable"
	FailureParse              FailureCategory = "parse"
	FailureNotFound           FailureCategory = "not-found"
	FailureForbidden          FailureCategory = "forbidden"
	FailureInternal           FailureCategory = "internal"
)

// ユーザー向けのデフォルトメッセージ
var defaultUserMessages = map[FailureCategory]string{
	FailureOversized:          "The uploaded image is too large. Please upload an image under 10MB.",
	FailureUnsupportedType:    "Unsupported image type. Please upload a JPEG, PNG, GIF or WebP image.",
	FailureTimeout:            "Service timeout. Please try again in a moment.",
	FailureConnectivity:       "Service unavailable. Please try again later.",
	FailureServiceUnavailable: "The service is busy right now. Please try again later.",
	FailureParse:              "Could not process the results. Please try again.",
	FailureInternal:           "An error occurred. Please try again.",
}

// Failure is an error carrying its category and a message that is safe to show to the user.
type Failure struct {
	Category    FailureCategory
	Message     string
	UserMessage string
	Err         error
}

func NewFailure(category FailureCategory, message string, err error) *Failure {
	return &Failure{
		Category:    category,
		Message:     message,
		UserMessage: defaultUserMessages[category],
		Err:         err,
	}
}

// NewValidationFailure returns a validation failure whose user message is the message itself.
func NewValidationFailure(message string) *Failure {
	return &Failure{
		Category:    FailureValidation,
		Message:     message,
		UserMessage: message,
	}
}

func (f *Failure) WithUserMessage(userMessage string) *Failure {
	f.UserMessage = userMessage
	return f
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Message, f.Err)
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// AsFailure finds the first Failure in err's chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// CategoryOf returns FailureInternal for errors that carry no category.
func CategoryOf(err error) FailureCategory {
	if f, ok := AsFailure(err); ok {
		return f.Category
	}
	return FailureInternal
}
