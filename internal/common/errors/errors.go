// Package errors provides the error taxonomy shared by the generation engine and its workers.
package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidation        ErrorCode = "VALIDATION_ERROR"
	ErrCodeUnknownPreset     ErrorCode = "UNKNOWN_PRESET"
	ErrCodeTransport         ErrorCode = "TRANSPORT_ERROR"
	ErrCodeBackend           ErrorCode = "BACKEND_ERROR"
	ErrCodeGenerationTimeout ErrorCode = "GENERATION_TIMEOUT"
	ErrCodeDeploy            ErrorCode = "DEPLOY_ERROR"
	ErrCodeCleanup           ErrorCode = "CLEANUP_ERROR"
	ErrCodeRender            ErrorCode = "RENDER_ERROR"
	ErrCodeStore             ErrorCode = "STORE_ERROR"
	ErrCodeNotification      ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Cause     error                  `json:"-"`
	Stack     string                 `json:"-"`
}

// Error returns the message alone so run records carry a human-readable string.
func (e *StandardError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

func (e *StandardError) Unwrap() error {
	return e.Cause
}

// Is matches on code so sentinel comparisons work across wrapped values.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

func newError(code ErrorCode, message string, cause error, retryable bool) *StandardError {
	e := &StandardError{
		Code:      code,
		Message:   message,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
		Cause:     cause,
		Stack:     captureStack(3),
	}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

func captureStack(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	var b strings.Builder
	for {
		f, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}
	return b.String()
}

// ==========================
// Constructors
// ==========================

// NewValidationError is raised before a run record exists.
func NewValidationError(message string) *StandardError {
	return newError(ErrCodeValidation, message, nil, false)
}

func NewUnknownPresetError(presetID string) *StandardError {
	e := newError(ErrCodeUnknownPreset, fmt.Sprintf("unknown preset: %s", presetID), nil, false)
	e.Metadata = map[string]interface{}{"presetId": presetID}
	return e
}

// NewTransportError wraps a network or HTTP failure while calling a backend.
func NewTransportError(message string, cause error) *StandardError {
	return newError(ErrCodeTransport, message, cause, true)
}

// NewBackendError carries the structured error string from a backend response body.
func NewBackendError(message string, status int) *StandardError {
	e := newError(ErrCodeBackend, message, nil, false)
	e.Metadata = map[string]interface{}{"status": status}
	return e
}

func NewGenerationTimeoutError(timeout time.Duration, cause error) *StandardError {
	return newError(ErrCodeGenerationTimeout, fmt.Sprintf("generation timed out after %s", timeout), cause, false)
}

func NewDeployError(artifact string, cause error) *StandardError {
	return newError(ErrCodeDeploy, messageOf(cause, "deploy failed for "+artifact), cause, false)
}

func NewCleanupError(artifact string, cause error) *StandardError {
	return newError(ErrCodeCleanup, messageOf(cause, "cleanup failed for "+artifact), cause, false)
}

func NewRenderError(renderer string, cause error) *StandardError {
	return newError(ErrCodeRender, fmt.Sprintf("%s renderer: %v", renderer, cause), cause, false)
}

func NewStoreError(op string, cause error) *StandardError {
	return newError(ErrCodeStore, fmt.Sprintf("run store %s: %v", op, cause), cause, true)
}

func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeNotification, fmt.Sprintf("failed to send %s notification", channel), err, true)
}

func messageOf(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

// ==========================
// Inspection helpers
// ==========================

// CodeOf returns the code of the first StandardError in err's chain, or INTERNAL_ERROR.
func CodeOf(err error) ErrorCode {
	var se *StandardError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err's chain contains a StandardError with code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if se, ok := err.(*StandardError); ok && se.Code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// IsValidation reports whether err must be raised to the caller instead of recorded.
func IsValidation(err error) bool {
	return HasCode(err, ErrCodeValidation) || HasCode(err, ErrCodeUnknownPreset)
}

// StackOf returns the captured stack of the first StandardError in err's chain.
// Plain errors fall back to their %+v rendering.
func StackOf(err error) string {
	if err == nil {
		return ""
	}
	var se *StandardError
	if stderrors.As(err, &se) && se.Stack != "" {
		return fmt.Sprintf("%s: %s\n%s", se.Code, se.Message, se.Stack)
	}
	return fmt.Sprintf("%+v", err)
}

// ==========================
// BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// GetRetryCount returns the recommended job retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeStore, ErrCodeNotification:
		return 3
	case ErrCodeTransport:
		return 1
	default:
		// generation is never retried automatically
		return 0
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}
	return &BPMNError{
		Code:      string(stdErr.Code),
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeValidation, ErrCodeUnknownPreset:
		return "VALIDATION"
	case ErrCodeTransport, ErrCodeBackend, ErrCodeGenerationTimeout:
		return "GENERATION"
	case ErrCodeDeploy, ErrCodeCleanup:
		return "LIFECYCLE"
	case ErrCodeRender:
		return "TEMPLATE"
	case ErrCodeStore:
		return "DATABASE"
	case ErrCodeNotification:
		return "NOTIFICATION"
	default:
		return "OTHER"
	}
}
