package types

import "encoding/json"

// Error Instead of utilizing HTTP status codes to describe node errors (which often do not have a
// good analog), rich errors are returned using this object. Both the code and message fields can be
// individually used to correctly identify an error. Implementations MUST use unique values for both
// fields.
type Error struct {
	// Code identifies the error class. Two errors with the same code match under errors.Is.
	Code int32 `json:"code"`
	// Message is a stable message for the code. Contextual information belongs in Details.
	Message string `json:"message"`
	// An error is retriable if the same request may succeed if submitted again.
	Retriable bool `json:"retriable"`
	// Often times it is useful to return context specific to the request that caused the error
	// (i.e. the rejected amount or the transaction hash) in addition to the standard error
	// message.
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	bytes, _ := json.Marshal(e)
	return string(bytes)
}

// Is matches on code, so wrapped copies compare equal to the base errors below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Context returns the detail attached by WrapErr, or the message when there is none.
func (e *Error) Context() string {
	if ctx, ok := e.Details["context"].(string); ok && ctx != "" {
		return ctx
	}
	return e.Message
}

var (
	ErrInvalidAddress = &Error{
		Code:    12, //nolint
		Message: "Invalid address",
	}
	// no wallet agent is present; the session cannot sign or read until one is configured
	ErrProviderUnavailable = &Error{
		Code:    20,
		Message: "Wallet provider unavailable",
	}
	ErrAuthorizationDenied = &Error{
		Code:      21,
		Message:   "Account authorization denied",
		Retriable: true,
	}
	ErrInvalidAmount = &Error{
		Code:    22,
		Message: "Invalid amount",
	}
	ErrOperationInProgress = &Error{
		Code:      23,
		Message:   "Another operation is in progress",
		Retriable: true,
	}
	ErrReadError = &Error{
		Code:      24,
		Message:   "Contract read failed",
		Retriable: true,
	}
	ErrTransactionFailed = &Error{
		Code:      25,
		Message:   "Transaction failed",
		Retriable: true,
	}
	// the transaction may still be mined, check its outcome before submitting again
	ErrConfirmationTimeout = &Error{
		Code:    26,
		Message: "Timed out waiting for confirmation",
	}
)

// wrapErr adds details to the types.Error provided. We use a function
// to do this so that we don't accidentially overrwrite the standard
// errors.
func WrapErr(rErr *Error, err error) *Error {
	newErr := &Error{
		Code:      rErr.Code,
		Message:   rErr.Message,
		Retriable: rErr.Retriable,
	}
	if err != nil {
		newErr.Details = map[string]interface{}{
			"context": err.Error(),
		}
	}

	return newErr
}

// WrapErrWithDetails is WrapErr plus extra detail fields.
func WrapErrWithDetails(rErr *Error, err error, details map[string]any) *Error {
	newErr := WrapErr(rErr, err)
	if newErr.Details == nil {
		newErr.Details = map[string]any{}
	}
	for k, v := range details {
		newErr.Details[k] = v
	}
	return newErr
}
