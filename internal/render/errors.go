package render

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnboundSlot means a slot has no data source or figure builder.
	ErrUnboundSlot = errors.New("slot has no binding")

	// ErrUnknownSlot means a binding or render request names a slot that
	// no page defines.
	ErrUnknownSlot = errors.New("unknown slot")

	// ErrPanic marks a slot failure caused by a panic in a data source or
	// figure builder.
	ErrPanic = errors.New("render panic")
)

// BindingError reports static binding defects found by [NewEngine].
type BindingError struct {
	// SlotIDs lists the offending slots in registry order.
	SlotIDs []string

	// Err is [ErrUnboundSlot] or [ErrUnknownSlot].
	Err error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("slot bindings [%s]: %v", strings.Join(e.SlotIDs, ", "), e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}

// SlotError reports a failed render of one slot.
//
// CorrelationID ties the message shown to users to the server-side log entry
// that carries the full error and, for panics, the stack trace.
type SlotError struct {
	SlotID        string
	CorrelationID string
	Err           error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("render %s failed (correlation_id: %s): %v", e.SlotID, e.CorrelationID, e.Err)
}

func (e *SlotError) Unwrap() error {
	return e.Err
}
