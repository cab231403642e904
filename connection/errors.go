package connection

import "errors"

// Sentinel errors for contract violations. These are programmer
// errors, not recoverable search conditions: a caller hitting one of
// these should treat the in-flight synthesis call as aborted, not
// retry the candidate.
var (
	// ErrSlotCount indicates New was given a slot vector whose length
	// does not match the primitive's declared input arity.
	ErrSlotCount = errors.New("connection: slot count does not match primitive arity")

	// ErrArityMismatch indicates ApplyInputs was given a flat input
	// vector whose length does not match the connection's free-input
	// arity.
	ErrArityMismatch = errors.New("connection: input count does not match free-input arity")

	// ErrTypeMismatch indicates ApplyInputs tried to overwrite a slot
	// with a value whose type tag does not match the primitive's
	// declared type for that slot.
	ErrTypeMismatch = errors.New("connection: slot type does not match declared input type")
)
