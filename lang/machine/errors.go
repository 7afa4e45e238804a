package machine

import "fmt"

// RuntimeError is an internal failure the VM surfaces: an unsupported
// opcode, an unknown global or function, a Resume without a suspension, or
// a call to a built-in with no VM implementation (§9 open question 2, the
// integer xor entry). A blown step or call-depth ceiling is reported by
// StepLimitExceeded or CallDepthExceeded instead.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

func internalError(format string, args ...any) *RuntimeError {
	return &RuntimeError{Msg: "internal error: " + fmt.Sprintf(format, args...)}
}

// StepLimitExceeded is returned when a run's instruction count passes the
// configured, nonzero step ceiling (§4.6 "Run-away guard").
type StepLimitExceeded struct {
	Limit uint64
}

func (e *StepLimitExceeded) Error() string {
	return fmt.Sprintf("step limit of %d instructions exceeded", e.Limit)
}

// CallDepthExceeded is returned when a run's nested Call depth passes the
// configured, nonzero recursion ceiling (§7 "Ambient configuration").
type CallDepthExceeded struct {
	Limit uint64
}

func (e *CallDepthExceeded) Error() string {
	return fmt.Sprintf("call depth limit of %d exceeded", e.Limit)
}
