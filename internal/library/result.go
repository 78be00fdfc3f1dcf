package library

import "strings"

// Result is the outcome of a mutating library operation. Errors is empty on
// success; ID carries the created book or loan id when there is one.
type Result struct {
	ID      int      `json:"id,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// String returns the error lines or the success message.
func (r Result) String() string {
	if !r.OK() {
		return strings.Join(r.Errors, "\n")
	}
	return r.Message
}

func failed(errs ...string) Result {
	return Result{Errors: errs}
}
