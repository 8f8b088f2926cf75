package result

// Code classifies the outcome of a store-backed operation. The string values
// are part of the caller-visible contract and serialize as-is.
type Code string

const (
	CreationSuccess Code = "CREATION_SUCCESS"
	CreationFailure Code = "CREATION_FAILURE"
	FetchSuccess    Code = "FETCH_SUCCESS"
	FetchFailure    Code = "FETCH_FAILURE"
	UpdateSuccess   Code = "UPDATE_SUCCESS"
	UpdateFailure   Code = "UPDATE_FAILURE"
	DeletionSuccess Code = "DELETION_SUCCESS"
	DeletionFailure Code = "DELETION_FAILURE"
)

// Result is the envelope returned by every service operation. On success,
// Entity holds the payload and ErrorMessage is empty. On failure,
// ErrorMessage holds the reason and Entity is the zero value.
type Result[T any] struct {
	Code         Code   `json:"code"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Entity       T      `json:"entity,omitempty"`
}

// Success returns a result carrying the given payload.
func Success[T any](code Code, entity T) Result[T] {
	return Result[T]{
		Code:   code,
		Entity: entity,
	}
}

// Failure returns a result carrying the given error message.
func Failure[T any](code Code, errorMessage string) Result[T] {
	return Result[T]{
		Code:         code,
		ErrorMessage: errorMessage,
	}
}

// Failed reports whether the result carries a failure code.
func (r Result[T]) Failed() bool {
	switch r.Code {
	case CreationFailure, FetchFailure, UpdateFailure, DeletionFailure:
		return true
	}
	return false
}
