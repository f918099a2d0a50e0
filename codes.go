package unchecked

// Code identifies which wrapper an adapter raised.
// Codes are string-based for debuggability and appear in Error() output.
type Code string

const (
	// CodeUnchecked marks a declared (or undeclared, for unconditional adapters)
	// failure that was converted into a panic.
	CodeUnchecked Code = "UNCHECKED"

	// CodeUnexpected marks a failure the wrapped function was not declared to return.
	CodeUnexpected Code = "UNEXPECTED"
)

// UnexpectedMessage is the fixed diagnostic carried by UnexpectedError.
const UnexpectedMessage = "Unexpected exception"
