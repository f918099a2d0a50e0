package unchecked

import "errors"

// Replacer converts one error type into another.
type Replacer[From, To error] func(From) To

// Replace returns replace applied to the first From in err's chain, as found
// by errors.As. If the chain holds no From, err is returned unchanged.
// Returns nil if err is nil.
//
// Replace pairs with adapted functions: after recovering an UncheckedError,
// a caller can translate its cause into the error type of its own API.
//
// Example:
//
//	return unchecked.Replace(err, func(e *fs.PathError) *StoreError {
//	    return &StoreError{Path: e.Path, Err: e.Err}
//	})
func Replace[From, To error](err error, replace Replacer[From, To]) error {
	if err == nil {
		return nil
	}

	var found From
	if !errors.As(err, &found) {
		return err
	}

	return replace(found)
}
