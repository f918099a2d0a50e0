package unchecked

import "reflect"

// DefaultNilMessage is passed to the error factory when no message is given.
const DefaultNilMessage = "Illegal null value"

// MessageError builds an error of a caller-chosen type from a message.
type MessageError[E error] func(message string) E

// RequireNonNil returns value unchanged if it is not nil. Otherwise it returns
// the zero value and the error built by onNil from DefaultNilMessage.
//
// Pointers, interfaces, maps, slices, channels and funcs can be nil. Values of
// any other kind are always returned unchanged.
//
// Example:
//
//	cfg, err := unchecked.RequireNonNil(opts.Config, newConfigError)
//	if err != nil {
//	    return err
//	}
func RequireNonNil[T any, E error](value T, onNil MessageError[E]) (T, error) {
	return RequireNonNilMessage(value, DefaultNilMessage, onNil)
}

// RequireNonNilMessage is like RequireNonNil but passes message to onNil.
func RequireNonNilMessage[T any, E error](value T, message string, onNil MessageError[E]) (T, error) {
	if !isNil(value) {
		return value, nil
	}
	var zero T
	return zero, onNil(message)
}

// isNil reports whether v is nil, including typed nils held in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
