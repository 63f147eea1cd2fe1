package item

// TryDefault returns the result of fn, or the zero value of T when fn fails or panics.
// It is meant for optional metadata only; required reads must propagate their errors.
func TryDefault[T any](fn func() (T, error)) (result T) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
		}
	}()
	value, err := fn()
	if err != nil {
		var zero T
		return zero
	}
	return value
}
