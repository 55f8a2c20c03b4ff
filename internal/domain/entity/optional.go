package entity

// Optional holds a value that may be absent, used for partial updates
type Optional[T any] struct {
	value T
	set   bool
}

// Some wraps a present value
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

// IsSet reports whether a value is present
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the value when present and fallback otherwise
func (o Optional[T]) OrElse(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}
