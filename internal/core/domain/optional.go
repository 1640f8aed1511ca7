package domain

// Optional distinguishes an absent patch field from a supplied one. For
// nullable columns use Optional[*T]: Some[*T](nil) means "set to NULL".
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a supplied value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns a supplied explicit null for a nullable field.
func Null[T any]() Optional[*T] {
	return Optional[*T]{set: true}
}

// IsSet reports whether the value was supplied.
func (o Optional[T]) IsSet() bool { return o.set }

// Get returns the value and whether it was supplied.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// OrElse returns the value if supplied, otherwise def.
func (o Optional[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}
