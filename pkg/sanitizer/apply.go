package sanitizer

// Apply feeds value through each transform, left to right.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, fn := range transforms {
		value = fn(value)
	}
	return value
}

// Compose freezes transforms into a single function.
func Compose[T any](transforms ...func(T) T) func(T) T {
	chain := append([]func(T) T(nil), transforms...)
	return func(value T) T { return Apply(value, chain...) }
}
