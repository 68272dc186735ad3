// Package patch holds helpers for applying partial updates from optional
// request fields.
package patch

// Coalesce dereferences ptr when set and falls back to the current value
// otherwise.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
