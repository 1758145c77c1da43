package base2

// Coalesce returns def when v is the zero value of T, otherwise v.
// Option structs across the module resolve their defaults through it.
func Coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
