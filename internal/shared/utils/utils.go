// Small general-purpose helpers
package utils

func Ptr[T any](v T) *T {
	return &v
}
