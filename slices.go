package dateconv

import "fmt"

// ConvertAll converts every value to T, in order. It stops at the first
// failure and reports its index.
func ConvertAll[T any](r *Registry, values []any) ([]T, error) {
	result := make([]T, 0, len(values))
	for i, v := range values {
		out, err := Convert[T](r, v)
		if err != nil {
			return nil, fmt.Errorf("converting value %d: %w", i, err)
		}
		result = append(result, out)
	}
	return result, nil
}
