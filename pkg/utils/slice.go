package utils

// Or 返回第一个非零值
func Or[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}

// FilterSlice 映射并过滤切片
func FilterSlice[T, R any](s []T, f func(T) (R, bool)) []R {
	out := make([]R, 0, len(s))
	for _, v := range s {
		if r, ok := f(v); ok {
			out = append(out, r)
		}
	}
	return out
}
