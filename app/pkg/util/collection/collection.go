package collection

func Map[T, U any](data []T, f func(T) U) []U {
	r := make([]U, 0, len(data))
	for _, e := range data {
		r = append(r, f(e))
	}
	return r
}
