package sample

func Apply[T any](v T, f func(T)) func() {
	return func() { f(v) }
}

func Double(n int) int {
	return func(m int) int { return 2 * m }(n)
}
