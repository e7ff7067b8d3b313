package a

func where(s []int, keep func(int) bool) []int {
	var r []int
	for _, v := range s {
		if keep(v) {
			r = append(r, v)
		}
	}
	return r
}

func sortWith(s []int, compare func(x, y int) int) { _, _ = s, compare }

func countCalls[T any](items []T, visit func(T)) {
	count := 0 // want `Capture frame for 'count' and 'visit' allocated in function scope`
	wrapped := func(item T) { // want `captures 'count' and 'visit', a frame is synthesized to hold them \(ca:capture\)` `generic function 'countCalls' allocates a capture frame per instantiation`
		count++
		visit(item)
	}
	for _, item := range items {
		wrapped(item)
	}
	use(count)
}

func countAbove(rows [][]int, limit int) int {
	total := 0 // want `Capture frame for 'limit' allocated in function scope`
	for _, row := range rows {
		total += len(where(row, func(v int) bool { return v > limit })) // want `captures 'limit', a frame is synthesized to hold it on every loop iteration`
	}
	return total
}

func ownParameters(s []int) {
	sortWith(s, func(x, y int) int { return x - y })
}

func outerLocal(s []int, z int) {
	sortWith(s, func(x, y int) int { return x - y + z }) // want `Capture frame for 'z' allocated in function scope` `captures 'z', a frame is synthesized to hold it \(ca:capture\)`
}
