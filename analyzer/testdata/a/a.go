package a

func use(...any) {}

func call(f func()) { f() }

func callInt(f func(int)) { f(0) }

func compute() int { return 1 }

var global = 1

var pkgLit = func() int { return global }

func noCapture() {
	_ = func(a int) int { return a * 2 }
}

func usesGlobal() {
	call(func() { use(global) })
}

func ownParam(x int) {
	use(x)
	callInt(func(x int) { use(x) })
}

func ownLocals() {
	call(func() {
		y := 1
		use(y)
	})
}

func capturesParam(x int) func() int {
	return func() int { // want `Capture frame for 'x' allocated in function scope \(ca:frame\)` `Function literal captures 'x', a frame is synthesized to hold it \(ca:capture\)`
		return x
	}
}

func capturesLocals() func() int {
	a, b := 1, 2 // want `Capture frame for 'a' and 'b' allocated in function scope`
	return func() int { // want `Function literal captures 'a' and 'b', a frame is synthesized to hold them \(ca:capture\)`
		return a + b
	}
}

func loop(items []int) {
	for _, item := range items { // want `Capture frame for 'item' allocated in range scope`
		call(func() { use(item) }) // want `captures 'item', a frame is synthesized to hold it on every loop iteration`
	}
}

func counting() {
	for i := 0; i < 3; i++ { // want `Capture frame for 'i' allocated in for scope`
		defer func() { use(i) }() // want `captures 'i', a frame is synthesized to hold it on every loop iteration`
	}
}

func loopOuter(items []int) {
	total := 0 // want `Capture frame for 'total' and 'item' allocated in function scope`
	for _, item := range items {
		call(func() { total += item }) // want `captures 'total' and 'item', a frame is synthesized to hold them on every loop iteration`
	}
	use(total)
}

func loopOuterOnly(n int) {
	for range 3 { // want `Capture frame for 'n' allocated in function scope`
		call(func() { use(n) }) // want `captures 'n', a frame is synthesized to hold it on every loop iteration`
	}
}

func apply[T any](v T, f func(T)) func() {
	return func() { f(v) } // want `Capture frame for 'f' and 'v' allocated in function scope` `captures 'f' and 'v', a frame is synthesized to hold them \(ca:capture\)` `Function literal in generic function 'apply' allocates a capture frame per instantiation`
}

type box[T any] struct{ v T }

func (b *box[T]) getter() func() T {
	return func() T { return b.v } // want `Capture frame for 'b' \(receiver\) allocated in function scope` `captures 'b' \(receiver\), a frame is synthesized to hold it \(ca:capture\)`
}

type counter struct{ n int }

func (c *counter) incrementer(step int) func() {
	return func() { c.n += step } // want `Capture frame for 'c' \(receiver\) and 'step' allocated` `captures 'c' \(receiver\) and 'step', a frame is synthesized to hold them`
}

func shadow() {
	x := 1
	use(x)
	{
		x := 2                  // want `Capture frame for 'x' allocated in block scope`
		call(func() { use(x) }) // want `captures 'x'`
	}
}

func ifInit() {
	if v := compute(); v > 0 { // want `Capture frame for 'v' allocated in if scope`
		call(func() { use(v) }) // want `captures 'v'`
	}
}

func typeSwitch(x any) {
	switch v := x.(type) {
	case int:
		call(func() { use(v) }) // want `Capture frame for 'v' allocated in case scope` `captures 'v'`
	}
}

func nested() {
	call(func() {
		y := 1                  // want `Capture frame for 'y' allocated in function literal scope`
		call(func() { use(y) }) // want `captures 'y'`
	})
}

func spawn(done chan<- struct{}) {
	go func() { done <- struct{}{} }() // want `Capture frame for 'done'` `captures 'done'`
}

func deferred() (err error) {
	defer func() { use(err) }() // want `Capture frame for 'err'` `captures 'err'`
	return nil
}

func suppressed(x int) {
	call(func() { use(x) }) //nolint:capturealloc
}

//nolint:capturealloc
func suppressedFunc(x int) {
	call(func() { use(x) })
}

var pkgNested = func() int {
	y := 1              // want `Capture frame for 'y' allocated in function literal scope`
	g := func() { y++ } // want `Function literal captures 'y', a frame is synthesized to hold it \(ca:capture\)`
	g()
	return y
}
