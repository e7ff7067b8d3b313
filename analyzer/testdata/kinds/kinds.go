package kinds

func use(...any) {}

func call(f func()) { f() }

func kinds(a, b, c, d int) {
	use(a, b, c, d) // want `Capture frame for 'b'` `Capture frame for 'c'`
	go func() { use(a) }()
	defer func() { use(b) }() // want `captures 'b'`
	call(func() { use(c) })   // want `captures 'c'`
	func() { use(d) }()
}
