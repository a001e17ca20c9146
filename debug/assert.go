//go:build debug

package debug

const Enabled = true

// Assert panics with msg if ok is false.
func Assert(ok bool, msg string) {
	if !ok {
		panic(failed(msg))
	}
}

// AssertErrNil panics with the message of err if err is not nil.
func AssertErrNil(err error) {
	if err != nil {
		panic(failed(err.Error()))
	}
}
