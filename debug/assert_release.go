//go:build !debug

package debug

const Enabled = false

func Assert(ok bool, msg string) {}

func AssertErrNil(err error) {}
