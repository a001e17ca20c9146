// Package debug holds checks of driver preconditions that cost too much for
// release builds. They are compiled in with the debug build tag and are
// no-ops otherwise. Register field range checks don't belong here, they
// panic in every build.
//
// Guard checks with side effects or expensive arguments with
// `if debug.Enabled {...}`, otherwise the arguments are still evaluated in
// release builds.
package debug

func failed(what string) string { return "assertion failed: " + what }
