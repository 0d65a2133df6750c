package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashHandler is invoked on panics inside goroutines launched via Go.
// The default prints the stack and exits; main injects a handler that
// resets the terminal first so the trace is readable.
var crashHandler atomic.Value // func(any)

func init() {
	crashHandler.Store(func(r any) {
		fmt.Fprintf(os.Stderr, "\ncrash: %v\n%s\n", r, debug.Stack())
		os.Exit(1)
	})
}

// SetCrashHandler replaces the global panic handler for Go goroutines
func SetCrashHandler(fn func(any)) {
	if fn != nil {
		crashHandler.Store(fn)
	}
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword for engine goroutines to ensure
// terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crashHandler.Load().(func(any))(r)
			}
		}()
		fn()
	}()
}
