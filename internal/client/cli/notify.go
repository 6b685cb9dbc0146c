package cli

import "fmt"

// notifyFn is a test seam for transient user-facing messages (the terminal
// analog of a toast). In tests, replace it with a stub.
var notifyFn = fmt.Println

// consoleNotifier writes one-line status messages to the terminal. The
// session manager reports every outcome through it instead of returning
// errors to the REPL.
type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { notifyFn("[ok]", msg) }
func (consoleNotifier) Error(msg string)   { notifyFn("[error]", msg) }
func (consoleNotifier) Info(msg string)    { notifyFn("[info]", msg) }
