// Package cli implements the interactive terminal client.
//
// The REPL (see runREPL) dispatches commands to methods on App, which wires
// the configuration, the SQLite session store, the REST client, the session
// manager and the screen services together. Command handlers gather input
// with the helpers in input.go and print through package-level function
// variables (printlnFn, notifyFn) so tests can capture output.
//
// Session outcomes (login, logout, registration, profile updates) surface
// through consoleNotifier; command handlers never inspect transport errors
// from the session layer.
package cli
