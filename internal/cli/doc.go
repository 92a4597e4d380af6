// Package cli provides the interactive ecocity command-line client.
//
// It wires configuration, the credential store, the session manager, the
// screen state machine and (for the messenger variant) the chat database,
// then runs a REPL in which every command maps onto one button of the
// desktop screens:
//
//   - auth:  register, login
//   - main:  go map | go food | go chat, logout
//   - map:   bins, nearest <lat> <lon>
//   - food:  classify <label>, rank [image]
//   - chat:  say <text>, messages
//   - any:   back, whoami, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
