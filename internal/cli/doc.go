// Package cli provides the interactive minilearn command-line client.
//
// It wires configuration, local storage, the session and progress stores,
// the access policy and the course catalog into a REPL. Typical flow: open
// the configured store, resolve the landing (login prompt for anonymous
// visitors, course list otherwise), then execute user commands.
//
// Commands:
//   - login / signup / logout / whoami
//   - home (list) / show <id> / complete <id>
//   - progress / reset / wipe
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
