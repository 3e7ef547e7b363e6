// Package cli provides the interactive MDT ERP terminal client.
//
// It wires configuration, the gRPC client and the chat session into a REPL.
// Typical flow: prompt for credentials, start the chat subscription and the
// presence session in the background, then execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - Clients, contracts, items and measurements
//   - Item workflow (status, milestone dates, comment and file in one step)
//   - Tasks, contract documents, dashboard and CSV export
//   - Chat panel with general and private conversations, online list
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher and runREPL for details.
package cli
