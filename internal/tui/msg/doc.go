// Package msg defines the message types used by the TUI's Bubbletea event loop.
//
// These are the events that reach the model from outside a key press: config
// reloads from the file watcher and errors reported by background work. They
// are exported so that the program wrapper can Send them.
package msg
