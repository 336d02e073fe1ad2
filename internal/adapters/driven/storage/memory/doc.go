// Package memory provides in-memory adapters for configuration and
// reference storage. They are used by tests and by commands that run
// against fixtures instead of files on disk.
package memory
