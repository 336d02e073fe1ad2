// Package file provides file-based implementations of driven port interfaces.
//
// ConfigStore keeps settings in a TOML file, by default ~/.helix/config.toml.
// Tables are flattened to dot-notation keys on load and nested again on
// save, so "search.top_k" is written as top_k under [search].
package file
