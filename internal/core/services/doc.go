// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to the engine and to driven ports (adapters).
//
// Services are pure Go with no CGO or external dependencies.
package services
