// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ReferenceStore: Read-only reference sequence snapshot (FASTA file or SQLite)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - ReferenceImporter: Replaces the contents of a writable reference catalogue.
//     Only the SQLite backend implements it.
//   - ReferenceReader: Parses FASTA files for import into a ReferenceImporter.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
