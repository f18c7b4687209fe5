// Package domain contains the core entities and value objects for framebooth.
//
// This package has no dependencies on infrastructure concerns (file system,
// printers, logging) and contains only the rules the booth is built around.
//
// # Entities
//
//   - [Snapshot]: the set of filenames observed in the watched directory
//   - [PendingJob]: one detected photo on its way through compositing and printing
//   - [Capabilities] and [Geometry]: printer page description and the placement of an image on it
//   - [Status]: operator-facing counters persisted between runs
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
