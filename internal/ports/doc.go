// Package ports defines the interfaces that connect the application layer
// (internal/app) to infrastructure adapters (internal/adapters).
//
// # Port Interfaces
//
//   - [Printer]: a print target addressed by explicit ID
//   - [ChangeWatcher]: the scoped directory change notification handle
//   - [SyncRunner]: the external folder synchronisation action
//   - [ImageStore]: decoding and atomically writing image files
//   - [StatusRepository]: persists the operator status file
//   - [CommandRunner]: runs external executables
//   - [Clock]: time source for scheduling
//   - [Logger]: structured logging abstraction
//
// The application layer depends only on these interfaces, so loop, dispatch
// and scheduling logic can be tested with in-memory fakes.
package ports
