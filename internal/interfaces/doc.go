// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Store Interfaces
//
//   - SessionService: Signed-in account and its mutations (internal/http/stores.go)
//   - LibraryService: Catalog and reading list (internal/http/stores.go)
//   - ReviewService: Review feed (internal/http/stores.go)
//   - CoverCache: Local copies of catalog cover images (internal/http/stores.go)
//   - Backend: Key/value persistence behind local storage (internal/localstore/localstore.go)
//
// ## Authentication Interfaces
//
//   - TokenSource: Access token a Bearer header must match (internal/auth/middleware.go)
//   - SessionState: Current user as the auth middleware sees it (internal/auth/middleware.go)
//
// ## Background Work Interfaces
//
//   - TaskQueue: Enqueue and inspect background jobs (internal/http/stores.go)
//   - LibrarySource: Reading list handed to the export job (internal/tasks/export_library.go)
//   - LibraryExporter: Writes an export (internal/exporters/generic.go)
//   - ReviewResetter, LibraryResetter: Demo reset targets (internal/scheduler/demo_reset.go)
//
// # Adding a New Export Format
//
//  1. Implement LibraryExporter in internal/exporters/
//
//     type CSVExporter struct {
//         Dir string
//     }
//
//     func (e *CSVExporter) Export(userBooks []entities.UserBook) (ExportResult, error)
//
//     var _ LibraryExporter = (*CSVExporter)(nil)
//
//  2. Register its queue in entrypoint.go
//
//     taskClient.Register(tasks.NewExportLibraryQueue(a.Library, exporters.NewCSVExporter(dir)))
//
// # Adding a New Store
//
//  1. Create the package with a mutex-guarded collection and an observable.Subject.
//
//  2. Every mutation waits for latency.Wait, then persists, then calls Next.
//
//  3. Define the controller interface in internal/http/stores.go and add a
//     compile-time check here.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
