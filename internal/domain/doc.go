// Package domain defines the core business types for the Marketing IQ
// platform.
//
// Types in this package are pure value objects: no database dependencies,
// no HTTP concerns. They are the shared language between handlers, engines,
// and repositories.
//
// Rules for this package:
//   - No imports from other internal/ packages except scoring helpers
//   - No *sql.DB, no http.Request, no context.Context in struct fields
//   - JSON/DB tags are allowed (they're metadata, not behavior)
//   - Derived KPIs are methods over the raw counters, never stored fields
package domain
