// Package dag orders canonical node lists so that every dependency precedes
// its dependents.
//
// The package has three entry points:
//
//   - Sort applies Kahn's algorithm. Ready nodes are released strictly in
//     input order, so identical input always produces an identical ordering.
//     When nodes remain after the queue drains they form one or more cycles,
//     reported together as a CircularDependencyError.
//   - NeedsReorder reports whether a list already satisfies the ordering.
//     Callers still Sort to detect cycles but keep the original list when
//     NeedsReorder is false, so ordered fixtures are never rewritten.
//   - Graph.CheckDangling applies a DanglingPolicy to references that point
//     at node ids absent from the list. Such references never count as
//     dependencies.
package dag
