// Package monitor provides host metric queries over a pluggable system
// information provider.
//
// # Overview
//
// A Monitor answers four queries: system identity (SystemInfo), physical
// memory (MemoryInfo), mounted volumes (ListDisks), and per-core CPU stats
// (CPUInfo). Each query returns an immutable value record; JSON variants
// return the same data as fixed-shape JSON strings for cross-runtime
// bindings.
//
// # Providers
//
// The data source is selected at construction time:
//
//	m := monitor.New()                     // native host access via gopsutil
//	m := monitor.New(monitor.WithSandbox()) // no-access placeholders
//
// The sandbox provider serves environments without OS introspection
// privileges. It returns structurally valid placeholder values: the platform
// and hostname literals, "N/A" versions, zero counters, and empty lists.
//
// # Failure contract
//
// No query returns an error. Host data that cannot be read degrades to the
// "Unknown" literal for text fields and zero for numeric fields, and JSON
// serialization failure degrades to "{}" or "[]". Callers always receive a
// value of the documented shape.
//
// # Concurrency
//
// Monitor is not safe for concurrent use; serialize access with a lock when
// sharing an instance across goroutines. See the report package for a
// locked, whole-host capture built on top of Monitor.
package monitor
