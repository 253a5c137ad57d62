// Package pipeline generates reports through a sequence of steps and runs
// several generations concurrently.
//
// A Job carries one archetype request. The default pipeline resolves the
// archetype policy into a plan and then builds the report; a WriteStep can be
// appended to output it. BatchProcessor runs one pipeline per job with
// errgroup, bounded by the configured concurrency, and keeps the results in
// request order.
package pipeline
