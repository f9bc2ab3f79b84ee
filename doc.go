// Package coro implements cooperatively suspendable computations: coroutine
// handles that the program resumes explicitly, an awaiter protocol through
// which external event sources can drive resumption, and a single-slot
// generator built on top of both.
//
// Execution is single-threaded and cooperative. A coroutine body runs on its
// own goroutine but never concurrently with its driver: control is handed
// back and forth through an unbuffered channel, so body code between two
// suspension points always completes before the driver's Next call returns,
// and driver code between two Next calls always completes before the body
// resumes. Suspension never blocks the resuming goroutine.
package coro
