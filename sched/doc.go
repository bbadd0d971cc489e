// Package sched provides dependency handles and deferred task scheduling for
// asynchronous teardown work.
//
// What:
//
//   - Handle: an opaque dependency token. The zero Handle is already
//     complete, so "no dependency" needs no special casing.
//   - Schedule: runs a task after all of its dependencies complete and
//     returns a new Handle representing the task itself.
//   - Combine: a Handle that completes once all inputs complete.
//
// There is no cancellation — only sequencing. A caller that must observe a
// task's completion blocks on Handle.Complete or selects on Handle.Done.
//
// Complexity: Schedule is O(deps) setup plus one goroutine; Complete is a
// channel receive.
package sched
