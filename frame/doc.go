// Package frame coalesces redraw requests into animation frames.
//
// A widget owns one [State]. Every refresh trigger (an explicit refresh
// command, a viewport resize) calls [State.Request]. Only the request that
// flips the pending flag from false to true submits a callback to the host
// [Scheduler]; every other request arriving before that callback fires is
// absorbed. The callback clears the flag before it draws, so a request made
// while drawing schedules a new frame instead of being lost.
//
//	Idle --Request--> Pending --callback fires (flag cleared, draw)--> Idle
//
// There is no cancellation: a submitted frame always fires, and a frame
// whose widget is gone is dropped by the draw function itself.
package frame
