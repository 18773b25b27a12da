package queue

// Package queue exposes a fixed-capacity FIFO queue over a single preallocated
// backing slice. It differs from a growable deque in that pushing onto a full
// queue is rejected rather than triggering a reallocation, so operations never
// allocate and memory stays bounded for the life of the queue.
