package queue

// Queue is a fixed-capacity FIFO queue backed by a preallocated slice.
// The capacity is set at construction and never changes; a full queue rejects
// pushes instead of growing. Live elements occupy the circular range of len
// slots starting at tail; len, not the head/tail indices, decides whether the
// queue is empty or full, since head == tail in both states.
//
// A Queue is not safe for concurrent use. The zero value is a usable queue
// with capacity 0.
type Queue[T any] struct {
	data    []T
	head    int // next write position, reduced mod capacity at point of use
	tail    int // next read position, reduced mod capacity at point of use
	len     int
	release func(T)
}

// New creates an empty queue with the given fixed capacity.
// A capacity of 0 is valid and yields a queue that is permanently both empty
// and full. New panics if capacity is negative.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		panic("queue: negative capacity")
	}
	return &Queue[T]{
		data: make([]T, capacity),
	}
}

// NewWithRelease creates an empty queue whose Clear calls release exactly once
// for each element still in the queue at that point. Pop never calls release;
// a popped element belongs to the caller. Callers storing elements that own
// external resources should call Clear before discarding the queue.
func NewWithRelease[T any](capacity int, release func(T)) *Queue[T] {
	q := New[T](capacity)
	q.release = release
	return q
}

// Len returns the number of elements currently in the queue.
func (q *Queue[T]) Len() int {
	return q.len
}

// Cap returns the fixed capacity of the queue.
func (q *Queue[T]) Cap() int {
	return len(q.data)
}

// empty returns true if the queue holds no elements.
func (q *Queue[T]) empty() bool {
	return q.len == 0
}

// Push appends v to the back of the queue and reports whether it was stored.
// If the queue is full, Push returns false and the queue is unchanged; the
// caller still holds v and may retry, drop, or reroute it.
func (q *Queue[T]) Push(v T) bool {
	if q.len == len(q.data) {
		return false
	}

	q.head %= len(q.data)
	q.data[q.head] = v
	q.head++
	q.len++

	return true
}

// Pop removes and returns the element at the front of the queue.
// It returns the zero value and false if the queue is empty. The vacated slot
// is zeroed so the queue does not retain references the element held.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.empty() {
		return zero, false
	}

	q.tail %= len(q.data)
	v := q.data[q.tail]
	q.data[q.tail] = zero
	q.tail++
	q.len--

	return v, true
}

// Clear removes every element from the queue, invoking the release hook (if
// one was set) exactly once per element before zeroing its slot. Slots not
// holding an element are never touched. Clear on an empty queue does nothing.
func (q *Queue[T]) Clear() {
	if q.empty() {
		return
	}

	var zero T

	// The live region runs forward from tail. When it has not wrapped it ends
	// at head; when it has wrapped it runs to the end of the buffer and
	// resumes at index 0.
	end := len(q.data)
	if q.tail < q.head {
		end = q.head
	}
	for i := q.tail; i < end; i++ {
		if q.release != nil {
			q.release(q.data[i])
		}
		q.data[i] = zero
	}

	if q.tail >= q.head {
		for i := range q.head {
			if q.release != nil {
				q.release(q.data[i])
			}
			q.data[i] = zero
		}
	}

	q.head = 0
	q.tail = 0
	q.len = 0
}
