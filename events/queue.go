package events

// QueueSize is the ring capacity, must be a power of two
const (
	QueueSize  = 256
	bufferMask = QueueSize - 1
)

// Queue is a fixed ring buffer of game events
// Single goroutine: producers and the consumer all run on the frame loop
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events [QueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, nil receiver is a no-op so emitters need no guard
func (q *Queue) Push(ev GameEvent) {
	if q == nil {
		return
	}
	q.events[q.tail&bufferMask] = ev
	q.tail++
	if q.tail-q.head > QueueSize {
		q.head = q.tail - QueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	if q == nil || q.tail == q.head {
		return nil
	}
	result := make([]GameEvent, 0, q.tail-q.head)
	for i := q.head; i < q.tail; i++ {
		result = append(result, q.events[i&bufferMask])
	}
	q.head = q.tail
	return result
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return int(q.tail - q.head)
}

// Drain discards all pending events
func (q *Queue) Drain() {
	if q == nil {
		return
	}
	q.head = q.tail
}
