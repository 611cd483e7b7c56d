// Implements the WaitQueue, which holds patients of one priority class awaiting service.
// Patients are enqueued on admission and leave from the head only.

package sim

// WaitQueue represents a FIFO queue of patients waiting to be served.
// Insertion order is the only ordering; nothing reorders it.
type WaitQueue struct {
	queue []*Patient
}

// Enqueue adds a patient to the back of the wait queue.
func (wq *WaitQueue) Enqueue(p *Patient) {
	wq.queue = append(wq.queue, p)
}

// Len returns the number of patients in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Empty reports whether the queue holds no patients.
func (wq *WaitQueue) Empty() bool {
	return len(wq.queue) == 0
}

// Peek returns the patient at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Patient {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// IDs returns a fresh slice of patient IDs in queue order.
func (wq *WaitQueue) IDs() []string {
	ids := make([]string, len(wq.queue))
	for i, p := range wq.queue {
		ids[i] = p.ID
	}
	return ids
}

// Dequeue removes and returns the patient at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Patient {
	if len(wq.queue) == 0 {
		return nil
	}
	head := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]
	return head
}
