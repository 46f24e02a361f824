// This file implements FIFO eviction.

package eviction

type fifo struct {
	// queue keeps keys in insertion order, oldest first.
	queue []string

	// set records which keys are currently in the queue.
	set map[string]struct{}
}

func newFIFO() *fifo {
	return &fifo{set: make(map[string]struct{})}
}

// OnGet does nothing. FIFO ignores reads completely.
func (f *fifo) OnGet(string) {}

// OnPut records the first insertion of a key. Overwrites keep the original
// queue position.
func (f *fifo) OnPut(k string) {
	if _, ok := f.set[k]; ok {
		return
	}
	f.queue = append(f.queue, k)
	f.set[k] = struct{}{}
}

// Evict returns the oldest inserted key.
func (f *fifo) Evict() string {
	if len(f.queue) == 0 {
		return ""
	}
	k := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.set, k)
	return k
}

// Remove drops the key while preserving the order of the rest.
func (f *fifo) Remove(k string) {
	if _, ok := f.set[k]; !ok {
		return
	}
	delete(f.set, k)
	for i, v := range f.queue {
		if v == k {
			f.queue = append(f.queue[:i], f.queue[i+1:]...)
			break
		}
	}
}
