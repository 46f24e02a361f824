// This file implements LFU eviction.

package eviction

// lfuNode represents one key tracked by LFU.
type lfuNode struct {
	key  string
	freq int
}

type lfu struct {
	// nodes lets us quickly find the node for a key.
	nodes map[string]*lfuNode

	// freqMap groups keys by how many times they were used.
	freqMap map[int]map[string]*lfuNode

	// minFreq is the smallest frequency currently present, so eviction
	// does not have to scan every bucket.
	minFreq int
}

func newLFU() *lfu {
	return &lfu{
		nodes:   make(map[string]*lfuNode),
		freqMap: make(map[int]map[string]*lfuNode),
	}
}

// OnGet moves the key one frequency bucket up.
func (l *lfu) OnGet(k string) {
	n, ok := l.nodes[k]
	if !ok {
		return
	}

	old := n.freq
	n.freq++

	delete(l.freqMap[old], k)
	if len(l.freqMap[old]) == 0 {
		delete(l.freqMap, old)
		if l.minFreq == old {
			l.minFreq++
		}
	}

	if l.freqMap[n.freq] == nil {
		l.freqMap[n.freq] = make(map[string]*lfuNode)
	}
	l.freqMap[n.freq][k] = n
}

// OnPut starts tracking a new key at frequency 1. Overwrites of a tracked
// key count as a use.
func (l *lfu) OnPut(k string) {
	if _, ok := l.nodes[k]; ok {
		l.OnGet(k)
		return
	}

	n := &lfuNode{key: k, freq: 1}
	l.nodes[k] = n

	if l.freqMap[1] == nil {
		l.freqMap[1] = make(map[string]*lfuNode)
	}
	l.freqMap[1][k] = n
	l.minFreq = 1
}

// Evict removes and returns some key from the lowest frequency bucket.
// Keys sharing the lowest frequency are evicted in arbitrary order.
func (l *lfu) Evict() string {
	// minFreq can be stale after an eviction or removal emptied its
	// bucket; recompute it before picking a victim.
	if len(l.freqMap[l.minFreq]) == 0 {
		l.resetMinFreq()
	}
	for k := range l.freqMap[l.minFreq] {
		delete(l.freqMap[l.minFreq], k)
		delete(l.nodes, k)
		if len(l.freqMap[l.minFreq]) == 0 {
			delete(l.freqMap, l.minFreq)
		}
		return k
	}
	return ""
}

// Remove drops the key from LFU bookkeeping.
func (l *lfu) Remove(k string) {
	n, ok := l.nodes[k]
	if !ok {
		return
	}
	delete(l.freqMap[n.freq], k)
	if len(l.freqMap[n.freq]) == 0 {
		delete(l.freqMap, n.freq)
	}
	delete(l.nodes, k)
}

// resetMinFreq rescans the buckets for the smallest populated frequency.
func (l *lfu) resetMinFreq() {
	l.minFreq = 0
	for f, bucket := range l.freqMap {
		if len(bucket) == 0 {
			continue
		}
		if l.minFreq == 0 || f < l.minFreq {
			l.minFreq = f
		}
	}
}
