package internal

import "iter"

// HeightHeap buckets computeds by height into a ring of doubly-linked
// circular lists, one ring per height. Draining walks heights low to high so
// a node's dependencies always recompute before the node itself, which is
// what keeps a dependent from ever observing a half-updated dependency
// chain. The same structure backs both the live/dirty heap (recompute on
// drain) and the zombie heap (height bookkeeping only, no recompute) —
// membershipFlag picks which NodeFlags bit records occupancy so a node can
// never be double-inserted into one heap.
type HeightHeap struct {
	membershipFlag NodeFlags

	min int
	max int

	rings  []*heapEntry
	lookup map[*Computed]*heapEntry
}

type heapEntry struct {
	node *Computed
	next *heapEntry
	prev *heapEntry
}

func newHeightHeap(membershipFlag NodeFlags) *HeightHeap {
	return &HeightHeap{
		membershipFlag: membershipFlag,
		rings:          make([]*heapEntry, 256),
		lookup:         make(map[*Computed]*heapEntry),
	}
}

func (h *HeightHeap) grow(height int) {
	if height < len(h.rings) {
		return
	}
	size := len(h.rings) * 2
	for size <= height {
		size *= 2
	}
	rings := make([]*heapEntry, size)
	copy(rings, h.rings)
	h.rings = rings
}

func (h *HeightHeap) insert(node *Computed) {
	if node.flags.has(h.membershipFlag) {
		return
	}
	node.flags |= h.membershipFlag

	height := node.height
	h.grow(height)

	entry := &heapEntry{node: node}
	h.lookup[node] = entry

	if h.rings[height] == nil {
		h.rings[height] = entry
		entry.prev = entry
		entry.next = nil
	} else {
		head := h.rings[height]
		tail := head.prev
		tail.next = entry
		entry.prev = tail
		entry.next = nil
		head.prev = entry
	}

	if height > h.max {
		h.max = height
	}
	if height < h.min {
		h.min = height
	}
}

func (h *HeightHeap) insertAll(nodes iter.Seq[*Computed]) {
	for node := range nodes {
		h.insert(node)
	}
}

func (h *HeightHeap) remove(node *Computed) {
	if !node.flags.has(h.membershipFlag) {
		return
	}
	node.flags &^= h.membershipFlag

	entry, ok := h.lookup[node]
	if !ok {
		return
	}
	delete(h.lookup, node)

	height := node.height

	if entry.prev == entry {
		h.rings[height] = nil
		entry.prev = entry
		entry.next = nil
		return
	}

	head := h.rings[height]
	if entry == head {
		h.rings[height] = entry.next
	} else {
		entry.prev.next = entry.next
	}

	next := entry.next
	if next == nil {
		next = h.rings[height]
	}
	if next != nil {
		next.prev = entry.prev
	}

	entry.prev = entry
	entry.next = nil
}

// reheight moves node from its current height slot into its (already
// updated) new height, preserving membership. Nothing in the package calls
// it: link() raises a queued node's height without moving its heap slot.
func (h *HeightHeap) reheight(node *Computed, oldHeight int) {
	if !node.flags.has(h.membershipFlag) {
		return
	}
	entry, ok := h.lookup[node]
	if !ok {
		return
	}

	// detach from old ring
	if entry.prev == entry {
		h.rings[oldHeight] = nil
	} else {
		if entry == h.rings[oldHeight] {
			h.rings[oldHeight] = entry.next
		} else {
			entry.prev.next = entry.next
		}
		next := entry.next
		if next == nil {
			next = h.rings[oldHeight]
		}
		if next != nil {
			next.prev = entry.prev
		}
	}

	entry.prev, entry.next = nil, nil
	node.flags &^= h.membershipFlag
	delete(h.lookup, node)

	h.insert(node)
}

// drain processes every entry from the lowest occupied height to the
// highest, calling process for each. process may insert new nodes at
// heights >= the current min (e.g. a node discovered to depend on something
// taller); those are picked up by the same pass since max is re-read live.
func (h *HeightHeap) drain(process func(*Computed)) {
	for h.min = 0; h.min <= h.max; h.min++ {
		entry := h.rings[h.min]
		for entry != nil {
			node := entry.node
			h.remove(node)
			process(node)
			entry = h.rings[h.min]
		}
	}
	h.min = 0
	h.max = 0
}

func (h *HeightHeap) empty() bool {
	return len(h.lookup) == 0
}

func (h *HeightHeap) len() int { return len(h.lookup) }
