package heap

// NotInHeap is the heap index reported by an element that has never been
// inserted, or that has been extracted. Types implementing Indexed should
// initialize their index field to NotInHeap.
const NotInHeap = -1

// Indexed is the capability a heap element must offer: a place to store
// its current position in the backing array, maintained by the heap on
// every swap. Callers query HeapIndex only to decide whether an element
// is currently queued; the heap is the sole writer of SetHeapIndex.
type Indexed interface {
	HeapIndex() int
	SetHeapIndex(i int)
}

// Heap is a binary min-heap over elements of type T, ordered by a
// caller-supplied Less. It does not own its elements' other fields; it
// only maintains each element's HeapIndex.
type Heap[T Indexed] struct {
	items []T
	less  func(a, b T) bool
}

// New returns an empty heap ordered by less(a, b) == "a has smaller priority than b".
func New[T Indexed](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// Len returns the number of elements currently in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Empty reports whether the heap holds no elements.
//
// Complexity: O(1)
func (h *Heap[T]) Empty() bool {
	return len(h.items) == 0
}

// Insert adds x to the heap.
//
// Complexity: O(log n)
func (h *Heap[T]) Insert(x T) {
	x.SetHeapIndex(len(h.items))
	h.items = append(h.items, x)
	h.siftUp(len(h.items) - 1)
}

// ExtractMin removes and returns the element with the smallest priority.
// Calling ExtractMin on an empty heap is a programming error and panics,
// matching the source's contract.
//
// Complexity: O(log n)
func (h *Heap[T]) ExtractMin() T {
	if len(h.items) == 0 {
		panic("heap: ExtractMin on empty heap")
	}

	min := h.items[0]

	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items[0].SetHeapIndex(0)
	h.items = h.items[:last]
	min.SetHeapIndex(NotInHeap)

	if last > 0 {
		h.siftDown(0)
	}

	return min
}

// DecreaseKey restores heap order for x after the caller has lowered its
// priority in place (the heap's less function may now rank x before its
// current parent). Calling DecreaseKey on an element not currently in the heap
// is a programming error and panics.
//
// Complexity: O(log n)
func (h *Heap[T]) DecreaseKey(x T) {
	i := x.HeapIndex()
	if i < 0 || i >= len(h.items) || !h.same(h.items[i], x) {
		panic("heap: DecreaseKey on element not in heap")
	}
	h.siftUp(i)
}

// same reports whether a and b occupy the same heap slot; T is typically
// a pointer type, so identity comparison is via the index invariant the
// caller already established (x.HeapIndex() must point back at x).
func (h *Heap[T]) same(a, b T) bool {
	return a.HeapIndex() == b.HeapIndex()
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i

		if left < n && h.less(h.items[left], h.items[smallest]) {
			smallest = left
		}
		if right < n && h.less(h.items[right], h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}

		h.swap(i, smallest)
		i = smallest
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].SetHeapIndex(i)
	h.items[j].SetHeapIndex(j)
}
