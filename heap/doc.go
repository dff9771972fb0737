// Package heap implements a generic indexed binary min-heap.
//
// Unlike container/heap, elements carry their own position inside the
// heap (a heapIndex field, accessed through the Indexed interface),
// so DecreaseKey can relocate an element in O(log n) time without a
// linear scan to find it first. Insert, ExtractMin and DecreaseKey are
// all O(log n); Empty is O(1).
//
// The heap does not own its elements: it only calls the caller-supplied
// less function and maintains each element's index via SetHeapIndex. Callers remain responsible for the
// element's other fields (priority, payload, ...).
package heap
