// Package smartlist provides a resizable ordered list with explicit
// capacity management.
//
// A List starts with room for DefaultCapacity elements and doubles its
// backing store until a request fits. Index violations and capacity
// overflow are programming errors and panic.
package smartlist

import (
	"fmt"
	"math"
	"sort"
)

// DefaultCapacity is the capacity of every newly created list.
const DefaultCapacity = 16

// MaxCapacity is the largest number of elements a list can hold.
var MaxCapacity = math.MaxInt32

// List is an ordered sequence of T. The first Len() slots of the backing
// store hold valid data; the remaining slots up to Cap() are always zero.
type List[T any] struct {
	items []T
	used  int
}

// New allocates an empty list with DefaultCapacity slots.
func New[T any]() *List[T] {
	return &List[T]{items: make([]T, DefaultCapacity)}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.used
}

// Cap returns the number of allocated slots.
func (l *List[T]) Cap() int {
	return len(l.items)
}

// Get returns the idx'th element.
func (l *List[T]) Get(idx int) T {
	l.checkIndex(idx)
	return l.items[idx]
}

// Set replaces the idx'th element with val.
func (l *List[T]) Set(idx int, val T) {
	l.checkIndex(idx)
	l.items[idx] = val
}

// EnsureCapacity makes sure the list can hold at least num elements.
// The capacity doubles until num fits; requests above MaxCapacity/2 jump
// straight to MaxCapacity.
func (l *List[T]) EnsureCapacity(num int) {
	if num < 0 || num > MaxCapacity {
		panic(fmt.Sprintf("smartlist: capacity %d out of range [0, %d]", num, MaxCapacity))
	}
	if num <= len(l.items) {
		return
	}

	higher := len(l.items)
	if higher == 0 {
		higher = DefaultCapacity
	}
	if num > MaxCapacity/2 {
		higher = MaxCapacity
	} else {
		for num > higher {
			higher *= 2
		}
	}

	grown := make([]T, higher)
	copy(grown, l.items[:l.used])
	l.items = grown
}

// Add appends element to the end of the list.
func (l *List[T]) Add(element T) {
	l.EnsureCapacity(l.used + 1)
	l.items[l.used] = element
	l.used++
}

// AddAll appends every element of other to the end of l.
func (l *List[T]) AddAll(other *List[T]) {
	if other == nil || other.used == 0 {
		return
	}
	if other.used > MaxCapacity-l.used {
		panic(fmt.Sprintf("smartlist: cannot append %d elements to %d", other.used, l.used))
	}
	l.EnsureCapacity(l.used + other.used)
	copy(l.items[l.used:], other.items[:other.used])
	l.used += other.used
}

// Del removes the idx'th element by moving the last element into its
// slot. Order is not preserved.
func (l *List[T]) Del(idx int) {
	l.checkIndex(idx)
	var zero T
	l.used--
	l.items[idx] = l.items[l.used]
	l.items[l.used] = zero
}

// DelKeepOrder removes the idx'th element and shifts every later element
// down by one.
func (l *List[T]) DelKeepOrder(idx int) {
	l.checkIndex(idx)
	var zero T
	l.used--
	if idx < l.used {
		copy(l.items[idx:], l.items[idx+1:l.used+1])
	}
	l.items[l.used] = zero
}

// Clear removes all elements. Capacity is kept.
func (l *List[T]) Clear() {
	var zero T
	for i := 0; i < l.used; i++ {
		l.items[i] = zero
	}
	l.used = 0
}

// Wipe calls fn for every element, then clears the list.
func (l *List[T]) Wipe(fn func(T)) {
	for i := 0; i < l.used; i++ {
		fn(l.items[i])
	}
	l.Clear()
}

// Free releases the backing store. The elements themselves are not
// touched; the list must not be used afterwards.
func (l *List[T]) Free() {
	l.items = nil
	l.used = 0
}

// FreeAll calls release for every element and then frees the list.
func (l *List[T]) FreeAll(release func(T)) {
	if release != nil {
		for i := 0; i < l.used; i++ {
			release(l.items[i])
		}
	}
	l.Free()
}

// Index returns the position of the first element for which match
// returns true, or -1.
func (l *List[T]) Index(match func(T) bool) int {
	for i := 0; i < l.used; i++ {
		if match(l.items[i]) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element satisfies match.
func (l *List[T]) Contains(match func(T) bool) bool {
	return l.Index(match) >= 0
}

// Sort orders the elements using less. The sort is stable.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.used == 0 {
		return
	}
	live := l.items[:l.used]
	sort.SliceStable(live, func(i, j int) bool {
		return less(live[i], live[j])
	})
}

// Duplicates returns the number of adjacent equal pairs in a sorted list,
// where equal means cmp returned 0.
func (l *List[T]) Duplicates(cmp func(a, b T) int) int {
	dups := 0
	for i := 1; i < l.used; i++ {
		if cmp(l.items[i-1], l.items[i]) == 0 {
			dups++
		}
	}
	return dups
}

// MakeUniq removes adjacent duplicates from a sorted list, keeping the
// first of each run. If release is non-nil it is called on every removed
// element.
func (l *List[T]) MakeUniq(cmp func(a, b T) int, release func(T)) {
	for i := 1; i < l.used; i++ {
		if cmp(l.items[i-1], l.items[i]) == 0 {
			if release != nil {
				release(l.items[i])
			}
			l.DelKeepOrder(i)
			i--
		}
	}
}

// Items returns a copy of the live elements.
func (l *List[T]) Items() []T {
	out := make([]T, l.used)
	copy(out, l.items[:l.used])
	return out
}

func (l *List[T]) checkIndex(idx int) {
	if idx < 0 || idx >= l.used {
		panic(fmt.Sprintf("smartlist: index %d out of range [0, %d)", idx, l.used))
	}
}
