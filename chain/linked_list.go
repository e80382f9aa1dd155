// Package chain implements a singly linked list with a permanent leading
// sentinel and an external cursor iterator. Positional operations accept
// Python-style negative indices. Lists are heterogeneous: they store
// elem.Value and never interpret payloads themselves; equality, predicate
// and apply semantics are supplied by the caller.
//
// WARN: NOT CONCURRENT SAFE. A list and its iterators belong to one
// goroutine. Structural mutation through one iterator invalidates every
// other iterator on the same list.
package chain

import (
  "github.com/pkg/errors"

  "github.com/snwfog/chain.go/elem"
)

var (
  ErrOutOfBounds = errors.New("index out of bounds")
  ErrCapacity    = errors.New("capacity exhausted")
)

// Equal reports whether two values count as the same element. Contains is
// the only operation that consults it.
type Equal func(a, b elem.Value) bool

// Predicate tests one element; extra is threaded through unchanged from the
// All/Any call site.
type Predicate func(v elem.Value, extra interface{}) bool

// Apply produces the replacement for one element; extra is threaded through
// unchanged from the ApplyToAll call site.
type Apply func(v elem.Value, extra interface{}) elem.Value

// region LinkedList

// LinkedList is the public facade over one chain. first is the sentinel and
// never moves; last tracks the final real link, or the sentinel itself when
// the list is empty; size counts real links and is maintained incrementally
// by every list-level mutation.
type LinkedList struct {
  first *link
  last  *link
  size  int
  cap   int
  eq    Equal
}

// NewLinkedList returns an empty unbounded list. eq backs Contains and may
// be nil when Contains is never used.
func NewLinkedList(eq Equal) *LinkedList {
  s := newSentinel()
  return &LinkedList{first: s, last: s, eq: eq}
}

// NewBoundedLinkedList returns an empty list refusing to grow beyond
// capacity links: allocation past the bound reports ErrCapacity and the
// operation is a no-op. A capacity below one leaves the list unbounded.
func NewBoundedLinkedList(eq Equal, capacity int) *LinkedList {
  l := NewLinkedList(eq)
  if capacity > 0 {
    l.cap = capacity
  }
  return l
}

// Size returns the maintained element count.
func (l *LinkedList) Size() int {
  return l.size
}

// Capacity returns the growth bound, zero when unbounded.
func (l *LinkedList) Capacity() int {
  return l.cap
}

func (l *LinkedList) IsEmpty() bool {
  return l.size == 0
}

// full reports whether another allocation would exceed the bound. Judged
// against the maintained counter: structural edits made through an iterator
// without size bookkeeping are invisible here.
func (l *LinkedList) full() bool {
  return l.cap > 0 && l.size >= l.cap
}

// Append links v after last. O(1).
func (l *LinkedList) Append(v elem.Value) error {
  if l.full() {
    return errors.Wrap(ErrCapacity, "append")
  }
  n := newLink(v, nil)
  l.last.next = n
  l.last = n
  l.size++
  return nil
}

// Prepend links v directly after the sentinel. O(1).
func (l *LinkedList) Prepend(v elem.Value) error {
  if l.full() {
    return errors.Wrap(ErrCapacity, "prepend")
  }
  n := newLink(v, l.first.next)
  if l.first == l.last {
    l.last = n
  }
  l.first.next = n
  l.size++
  return nil
}

// normalize maps a possibly negative index onto [0, upper]. A negative
// index counts from the end: -1 names the final element for Get/Remove and
// the slot before the final element for Insert.
func (l *LinkedList) normalize(index, upper int) (int, error) {
  if index < 0 {
    index += l.size
  }
  if index < 0 || index > upper {
    return 0, ErrOutOfBounds
  }
  return index, nil
}

// walk returns a fresh iterator advanced steps elements from the sentinel.
func (l *LinkedList) walk(steps int) *Iterator {
  it := l.Iterator()
  for i := 0; i < steps; i++ {
    _, _ = it.Next()
  }
  return it
}

// Insert places v at index, normalized against an upper bound of Size():
// index 0 prepends, index Size() appends, anything between splices through
// a short-lived iterator. An invalid index reports ErrOutOfBounds and
// leaves the list untouched.
func (l *LinkedList) Insert(index int, v elem.Value) error {
  i, err := l.normalize(index, l.size)
  if err != nil {
    return errors.Wrapf(err, "insert %d", index)
  }
  switch i {
  case 0:
    return l.Prepend(v)
  case l.size:
    return l.Append(v)
  }
  if err := l.walk(i).Insert(v); err != nil {
    return errors.Wrap(err, "insert")
  }
  l.size++ // iterator splices leave size to the list
  return nil
}

// Remove unlinks the element at index, normalized against an upper bound of
// Size()-1, and returns its value. An invalid index reports ErrOutOfBounds
// and leaves the list untouched.
func (l *LinkedList) Remove(index int) (elem.Value, error) {
  i, err := l.normalize(index, l.size-1)
  if err != nil {
    return elem.Undefined, errors.Wrapf(err, "remove %d", index)
  }
  v, err := l.walk(i).Remove()
  if err != nil {
    return elem.Undefined, errors.Wrapf(err, "remove %d", index)
  }
  l.size-- // iterator splices leave size to the list
  return v, nil
}

// Get returns the element at index, normalized against an upper bound of
// Size()-1, without mutating the list.
func (l *LinkedList) Get(index int) (elem.Value, error) {
  i, err := l.normalize(index, l.size-1)
  if err != nil {
    return elem.Undefined, errors.Wrapf(err, "get %d", index)
  }
  return l.walk(i).Current(), nil
}

// Contains scans front to back with the stored equality function and
// short-circuits on the first hit.
func (l *LinkedList) Contains(v elem.Value) bool {
  for it := l.Iterator(); it.HasNext(); {
    w, _ := it.Next()
    if l.eq(w, v) {
      return true
    }
  }
  return false
}

// CalculateSize counts real links by walking the chain. It exists to
// cross-check the maintained counter and must agree with Size after any
// sequence of list-level mutations.
func (l *LinkedList) CalculateSize() int {
  size := 0
  for it := l.Iterator(); it.HasNext(); {
    _, _ = it.Next()
    size++
  }
  return size
}

// Clear removes from the front until the list is empty, then zeroes the
// counter, which also squares Size with the chain after untracked iterator
// splices. The sentinel stays; the list remains usable.
func (l *LinkedList) Clear() {
  it := l.Iterator()
  for it.HasNext() {
    _, _ = it.Remove()
  }
  l.size = 0
}

// All reports whether p holds for every element, stopping at the first
// failure. Vacuously true on an empty list.
func (l *LinkedList) All(p Predicate, extra interface{}) bool {
  for it := l.Iterator(); it.HasNext(); {
    if !p(it.Current(), extra) {
      return false
    }
    _, _ = it.Next()
  }
  return true
}

// Any reports whether p holds for at least one element, stopping at the
// first hit. Vacuously false on an empty list.
func (l *LinkedList) Any(p Predicate, extra interface{}) bool {
  for it := l.Iterator(); it.HasNext(); {
    if p(it.Current(), extra) {
      return true
    }
    _, _ = it.Next()
  }
  return false
}

// ApplyToAll replaces every element's value with fn(old, extra), front to
// back, no short-circuit. The sentinel is never visited.
func (l *LinkedList) ApplyToAll(fn Apply, extra interface{}) {
  for cursor := l.first.next; cursor != nil; cursor = cursor.next {
    cursor.value = fn(cursor.value, extra)
  }
}

// endregion
