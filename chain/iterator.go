package chain

import (
  "github.com/snwfog/chain.go/elem"
)

// region Iterator

// Iterator is an external cursor over one LinkedList. curr always
// references the link before the logical current element (current is
// curr.next), which makes Insert and Remove constant-time splices with no
// predecessor scan. A fresh iterator sits on the sentinel, so the first
// Next yields the first element.
//
// An iterator is a view, not an owner: it holds no resources and is
// invalidated by structural edits made through any other iterator, and by
// the list being torn down.
type Iterator struct {
  curr *link
  list *LinkedList
}

func NewIterator(l *LinkedList) *Iterator {
  return &Iterator{curr: l.first, list: l}
}

// Iterator returns a fresh cursor positioned before the first element.
func (l *LinkedList) Iterator() *Iterator {
  return NewIterator(l)
}

// HasNext reports whether a logical current element exists.
func (it *Iterator) HasNext() bool {
  return it.curr.next != nil
}

// Next advances the cursor onto the current element and returns its value.
// Once the chain is exhausted it keeps returning (elem.Undefined, false).
// Advancing is the only way forward; there is no positional rewind short of
// Reset.
func (it *Iterator) Next() (elem.Value, bool) {
  if !it.HasNext() {
    return elem.Undefined, false
  }
  it.curr = it.curr.next
  return it.curr.value, true
}

// Current returns the value Next would return, without advancing. Past the
// end it returns elem.Undefined rather than failing, so probing an empty or
// exhausted iterator stays cheap.
func (it *Iterator) Current() elem.Value {
  if !it.HasNext() {
    return elem.Undefined
  }
  return it.curr.next.value
}

// Remove unlinks the logical current element and returns its value, or
// ErrOutOfBounds when the cursor has nothing ahead of it. The cursor does
// not move: the successor of the removed link becomes current. The owning
// list's size counter is deliberately left alone; Size tracks list-level
// edits only, and CalculateSize counts the chain as it actually is.
func (it *Iterator) Remove() (elem.Value, error) {
  if !it.HasNext() {
    return elem.Undefined, ErrOutOfBounds
  }
  gone := it.curr.next
  it.curr.next = gone.next
  if gone == it.list.last {
    it.list.last = it.curr
  }
  gone.next = nil // detach, let it be collected
  return gone.value, nil
}

// Insert splices v between the cursor and the logical current element;
// at the end of a traversal that grows the tail. The owning list's size
// counter is deliberately left alone, same as Remove. Bounded lists refuse
// the splice with ErrCapacity.
func (it *Iterator) Insert(v elem.Value) error {
  if it.list.full() {
    return ErrCapacity
  }
  n := newLink(v, it.curr.next)
  it.curr.next = n
  if n.next == nil {
    it.list.last = n
  }
  return nil
}

// Reset repositions the cursor on the sentinel; the first element becomes
// current again.
func (it *Iterator) Reset() {
  it.curr = it.list.first
}

// endregion

// region CyclicIterator

// CyclicIterator walks its list without end, wrapping to the first element
// once the chain is exhausted. On an empty list Next reports false instead
// of spinning.
type CyclicIterator struct {
  Iterator
}

func NewCyclicIterator(l *LinkedList) *CyclicIterator {
  return &CyclicIterator{*NewIterator(l)}
}

// CyclicIterator returns a wrapping cursor positioned before the first
// element.
func (l *LinkedList) CyclicIterator() *CyclicIterator {
  return NewCyclicIterator(l)
}

func (it *CyclicIterator) Next() (elem.Value, bool) {
  if v, ok := it.Iterator.Next(); ok {
    return v, ok
  }
  it.Reset()
  return it.Iterator.Next()
}

// HasNext reports whether the list holds any element at all: a cyclic
// cursor is exhausted only by an empty chain.
func (it *CyclicIterator) HasNext() bool {
  return it.list.first.next != nil
}

// endregion
